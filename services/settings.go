package services

import (
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

// OfficeSettings is the geofence reference read at the start of each check-in
// request and handed explicitly to the admission gate. Never cached globally;
// an admin update takes effect on the next request.
type OfficeSettings struct {
	Lat    float64 `json:"office_lat"`
	Lng    float64 `json:"office_lng"`
	Radius float64 `json:"office_radius"`
}

type SettingsService struct {
	db *gorm.DB

	defaults OfficeSettings
}

func NewSettingsService(db *gorm.DB, defaults OfficeSettings) *SettingsService {
	return &SettingsService{db: db, defaults: defaults}
}

// Get returns the current office settings, falling back to the configured
// defaults for any missing key.
func (s *SettingsService) Get() (OfficeSettings, error) {
	var rows []models.Setting
	if err := s.db.Find(&rows).Error; err != nil {
		return OfficeSettings{}, err
	}

	out := s.defaults
	for _, r := range rows {
		v, err := strconv.ParseFloat(r.Value, 64)
		if err != nil {
			continue
		}
		switch r.Key {
		case "office_lat":
			out.Lat = v
		case "office_lng":
			out.Lng = v
		case "office_radius":
			out.Radius = v
		}
	}
	return out, nil
}

// Update writes all three keys insert-or-replace. Last write wins; there is
// no settings history.
func (s *SettingsService) Update(lat, lng, radius float64) error {
	rows := []models.Setting{
		{Key: "office_lat", Value: strconv.FormatFloat(lat, 'f', -1, 64)},
		{Key: "office_lng", Value: strconv.FormatFloat(lng, 'f', -1, 64)},
		{Key: "office_radius", Value: strconv.FormatFloat(radius, 'f', -1, 64)},
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rows).Error
}
