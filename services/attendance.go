package services

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

// AttendanceService owns the per-user, per-day attendance lifecycle:
// NoRecord -> CheckedIn -> Completed, one record per (user, date).
type AttendanceService struct {
	db *gorm.DB

	// Enables deriving "late" from the assigned shift's start time. The
	// default policy stamps every check-in "present".
	lateFromShift bool

	// Serializes the check-then-insert sequence so concurrent check-ins for
	// the same day cannot both pass the pre-read. The unique index on
	// (user_id, date) is the storage-level backstop.
	mu sync.Mutex
}

func NewAttendanceService(db *gorm.DB, lateFromShift bool) *AttendanceService {
	return &AttendanceService{db: db, lateFromShift: lateFromShift}
}

type CheckInParams struct {
	UserID   uint
	Date     string // YYYY-MM-DD
	Time     string // HH:MM:SS
	Lat      float64
	Lng      float64
	PhotoURL string
}

// CheckIn records the first attendance of the day. Exactly one call per
// (user, date) succeeds; the rest fail with ErrDuplicateCheckIn.
func (s *AttendanceService) CheckIn(p CheckInParams) (*models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	if err := s.db.Model(&models.Attendance{}).
		Where("user_id = ? AND date = ?", p.UserID, p.Date).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDuplicateCheckIn
	}

	rec := models.Attendance{
		UserID:      p.UserID,
		Date:        p.Date,
		CheckIn:     p.Time,
		Status:      s.deriveStatus(p.UserID, p.Time),
		LocationLat: p.Lat,
		LocationLng: p.Lng,
		PhotoURL:    p.PhotoURL,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCheckIn
		}
		return nil, err
	}
	return &rec, nil
}

// CheckOut completes an open record. A day with no check-in, or one already
// checked out, fails with ErrNoOpenCheckIn instead of silently succeeding.
func (s *AttendanceService) CheckOut(userID uint, date, tm string) (*models.Attendance, error) {
	var rec models.Attendance
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOpenCheckIn
	}
	if err != nil {
		return nil, err
	}
	if rec.CheckOut != nil {
		return nil, ErrNoOpenCheckIn
	}

	if err := s.db.Model(&rec).Update("check_out", tm).Error; err != nil {
		return nil, err
	}
	rec.CheckOut = &tm
	return &rec, nil
}

// History returns all records for the user, most recent date first.
func (s *AttendanceService) History(userID uint) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

// TodayRecord returns the record for the given date, or nil when the user
// has not checked in yet.
func (s *AttendanceService) TodayRecord(userID uint, date string) (*models.Attendance, error) {
	var rec models.Attendance
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// deriveStatus fixes the record status at check-in time. The observed product
// behavior is "present" always; lateness against the assigned shift is an
// opt-in policy. Lookup failures fall back to "present" rather than blocking
// the check-in.
func (s *AttendanceService) deriveStatus(userID uint, checkIn string) string {
	if !s.lateFromShift {
		return models.StatusPresent
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil || user.ShiftID == nil {
		return models.StatusPresent
	}
	var shift models.Shift
	if err := s.db.First(&shift, *user.ShiftID).Error; err != nil {
		return models.StatusPresent
	}

	in, err := time.Parse("15:04:05", checkIn)
	if err != nil {
		return models.StatusPresent
	}
	start, err := time.Parse("15:04", shift.StartTime)
	if err != nil {
		return models.StatusPresent
	}
	if in.After(start) {
		return models.StatusLate
	}
	return models.StatusPresent
}
