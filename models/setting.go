package models

// Flat key/value configuration table. Office geofence values live here under
// the keys office_lat, office_lng, office_radius.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey;size:60"`
	Value string `json:"value" gorm:"not null"`
}
