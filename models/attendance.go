package models

import "time"

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
)

// One row per user per calendar day. The composite unique index is the
// storage-level guard behind the duplicate check-in rule: a concurrent
// second insert fails on the index even if it slipped past the pre-read.
type Attendance struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	UserID      uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_attendance_user_date"`
	Date        string  `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_user_date"` // YYYY-MM-DD
	CheckIn     string  `json:"check_in" gorm:"size:8;not null"`                                   // HH:MM:SS
	CheckOut    *string `json:"check_out" gorm:"size:8"`                                           // nil until checked out
	Status      string  `json:"status" gorm:"size:20;not null"`                                    // present/late/absent/leave
	LocationLat float64 `json:"location_lat"`
	LocationLng float64 `json:"location_lng"`
	PhotoURL    string  `json:"photo_url" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
