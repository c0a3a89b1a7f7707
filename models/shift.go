package models

import "time"

type Shift struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:80;not null"`
	StartTime string    `json:"start_time" gorm:"size:5;not null"` // HH:MM
	EndTime   string    `json:"end_time" gorm:"size:5;not null"`   // HH:MM
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
