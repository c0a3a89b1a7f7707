package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type User struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Username     string  `json:"username" gorm:"uniqueIndex;size:60;not null"`
	PasswordHash string  `json:"-" gorm:"not null"`
	FullName     string  `json:"full_name" gorm:"size:120;not null"`
	Role         string  `json:"role" gorm:"size:20;not null;default:employee"` // "admin" | "employee"
	Department   string  `json:"department" gorm:"size:80"`
	BaseSalary   float64 `json:"base_salary" gorm:"default:0"`

	// Weak reference: the shift may be deleted without touching the user.
	ShiftID *uint `json:"shift_id" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
