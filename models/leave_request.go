package models

import "time"

const (
	LeaveTypeCuti  = "cuti"  // annual leave
	LeaveTypeSakit = "sakit" // sick
	LeaveTypeIzin  = "izin"  // permission

	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequest struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Type      string `json:"type" gorm:"size:20;not null"`       // cuti/sakit/izin
	StartDate string `json:"start_date" gorm:"size:10;not null"` // YYYY-MM-DD
	EndDate   string `json:"end_date" gorm:"size:10;not null"`   // YYYY-MM-DD
	Reason    string `json:"reason" gorm:"type:text"`
	Status    string `json:"status" gorm:"size:20;not null;default:pending"` // pending/approved/rejected

	DecidedAt *time.Time `json:"decided_at"`
	DecidedBy *uint      `json:"decided_by"` // admin user id

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
