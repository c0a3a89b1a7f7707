package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

type LeaveService struct {
	db *gorm.DB
}

func NewLeaveService(db *gorm.DB) *LeaveService {
	return &LeaveService{db: db}
}

// Submit files a new request. Status always starts at pending; only the
// admin decision flow moves it.
func (s *LeaveService) Submit(userID uint, typ, startDate, endDate, reason string) (*models.LeaveRequest, error) {
	rec := models.LeaveRequest{
		UserID:    userID,
		Type:      typ,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
		Status:    models.LeaveStatusPending,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *LeaveService) ListByUser(userID uint) ([]models.LeaveRequest, error) {
	var rows []models.LeaveRequest
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

// Decide moves a request to approved or rejected and records who decided.
func (s *LeaveService) Decide(id uint, approve bool, decidedBy uint) (*models.LeaveRequest, error) {
	var rec models.LeaveRequest
	if err := s.db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	status := models.LeaveStatusApproved
	if !approve {
		status = models.LeaveStatusRejected
	}
	now := time.Now()
	updates := map[string]any{
		"status":     status,
		"decided_at": &now,
		"decided_by": decidedBy,
	}
	if err := s.db.Model(&rec).Updates(updates).Error; err != nil {
		return nil, err
	}
	rec.Status = status
	rec.DecidedAt = &now
	rec.DecidedBy = &decidedBy
	return &rec, nil
}

func (s *LeaveService) PendingCount() (int64, error) {
	var n int64
	err := s.db.Model(&models.LeaveRequest{}).
		Where("status = ?", models.LeaveStatusPending).
		Count(&n).Error
	return n, err
}
