package services

import (
	"gorm.io/gorm"

	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

// workdaysPerMonth is the divisor behind the payroll estimate: the monthly
// base salary is treated as 22 working days.
const workdaysPerMonth = 22

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type SummaryRow struct {
	UserID      uint   `json:"user_id"`
	FullName    string `json:"full_name"`
	Department  string `json:"department"`
	DaysPresent int64  `json:"days_present"`
	DaysLate    int64  `json:"days_late"`
}

// Summary aggregates per-employee attendance counts. Employees with no
// records still show up with zero counts (left join).
func (s *ReportService) Summary() ([]SummaryRow, error) {
	var rows []SummaryRow
	err := s.db.Table("users AS u").
		Select(`u.id AS user_id, u.full_name, u.department,
			COUNT(a.id) AS days_present,
			COALESCE(SUM(CASE WHEN a.status = ? THEN 1 ELSE 0 END), 0) AS days_late`,
			models.StatusLate).
		Joins("LEFT JOIN attendances a ON a.user_id = u.id").
		Where("u.role = ?", models.RoleEmployee).
		Group("u.id, u.full_name, u.department").
		Order("u.full_name ASC").
		Scan(&rows).Error
	return rows, err
}

type PayrollRow struct {
	SummaryRow
	BaseSalary float64 `json:"base_salary"`
	DailyRate  float64 `json:"daily_rate"`
	Earnings   float64 `json:"earnings"`
}

// Payroll estimates current earnings as daily rate times days present.
func (s *ReportService) Payroll() ([]PayrollRow, error) {
	var rows []PayrollRow
	err := s.db.Table("users AS u").
		Select(`u.id AS user_id, u.full_name, u.department, u.base_salary,
			COUNT(a.id) AS days_present,
			COALESCE(SUM(CASE WHEN a.status = ? THEN 1 ELSE 0 END), 0) AS days_late`,
			models.StatusLate).
		Joins("LEFT JOIN attendances a ON a.user_id = u.id").
		Where("u.role = ?", models.RoleEmployee).
		Group("u.id, u.full_name, u.department, u.base_salary").
		Order("u.full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].DailyRate = rows[i].BaseSalary / workdaysPerMonth
		rows[i].Earnings = rows[i].DailyRate * float64(rows[i].DaysPresent)
	}
	return rows, nil
}

type DashboardStats struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int64 `json:"present_today"`
	LateToday      int64 `json:"late_today"`
	PendingLeaves  int64 `json:"pending_leaves"`
}

// Dashboard returns the admin landing-page counters for one date.
func (s *ReportService) Dashboard(date string) (DashboardStats, error) {
	var out DashboardStats

	if err := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleEmployee).
		Count(&out.TotalEmployees).Error; err != nil {
		return out, err
	}
	if err := s.db.Model(&models.Attendance{}).
		Where("date = ?", date).
		Count(&out.PresentToday).Error; err != nil {
		return out, err
	}
	if err := s.db.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", date, models.StatusLate).
		Count(&out.LateToday).Error; err != nil {
		return out, err
	}
	if err := s.db.Model(&models.LeaveRequest{}).
		Where("status = ?", models.LeaveStatusPending).
		Count(&out.PendingLeaves).Error; err != nil {
		return out, err
	}
	return out, nil
}
