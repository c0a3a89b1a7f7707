package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

func seedAttendance(t *testing.T, db *gorm.DB, userID uint, date, status string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Attendance{
		UserID:  userID,
		Date:    date,
		CheckIn: "08:00:00",
		Status:  status,
	}).Error)
}

func TestSummaryCountsPerEmployee(t *testing.T) {
	db := newTestDB(t)
	x := createUser(t, db, "xenia", models.RoleEmployee)
	y := createUser(t, db, "yusuf", models.RoleEmployee)
	admin := createUser(t, db, "admin", models.RoleAdmin)

	seedAttendance(t, db, x.ID, "2024-02-01", models.StatusPresent)
	seedAttendance(t, db, x.ID, "2024-02-02", models.StatusPresent)
	seedAttendance(t, db, x.ID, "2024-02-03", models.StatusLate)
	seedAttendance(t, db, admin.ID, "2024-02-01", models.StatusPresent)

	rows, err := NewReportService(db).Summary()
	require.NoError(t, err)
	require.Len(t, rows, 2) // admins excluded

	byID := map[uint]SummaryRow{}
	for _, r := range rows {
		byID[r.UserID] = r
	}
	assert.EqualValues(t, 3, byID[x.ID].DaysPresent)
	assert.EqualValues(t, 1, byID[x.ID].DaysLate)
	assert.EqualValues(t, 0, byID[y.ID].DaysPresent)
	assert.EqualValues(t, 0, byID[y.ID].DaysLate)
}

func TestPayrollEstimate(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db, "xenia", models.RoleEmployee)
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", u.ID).Update("base_salary", 4400000).Error)

	seedAttendance(t, db, u.ID, "2024-02-01", models.StatusPresent)
	seedAttendance(t, db, u.ID, "2024-02-02", models.StatusPresent)

	rows, err := NewReportService(db).Payroll()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.InDelta(t, 200000, rows[0].DailyRate, 0.01) // 4_400_000 / 22
	assert.InDelta(t, 400000, rows[0].Earnings, 0.01)
	assert.EqualValues(t, 2, rows[0].DaysPresent)
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	a := createUser(t, db, "ana", models.RoleEmployee)
	b := createUser(t, db, "bimo", models.RoleEmployee)
	createUser(t, db, "cecep", models.RoleEmployee)

	seedAttendance(t, db, a.ID, "2024-02-01", models.StatusPresent)
	seedAttendance(t, db, b.ID, "2024-02-01", models.StatusLate)
	seedAttendance(t, db, a.ID, "2024-01-31", models.StatusPresent)

	leave := NewLeaveService(db)
	_, err := leave.Submit(a.ID, models.LeaveTypeIzin, "2024-02-05", "2024-02-05", "urusan pribadi")
	require.NoError(t, err)

	stats, err := NewReportService(db).Dashboard("2024-02-01")
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalEmployees)
	assert.EqualValues(t, 2, stats.PresentToday)
	assert.EqualValues(t, 1, stats.LateToday)
	assert.EqualValues(t, 1, stats.PendingLeaves)
}
