package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

func TestLeaveSubmitStartsPending(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db, "budi", models.RoleEmployee)
	svc := NewLeaveService(db)

	rec, err := svc.Submit(u.ID, models.LeaveTypeCuti, "2024-03-01", "2024-03-03", "liburan keluarga")
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusPending, rec.Status)

	rows, err := svc.ListByUser(u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, rec.ID, rows[0].ID)
	assert.Equal(t, models.LeaveStatusPending, rows[0].Status)
	assert.Equal(t, models.LeaveTypeCuti, rows[0].Type)
}

func TestLeaveDecide(t *testing.T) {
	db := newTestDB(t)
	admin := createUser(t, db, "admin", models.RoleAdmin)
	u := createUser(t, db, "budi", models.RoleEmployee)
	svc := NewLeaveService(db)

	rec, err := svc.Submit(u.ID, models.LeaveTypeSakit, "2024-03-01", "2024-03-01", "demam")
	require.NoError(t, err)

	approved, err := svc.Decide(rec.ID, true, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, approved.Status)
	require.NotNil(t, approved.DecidedBy)
	assert.Equal(t, admin.ID, *approved.DecidedBy)
	assert.NotNil(t, approved.DecidedAt)

	rejected, err := svc.Decide(rec.ID, false, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusRejected, rejected.Status)
}

func TestLeaveDecideUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaveService(db)

	_, err := svc.Decide(9999, true, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeavePendingCount(t *testing.T) {
	db := newTestDB(t)
	admin := createUser(t, db, "admin", models.RoleAdmin)
	u := createUser(t, db, "budi", models.RoleEmployee)
	svc := NewLeaveService(db)

	a, err := svc.Submit(u.ID, models.LeaveTypeIzin, "2024-03-01", "2024-03-01", "urusan keluarga")
	require.NoError(t, err)
	_, err = svc.Submit(u.ID, models.LeaveTypeCuti, "2024-04-01", "2024-04-02", "cuti tahunan")
	require.NoError(t, err)

	n, err := svc.PendingCount()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = svc.Decide(a.ID, true, admin.ID)
	require.NoError(t, err)

	n, err = svc.PendingCount()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
