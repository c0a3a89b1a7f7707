package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguspuryanto/geoface-attendance-lite/models"
	"github.com/aguspuryanto/geoface-attendance-lite/services"
)

func TestLeaveSubmitRoundTrip(t *testing.T) {
	db := newTestDB(t)
	u := createEmployee(t, db, "budi")
	h := NewLeaveRequestHandler(services.NewLeaveService(db))
	e := newEcho()

	body := `{"type":"sakit","start_date":"2024-03-01","end_date":"2024-03-02","reason":"demam tinggi"}`
	c, rec := jsonCtx(e, http.MethodPost, "/api/leave", body, u.ID, "employee")
	require.NoError(t, h.Submit(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = jsonCtx(e, http.MethodGet, "/api/leave/"+fmt.Sprint(u.ID), "", u.ID, "employee")
	c.SetParamNames("userId")
	c.SetParamValues(fmt.Sprint(u.ID))
	require.NoError(t, h.ListByUser(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []models.LeaveRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "pending", rows[0].Status)
	assert.Equal(t, "sakit", rows[0].Type)
}

func TestLeaveSubmitRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	u := createEmployee(t, db, "budi")
	h := NewLeaveRequestHandler(services.NewLeaveService(db))
	e := newEcho()

	body := `{"type":"liburan","start_date":"2024-03-01","end_date":"2024-03-02","reason":"jalan-jalan"}`
	c, rec := jsonCtx(e, http.MethodPost, "/api/leave", body, u.ID, "employee")
	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec.Body.Bytes()))
}
