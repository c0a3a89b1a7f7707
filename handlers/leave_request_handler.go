package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aguspuryanto/geoface-attendance-lite/services"
)

type LeaveRequestHandler struct {
	Leave *services.LeaveService
}

func NewLeaveRequestHandler(s *services.LeaveService) *LeaveRequestHandler {
	return &LeaveRequestHandler{Leave: s}
}

type SubmitLeaveReq struct {
	Type      string `json:"type" validate:"required,oneof=cuti sakit izin"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02,gtefield=StartDate"`
	Reason    string `json:"reason" validate:"required"`
}

// POST /api/leave
func (h *LeaveRequestHandler) Submit(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN"})
	}

	var req SubmitLeaveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED"})
	}

	rec, err := h.Leave.Submit(uid, req.Type, req.StartDate, req.EndDate, strings.TrimSpace(req.Reason))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusCreated, rec)
}

// GET /api/leave/:userId
func (h *LeaveRequestHandler) ListByUser(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN"})
	}
	target := uint(atoiOr(c.Param("userId"), 0))
	if target == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	if target != uid && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
	}

	rows, err := h.Leave.ListByUser(target)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /api/leave/:id/approve
func (h *LeaveRequestHandler) Approve(c echo.Context) error {
	return h.decide(c, true)
}

// POST /api/leave/:id/reject
func (h *LeaveRequestHandler) Reject(c echo.Context) error {
	return h.decide(c, false)
}

func (h *LeaveRequestHandler) decide(c echo.Context, approve bool) error {
	uid, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN"})
	}
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}

	rec, err := h.Leave.Decide(uint(id), approve, uid)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, rec)
}

// GET /api/leave/pending-count
func (h *LeaveRequestHandler) PendingCount(c echo.Context) error {
	n, err := h.Leave.PendingCount()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}
