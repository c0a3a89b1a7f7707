package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

type ShiftHandler struct {
	DB *gorm.DB
}

func NewShiftHandler(db *gorm.DB) *ShiftHandler {
	return &ShiftHandler{DB: db}
}

// GET /api/shifts
func (h *ShiftHandler) List(c echo.Context) error {
	var rows []models.Shift
	if err := h.DB.Order("start_time ASC, id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, rows)
}

type CreateShiftReq struct {
	Name      string `json:"name" validate:"required"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

// POST /api/shifts
func (h *ShiftHandler) Create(c echo.Context) error {
	var req CreateShiftReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED"})
	}

	rec := models.Shift{
		Name:      strings.TrimSpace(req.Name),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusCreated, rec)
}

// DELETE /api/shifts/:id
// Users referencing the shift keep their shift_id; the reference is weak.
func (h *ShiftHandler) Delete(c echo.Context) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	if err := h.DB.Delete(&models.Shift{}, id).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
