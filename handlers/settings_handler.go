package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aguspuryanto/geoface-attendance-lite/services"
)

type SettingsHandler struct {
	Settings *services.SettingsService
}

func NewSettingsHandler(s *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{Settings: s}
}

// GET /api/settings
func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.Settings.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, s)
}

type UpdateSettingsReq struct {
	OfficeLat    *float64 `json:"office_lat" validate:"required"`
	OfficeLng    *float64 `json:"office_lng" validate:"required"`
	OfficeRadius *float64 `json:"office_radius" validate:"required,gt=0"`
}

// POST /api/settings
func (h *SettingsHandler) Update(c echo.Context) error {
	var req UpdateSettingsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED"})
	}

	if err := h.Settings.Update(*req.OfficeLat, *req.OfficeLng, *req.OfficeRadius); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
