package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aguspuryanto/geoface-attendance-lite/services"
)

type ReportHandler struct {
	Reports *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Reports: s}
}

// GET /api/reports/summary
func (h *ReportHandler) Summary(c echo.Context) error {
	rows, err := h.Reports.Summary()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/reports/payroll
func (h *ReportHandler) Payroll(c echo.Context) error {
	rows, err := h.Reports.Payroll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/reports/dashboard?date=YYYY-MM-DD (defaults to today)
func (h *ReportHandler) Dashboard(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	stats, err := h.Reports.Dashboard(date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, stats)
}
