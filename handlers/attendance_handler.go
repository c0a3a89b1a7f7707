package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aguspuryanto/geoface-attendance-lite/face"
	"github.com/aguspuryanto/geoface-attendance-lite/services"
	"github.com/aguspuryanto/geoface-attendance-lite/storage"
)

type AttendanceHandler struct {
	Ledger   *services.AttendanceService
	Settings *services.SettingsService
	Detector face.Detector
	Photos   *storage.PhotoStore
}

func NewAttendanceHandler(ledger *services.AttendanceService, settings *services.SettingsService, det face.Detector, photos *storage.PhotoStore) *AttendanceHandler {
	return &AttendanceHandler{Ledger: ledger, Settings: settings, Detector: det, Photos: photos}
}

type CheckInReq struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04:05"`
	// Pointers so an absent coordinate is distinguishable from 0,0: a device
	// that failed geolocation must be blocked, not treated as somewhere off
	// the coast of Africa.
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
	Photo string   `json:"photo" validate:"required"` // base64 data URL
}

// POST /api/attendance/check-in
// Pipeline per request: validate -> face gate -> admission gate -> ledger.
// Settings are read once here and used for both the gate decision and the
// ledger write; nothing else interleaves within the request.
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN"})
	}

	var req CheckInReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED"})
	}
	if req.Lat == nil || req.Lng == nil {
		// distinct from OUTSIDE_RADIUS: the device never resolved a position
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "LOCATION_UNAVAILABLE"})
	}

	image, err := storage.DecodeDataURL(req.Photo)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PHOTO"})
	}
	okFace, err := h.Detector.Detect(image)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "FACE_DETECTION_FAILED"})
	}
	if !okFace {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "FACE_NOT_DETECTED"})
	}

	settings, err := h.Settings.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	decision := services.EvaluateAdmission(settings, *req.Lat, *req.Lng)
	if !decision.Admitted {
		return c.JSON(http.StatusForbidden, map[string]any{
			"error":    "OUTSIDE_RADIUS",
			"distance": decision.Distance,
			"radius":   settings.Radius,
		})
	}

	photoURL, err := h.Photos.Save(image)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}

	rec, err := h.Ledger.CheckIn(services.CheckInParams{
		UserID:   uid,
		Date:     req.Date,
		Time:     req.Time,
		Lat:      *req.Lat,
		Lng:      *req.Lng,
		PhotoURL: photoURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateCheckIn) {
			return c.JSON(http.StatusConflict, map[string]any{"error": "DUPLICATE_CHECK_IN"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusCreated, rec)
}

type CheckOutReq struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04:05"`
}

// POST /api/attendance/check-out
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN"})
	}

	var req CheckOutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED"})
	}

	rec, err := h.Ledger.CheckOut(uid, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, services.ErrNoOpenCheckIn) {
			return c.JSON(http.StatusConflict, map[string]any{"error": "NO_OPEN_CHECK_IN"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, rec)
}

// GET /api/attendance/:userId
// Employees read their own history; admins anyone's.
func (h *AttendanceHandler) History(c echo.Context) error {
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

	rows, err := h.Ledger.History(target)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, rows)
}
