package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// GET /api/users
func (h *UserHandler) List(c echo.Context) error {
	var rows []models.User
	if err := h.DB.Order("full_name ASC, id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, rows)
}

type CreateUserReq struct {
	Username   string  `json:"username" validate:"required,min=3,max=60"`
	Password   string  `json:"password" validate:"required,min=6"`
	FullName   string  `json:"full_name" validate:"required"`
	Role       string  `json:"role" validate:"required,oneof=admin employee"`
	Department string  `json:"department"`
	BaseSalary float64 `json:"base_salary" validate:"gte=0"`
	ShiftID    *uint   `json:"shift_id"`
}

// POST /api/users
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}

	rec := models.User{
		Username:     strings.TrimSpace(strings.ToLower(req.Username)),
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         req.Role,
		Department:   strings.TrimSpace(req.Department),
		BaseSalary:   req.BaseSalary,
		ShiftID:      req.ShiftID,
	}
	if err := h.DB.Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusConflict, map[string]any{"error": "USERNAME_EXISTS"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusCreated, rec)
}

type UpdateUserReq struct {
	Password   string   `json:"password" validate:"omitempty,min=6"` // optional reset
	FullName   *string  `json:"full_name"`
	Role       *string  `json:"role" validate:"omitempty,oneof=admin employee"`
	Department *string  `json:"department"`
	BaseSalary *float64 `json:"base_salary" validate:"omitempty,gte=0"`
	ShiftID    *uint    `json:"shift_id"`
}

// PUT /api/users/:id
func (h *UserHandler) Update(c echo.Context) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}

	var req UpdateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED"})
	}

	var rec models.User
	if err := h.DB.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Department != nil {
		updates["department"] = strings.TrimSpace(*req.Department)
	}
	if req.BaseSalary != nil {
		updates["base_salary"] = *req.BaseSalary
	}
	if req.ShiftID != nil {
		updates["shift_id"] = *req.ShiftID
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
		}
		updates["password_hash"] = string(hash)
	}
	if len(updates) == 0 {
		return c.JSON(http.StatusOK, rec)
	}

	if err := h.DB.Model(&rec).Updates(updates).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}
	return c.JSON(http.StatusOK, rec)
}
