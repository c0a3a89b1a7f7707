package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthHandler(db *gorm.DB, secret string) *AuthHandler {
	return &AuthHandler{DB: db, JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub uint, role, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /api/login
// Unknown user and wrong password both answer INVALID_CREDENTIALS, so the
// response does not enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	username := strings.TrimSpace(strings.ToLower(req.Username))

	var user models.User
	if err := h.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	tok, err := h.signJWT(user.ID, user.Role, user.FullName, 12*time.Hour)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORAGE_ERROR"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token": tok,
		"user": map[string]any{
			"id":        user.ID,
			"username":  user.Username,
			"full_name": user.FullName,
			"role":      user.Role,
		},
	})
}
