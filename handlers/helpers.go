package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// string -> int with a default when parsing fails
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// user_id as set by the auth middleware
func currentUserID(c echo.Context) (uint, bool) {
	switch v := c.Get("user_id").(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	default:
		return 0, false
	}
}

func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == "admin"
}
