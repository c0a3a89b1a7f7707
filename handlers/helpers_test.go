package handlers

import (
	"encoding/base64"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aguspuryanto/geoface-attendance-lite/database"
	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewPayloadValidator()
	return e
}

// jsonCtx builds an authenticated request context the way the JWT middleware
// would leave it.
func jsonCtx(e *echo.Echo, method, path, body string, userID uint, role string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user_id", userID)
		c.Set("role", role)
	}
	return c, rec
}

func createEmployee(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	u := models.User{
		Username:     username,
		PasswordHash: "x",
		FullName:     username,
		Role:         models.RoleEmployee,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func testPhotoDataURL() string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("fake-jpeg-bytes"))
}
