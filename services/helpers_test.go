package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
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

func createUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()
	u := models.User{
		Username:     username,
		PasswordHash: "x",
		FullName:     username,
		Role:         role,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}
