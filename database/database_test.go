package database

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aguspuryanto/geoface-attendance-lite/config"
	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedCreatesAdminAndOfficeDefaults(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{
		DefaultOfficeLat:    -6.2000,
		DefaultOfficeLng:    106.8166,
		DefaultOfficeRadius: 100,
	}

	require.NoError(t, Seed(db, cfg))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	var radius models.Setting
	require.NoError(t, db.Where("key = ?", "office_radius").First(&radius).Error)
	assert.Equal(t, "100", radius.Value)

	// idempotent on restart
	require.NoError(t, Seed(db, cfg))
	var n int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "admin").Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestAttendanceUniqueIndexEnforced(t *testing.T) {
	db := openTestDB(t)

	first := models.Attendance{UserID: 1, Date: "2024-02-01", CheckIn: "08:00:00", Status: "present"}
	require.NoError(t, db.Create(&first).Error)

	dup := models.Attendance{UserID: 1, Date: "2024-02-01", CheckIn: "08:05:00", Status: "present"}
	err := db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// other user or other day is fine
	require.NoError(t, db.Create(&models.Attendance{UserID: 2, Date: "2024-02-01", CheckIn: "08:00:00", Status: "present"}).Error)
	require.NoError(t, db.Create(&models.Attendance{UserID: 1, Date: "2024-02-02", CheckIn: "08:00:00", Status: "present"}).Error)
}
