package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aguspuryanto/geoface-attendance-lite/config"
	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

// Connect opens the database and runs migrations. The DB is returned, not
// stored in a package global, so services and tests get it injected.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		// duplicate key violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
	if err := Seed(db, cfg); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Shift{},
		&models.Attendance{},
		&models.LeaveRequest{},
		&models.Setting{},
	)
}

// Seed creates the bootstrap admin account and the office geofence defaults
// when they are missing. Safe to run on every start.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var n int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Username:     "admin",
			PasswordHash: string(hash),
			FullName:     "Administrator",
			Role:         models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("[seed] created default admin account")
	}

	if err := db.Model(&models.Setting{}).Where("key = ?", "office_radius").Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		defaults := []models.Setting{
			{Key: "office_lat", Value: formatFloat(cfg.DefaultOfficeLat)},
			{Key: "office_lng", Value: formatFloat(cfg.DefaultOfficeLng)},
			{Key: "office_radius", Value: formatFloat(cfg.DefaultOfficeRadius)},
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
		log.Printf("[seed] created default office settings")
	}
	return nil
}
