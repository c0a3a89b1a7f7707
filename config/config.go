package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	UploadDir string

	// Geofence defaults seeded on first run; runtime values live in the
	// settings table and are editable by admins.
	DefaultOfficeLat    float64
	DefaultOfficeLng    float64
	DefaultOfficeRadius float64

	// When true, a check-in after the assigned shift's start time is stored
	// as "late" instead of "present".
	LateFromShift bool
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getFloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() *Config {
	_ = godotenv.Load() // .env is optional; real deployments use the environment

	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "attendance"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		JWTSecret: get("JWT_SECRET", "dev-secret"),

		UploadDir: get("UPLOAD_DIR", "uploads"),

		DefaultOfficeLat:    getFloat("OFFICE_LAT", -6.2000),
		DefaultOfficeLng:    getFloat("OFFICE_LNG", 106.8166),
		DefaultOfficeRadius: getFloat("OFFICE_RADIUS", 100),

		LateFromShift: getBool("ATTENDANCE_LATE_FROM_SHIFT", false),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
