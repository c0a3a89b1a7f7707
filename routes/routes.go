package routes

import (
	"log"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/aguspuryanto/geoface-attendance-lite/config"
	"github.com/aguspuryanto/geoface-attendance-lite/face"
	"github.com/aguspuryanto/geoface-attendance-lite/handlers"
	"github.com/aguspuryanto/geoface-attendance-lite/middlewares"
	"github.com/aguspuryanto/geoface-attendance-lite/services"
	"github.com/aguspuryanto/geoface-attendance-lite/storage"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	e.Validator = handlers.NewPayloadValidator()

	// ===== Services =====
	settingsSvc := services.NewSettingsService(db, services.OfficeSettings{
		Lat:    cfg.DefaultOfficeLat,
		Lng:    cfg.DefaultOfficeLng,
		Radius: cfg.DefaultOfficeRadius,
	})
	ledger := services.NewAttendanceService(db, cfg.LateFromShift)
	leaveSvc := services.NewLeaveService(db)
	reportSvc := services.NewReportService(db)

	photos, err := storage.NewPhotoStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("photo store init failed: %v", err)
	}

	// ===== Handlers =====
	auth := handlers.NewAuthHandler(db, cfg.JWTSecret)
	users := handlers.NewUserHandler(db)
	shifts := handlers.NewShiftHandler(db)
	att := handlers.NewAttendanceHandler(ledger, settingsSvc, face.ClientAttested{}, photos)
	settings := handlers.NewSettingsHandler(settingsSvc)
	leave := handlers.NewLeaveRequestHandler(leaveSvc)
	reports := handlers.NewReportHandler(reportSvc)

	// ===== Public =====
	e.GET("/healthz", handlers.Health)
	e.POST("/api/login", auth.Login)
	e.Static("/uploads", cfg.UploadDir)

	// ===== Authenticated =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	api := e.Group("/api", authMW)

	api.GET("/settings", settings.Get)
	api.GET("/shifts", shifts.List)

	api.GET("/attendance/:userId", att.History)
	api.POST("/attendance/check-in", att.CheckIn, middlewares.RequireRole("employee", "admin"))
	api.POST("/attendance/check-out", att.CheckOut, middlewares.RequireRole("employee", "admin"))

	api.POST("/leave", leave.Submit, middlewares.RequireRole("employee", "admin"))
	api.GET("/leave/:userId", leave.ListByUser)

	// ===== Admin =====
	admin := e.Group("/api", authMW, middlewares.RequireRole("admin"))

	admin.GET("/users", users.List)
	admin.POST("/users", users.Create)
	admin.PUT("/users/:id", users.Update)

	admin.POST("/shifts", shifts.Create)
	admin.DELETE("/shifts/:id", shifts.Delete)

	admin.POST("/settings", settings.Update)

	admin.GET("/leave/pending-count", leave.PendingCount)
	admin.POST("/leave/:id/approve", leave.Approve)
	admin.POST("/leave/:id/reject", leave.Reject)

	admin.GET("/reports/summary", reports.Summary)
	admin.GET("/reports/payroll", reports.Payroll)
	admin.GET("/reports/dashboard", reports.Dashboard)
}
