package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aguspuryanto/geoface-attendance-lite/config"
	"github.com/aguspuryanto/geoface-attendance-lite/database"
	"github.com/aguspuryanto/geoface-attendance-lite/routes"
)

func main() {
	cfg := config.Load()

	// early fail when the database is not up
	db := database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, db, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
