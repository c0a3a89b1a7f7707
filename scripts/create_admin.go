//go:build ignore

// Bootstrap an admin account:
//
//	go run scripts/create_admin.go -username admin -password secret -name "Administrator"
package main

import (
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/aguspuryanto/geoface-attendance-lite/config"
	"github.com/aguspuryanto/geoface-attendance-lite/database"
	"github.com/aguspuryanto/geoface-attendance-lite/models"
)

func main() {
	username := flag.String("username", "admin", "login username")
	password := flag.String("password", "", "login password (required)")
	name := flag.String("name", "Administrator", "display name")
	flag.Parse()

	if *password == "" {
		log.Fatal("missing -password")
	}

	cfg := config.Load()
	db := database.Connect(cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}

	rec := models.User{
		Username:     *username,
		PasswordHash: string(hash),
		FullName:     *name,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&rec).Error; err != nil {
		log.Fatalf("create admin failed: %v", err)
	}
	log.Printf("admin %q created (id=%d)", rec.Username, rec.ID)
}
