package main

import (
	"log"

	"github.com/atelier-dev/atelier/db"
	"github.com/atelier-dev/atelier/internal/auth"
	"github.com/atelier-dev/atelier/internal/config"
	"github.com/atelier-dev/atelier/internal/handlers"
	"github.com/atelier-dev/atelier/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseDSN); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.EnsureSuperuser(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to provision superuser: %v", err)
	}

	if err := handlers.InitUploads(cfg.UploadDir); err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	r := router.NewRouter(cfg.UploadDir)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
