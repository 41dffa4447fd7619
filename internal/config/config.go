package config

import "os"

type Config struct {
	Port          string
	DatabaseDSN   string
	JWTSecret     string
	UploadDir     string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=atelier password=atelier dbname=atelier port=5432 sslmode=disable"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
