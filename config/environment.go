package config

import (
	"log"
	"os"
)

type Environment struct {
	Port          string
	JWTSecret     string
	AllowedOrigin string
	DatabaseURL   string
	IsProduction  bool
}

var Env Environment

// LoadEnv reads the process environment into Env. The JWT secret falls back
// to a development default only outside production; a production deployment
// without JWT_SECRET refuses to start.
func LoadEnv() {
	isProd := os.Getenv("APP_ENV") == "production"

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if isProd {
			log.Fatal("JWT_SECRET must be set in production")
		}
		secret = "abc123"
		log.Println("Warning: JWT_SECRET not set, using development default")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	origin := os.Getenv("ALLOWED_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	Env = Environment{
		Port:          port,
		JWTSecret:     secret,
		AllowedOrigin: origin,
		DatabaseURL:   os.Getenv("DB_URL"),
		IsProduction:  isProd,
	}
}
