// Package config loads and validates environment variables at startup.
// Fail-fast: required variables missing at boot abort the process.
package config

import (
	"fmt"
	"os"
)

// Config holds all runtime configuration for the WorkNow backend.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	RedisURL    string // optional; rate limiting is disabled when empty
	Domain      string // cookie domain, empty for host-only cookies
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	return &Config{
		Port:        port,
		DatabaseURL: dbURL,
		JWTSecret:   secret,
		RedisURL:    os.Getenv("REDIS_URL"),
		Domain:      os.Getenv("DOMAIN"),
	}, nil
}
