// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port           string
	DBPath         string
	JWTSecret      string
	JWTTTL         time.Duration
	OpenCageAPIKey string
	DefaultRegion  string
}

// Load reads configuration from the environment, after a best-effort .env
// load, and performs minimal validation. No credential has a default: the
// JWT secret is required, and without OPENCAGE_API_KEY every resolution
// simply carries no coordinates.
func Load() (Config, error) {
	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:           fallback(os.Getenv("PORT"), "8080"),
		DBPath:         fallback(os.Getenv("DB_PATH"), "./data/phonetrace.db"),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		OpenCageAPIKey: strings.TrimSpace(os.Getenv("OPENCAGE_API_KEY")),
		DefaultRegion:  fallback(os.Getenv("DEFAULT_REGION"), "US"),
	}

	minutes := fallback(os.Getenv("JWT_TTL_MINUTES"), "1440")
	if ttlMinutes, err := strconv.Atoi(minutes); err == nil && ttlMinutes > 0 {
		cfg.JWTTTL = time.Duration(ttlMinutes) * time.Minute
	} else {
		cfg.JWTTTL = 24 * time.Hour
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
