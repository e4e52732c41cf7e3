// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the server.
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	Timezone      *time.Location
	LookupTimeout time.Duration
	ExportYearMin int
	ExportYearMax int
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:          strings.TrimSpace(os.Getenv("PORT")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		LookupTimeout: parseMillis(strings.TrimSpace(os.Getenv("LOCATION_LOOKUP_TIMEOUT_MS"))),
		ExportYearMin: parseYear(os.Getenv("EXPORT_YEAR_MIN"), 2000),
		ExportYearMax: parseYear(os.Getenv("EXPORT_YEAR_MAX"), 2100),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "attendance.db"
	}
	if cfg.LookupTimeout == 0 {
		cfg.LookupTimeout = 2 * time.Second
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}

	tz := strings.TrimSpace(os.Getenv("APP_TIMEZONE"))
	if tz == "" {
		cfg.Timezone = time.Local
	} else {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return cfg, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
		}
		cfg.Timezone = loc
	}

	if cfg.ExportYearMin > cfg.ExportYearMax {
		return cfg, fmt.Errorf("EXPORT_YEAR_MIN exceeds EXPORT_YEAR_MAX")
	}

	return cfg, nil
}

func parseMillis(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func parseYear(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	y, err := strconv.Atoi(raw)
	if err != nil || y <= 0 {
		return fallback
	}
	return y
}
