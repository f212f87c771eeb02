// Package config provides environment-based configuration loading
// for the service.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Base holds configuration common to every service.
type Base struct {
	Port         int
	LogLevel     string
	DatabasePath string
}

// API holds configuration for the indicator API service.
type API struct {
	Base
	WorldBankBaseURL string
	UpstreamTimeout  time.Duration
}

// LoadBase reads the common configuration from environment variables.
func LoadBase(defaultPort int) Base {
	return Base{
		Port:         GetEnvInt("PORT", defaultPort),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		DatabasePath: GetEnv("DATABASE_PATH", "worldbank.db"),
	}
}

// LoadAPI returns the indicator API service configuration.
func LoadAPI() API {
	return API{
		Base:             LoadBase(8080),
		WorldBankBaseURL: GetEnv("WORLDBANK_BASE_URL", "http://api.worldbank.org"),
		UpstreamTimeout:  GetEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
	}
}

// SlogLevel parses the configured log level string into an slog.Level.
func (b Base) SlogLevel() slog.Level {
	switch b.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Addr returns the listen address as ":PORT".
func (b Base) Addr() string {
	return fmt.Sprintf(":%d", b.Port)
}

// ---------------------------------------------------------------------------
// Env helpers
// ---------------------------------------------------------------------------

// GetEnv returns the value of the environment variable or fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable or fallback.
func GetEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// GetEnvDuration returns the duration value of the environment variable or fallback.
// The env value is parsed via time.ParseDuration (e.g. "30s", "5m").
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
