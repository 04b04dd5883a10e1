package api

import (
	"os"
	"strconv"
)

// Config holds all configuration for the API client.
type Config struct {
	BaseURL   string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config with sensible defaults for local use.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:5000/api",
		TimeoutMs: 15000,
		LogCalls:  false,
	}
}

// LoadConfig reads API configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TEAMBOARD_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TEAMBOARD_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TEAMBOARD_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
