package analytics

import (
	"os"
	"strconv"
)

// Config holds connection settings for the real analytics backend.
type Config struct {
	Enabled   bool
	Endpoint  string
	TimeoutMs int
}

// DefaultConfig returns backend settings with the real backend disabled, so
// a fresh install runs entirely on the static fallback table.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		Endpoint:  "http://localhost:4000",
		TimeoutMs: 10000,
	}
}

// LoadConfig reads backend configuration from environment variables.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TASKMATE_ANALYTICS_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TASKMATE_ANALYTICS_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TASKMATE_ANALYTICS_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
