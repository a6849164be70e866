package config

import (
	"os"
	"time"
)

// parseEnv overlays Config with environment variables. A .env file, when
// present, is loaded into the environment by main before this runs.
//
//	FARMFINDER_API_URL  base URL of the backend API
//	FARMFINDER_DB       sqlite DSN of the client database
//	FARMFINDER_TIMEOUT  request timeout, e.g. "15s"
//
// Unset or malformed values leave the current value in place.
func parseEnv(cfg *Config) {
	if v := os.Getenv("FARMFINDER_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FARMFINDER_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("FARMFINDER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
