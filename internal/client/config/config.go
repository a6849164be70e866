// Package config loads runtime settings for the farmfinder CLI, layering
// defaults, an optional JSON file, environment variables and command-line
// flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the farmfinder CLI.
//
// Fields:
//   - BaseURL: root of the backend HTTP API, including the version prefix.
//   - DatabaseDSN: sqlite DSN of the local client database.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	BaseURL        string
	DatabaseDSN    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api/v1"
	c.DatabaseDSN = "farmfinder.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
