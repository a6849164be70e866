package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mhofer/farmfinder/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are given as strings like "15s" and parsed with time.ParseDuration.
type JsonConfig struct {
	BaseURL        string `json:"base_url"`
	DatabaseDSN    string `json:"database_dsn"`
	RequestTimeout string `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is given, nothing
// is loaded. Empty fields in the file leave the current value in place.
// Panics on read, unmarshal or duration-parse errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
