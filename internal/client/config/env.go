package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the process environment. A .env file
// in the working directory is loaded first if present; variables already set
// in the environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("RESIPASS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("RESIPASS_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("RESIPASS_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
}
