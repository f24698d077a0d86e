// Package config holds runtime settings for the resipass CLI and the logic
// to assemble them from defaults, a JSON file, the environment and flags.
package config

import "time"

// Config holds runtime settings for the resipass CLI.
//
// Fields:
//   - BaseURL: root of the residential-access HTTP API, without trailing slash.
//   - RequestTimeout: transport ceiling applied to every API call.
//   - SessionFile: path of the stored credential; empty means the per-user
//     default under the OS config directory.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionFile    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5295"
	c.RequestTimeout = 30 * time.Second
	c.SessionFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
