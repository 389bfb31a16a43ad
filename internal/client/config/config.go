// Package config loads runtime settings for the RecipeBox client.
// Precedence is defaults, then an optional JSON file, then flags.
package config

import "time"

// Config holds runtime settings for the RecipeBox client.
//
// Fields:
//   - DatabasePath: location of the local cache database (SQLite file).
//   - LatencyMin/LatencyMax: bounds for the entity store's simulated
//     network delay.
type Config struct {
	DatabasePath string
	LatencyMin   time.Duration
	LatencyMax   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "recipebox.db"
	c.LatencyMin = 200 * time.Millisecond
	c.LatencyMax = 1000 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
