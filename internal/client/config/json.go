package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/recipebox/internal/flagx"
	"github.com/dmitrijs2005/recipebox/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// can be given either as strings like "250ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	LatencyMin   timex.Duration `json:"latency_min"`
	LatencyMax   timex.Duration `json:"latency_max"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. When no file is given the function is a no-op. Read or
// unmarshal errors panic; the caller treats a broken config file as fatal.
// Only fields present in the file override the defaults.
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LatencyMin.Duration != 0 {
		cfg.LatencyMin = jc.LatencyMin.Duration
	}
	if jc.LatencyMax.Duration != 0 {
		cfg.LatencyMax = jc.LatencyMax.Duration
	}
}
