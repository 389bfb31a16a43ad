package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"database_path": "/tmp/json.db",
		"latency_min": "50ms",
		"latency_max": "100ms"
	}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "/tmp/json.db", cfg.DatabasePath)
	assert.Equal(t, 50*time.Millisecond, cfg.LatencyMin)
	assert.Equal(t, 100*time.Millisecond, cfg.LatencyMax)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"database_path": "/tmp/only.db"}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "/tmp/only.db", cfg.DatabasePath)
	assert.Equal(t, 200*time.Millisecond, cfg.LatencyMin)
	assert.Equal(t, 1000*time.Millisecond, cfg.LatencyMax)
}

func TestParseJson_NoFlag_NoOp(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "recipebox.db", cfg.DatabasePath)
}

func TestParseJson_BrokenFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{broken`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-c", path}

	var cfg Config
	cfg.LoadDefaults()

	assert.Panics(t, func() { parseJson(&cfg) })
}
