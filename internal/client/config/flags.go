package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the local cache database (default from Config)
//	-lmin int   minimum simulated latency in milliseconds
//	-lmax int   maximum simulated latency in milliseconds
//
// The function filters os.Args to only the flags it owns, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-lmin", "-lmax"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local cache database")
	latencyMin := fs.Int("lmin", int(cfg.LatencyMin.Milliseconds()), "minimum simulated latency (ms)")
	latencyMax := fs.Int("lmax", int(cfg.LatencyMax.Milliseconds()), "maximum simulated latency (ms)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.LatencyMin = time.Duration(*latencyMin) * time.Millisecond
	cfg.LatencyMax = time.Duration(*latencyMax) * time.Millisecond
}
