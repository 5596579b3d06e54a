// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/lgbarn/dama-go/internal/config"
)

// Engine flags
var (
	searchDepth = flag.Int("depth", 4, "Search depth in plies (1-12)")
	maximal     = flag.Bool("maximal", false, "Only allow capture chains of maximal length")
)

// Game flags
var (
	humanColor = flag.String("human", "light", "Human side: light, dark or random")
	aiDelay    = flag.Duration("delay", time.Second, "Pause before the computer replies")
	seed       = flag.Int64("seed", 0, "Seed for random side selection (0 uses the clock)")
)

// Logging flags
var (
	logFile = flag.String("l", "", "Write diagnostics to file")
	verbose = flag.Bool("v", false, "Log every move")
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
)

// Misc flags
var (
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flag values into cfg.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyGameFlags(cfg)
	applyLogFlags(cfg)
}

func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *searchDepth
	cfg.Search.MaximalCaptures = *maximal
}

func applyGameFlags(cfg *config.Config) {
	cfg.Game.HumanColor = *humanColor
	cfg.Game.AIDelay = *aiDelay
}

func applyLogFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}

// seedValue returns the -seed flag, or the current time when it is unset.
func seedValue() int64 {
	if *seed != 0 {
		return *seed
	}
	return time.Now().UnixNano()
}
