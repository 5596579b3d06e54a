// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/dama-go/internal/config"
)

// Engine flags
var (
	searchDepth = flag.Int("depth", 4, "Search depth in plies (1-12)")
	maximal     = flag.Bool("maximal", false, "Only allow capture chains of maximal length")
)

// Match flags
var (
	games       = flag.Int("n", 10, "Number of games to play")
	workers     = flag.Int("workers", runtime.NumCPU(), "Number of games played at once")
	seed        = flag.Int64("seed", 1, "Seed of the first game; game i uses seed+i")
	randomPlies = flag.Int("random", 4, "Random opening plies before the engines take over")
	maxPlies    = flag.Int("maxplies", 200, "Score a game as a draw after this many plies")
	suppressDup = flag.Bool("D", false, "Suppress duplicate games")
)

// Output flags
var (
	outputFile = flag.String("o", "", "Write results to file")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	showBoards = flag.Bool("boards", false, "Print the final position of each game")
)

// Logging flags
var (
	logFile = flag.String("l", "", "Write diagnostics to file")
	verbose = flag.Bool("v", false, "Log every ply")
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
	applyArenaFlags(cfg)
	applyOutputFlags(cfg)
	applyLogFlags(cfg)
}

func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *searchDepth
	cfg.Search.MaximalCaptures = *maximal
}

func applyArenaFlags(cfg *config.Config) {
	cfg.Arena.Games = *games
	cfg.Arena.Workers = *workers
	cfg.Arena.Seed = *seed
	cfg.Arena.RandomPlies = *randomPlies
	cfg.Arena.MaxPlies = *maxPlies
	cfg.Arena.SuppressDuplicates = *suppressDup
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoards = *showBoards
}

func applyLogFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}
