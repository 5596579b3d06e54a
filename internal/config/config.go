// Package config provides configuration for the dama player and arena.
package config

import (
	"fmt"
	"io"
	"os"
)

// Verbosity levels understood by Logf.
const (
	Silent  = 0 // nothing
	Summary = 1 // one line per game and the final tally
	Verbose = 2 // running commentary, one line per ply
)

// Config holds all program configuration.
type Config struct {
	Search *SearchConfig
	Game   *GameConfig
	Arena  *ArenaConfig
	Output *OutputConfig

	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Game:       NewGameConfig(),
		Arena:      NewArenaConfig(),
		Output:     NewOutputConfig(),
		Verbosity:  Summary,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if err := c.Arena.Validate(); err != nil {
		return fmt.Errorf("arena: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// SetOutput sets the main output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
