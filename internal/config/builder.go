package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithMaximalCaptures controls whether capture chains must be completed.
func (b *ConfigBuilder) WithMaximalCaptures(enabled bool) *ConfigBuilder {
	b.cfg.Search.MaximalCaptures = enabled
	return b
}

// WithHumanColor sets the human's side: "light", "dark" or "random".
func (b *ConfigBuilder) WithHumanColor(color string) *ConfigBuilder {
	b.cfg.Game.HumanColor = color
	return b
}

// WithAIDelay sets the pause before the computer replies.
func (b *ConfigBuilder) WithAIDelay(d time.Duration) *ConfigBuilder {
	b.cfg.Game.AIDelay = d
	return b
}

// WithGames sets the number of arena games.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Arena.Games = n
	return b
}

// WithWorkers sets the number of concurrent arena games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Arena.Workers = n
	return b
}

// WithRandomPlies sets the number of random opening plies per arena game.
func (b *ConfigBuilder) WithRandomPlies(n int) *ConfigBuilder {
	b.cfg.Arena.RandomPlies = n
	return b
}

// WithSeed sets the arena seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Arena.Seed = seed
	return b
}

// WithMaxPlies sets the arena ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Arena.MaxPlies = n
	return b
}

// WithDuplicateSuppression enables duplicate game suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Arena.SuppressDuplicates = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithShowBoards prints final boards in text output.
func (b *ConfigBuilder) WithShowBoards(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoards = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
