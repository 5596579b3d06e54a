package config

import (
	"fmt"

	"github.com/lgbarn/dama-go/internal/errors"
	"github.com/lgbarn/dama-go/internal/search"
)

// MaxSearchDepth caps the configurable search depth. The tree grows
// exponentially and depths past this are impractical without a time limit.
const MaxSearchDepth = 12

// SearchConfig holds settings for the computer player.
type SearchConfig struct {
	// Depth is the number of plies searched
	Depth int

	// MaximalCaptures forbids stopping a capture chain that can continue
	MaximalCaptures bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth: search.DefaultDepth,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > MaxSearchDepth {
		return fmt.Errorf("depth %d outside 1..%d: %w", s.Depth, MaxSearchDepth, errors.ErrInvalidConfig)
	}
	return nil
}

// EngineOptions converts the configuration into engine options.
func (s *SearchConfig) EngineOptions() []search.Option {
	return []search.Option{
		search.WithDepth(s.Depth),
		search.WithMaximalCaptures(s.MaximalCaptures),
	}
}

// NewEngine creates an engine configured from s.
func (s *SearchConfig) NewEngine() *search.Engine {
	return search.NewEngine(s.EngineOptions()...)
}
