package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/dama-go/internal/errors"
)

// ArenaConfig holds settings for engine-versus-engine matches.
type ArenaConfig struct {
	// Games is the number of games to play
	Games int

	// Workers is the number of games played concurrently
	Workers int

	// RandomPlies is the number of random opening plies before the engines
	// take over, so that games differ
	RandomPlies int

	// Seed seeds the per-game random sources
	Seed int64

	// SuppressDuplicates drops games that end in the same position, with the
	// same side to move after the same number of plies, as an earlier game.
	// The moves that led there are not compared.
	SuppressDuplicates bool

	// MaxPlies ends a game as a draw when reached
	MaxPlies int
}

// NewArenaConfig creates an ArenaConfig with default values.
func NewArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Games:       10,
		Workers:     runtime.NumCPU(),
		RandomPlies: 4,
		Seed:        1,
		MaxPlies:    200,
	}
}

// Validate checks that the arena configuration is valid.
func (a *ArenaConfig) Validate() error {
	if a.Games < 1 {
		return fmt.Errorf("games must be positive, got %d: %w", a.Games, errors.ErrInvalidConfig)
	}
	if a.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.RandomPlies < 0 {
		return fmt.Errorf("random plies must not be negative, got %d: %w", a.RandomPlies, errors.ErrInvalidConfig)
	}
	if a.MaxPlies < 1 {
		return fmt.Errorf("max plies must be positive, got %d: %w", a.MaxPlies, errors.ErrInvalidConfig)
	}
	if a.RandomPlies >= a.MaxPlies {
		return fmt.Errorf("random plies (%d) >= max plies (%d): %w", a.RandomPlies, a.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
