package config

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/lgbarn/dama-go/internal/dama"
	"github.com/lgbarn/dama-go/internal/errors"
)

// RandomColor lets the program pick the human's side.
const RandomColor = "random"

// GameConfig holds settings for an interactive game.
type GameConfig struct {
	// HumanColor is "light", "dark" or "random"
	HumanColor string

	// AIDelay is the pause before the computer replies to a human move
	AIDelay time.Duration
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		HumanColor: "light",
		AIDelay:    time.Second,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if !strings.EqualFold(strings.TrimSpace(g.HumanColor), RandomColor) {
		if _, err := dama.ParseColor(g.HumanColor); err != nil {
			return fmt.Errorf("human color: %w: %w", err, errors.ErrInvalidConfig)
		}
	}
	if g.AIDelay < 0 {
		return fmt.Errorf("negative AI delay %v: %w", g.AIDelay, errors.ErrInvalidConfig)
	}
	return nil
}

// HumanSide resolves HumanColor to a color, drawing from rng when it is
// "random". Call Validate first; unknown names resolve to Light.
func (g *GameConfig) HumanSide(rng *rand.Rand) dama.Color {
	if strings.EqualFold(strings.TrimSpace(g.HumanColor), RandomColor) {
		return dama.Color(rng.Intn(2))
	}
	c, err := dama.ParseColor(g.HumanColor)
	if err != nil {
		return dama.Light
	}
	return c
}
