package config

import (
	"fmt"

	"github.com/lgbarn/dama-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of plain text
	JSONFormat bool

	// ShowBoards prints the final position after each text record
	ShowBoards bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}

// Validate checks that the output configuration is valid.
// JSON records always carry the final board, so ShowBoards only applies to
// text output.
func (o *OutputConfig) Validate() error {
	if o.JSONFormat && o.ShowBoards {
		return fmt.Errorf("show boards applies to text output only: %w", errors.ErrInvalidConfig)
	}
	return nil
}
