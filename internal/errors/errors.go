// Package errors provides sentinel errors and error types for dama-go.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not in the legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptySquare indicates an operation that needs a piece found none.
	ErrEmptySquare = errors.New("empty square")

	// ErrWrongColor indicates a piece that belongs to the other side.
	ErrWrongColor = errors.New("piece belongs to the opponent")

	// ErrOffBoard indicates coordinates outside the 8x8 grid.
	ErrOffBoard = errors.New("square off board")

	// ErrNotYourTurn indicates a move attempted by the side not on move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrGameOver indicates a move attempted after the game has finished.
	ErrGameOver = errors.New("game over")

	// ErrNoMove indicates the side to move has no legal move.
	ErrNoMove = errors.New("no legal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidColor indicates an unknown color name.
	ErrInvalidColor = errors.New("invalid color")
)

// MoveError wraps errors with move context: the ply on which it happened,
// the side that tried to move and the move itself. It supports unwrapping
// via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // 1-based ply number (0 if not applicable)
	Color string // Side that attempted the move (if known)
	Move  string // Debug rendering of the move (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Color != "" {
		parts = append(parts, e.Color)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}

	if len(parts) == 0 {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// PreconditionError reports a programming error: a board operation called
// with arguments its caller should have validated. Board mutators panic
// with a *PreconditionError rather than corrupting state.
type PreconditionError struct {
	Err    error  // The underlying error
	Op     string // Operation name, e.g. "MovePiece"
	Square string // Offending square (if applicable)
}

// Error returns a formatted error message.
func (e *PreconditionError) Error() string {
	msg := e.Op
	if msg == "" {
		msg = "precondition"
	}
	if e.Square != "" {
		msg += " " + e.Square
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg + ": precondition violated"
}

// Unwrap returns the underlying error.
func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
