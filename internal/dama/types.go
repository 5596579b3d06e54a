// Package dama provides the board model of the dama checkers variant:
// pieces, squares, moves, move generation, move application, evaluation
// and terminal-state detection.
package dama

import (
	"fmt"
	"strings"

	"github.com/lgbarn/dama-go/internal/errors"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Color represents the side a piece or player belongs to.
type Color int

const (
	Light Color = iota
	Dark
)

// String returns the string representation of a color.
func (c Color) String() string {
	if c == Dark {
		return "Dark"
	}
	return "Light"
}

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Dark {
		return Light
	}
	return Dark
}

// Forward returns the row step of the color's pieces:
// -1 for Light (toward row 0), +1 for Dark (toward row 7).
func (c Color) Forward() int {
	if c == Dark {
		return 1
	}
	return -1
}

// Maximizing reports whether the search maximizes on behalf of this color.
func (c Color) Maximizing() bool {
	return c == Dark
}

// ColorFor returns the color searched for the given maximizing flag.
func ColorFor(maximizing bool) Color {
	if maximizing {
		return Dark
	}
	return Light
}

// ParseColor parses a color name. Both the light/dark and the
// white/black spellings are accepted, case-insensitively.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "white", "l", "w":
		return Light, nil
	case "dark", "black", "d", "b":
		return Dark, nil
	}
	return Light, fmt.Errorf("%q: %w", s, errors.ErrInvalidColor)
}

// Square is a board coordinate.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// IsDark reports whether pieces may stand on the square.
func (s Square) IsDark() bool {
	return (s.Row+s.Col)%2 == 1
}

// String returns the square as "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Piece is a single man. It has no identity beyond its position and color.
type Piece struct {
	Row   int
	Col   int
	Color Color
}

// Square returns the square the piece stands on.
func (p Piece) Square() Square {
	return Square{Row: p.Row, Col: p.Col}
}

// Move is a start square followed by one or more landing squares.
// A move of length two is a simple step or a single jump; a longer move
// is a capture chain in which every consecutive pair is a single jump.
type Move []Square

// NewMove builds a move from a start square and its landing squares.
func NewMove(start Square, landings ...Square) Move {
	m := make(Move, 0, len(landings)+1)
	m = append(m, start)
	return append(m, landings...)
}

// Start returns the square the moving piece starts on.
func (m Move) Start() Square {
	return m[0]
}

// End returns the square the moving piece finishes on.
func (m Move) End() Square {
	return m[len(m)-1]
}

// Legs returns the number of single steps or jumps in the move.
func (m Move) Legs() int {
	return len(m) - 1
}

// IsCapture reports whether the move jumps over at least one piece.
func (m Move) IsCapture() bool {
	return len(m) >= 2 && abs(m[1].Row-m[0].Row) == 2
}

// Captures returns the squares of the pieces jumped by the move.
func (m Move) Captures() []Square {
	if !m.IsCapture() {
		return nil
	}
	captured := make([]Square, 0, m.Legs())
	for i := 1; i < len(m); i++ {
		captured = append(captured, midpoint(m[i-1], m[i]))
	}
	return captured
}

// Equal reports whether two moves visit the same squares in the same order.
func (m Move) Equal(other Move) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is a strict prefix of m.
func (m Move) HasPrefix(prefix Move) bool {
	if len(prefix) >= len(m) {
		return false
	}
	for i := range prefix {
		if m[i] != prefix[i] {
			return false
		}
	}
	return true
}

// String renders the move for diagnostics, e.g. "(5,0)-(4,1)".
func (m Move) String() string {
	parts := make([]string, len(m))
	for i, sq := range m {
		parts[i] = sq.String()
	}
	return strings.Join(parts, "-")
}

// Outcome is the state of a game with respect to termination.
type Outcome int

const (
	Ongoing Outcome = iota
	LightWins
	DarkWins
	Draw
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case LightWins:
		return "Light wins"
	case DarkWins:
		return "Dark wins"
	case Draw:
		return "Draw"
	}
	return "Ongoing"
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool {
	return o != Ongoing
}

// Winner returns the winning color, if there is one.
func (o Outcome) Winner() (Color, bool) {
	switch o {
	case LightWins:
		return Light, true
	case DarkWins:
		return Dark, true
	}
	return Light, false
}

// WinFor returns the outcome in which c wins.
func WinFor(c Color) Outcome {
	if c == Dark {
		return DarkWins
	}
	return LightWins
}

func midpoint(a, b Square) Square {
	return Square{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
