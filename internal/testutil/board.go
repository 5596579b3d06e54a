// Package testutil provides shared test utilities for the dama-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/dama-go/internal/dama"
)

// ParseBoard builds a board from an eight-line diagram, row 0 first.
// 'd' is a Dark piece, 'l' a Light piece and '.' an empty square.
// Blank lines and surrounding whitespace are ignored.
func ParseBoard(human dama.Color, diagram string) (*dama.Board, error) {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != dama.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), dama.BoardSize)
	}

	b := dama.NewEmptyBoard(human)
	for row, line := range rows {
		if len(line) != dama.BoardSize {
			return nil, fmt.Errorf("row %d has %d squares, want %d", row, len(line), dama.BoardSize)
		}
		for col := 0; col < dama.BoardSize; col++ {
			switch line[col] {
			case '.':
			case 'd', 'D':
				b.Place(dama.Dark, dama.Sq(row, col))
			case 'l', 'L':
				b.Place(dama.Light, dama.Sq(row, col))
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected %q", row, col, line[col])
			}
		}
	}
	return b, nil
}

// MustParseBoard parses a diagram with ParseBoard.
// It calls t.Fatal if the diagram is malformed.
func MustParseBoard(t testing.TB, human dama.Color, diagram string) *dama.Board {
	t.Helper()
	b, err := ParseBoard(human, diagram)
	if err != nil {
		t.Fatalf("failed to parse test board: %v\n%s", err, diagram)
	}
	return b
}
