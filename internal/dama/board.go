package dama

import (
	"strings"

	"github.com/lgbarn/dama-go/internal/errors"
)

// cell is one slot of the grid; a zero cell is empty.
type cell struct {
	piece    Piece
	occupied bool
}

// Board is one dama position.
//
// The grid is held by value, so copying a Board (or calling Clone) yields a
// fully independent position. An occupied cell at (r,c) always holds a Piece
// whose Row and Col are r and c.
type Board struct {
	cells [BoardSize][BoardSize]cell

	// HumanColor is the side controlled by the human player. It decides
	// which color starts near which edge and which color the engine plays.
	HumanColor Color
}

// NewBoard creates a board set up for a new game.
//
// The human's opponent is placed on rows 0-2 and the human on rows 5-7,
// on the squares where (row+col) is odd.
func NewBoard(human Color) *Board {
	b := NewEmptyBoard(human)
	b.setupPieces()
	return b
}

// NewEmptyBoard creates a board with no pieces.
func NewEmptyBoard(human Color) *Board {
	return &Board{HumanColor: human}
}

func (b *Board) setupPieces() {
	top, bottom := b.HumanColor.Opponent(), b.HumanColor
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := Square{Row: row, Col: col}
			if !sq.IsDark() {
				continue
			}
			switch {
			case row < 3:
				b.Place(top, sq)
			case row >= BoardSize-3:
				b.Place(bottom, sq)
			}
		}
	}
}

// At returns the piece on sq, if any. Off-board squares are empty.
func (b *Board) At(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		return Piece{}, false
	}
	c := b.cells[sq.Row][sq.Col]
	return c.piece, c.occupied
}

// IsEmpty reports whether sq is on the board and holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	if !sq.OnBoard() {
		return false
	}
	return !b.cells[sq.Row][sq.Col].occupied
}

// Place puts a piece of the given color on sq, replacing any piece there.
func (b *Board) Place(c Color, sq Square) {
	mustBeOnBoard("Place", sq)
	b.cells[sq.Row][sq.Col] = cell{
		piece:    Piece{Row: sq.Row, Col: sq.Col, Color: c},
		occupied: true,
	}
}

// Remove clears sq.
func (b *Board) Remove(sq Square) {
	mustBeOnBoard("Remove", sq)
	b.cells[sq.Row][sq.Col] = cell{}
}

// Count returns the number of pieces of color c.
func (b *Board) Count(c Color) int {
	n := 0
	for row := range b.cells {
		for col := range b.cells[row] {
			if cl := b.cells[row][col]; cl.occupied && cl.piece.Color == c {
				n++
			}
		}
	}
	return n
}

// Total returns the number of pieces on the board.
func (b *Board) Total() int {
	return b.Count(Light) + b.Count(Dark)
}

// Pieces returns the pieces of color c in row-major order.
func (b *Board) Pieces(c Color) []Piece {
	var pieces []Piece
	for row := range b.cells {
		for col := range b.cells[row] {
			if cl := b.cells[row][col]; cl.occupied && cl.piece.Color == c {
				pieces = append(pieces, cl.piece)
			}
		}
	}
	return pieces
}

// Clone returns a deep, independent copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// String renders the board as eight lines of 'd' (Dark), 'l' (Light)
// and '.' (empty), row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p, ok := b.At(Square{Row: row, Col: col})
			switch {
			case !ok:
				sb.WriteByte('.')
			case p.Color == Dark:
				sb.WriteByte('d')
			default:
				sb.WriteByte('l')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func mustBeOnBoard(op string, sq Square) {
	if !sq.OnBoard() {
		panic(&errors.PreconditionError{Err: errors.ErrOffBoard, Op: op, Square: sq.String()})
	}
}
