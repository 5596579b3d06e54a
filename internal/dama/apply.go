package dama

import (
	"fmt"

	"github.com/lgbarn/dama-go/internal/errors"
)

// MovePiece relocates the piece on from to to. When the displacement is two
// rows the piece on the midpoint is captured and removed.
//
// No legality check is made: callers pass squares taken from a move returned
// by GenerateMoves. An empty from square or an off-board square is a
// programming error and panics with a *errors.PreconditionError.
func (b *Board) MovePiece(from, to Square) {
	mustBeOnBoard("MovePiece", from)
	mustBeOnBoard("MovePiece", to)

	c := b.cells[from.Row][from.Col]
	if !c.occupied {
		panic(&errors.PreconditionError{Err: errors.ErrEmptySquare, Op: "MovePiece", Square: from.String()})
	}

	b.cells[from.Row][from.Col] = cell{}
	c.piece.Row, c.piece.Col = to.Row, to.Col
	b.cells[to.Row][to.Col] = c

	if abs(to.Row-from.Row) == 2 {
		mid := midpoint(from, to)
		b.cells[mid.Row][mid.Col] = cell{}
	}
}

// ApplyMove plays every leg of m in order.
func (b *Board) ApplyMove(m Move) {
	for i := 1; i < len(m); i++ {
		b.MovePiece(m[i-1], m[i])
	}
}

// ApplyLegalMove plays m for color after checking it against the legal move
// set. With maximalOnly set, capture chains that could continue are rejected.
func (b *Board) ApplyLegalMove(color Color, m Move, maximalOnly bool) error {
	if len(m) < 2 {
		return &errors.MoveError{Err: fmt.Errorf("move needs at least two squares: %w", errors.ErrIllegalMove), Color: color.String(), Move: m.String()}
	}
	for _, sq := range m {
		if !sq.OnBoard() {
			return &errors.MoveError{Err: errors.Wrapf(errors.ErrOffBoard, "square %s", sq), Color: color.String(), Move: m.String()}
		}
	}

	legal := b.ValidMoves(color)
	if maximalOnly {
		legal = MaximalOnly(legal)
	}
	if !ContainsMove(legal, m) {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Color: color.String(), Move: m.String()}
	}

	b.ApplyMove(m)
	return nil
}
