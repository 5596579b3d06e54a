// Package hashing provides position hashing and duplicate detection for
// dama games.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/dama-go/internal/dama"
)

var (
	sideKey        uint64
	pieceSquareKey [2][dama.BoardSize][dama.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for c := range pieceSquareKey {
		for row := range pieceSquareKey[c] {
			for col := range pieceSquareKey[c][row] {
				pieceSquareKey[c][row][col] = r.Uint64()
			}
		}
	}
}

// PieceSquareKey returns the Zobrist key of a piece of color c on sq.
func PieceSquareKey(c dama.Color, sq dama.Square) uint64 {
	return pieceSquareKey[c][sq.Row][sq.Col]
}

// Hash returns the Zobrist hash of b with toMove on move.
func Hash(b *dama.Board, toMove dama.Color) uint64 {
	var h uint64
	if toMove == dama.Dark {
		h ^= sideKey
	}
	for _, c := range [...]dama.Color{dama.Light, dama.Dark} {
		for _, p := range b.Pieces(c) {
			h ^= PieceSquareKey(c, p.Square())
		}
	}
	return h
}

// MoveSequenceHash hashes the squares visited by a sequence of moves, so
// that games reaching the same position by different routes differ.
func MoveSequenceHash(moves []dama.Move) uint64 {
	const multiplier = 31
	var h uint64
	for _, m := range moves {
		for _, sq := range m {
			h = h*multiplier + uint64(sq.Row*dama.BoardSize+sq.Col+1)
		}
		// separator so that [a b][c] and [a][b c] differ
		h = h*multiplier + uint64(dama.BoardSize*dama.BoardSize+1)
	}
	return h
}
