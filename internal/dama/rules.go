package dama

// Evaluate returns the material balance: +1 for every Dark piece and -1 for
// every Light piece. Dark is the maximizing side.
func (b *Board) Evaluate() int {
	score := 0
	for row := range b.cells {
		for col := range b.cells[row] {
			cl := b.cells[row][col]
			if !cl.occupied {
				continue
			}
			if cl.piece.Color == Dark {
				score++
			} else {
				score--
			}
		}
	}
	return score
}

// Outcome reports whether the game has ended and how.
//
// A side with no legal move loses; a side with no pieces has no legal move.
// When neither side can move the game is drawn.
func (b *Board) Outcome() Outcome {
	lightStuck := !b.HasMoves(Light)
	darkStuck := !b.HasMoves(Dark)

	switch {
	case lightStuck && darkStuck:
		return Draw
	case lightStuck:
		return WinFor(Dark)
	case darkStuck:
		return WinFor(Light)
	}
	return Ongoing
}

// IsGameOver reports whether the position is terminal.
func (b *Board) IsGameOver() bool {
	return b.Outcome().Over()
}
