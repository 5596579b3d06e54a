package dama

// GenerateMoves returns the legal moves of color.
//
// If start is non-nil only the piece on that square is considered. Capture
// moves are always generated: every single jump is emitted as a two-square
// move, followed by every continuation found by replaying the jump on a
// scratch board, so both partial and maximal chains appear. Simple steps are
// generated only outside a capture chain and only when no piece of color can
// capture anywhere on the board.
//
// Moves are ordered by the row-major position of their starting piece,
// captures before steps.
func (b *Board) GenerateMoves(color Color, start *Square, inCaptureChain bool) []Move {
	var moves []Move
	b.eachPiece(color, start, func(from Square) {
		moves = append(moves, b.jumpsFrom(from, color)...)
	})

	if inCaptureChain || len(moves) > 0 || b.HasCapture(color) {
		return moves
	}

	b.eachPiece(color, start, func(from Square) {
		moves = append(moves, b.stepsFrom(from, color)...)
	})
	return moves
}

// ValidMoves returns every legal move of color.
func (b *Board) ValidMoves(color Color) []Move {
	return b.GenerateMoves(color, nil, false)
}

// ValidMovesFrom returns the legal moves of the piece of color on from.
func (b *Board) ValidMovesFrom(color Color, from Square) []Move {
	return b.GenerateMoves(color, &from, false)
}

// HasMoves reports whether color has at least one legal move.
func (b *Board) HasMoves(color Color) bool {
	if b.HasCapture(color) {
		return true
	}
	found := false
	b.eachPiece(color, nil, func(from Square) {
		if !found && len(b.stepsFrom(from, color)) > 0 {
			found = true
		}
	})
	return found
}

// HasCapture reports whether any piece of color can make a jump.
func (b *Board) HasCapture(color Color) bool {
	found := false
	b.eachPiece(color, nil, func(from Square) {
		if found {
			return
		}
		for _, dx := range [...]int{-2, 2} {
			if b.canJump(from, jumpLanding(from, color, dx), color) {
				found = true
				return
			}
		}
	})
	return found
}

// eachPiece calls fn for every square holding a piece of color, in
// row-major order, or only for start when it is non-nil.
func (b *Board) eachPiece(color Color, start *Square, fn func(Square)) {
	if start != nil {
		if p, ok := b.At(*start); ok && p.Color == color {
			fn(*start)
		}
		return
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if cl := b.cells[row][col]; cl.occupied && cl.piece.Color == color {
				fn(Square{Row: row, Col: col})
			}
		}
	}
}

// jumpsFrom returns the capture moves of the piece on from, including
// every chain that extends a first jump.
func (b *Board) jumpsFrom(from Square, color Color) []Move {
	var moves []Move
	for _, dx := range [...]int{-2, 2} {
		landing := jumpLanding(from, color, dx)
		if !b.canJump(from, landing, color) {
			continue
		}
		moves = append(moves, NewMove(from, landing))

		next := *b
		next.MovePiece(from, landing)
		for _, cont := range next.GenerateMoves(color, &landing, true) {
			moves = append(moves, NewMove(from, cont...))
		}
	}
	return moves
}

// stepsFrom returns the simple forward steps of the piece on from.
func (b *Board) stepsFrom(from Square, color Color) []Move {
	var moves []Move
	for _, dx := range [...]int{-1, 1} {
		to := Square{Row: from.Row + color.Forward(), Col: from.Col + dx}
		if b.IsEmpty(to) {
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

func jumpLanding(from Square, color Color, dx int) Square {
	return Square{Row: from.Row + 2*color.Forward(), Col: from.Col + dx}
}

// canJump reports whether a piece of color on from may jump to landing:
// landing is on the board and empty and the midpoint holds an opponent.
func (b *Board) canJump(from, landing Square, color Color) bool {
	if !b.IsEmpty(landing) {
		return false
	}
	p, ok := b.At(midpoint(from, landing))
	return ok && p.Color == color.Opponent()
}

// MaximalOnly filters moves down to those that are not a strict prefix of
// another move in the set, so a capture chain must be followed to its end.
func MaximalOnly(moves []Move) []Move {
	result := make([]Move, 0, len(moves))
	for i, m := range moves {
		extended := false
		for j, other := range moves {
			if i != j && other.HasPrefix(m) {
				extended = true
				break
			}
		}
		if !extended {
			result = append(result, m)
		}
	}
	return result
}

// ContainsMove reports whether m is one of moves.
func ContainsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate.Equal(m) {
			return true
		}
	}
	return false
}
