package search

import (
	"testing"

	"github.com/lgbarn/dama-go/internal/dama"
	"github.com/lgbarn/dama-go/internal/testutil"
)

// chainBoard gives Dark a single jump from (1,2) that can continue to (5,6).
const chainBoard = `
	........
	..d.....
	...l....
	........
	.....l..
	........
	........
	l.......`

func TestChooseMove_PrefersLongerCapture(t *testing.T) {
	b := testutil.MustParseBoard(t, dama.Light, chainBoard)

	m, ok := ChooseMove(b, 1)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m, dama.NewMove(dama.Sq(1, 2), dama.Sq(3, 4), dama.Sq(5, 6)))
}

func TestChooseMove_LeavesBoardUntouched(t *testing.T) {
	b := dama.NewBoard(dama.Light)
	before := b.String()

	_, ok := ChooseMove(b, 3)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, b.String(), before)
}

func TestChooseMove_FirstBestWins(t *testing.T) {
	b := dama.NewBoard(dama.Light)

	m, ok := ChooseMove(b, 1)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m, dama.NewMove(dama.Sq(2, 1), dama.Sq(3, 0)))
}

func TestAlphaBeta_NoMove(t *testing.T) {
	tests := []struct {
		name       string
		diagram    string
		depth      int
		maximizing bool
		wantScore  int
	}{
		{
			name:       "depth zero",
			diagram:    chainBoard,
			depth:      0,
			maximizing: true,
			wantScore:  -2,
		},
		{
			name: "game already won",
			diagram: `
				........
				........
				........
				........
				...l....
				........
				........
				........`,
			depth:      4,
			maximizing: true,
			wantScore:  -1,
		},
		{
			name: "side to move blocked",
			diagram: `
				........
				........
				........
				........
				........
				........
				........
				......d.`,
			depth:      3,
			maximizing: true,
			wantScore:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustParseBoard(t, dama.Light, tt.diagram)
			m, score, ok := AlphaBeta(b, tt.depth, -Infinity, Infinity, tt.maximizing)
			testutil.AssertFalse(t, ok)
			testutil.AssertNil(t, m)
			testutil.AssertEqual(t, score, tt.wantScore)
		})
	}
}

func TestAlphaBeta_MatchesMinimax(t *testing.T) {
	boards := []*dama.Board{
		dama.NewBoard(dama.Light),
		testutil.MustParseBoard(t, dama.Light, chainBoard),
		testutil.MustParseBoard(t, dama.Light, `
			.d.d.d..
			d...d...
			.d...d..
			..l.....
			...d.l..
			l...l...
			.l.l.l..
			l.......`),
	}

	for i, b := range boards {
		for depth := 1; depth <= 4; depth++ {
			for _, maximizing := range []bool{true, false} {
				_, got, _ := AlphaBeta(b, depth, -Infinity, Infinity, maximizing)
				want := minimax(b, depth, maximizing)
				if got != want {
					t.Errorf("board %d depth %d maximizing %v: AlphaBeta = %d; minimax = %d", i, depth, maximizing, got, want)
				}
			}
		}
	}
}

// minimax is an unpruned reference search.
func minimax(b *dama.Board, depth int, maximizing bool) int {
	if depth == 0 || b.IsGameOver() {
		return b.Evaluate()
	}
	moves := b.ValidMoves(dama.ColorFor(maximizing))
	if len(moves) == 0 {
		return b.Evaluate()
	}
	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for _, m := range moves {
		next := b.Clone()
		next.ApplyMove(m)
		score := minimax(next, depth-1, !maximizing)
		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
		}
	}
	return best
}

func TestEngine_Options(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want Options
	}{
		{"defaults", nil, Options{Depth: DefaultDepth}},
		{"depth", []Option{WithDepth(6)}, Options{Depth: 6}},
		{"invalid depth ignored", []Option{WithDepth(0)}, Options{Depth: DefaultDepth}},
		{"maximal", []Option{WithMaximalCaptures(true)}, Options{Depth: DefaultDepth, MaximalCaptures: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, NewEngine(tt.opts...).Options(), tt.want)
		})
	}
}

func TestEngine_MaximalCaptures(t *testing.T) {
	b := testutil.MustParseBoard(t, dama.Light, chainBoard)
	full := dama.NewMove(dama.Sq(1, 2), dama.Sq(3, 4), dama.Sq(5, 6))

	open := NewEngine(WithDepth(1)).Search(b, dama.Dark)
	strict := NewEngine(WithDepth(1), WithMaximalCaptures(true)).Search(b, dama.Dark)

	testutil.AssertEqual(t, open.Move, full)
	testutil.AssertEqual(t, strict.Move, full)
	testutil.AssertEqual(t, open.Nodes, int64(3), "root plus partial and full chain")
	testutil.AssertEqual(t, strict.Nodes, int64(2), "root plus full chain only")
	testutil.AssertEqual(t, strict.Score, 0)
	testutil.AssertEqual(t, strict.Depth, 1)
}

func TestEngine_ChooseMoveFor(t *testing.T) {
	b := testutil.MustParseBoard(t, dama.Dark, `
		........
		........
		........
		....d...
		........
		..d.....
		.l......
		........`)

	e := NewEngine(WithDepth(2))

	m, ok := e.ChooseMoveFor(b, dama.Light)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m, dama.NewMove(dama.Sq(6, 1), dama.Sq(4, 3), dama.Sq(2, 5)))

	// The human plays Dark here, so the engine side is Light.
	m2, ok := e.ChooseMove(b)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m2, m)
}

func TestEngine_SearchTerminal(t *testing.T) {
	b := testutil.MustParseBoard(t, dama.Light, `
		........
		........
		........
		........
		...l....
		........
		........
		........`)

	r := NewEngine().Search(b, dama.Dark)
	testutil.AssertFalse(t, r.Found())
	testutil.AssertNil(t, r.Move)
	testutil.AssertEqual(t, r.Nodes, int64(1))
}
