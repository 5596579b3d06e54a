// Package search picks moves for the computer player with a depth-limited
// minimax search and alpha-beta pruning over board copies.
package search

import (
	"github.com/lgbarn/dama-go/internal/dama"
)

// Infinity bounds the search window. Scores are material counts, so every
// real evaluation lies strictly inside (-Infinity, Infinity).
const Infinity = 1 << 30

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 4

// AlphaBeta searches b to the given depth for the side selected by
// maximizing (Dark when true, Light otherwise) and returns the best move,
// its score and whether a move was found.
//
// At depth zero, on a finished game, or when the side to move has no moves,
// no move is returned and the score is the static evaluation. Among equally
// scored moves the first one generated wins.
func AlphaBeta(b *dama.Board, depth, alpha, beta int, maximizing bool) (dama.Move, int, bool) {
	var s searcher
	return s.alphaBeta(b, depth, alpha, beta, maximizing)
}

// ChooseMove returns the engine's move for the side opposite b.HumanColor,
// searching with a full window.
func ChooseMove(b *dama.Board, depth int) (dama.Move, bool) {
	m, _, ok := AlphaBeta(b, depth, -Infinity, Infinity, b.HumanColor.Opponent().Maximizing())
	return m, ok
}

// Result describes a completed search.
type Result struct {
	Move  dama.Move // nil when no move was found
	Score int
	Nodes int64
	Depth int
}

// Found reports whether the search produced a move.
func (r Result) Found() bool {
	return len(r.Move) > 0
}

// Options configures an Engine.
type Options struct {
	Depth int

	// MaximalCaptures restricts the engine to capture chains that cannot
	// be extended further.
	MaximalCaptures bool
}

// Option configures an Engine.
type Option func(*Options)

// WithDepth sets the search depth. Values below one are ignored.
func WithDepth(depth int) Option {
	return func(o *Options) {
		if depth >= 1 {
			o.Depth = depth
		}
	}
}

// WithMaximalCaptures enables or disables the maximal capture restriction.
func WithMaximalCaptures(enabled bool) Option {
	return func(o *Options) {
		o.MaximalCaptures = enabled
	}
}

// Engine is a configured move chooser. It is not safe for concurrent use;
// give each goroutine its own Engine.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with DefaultDepth and any options applied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{opts: Options{Depth: DefaultDepth}}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

// Options returns the engine's effective configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// ChooseMove picks a move for the side opposite b.HumanColor.
func (e *Engine) ChooseMove(b *dama.Board) (dama.Move, bool) {
	return e.ChooseMoveFor(b, b.HumanColor.Opponent())
}

// ChooseMoveFor picks a move for color.
func (e *Engine) ChooseMoveFor(b *dama.Board, color dama.Color) (dama.Move, bool) {
	r := e.Search(b, color)
	return r.Move, r.Found()
}

// Search runs a full-window search for color and reports the chosen move
// together with its score and the number of positions visited.
func (e *Engine) Search(b *dama.Board, color dama.Color) Result {
	s := searcher{maximal: e.opts.MaximalCaptures}
	m, score, ok := s.alphaBeta(b, e.opts.Depth, -Infinity, Infinity, color.Maximizing())
	if !ok {
		m = nil
	}
	return Result{Move: m, Score: score, Nodes: s.nodes, Depth: e.opts.Depth}
}

type searcher struct {
	maximal bool
	nodes   int64
}

func (s *searcher) moves(b *dama.Board, color dama.Color) []dama.Move {
	moves := b.ValidMoves(color)
	if s.maximal {
		moves = dama.MaximalOnly(moves)
	}
	return moves
}

func (s *searcher) alphaBeta(b *dama.Board, depth, alpha, beta int, maximizing bool) (dama.Move, int, bool) {
	s.nodes++
	if depth <= 0 || b.IsGameOver() {
		return nil, b.Evaluate(), false
	}

	moves := s.moves(b, dama.ColorFor(maximizing))
	if len(moves) == 0 {
		return nil, b.Evaluate(), false
	}

	var best dama.Move
	if maximizing {
		bestScore := -Infinity
		for _, m := range moves {
			next := *b
			next.ApplyMove(m)
			_, score, _ := s.alphaBeta(&next, depth-1, alpha, beta, false)
			if score > bestScore || best == nil {
				best, bestScore = m, score
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if beta <= alpha {
				break
			}
		}
		return best, bestScore, true
	}

	bestScore := Infinity
	for _, m := range moves {
		next := *b
		next.ApplyMove(m)
		_, score, _ := s.alphaBeta(&next, depth-1, alpha, beta, true)
		if score < bestScore || best == nil {
			best, bestScore = m, score
		}
		if bestScore < beta {
			beta = bestScore
		}
		if beta <= alpha {
			break
		}
	}
	return best, bestScore, true
}
