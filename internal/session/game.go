// Package session tracks one interactive game between a human and the engine:
// whose turn it is, which moves the human may make and when the engine
// replies.
package session

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/dama-go/internal/config"
	"github.com/lgbarn/dama-go/internal/dama"
	"github.com/lgbarn/dama-go/internal/errors"
	"github.com/lgbarn/dama-go/internal/search"
)

// Game is a human-versus-engine game. Its methods are safe for concurrent
// use, so a timer goroutine may drive the engine while the UI reads state.
type Game struct {
	ID    string
	Human dama.Color
	AI    dama.Color

	mu      sync.Mutex
	board   *dama.Board
	turn    dama.Color
	engine  *search.Engine
	maximal bool
	moves   []dama.Move
}

// New starts a game from the opening position. The human's color comes from
// cfg.Game, with rng deciding when it is "random". Light always moves first.
func New(cfg *config.Config, rng *rand.Rand) *Game {
	human := cfg.Game.HumanSide(rng)
	return NewFromBoard(cfg, dama.NewBoard(human), dama.Light)
}

// NewFromBoard starts a game from an arbitrary position with turn to move.
// The human plays b.HumanColor.
func NewFromBoard(cfg *config.Config, b *dama.Board, turn dama.Color) *Game {
	return &Game{
		ID:      uuid.New().String(),
		Human:   b.HumanColor,
		AI:      b.HumanColor.Opponent(),
		board:   b,
		turn:    turn,
		engine:  cfg.Search.NewEngine(),
		maximal: cfg.Search.MaximalCaptures,
	}
}

// Board returns a copy of the current position.
func (g *Game) Board() *dama.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone()
}

// Turn returns the color to move.
func (g *Game) Turn() dama.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

// IsHumanTurn reports whether the human is to move in an unfinished game.
func (g *Game) IsHumanTurn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn == g.Human && !g.board.IsGameOver()
}

// Outcome reports the state of the game.
func (g *Game) Outcome() dama.Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Outcome()
}

// Plies returns the number of moves played so far.
func (g *Game) Plies() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.moves)
}

// Moves returns the moves played so far.
func (g *Game) Moves() []dama.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]dama.Move(nil), g.moves...)
}

// Select returns the moves available to the human piece on sq, for
// highlighting destinations.
func (g *Game) Select(sq dama.Square) ([]dama.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkTurn(g.Human); err != nil {
		return nil, err
	}
	p, ok := g.board.At(sq)
	if !ok {
		return nil, &errors.PreconditionError{Err: errors.ErrEmptySquare, Op: "Select", Square: sq.String()}
	}
	if p.Color != g.Human {
		return nil, &errors.PreconditionError{Err: errors.ErrWrongColor, Op: "Select", Square: sq.String()}
	}
	return g.legalFrom(g.Human, sq), nil
}

// MoveTo resolves a click on from followed by a click on to into a legal
// move. When several moves end on to, the shortest is chosen.
func (g *Game) MoveTo(from, to dama.Square) (dama.Move, error) {
	moves, err := g.Select(from)
	if err != nil {
		return nil, err
	}

	var best dama.Move
	for _, m := range moves {
		if m.End() == to && (best == nil || len(m) < len(best)) {
			best = m
		}
	}
	if best == nil {
		return nil, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: g.Plies() + 1, Color: g.Human.String(), Move: dama.NewMove(from, to).String()}
	}
	return best, nil
}

// ApplyHumanMove plays m for the human and hands the turn to the engine.
func (g *Game) ApplyHumanMove(m dama.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkTurn(g.Human); err != nil {
		return err
	}
	if err := g.board.ApplyLegalMove(g.Human, m, g.maximal); err != nil {
		var me *errors.MoveError
		if errors.As(err, &me) {
			me.Ply = len(g.moves) + 1
		}
		return err
	}
	g.record(m)
	return nil
}

// PlayAITurn lets the engine choose and play its move. If the engine finds
// no move the turn passes back to the human and ErrNoMove is returned.
func (g *Game) PlayAITurn() (dama.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkTurn(g.AI); err != nil {
		return nil, err
	}

	m, ok := g.engine.ChooseMoveFor(g.board, g.AI)
	if !ok {
		g.turn = g.Human
		return nil, errors.ErrNoMove
	}
	g.board.ApplyMove(m)
	g.record(m)
	return m, nil
}

// Title describes the pairing, e.g. "Dama: Human (Light) vs AI (Dark)".
func (g *Game) Title() string {
	return fmt.Sprintf("Dama: Human (%s) vs AI (%s)", g.Human, g.AI)
}

// Status returns a one-line description of the game state.
func (g *Game) Status() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	outcome := g.board.Outcome()
	switch {
	case outcome == dama.Draw:
		return "Game over: draw"
	case outcome.Over():
		winner, _ := outcome.Winner()
		if winner == g.Human {
			return fmt.Sprintf("Game over: %s wins, you win", winner)
		}
		return fmt.Sprintf("Game over: %s wins, the computer wins", winner)
	case g.turn == g.Human:
		return fmt.Sprintf("Your move (%s), ply %d", g.Human, len(g.moves)+1)
	}
	return fmt.Sprintf("Computer thinking (%s), ply %d", g.AI, len(g.moves)+1)
}

func (g *Game) checkTurn(c dama.Color) error {
	if g.board.IsGameOver() {
		return errors.ErrGameOver
	}
	if g.turn != c {
		return fmt.Errorf("%s to move: %w", g.turn, errors.ErrNotYourTurn)
	}
	return nil
}

func (g *Game) legalFrom(c dama.Color, sq dama.Square) []dama.Move {
	moves := g.board.ValidMovesFrom(c, sq)
	if g.maximal {
		moves = dama.MaximalOnly(moves)
	}
	return moves
}

func (g *Game) record(m dama.Move) {
	g.moves = append(g.moves, m)
	g.turn = g.turn.Opponent()
}
