package output

import (
	"time"

	"github.com/lgbarn/dama-go/internal/dama"
)

// GameRecord describes one finished arena game.
type GameRecord struct {
	ID      string       `json:"id"`
	Index   int          `json:"index"`
	Seed    int64        `json:"seed"`
	Outcome dama.Outcome `json:"-"`
	Result  string       `json:"result"`
	Plies   int          `json:"plies"`

	// PlyLimit is set when the game was stopped by the ply limit and scored
	// as a draw.
	PlyLimit  bool `json:"plyLimit,omitempty"`
	Duplicate bool `json:"duplicate,omitempty"`

	LightPieces int    `json:"lightPieces"`
	DarkPieces  int    `json:"darkPieces"`
	Score       int    `json:"score"`
	Nodes       int64  `json:"nodes"`
	FinalBoard  string `json:"finalBoard"`

	Duration time.Duration `json:"-"`
	Millis   int64         `json:"durationMs"`

	Board *dama.Board `json:"-"`
	Moves []dama.Move `json:"-"`
}

// Finish fills the fields derived from the final position.
func (r *GameRecord) Finish(b *dama.Board, outcome dama.Outcome, elapsed time.Duration) {
	r.Board = b
	r.Outcome = outcome
	r.Result = outcome.String()
	r.LightPieces = b.Count(dama.Light)
	r.DarkPieces = b.Count(dama.Dark)
	r.Score = b.Evaluate()
	r.FinalBoard = b.String()
	r.Duration = elapsed
	r.Millis = elapsed.Milliseconds()
}

// Summary aggregates the results of a batch of games.
type Summary struct {
	Games      int     `json:"games"`
	LightWins  int     `json:"lightWins"`
	DarkWins   int     `json:"darkWins"`
	Draws      int     `json:"draws"`
	PlyLimit   int     `json:"plyLimit"`
	Duplicates int     `json:"duplicates"`
	Errors     int     `json:"errors"`
	TotalPlies int     `json:"totalPlies"`
	AvgPlies   float64 `json:"avgPlies"`
	Nodes      int64   `json:"nodes"`
}

// Add counts r in the summary. Duplicate games are counted as duplicates
// only.
func (s *Summary) Add(r *GameRecord) {
	if r.Duplicate {
		s.Duplicates++
		return
	}

	s.Games++
	switch r.Outcome {
	case dama.LightWins:
		s.LightWins++
	case dama.DarkWins:
		s.DarkWins++
	default:
		s.Draws++
	}
	if r.PlyLimit {
		s.PlyLimit++
	}
	s.TotalPlies += r.Plies
	s.Nodes += r.Nodes
	s.AvgPlies = float64(s.TotalPlies) / float64(s.Games)
}

// AddError counts a game that failed to complete.
func (s *Summary) AddError() {
	s.Errors++
}
