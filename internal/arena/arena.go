// Package arena plays batches of engine-versus-engine games.
package arena

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/dama-go/internal/config"
	"github.com/lgbarn/dama-go/internal/dama"
	"github.com/lgbarn/dama-go/internal/errors"
	"github.com/lgbarn/dama-go/internal/hashing"
	"github.com/lgbarn/dama-go/internal/output"
	"github.com/lgbarn/dama-go/internal/worker"
)

// PlayGame plays one game from the opening position. The first
// cfg.Arena.RandomPlies moves are drawn from rng; after that both sides are
// played by an engine built from cfg.Search. A game still running after
// cfg.Arena.MaxPlies moves is scored as a draw.
func PlayGame(ctx context.Context, cfg *config.Config, index int, rng *rand.Rand) (*output.GameRecord, error) {
	start := time.Now()
	b := dama.NewBoard(dama.Light)
	engine := cfg.Search.NewEngine()
	record := &output.GameRecord{ID: uuid.New().String(), Index: index}

	turn := dama.Light
	outcome := b.Outcome()
	for !outcome.Over() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(record.Moves) >= cfg.Arena.MaxPlies {
			outcome = dama.Draw
			record.PlyLimit = true
			break
		}

		var m dama.Move
		if len(record.Moves) < cfg.Arena.RandomPlies {
			legal := b.ValidMoves(turn)
			if cfg.Search.MaximalCaptures {
				legal = dama.MaximalOnly(legal)
			}
			m = legal[rng.Intn(len(legal))]
		} else {
			r := engine.Search(b, turn)
			record.Nodes += r.Nodes
			if !r.Found() {
				return nil, &errors.MoveError{Err: errors.ErrNoMove, Ply: len(record.Moves) + 1, Color: turn.String()}
			}
			m = r.Move
		}

		b.ApplyMove(m)
		record.Moves = append(record.Moves, m)
		cfg.Logf(config.Verbose, "game %d ply %d: %s %s\n", index+1, len(record.Moves), turn, m)

		turn = turn.Opponent()
		outcome = b.Outcome()
	}

	record.Plies = len(record.Moves)
	record.Finish(b, outcome, time.Since(start))
	return record, nil
}

// Run plays cfg.Arena.Games games on cfg.Arena.Workers goroutines and writes
// each record to w in game order, followed by the summary. When
// cfg.Arena.SuppressDuplicates is set, a game whose final position, side to
// move and length match a lower-numbered game is counted but not written.
//
// The first game error stops the batch and is returned once the games
// already running have finished.
func Run(ctx context.Context, cfg *config.Config, w output.ResultWriter) (*output.Summary, error) {
	start := time.Now()
	process := func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		record, err := PlayGame(ctx, cfg, item.Index, rand.New(rand.NewSource(item.Seed)))
		if err != nil {
			return worker.ProcessResult{Index: item.Index, Error: fmt.Errorf("game %d: %w", item.Index+1, err)}
		}
		record.Seed = item.Seed
		return worker.ProcessResult{Index: item.Index, Record: record}
	}

	g, ctx := errgroup.WithContext(ctx)
	pool := worker.NewPool(process,
		worker.WithWorkers(cfg.Arena.Workers),
		worker.WithBufferSize(cfg.Arena.Workers))
	pool.Start(ctx)
	cfg.Logf(config.Summary, "arena started: %d games, %d workers, depth %d\n",
		cfg.Arena.Games, pool.NumWorkers(), cfg.Search.Depth)

	g.Go(func() error {
		defer pool.Close()
		for i := 0; i < cfg.Arena.Games; i++ {
			item := worker.WorkItem{Index: i, Seed: cfg.Arena.Seed + int64(i)}
			if err := pool.Submit(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})

	summary := &output.Summary{}
	g.Go(func() error {
		return collect(cfg, pool, w, summary, hashing.NewThreadSafeDuplicateDetector(false, 0))
	})

	if err := g.Wait(); err != nil {
		return summary, err
	}

	cfg.Logf(config.Summary, "arena finished in %v\n", time.Since(start).Round(time.Millisecond))
	if err := w.WriteSummary(summary); err != nil {
		return summary, err
	}
	return summary, w.Close()
}

// collect drains the pool's results and handles records in game order, so
// duplicate detection always keeps the lowest-numbered copy. It keeps
// draining after a failure so that the workers can finish.
func collect(cfg *config.Config, pool *worker.Pool, w output.ResultWriter, summary *output.Summary,
	detector *hashing.ThreadSafeDuplicateDetector) error {
	var firstErr error
	pending := make(map[int]*output.GameRecord)
	next := 0

	for res := range pool.Results() {
		if res.Error != nil {
			summary.AddError()
			if firstErr == nil {
				firstErr = res.Error
				pool.Stop()
			}
			continue
		}

		pending[res.Record.Index] = res.Record
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			if cfg.Arena.SuppressDuplicates {
				r.Duplicate = detector.CheckGame(r.Board, r.Moves)
			}
			summary.Add(r)
			cfg.Logf(config.Summary, "game %d: %s in %d plies\n", r.Index+1, r.Result, r.Plies)

			if r.Duplicate || firstErr != nil {
				continue
			}
			if err := w.WriteRecord(r); err != nil {
				firstErr = err
				pool.Stop()
			}
		}
	}
	return firstErr
}
