package arena

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/dama-go/internal/config"
	"github.com/lgbarn/dama-go/internal/dama"
	"github.com/lgbarn/dama-go/internal/hashing"
	"github.com/lgbarn/dama-go/internal/output"
	"github.com/lgbarn/dama-go/internal/testutil"
	"github.com/lgbarn/dama-go/internal/worker"
)

func arenaConfig() *config.ConfigBuilder {
	return config.NewConfigBuilder().
		WithDepth(1).
		WithGames(4).
		WithWorkers(2).
		WithRandomPlies(2).
		WithMaxPlies(60).
		WithSeed(1).
		WithVerbosity(config.Silent)
}

// replay checks that every recorded move was legal when it was played and
// returns the final position.
func replay(t *testing.T, r *output.GameRecord) *dama.Board {
	t.Helper()
	b := dama.NewBoard(dama.Light)
	turn := dama.Light
	for i, m := range r.Moves {
		if err := b.ApplyLegalMove(turn, m, false); err != nil {
			t.Fatalf("ply %d: %v", i+1, err)
		}
		turn = turn.Opponent()
	}
	return b
}

func TestPlayGame(t *testing.T) {
	cfg := arenaConfig().Build()

	r, err := PlayGame(context.Background(), cfg, 3, rand.New(rand.NewSource(5)))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, r.Index, 3)
	testutil.AssertEqual(t, r.Plies, len(r.Moves))
	testutil.AssertTrue(t, r.Outcome.Over())
	testutil.AssertEqual(t, r.Result, r.Outcome.String())
	testutil.AssertTrue(t, r.Nodes > 0, "engine searched")
	testutil.AssertTrue(t, r.ID != "")

	final := replay(t, r)
	testutil.AssertEqual(t, final.String(), r.FinalBoard)
	testutil.AssertEqual(t, r.LightPieces, final.Count(dama.Light))
	testutil.AssertEqual(t, r.DarkPieces, final.Count(dama.Dark))
	if !r.PlyLimit {
		testutil.AssertEqual(t, final.Outcome(), r.Outcome)
	}
}

func TestPlayGame_Deterministic(t *testing.T) {
	cfg := arenaConfig().WithRandomPlies(6).Build()

	a, err := PlayGame(context.Background(), cfg, 0, rand.New(rand.NewSource(11)))
	testutil.AssertNoError(t, err)
	b, err := PlayGame(context.Background(), cfg, 0, rand.New(rand.NewSource(11)))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, a.Moves, b.Moves)
	testutil.AssertEqual(t, a.FinalBoard, b.FinalBoard)
	if a.ID == b.ID {
		t.Error("games share an ID")
	}
}

func TestPlayGame_PlyLimit(t *testing.T) {
	cfg := arenaConfig().WithRandomPlies(2).WithMaxPlies(4).Build()

	r, err := PlayGame(context.Background(), cfg, 0, rand.New(rand.NewSource(1)))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, r.PlyLimit)
	testutil.AssertEqual(t, r.Plies, 4)
	testutil.AssertEqual(t, r.Outcome, dama.Draw)
	replay(t, r)
}

func TestPlayGame_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PlayGame(ctx, arenaConfig().Build(), 0, rand.New(rand.NewSource(1)))
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestRun_TextInOrder(t *testing.T) {
	var out bytes.Buffer
	cfg := arenaConfig().WithGames(5).WithWorkers(3).WithOutput(&out).Build()

	summary, err := Run(context.Background(), cfg, output.NewResultWriter(&out, cfg))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, summary.Games, 5)
	testutil.AssertEqual(t, summary.LightWins+summary.DarkWins+summary.Draws, 5)
	testutil.AssertEqual(t, summary.Errors, 0)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 6, "five games and a summary")
	for i := 0; i < 5; i++ {
		prefix := fmt.Sprintf("Game %d:", i+1)
		testutil.AssertTrue(t, strings.HasPrefix(lines[i], prefix), "line %d = %q", i, lines[i])
	}
	testutil.AssertContains(t, lines[5], "5 games:")
}

func TestRun_SuppressDuplicates(t *testing.T) {
	var out bytes.Buffer
	// Without random plies every game is the same engine line.
	cfg := arenaConfig().
		WithGames(6).
		WithRandomPlies(0).
		WithDuplicateSuppression(true).
		WithJSONOutput(true).
		Build()

	summary, err := Run(context.Background(), cfg, output.NewResultWriter(&out, cfg))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary.Games, 1)
	testutil.AssertEqual(t, summary.Duplicates, 5)
	testutil.AssertEqual(t, strings.Count(out.String(), `"id":`), 1)
	testutil.AssertContains(t, out.String(), `"duplicates": 5`)
}

func TestRun_SuppressDuplicatesKeepsFirstGame(t *testing.T) {
	for run := 0; run < 5; run++ {
		var out bytes.Buffer
		cfg := arenaConfig().
			WithGames(6).
			WithWorkers(6).
			WithRandomPlies(0).
			WithDuplicateSuppression(true).
			Build()

		summary, err := Run(context.Background(), cfg, output.NewResultWriter(&out, cfg))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, summary.Duplicates, 5)

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		testutil.AssertEqual(t, len(lines), 2, "one game and a summary")
		testutil.AssertTrue(t, strings.HasPrefix(lines[0], "Game 1:"), "run %d wrote %q", run, lines[0])
	}
}

func TestCollect_DuplicatesResolvedInGameOrder(t *testing.T) {
	final := dama.NewBoard(dama.Light)
	const games = 4

	// Higher indices finish first.
	process := func(_ context.Context, item worker.WorkItem) worker.ProcessResult {
		time.Sleep(time.Duration(games-item.Index) * 5 * time.Millisecond)
		r := &output.GameRecord{Index: item.Index}
		r.Finish(final, dama.Draw, 0)
		return worker.ProcessResult{Index: item.Index, Record: r}
	}
	pool := worker.NewPool(process, worker.WithWorkers(games), worker.WithBufferSize(games))
	pool.Start(context.Background())
	for i := 0; i < games; i++ {
		testutil.AssertNoError(t, pool.Submit(context.Background(), worker.WorkItem{Index: i}))
	}
	go pool.Close()

	cfg := arenaConfig().WithDuplicateSuppression(true).Build()
	rw := &recordingWriter{}
	summary := &output.Summary{}
	detector := hashing.NewThreadSafeDuplicateDetector(false, 0)

	testutil.AssertNoError(t, collect(cfg, pool, rw, summary, detector))
	testutil.AssertEqual(t, rw.indices, []int{0})
	testutil.AssertEqual(t, summary.Duplicates, games-1)
}

// recordingWriter remembers the indices of the records written to it.
type recordingWriter struct {
	indices []int
}

func (w *recordingWriter) WriteRecord(r *output.GameRecord) error {
	w.indices = append(w.indices, r.Index)
	return nil
}

func (w *recordingWriter) WriteSummary(*output.Summary) error { return nil }
func (w *recordingWriter) Flush() error                      { return nil }
func (w *recordingWriter) Close() error                      { return nil }

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	cfg := arenaConfig().WithGames(20).Build()
	_, err := Run(ctx, cfg, output.NewResultWriter(&out, cfg))
	testutil.AssertErrorIs(t, err, context.Canceled)
	testutil.AssertNotContains(t, out.String(), "games:")
}

func TestRun_Logging(t *testing.T) {
	var out, log bytes.Buffer
	cfg := arenaConfig().WithGames(2).WithWorkers(1).WithLogFile(&log).WithVerbosity(config.Summary).Build()

	_, err := Run(context.Background(), cfg, output.NewResultWriter(&out, cfg))
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, log.String(), "arena started: 2 games, 1 workers, depth 1")
	testutil.AssertContains(t, log.String(), "game 2:")
	testutil.AssertContains(t, log.String(), "arena finished")
}
