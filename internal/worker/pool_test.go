package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/dama-go/internal/output"
)

// noopProcessFunc returns a process function that echoes the item.
func noopProcessFunc() ProcessFunc {
	return func(_ context.Context, item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Record: &output.GameRecord{Index: item.Index, Seed: item.Seed}}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(ctx context.Context, item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return noopProcessFunc()(ctx, item)
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	ctx := context.Background()
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start(ctx)

	const numItems = 10
	for i := 0; i < numItems; i++ {
		if err := pool.Submit(ctx, WorkItem{Index: i, Seed: int64(i)}); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolResultOrder verifies every index comes back exactly once.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(ctx context.Context, item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return noopProcessFunc()(ctx, item)
	}

	ctx := context.Background()
	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start(ctx)

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(ctx, WorkItem{Index: i, Seed: int64(100 + i)})
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		if seen[result.Index] {
			t.Errorf("duplicate index %d", result.Index)
		}
		seen[result.Index] = true
		if result.Record.Seed != int64(100+result.Index) {
			t.Errorf("index %d carried seed %d", result.Index, result.Record.Seed)
		}
	}

	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processed int32
	block := make(chan struct{})
	slowFunc := func(ctx context.Context, item WorkItem) ProcessResult {
		atomic.AddInt32(&processed, 1)
		<-block
		return noopProcessFunc()(ctx, item)
	}

	ctx := context.Background()
	pool := NewPool(slowFunc, WithWorkers(1), WithBufferSize(10))
	pool.Start(ctx)

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(ctx, WorkItem{Index: i})
	}

	// Wait for the worker to pick up the first item, then stop.
	for atomic.LoadInt32(&processed) == 0 {
		time.Sleep(time.Millisecond)
	}
	pool.Stop()
	close(block)

	go pool.Close()
	collectResults(pool)

	if got := atomic.LoadInt32(&processed); got != 1 {
		t.Errorf("processed = %d; want 1 after Stop", got)
	}
	if !pool.IsStopped() {
		t.Error("IsStopped() = false after Stop")
	}
}

// TestPoolContextCancel verifies queued items are skipped after cancellation.
func TestPoolContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(2), WithBufferSize(10))

	for i := 0; i < 5; i++ {
		pool.Submit(ctx, WorkItem{Index: i})
	}
	cancel()
	pool.Start(ctx)

	go pool.Close()
	if got := collectResults(pool); got != 0 {
		t.Errorf("results = %d; want 0 after cancel", got)
	}
	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed = %d; want 0 after cancel", got)
	}
}

// TestPoolSubmitCancelled verifies Submit gives up when the buffer is full.
func TestPoolSubmitCancelled(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithBufferSize(1))

	ctx, cancel := context.WithCancel(context.Background())
	if err := pool.Submit(ctx, WorkItem{Index: 0}); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	cancel()
	if err := pool.Submit(ctx, WorkItem{Index: 1}); err != context.Canceled {
		t.Errorf("Submit() on full buffer = %v; want context.Canceled", err)
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	ctx := context.Background()
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start(ctx)

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(ctx, WorkItem{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPool tests the functional options.
func TestNewPool(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-1)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
			if cap(pool.workChan) != tt.wantBuffer {
				t.Errorf("work channel capacity = %d; want %d", cap(pool.workChan), tt.wantBuffer)
			}
		})
	}
}
