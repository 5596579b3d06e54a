package hashing

import (
	"sync"

	"github.com/lgbarn/dama-go/internal/dama"
)

// ThreadSafeDuplicateDetector lets concurrent arena workers share one
// DuplicateDetector.
type ThreadSafeDuplicateDetector struct {
	mu       sync.Mutex
	detector *DuplicateDetector
}

// NewThreadSafeDuplicateDetector creates a shared detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{detector: NewDuplicateDetector(exactMatch, maxCapacity)}
}

// CheckAndAdd is DuplicateDetector.CheckAndAdd under the lock.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(sig)
}

// CheckGame signs a game played from the opening position and checks it.
// Light moves first, so the side to move at the end follows from the
// number of moves.
func (d *ThreadSafeDuplicateDetector) CheckGame(final *dama.Board, moves []dama.Move) bool {
	toMove := dama.Light
	if len(moves)%2 == 1 {
		toMove = dama.Dark
	}
	return d.CheckAndAdd(Sign(final, toMove, moves))
}

// Counts returns the number of unique games stored and duplicates seen.
func (d *ThreadSafeDuplicateDetector) Counts() (unique, duplicates int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.UniqueCount(), d.detector.DuplicateCount()
}

// IsFull reports whether the underlying detector has stopped storing games.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.IsFull()
}

// Reset forgets every game seen so far.
func (d *ThreadSafeDuplicateDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Reset()
}
