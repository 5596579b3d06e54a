package hashing

import (
	"github.com/lgbarn/dama-go/internal/dama"
)

// GameSignature stores identifying information about a finished game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of moves played
	Plies int
	// Sequence hashes the moves themselves
	Sequence uint64
}

// Sign builds the signature of a game that ended on b with toMove to move
// after playing moves.
func Sign(b *dama.Board, toMove dama.Color, moves []dama.Move) GameSignature {
	return GameSignature{
		Hash:     Hash(b, toMove),
		Plies:    len(moves),
		Sequence: MoveSequenceHash(moves),
	}
}

// DuplicateDetector tracks seen games.
//
// Two games are duplicates when they end in the same position after the same
// number of plies. With exact matching the move sequences must also agree.
type DuplicateDetector struct {
	hashTable      map[uint64][]GameSignature
	exactMatch     bool
	maxCapacity    int
	size           int
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]GameSignature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether sig matches a game already seen, recording it
// otherwise. Once the detector is full new games are checked but not stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, seen := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, seen) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.Plies != b.Plies {
		return false
	}
	return !d.exactMatch || a.Sequence == b.Sequence
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}
