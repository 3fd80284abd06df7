// Package hashing provides position hashing, duplicate detection and a
// transposition cache for move-tree walks.
package hashing

import "github.com/lgbarn/chessmodel-go/internal/chess"

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]PositionSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity int
	// size is the number of stored signatures
	size int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// Signature computes the signature of a position.
func Signature(board chess.Board, turn chess.Colour, rights chess.CastlingRights) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(board, turn, rights),
		WeakHash: WeakHash(board),
	}
}

// CheckAndAdd checks if a position is a duplicate and records it.
// Returns true if the position was seen before. Once the detector is full,
// new positions are checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig PositionSignature) bool {
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if existingSig == sig {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.size = 0
}
