package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ThreadSafeRepetitionTable wraps RepetitionTable with a mutex for use by
// several goroutines, such as perft workers sharing one table.
type ThreadSafeRepetitionTable struct {
	table *RepetitionTable
	mu    sync.RWMutex
}

// NewThreadSafeRepetitionTable creates an empty table. maxCapacity of 0 means unlimited.
func NewThreadSafeRepetitionTable(maxCapacity int) *ThreadSafeRepetitionTable {
	return &ThreadSafeRepetitionTable{
		table: NewRepetitionTable(maxCapacity),
	}
}

// Add records one occurrence of pos and returns its new count.
func (t *ThreadSafeRepetitionTable) Add(pos chess.Position) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Add(pos)
}

// Count returns how many times pos has been seen.
func (t *ThreadSafeRepetitionTable) Count(pos chess.Position) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Count(pos)
}

// UniqueCount returns the number of distinct positions recorded.
func (t *ThreadSafeRepetitionTable) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.UniqueCount()
}

// TotalCount returns the number of occurrences recorded.
func (t *ThreadSafeRepetitionTable) TotalCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.TotalCount()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeRepetitionTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
