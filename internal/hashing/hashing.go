// Package hashing provides Zobrist position hashing and repetition counting.
package hashing

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"golang.org/x/exp/maps"
)

// entry is one distinct position stored under a hash.
type entry struct {
	key   chess.Position // Clocks zeroed
	count int
}

// RepetitionTable counts how often each position has been seen. Positions
// sharing a hash are told apart by comparing the boards, so a collision
// never merges two different positions.
type RepetitionTable struct {
	table map[uint64][]entry
	total int
	// maxCapacity limits distinct positions (0 = unlimited)
	maxCapacity int
}

// NewRepetitionTable creates an empty table. maxCapacity of 0 means unlimited.
func NewRepetitionTable(maxCapacity int) *RepetitionTable {
	return &RepetitionTable{
		table:       make(map[uint64][]entry),
		maxCapacity: maxCapacity,
	}
}

// repetitionKey drops the parts of a position that do not count toward
// repetition.
func repetitionKey(pos chess.Position) chess.Position {
	pos.HalfmoveClock = 0
	pos.FullmoveNumber = 0
	return pos
}

// Add records one occurrence of pos and returns how many times it has now
// been seen. A full table still counts positions it already holds but
// ignores new ones, returning 0.
func (t *RepetitionTable) Add(pos chess.Position) int {
	h := Hash(pos)
	key := repetitionKey(pos)

	entries := t.table[h]
	for i := range entries {
		if entries[i].key == key {
			entries[i].count++
			t.total++
			return entries[i].count
		}
	}

	if t.IsFull() {
		return 0
	}
	t.table[h] = append(entries, entry{key: key, count: 1})
	t.total++
	return 1
}

// Remove forgets one occurrence of pos, for undo.
func (t *RepetitionTable) Remove(pos chess.Position) {
	h := Hash(pos)
	key := repetitionKey(pos)

	entries := t.table[h]
	for i := range entries {
		if entries[i].key != key {
			continue
		}
		t.total--
		entries[i].count--
		if entries[i].count == 0 {
			entries = append(entries[:i], entries[i+1:]...)
		}
		if len(entries) == 0 {
			delete(t.table, h)
		} else {
			t.table[h] = entries
		}
		return
	}
}

// Count returns how many times pos has been seen.
func (t *RepetitionTable) Count(pos chess.Position) int {
	key := repetitionKey(pos)
	for _, e := range t.table[Hash(pos)] {
		if e.key == key {
			return e.count
		}
	}
	return 0
}

// MaxCount returns the highest repetition count of any position.
func (t *RepetitionTable) MaxCount() int {
	highest := 0
	for _, entries := range t.table {
		for _, e := range entries {
			if e.count > highest {
				highest = e.count
			}
		}
	}
	return highest
}

// UniqueCount returns the number of distinct positions recorded.
func (t *RepetitionTable) UniqueCount() int {
	count := 0
	for _, entries := range t.table {
		count += len(entries)
	}
	return count
}

// TotalCount returns the number of occurrences recorded.
func (t *RepetitionTable) TotalCount() int {
	return t.total
}

// Hashes returns the distinct hashes in the table in ascending order.
func (t *RepetitionTable) Hashes() []uint64 {
	keys := maps.Keys(t.table)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// IsFull returns true if the table has reached its capacity limit.
func (t *RepetitionTable) IsFull() bool {
	return t.maxCapacity > 0 && t.UniqueCount() >= t.maxCapacity
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.table = make(map[uint64][]entry)
	t.total = 0
}
