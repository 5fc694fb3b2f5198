package engine

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf positions reachable in exactly depth plies.
// Depth 0 counts the position itself.
func Perft(pos chess.Position, depth int) uint64 {
	return perft(pos, depth, nil)
}

func perft(pos chess.Position, depth int, leaves *hashing.ThreadSafeRepetitionTable) uint64 {
	if depth <= 0 {
		if leaves != nil {
			leaves.Add(pos)
		}
		return 1
	}

	var nodes uint64
	for _, m := range AllLegalMoves(pos) {
		next, ok := PerformMove(pos, m)
		if !ok {
			continue
		}
		nodes += perft(next, depth-1, leaves)
	}
	return nodes
}

// MoveCount is the number of leaves below one root move.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// DivideResult is a perft split by root move.
type DivideResult struct {
	Depth           int
	Moves           []MoveCount // Sorted by move text
	Nodes           uint64
	UniquePositions int // Distinct leaf positions, move clocks ignored
}

// Divide runs perft below each root move on a worker pool. Leaf positions
// from all workers are collected in one shared table to count transpositions.
func Divide(pos chess.Position, depth, workers int) DivideResult {
	result := DivideResult{Depth: depth}
	if depth < 1 {
		result.Nodes = 1
		result.UniquePositions = 1
		return result
	}

	var items []worker.WorkItem
	for _, m := range AllLegalMoves(pos) {
		items = append(items, worker.WorkItem{Position: pos, Move: m, Depth: depth - 1})
	}

	leaves := hashing.NewThreadSafeRepetitionTable(0)
	results := worker.Run(items, func(item worker.WorkItem) worker.ProcessResult {
		r := worker.ProcessResult{Index: item.Index, Move: item.Move}
		next, ok := PerformMove(item.Position, item.Move)
		if ok {
			r.Nodes = perft(next, item.Depth, leaves)
		}
		return r
	}, worker.WithWorkers(workers))

	for _, r := range results {
		result.Moves = append(result.Moves, MoveCount{Move: r.Move, Nodes: r.Nodes})
		result.Nodes += r.Nodes
	}
	sort.Slice(result.Moves, func(i, j int) bool {
		return result.Moves[i].Move.String() < result.Moves[j].Move.String()
	})
	result.UniquePositions = leaves.UniqueCount()
	return result
}
