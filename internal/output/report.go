package output

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// Report is everything known about one game at the end of a run.
type Report struct {
	GameID   string
	Start    chess.Position
	Boards   []chess.Position // Positions after each ply
	Moves    []chess.Move
	Final    chess.Position
	Status   game.Status
	Result   string
	Analysis *processing.GameAnalysis

	// LegalMoves of the side to move, sorted by text.
	LegalMoves []chess.Move

	// Square and SquareMoves hold a single-piece query, if one was made.
	Square      *chess.Square
	SquareMoves []chess.Move

	Perft  *engine.DivideResult
	Divide bool // Show the per-move split of Perft

	// Error is the reason the move line stopped early, if it did.
	Error string
}

// NewReport collects a report from g.
func NewReport(g *game.Game) *Report {
	boards := g.Boards()
	r := &Report{
		GameID:     g.ID().String(),
		Start:      boards[0],
		Boards:     boards[1:],
		Moves:      g.Moves(),
		Final:      g.Current(),
		Status:     g.Status(),
		Result:     g.Status().Result(g.NextPlayer()),
		Analysis:   processing.AnalyzeGame(g),
		LegalMoves: sortedMoves(g.AllLegalMoves()),
	}
	return r
}

// WithSquare adds the legal moves of the piece on sq.
func (r *Report) WithSquare(sq chess.Square) *Report {
	r.Square = &sq
	r.SquareMoves = sortedMoves(engine.LegalMoves(r.Final, sq))
	return r
}

// WithPerft adds a perft count, split by root move when divide is set.
func (r *Report) WithPerft(d engine.DivideResult, divide bool) *Report {
	r.Perft = &d
	r.Divide = divide
	return r
}

// WithError records why the move line stopped.
func (r *Report) WithError(err error) *Report {
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

func sortedMoves(moves []chess.Move) []chess.Move {
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].String() < moves[j].String()
	})
	return moves
}

// moveNumbering yields the move number and mover of each ply, starting from
// the start position's counters.
func moveNumbering(start chess.Position, plies int) (numbers []int, movers []chess.Colour) {
	number, mover := start.FullmoveNumber, start.Turn
	for i := 0; i < plies; i++ {
		numbers = append(numbers, number)
		movers = append(movers, mover)
		if mover == chess.Black {
			number++
		}
		mover = mover.Opposite()
	}
	return numbers, movers
}
