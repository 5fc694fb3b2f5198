// Package processing provides game analysis and move-line validation.
package processing

import (
	"fmt"
	"log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// GameAnalysis holds analysis results from a game's history.
type GameAnalysis struct {
	FinalPosition chess.Position
	Status        game.Status
	Result        string
	Plies         int

	Material        string // Final material, see MaterialSignature
	MaterialBalance int    // White minus Black, in pawns

	Captures          int
	Checks            int // Plies that left the opponent in check or mated
	Castles           int
	Promotions        int
	HasUnderpromotion bool
	HasEnPassant      bool

	// HasFiftyMoveRule is true once any position reached the fifty-move clock.
	HasFiftyMoveRule bool

	// Positions holds the Zobrist hash of every position, start first.
	Positions []uint64

	engine.DrawRuleResult
}

// FiftyMoveTriggered returns true if the game reached the fifty-move rule.
func (ga *GameAnalysis) FiftyMoveTriggered() bool {
	return ga.HasFiftyMoveRule
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.Has3FoldRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// AnalyzeGame walks the game's history and counts its features.
func AnalyzeGame(g *game.Game) *GameAnalysis {
	boards := g.Boards()
	moves := g.Moves()

	analysis := &GameAnalysis{
		FinalPosition:  g.Current(),
		Status:         g.Status(),
		Result:         g.Status().Result(g.NextPlayer()),
		Plies:          len(moves),
		Positions:      make([]uint64, 0, len(boards)),
		DrawRuleResult: g.DrawRules(),
	}
	analysis.Material = MaterialSignature(analysis.FinalPosition)
	analysis.MaterialBalance = MaterialBalance(analysis.FinalPosition)

	for _, pos := range boards {
		analysis.Positions = append(analysis.Positions, hashing.Hash(pos))
		if pos.HalfmoveClock >= engine.FiftyMoveHalfmoves {
			analysis.HasFiftyMoveRule = true
		}
	}

	for i, m := range moves {
		before, after := boards[i], boards[i+1]
		if engine.InCheck(after) {
			analysis.Checks++
		}
		switch m := m.(type) {
		case chess.CastlingMove:
			analysis.Castles++
		case chess.PromotionMove:
			analysis.Promotions++
			if m.Kind != chess.Queen {
				analysis.HasUnderpromotion = true
			}
			if !before.At(m.To).IsEmpty() {
				analysis.Captures++
			}
		case chess.NormalMove:
			if !before.At(m.To).IsEmpty() {
				analysis.Captures++
			} else if isEnPassant(before, m) {
				analysis.Captures++
				analysis.HasEnPassant = true
			}
		}
	}

	return analysis
}

// isEnPassant reports whether m is a pawn moving diagonally onto the empty
// en passant target.
func isEnPassant(pos chess.Position, m chess.NormalMove) bool {
	if pos.At(m.From).Kind != chess.Pawn || m.From.File == m.To.File {
		return false
	}
	target, ok := pos.EnPassantTarget()
	return ok && target == m.To
}

// CountPlies counts the number of plies (half-moves) played in a game.
func CountPlies(g *game.Game) int {
	return g.Len()
}

// ValidationResult holds the result of validating a move line.
type ValidationResult struct {
	Valid    bool
	Plies    int // Plies played before stopping
	ErrorPly int // 1-based ply of the first bad move, 0 if none
	ErrorMsg string
	FinalFEN string
	Status   game.Status
}

// Line is a starting FEN (empty for the standard start) and move texts.
type Line struct {
	FEN   string
	Moves []string
}

// ReplayLine plays moves from fen and returns the game so far. On error the
// game holds every move before the failing one; it is nil only when the FEN
// itself is invalid.
func ReplayLine(fen string, moves []string, opts ...game.Option) (*game.Game, error) {
	var g *game.Game
	if fen == "" {
		g = game.New(opts...)
	} else {
		var err error
		if g, err = game.FromFEN(fen, opts...); err != nil {
			return nil, err
		}
	}

	for _, text := range moves {
		if _, err := g.Play(text); err != nil {
			return g, err
		}
	}
	return g, nil
}

// ValidateLine checks that every move of a line is legal in turn.
func ValidateLine(line Line) *ValidationResult {
	result := &ValidationResult{Valid: true}

	g, err := ReplayLine(line.FEN, line.Moves)
	if g == nil {
		result.Valid = false
		result.ErrorMsg = fmt.Sprintf("invalid FEN: %v", err)
		return result
	}

	result.Plies = g.Len()
	result.FinalFEN = g.FEN()
	result.Status = g.Status()
	if err != nil {
		result.Valid = false
		result.ErrorPly = g.Len() + 1
		result.ErrorMsg = fmt.Sprintf("ply %d (%s): %v", result.ErrorPly, line.Moves[g.Len()], err)
	}
	return result
}

// ValidateLines validates lines on a worker pool. Results are in input order.
func ValidateLines(lines []Line, workers int, logger *log.Logger) []*ValidationResult {
	results := make([]*ValidationResult, len(lines))
	items := make([]worker.WorkItem, len(lines))

	// Each worker writes only its own index.
	worker.Run(items, func(item worker.WorkItem) worker.ProcessResult {
		results[item.Index] = ValidateLine(lines[item.Index])
		return worker.ProcessResult{Index: item.Index}
	}, worker.WithWorkers(workers))

	if logger != nil {
		for i, r := range results {
			if !r.Valid {
				logger.Printf("line %d: %s", i+1, r.ErrorMsg)
			}
		}
	}
	return results
}
