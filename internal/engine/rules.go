package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Draw rule thresholds. The fifty-move threshold drives game status; the
// others are reported only.
const (
	FiftyMoveHalfmoves       = 50
	SeventyFiveMoveHalfmoves = 150
	ThreefoldRepetitionCount = 3
	FivefoldRepetitionCount  = 5
)

// DrawRuleResult contains the results of draw rule detection.
type DrawRuleResult struct {
	// Has75MoveRule is true if a position was reached where 75 moves
	// (150 half-moves) have been made without a pawn move or capture.
	Has75MoveRule bool

	// Has3FoldRepetition is true if any position occurred 3 or more times.
	Has3FoldRepetition bool

	// Has5FoldRepetition is true if any position occurred 5 or more times.
	Has5FoldRepetition bool

	// HasInsufficientMaterial is true if the final position has insufficient
	// mating material for either side.
	HasInsufficientMaterial bool

	// HasMaterialOdds is true if the history started with non-standard material.
	HasMaterialOdds bool
}

// AnalyzeDrawRules checks a position history, oldest first, for draw
// conditions beyond the ones that end a game.
func AnalyzeDrawRules(boards []chess.Position) DrawRuleResult {
	result := DrawRuleResult{}
	if len(boards) == 0 {
		return result
	}

	result.HasMaterialOdds = !isStandardMaterial(boards[0])

	table := hashing.NewRepetitionTable(0)
	for _, pos := range boards {
		if pos.HalfmoveClock >= SeventyFiveMoveHalfmoves {
			result.Has75MoveRule = true
		}
		count := table.Add(pos)
		if count >= ThreefoldRepetitionCount {
			result.Has3FoldRepetition = true
		}
		if count >= FivefoldRepetitionCount {
			result.Has5FoldRepetition = true
		}
	}

	result.HasInsufficientMaterial = HasInsufficientMaterial(boards[len(boards)-1])
	return result
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func HasInsufficientMaterial(pos chess.Position) bool {
	var minors [2][]chess.PieceKind
	var bishopOnLight [2]bool
	sufficient := false

	pos.Pieces(func(sq chess.Square, piece chess.Piece) {
		switch piece.Kind {
		case chess.King:
		case chess.Pawn, chess.Rook, chess.Queen:
			sufficient = true
		default:
			minors[piece.Colour] = append(minors[piece.Colour], piece.Kind)
			if piece.Kind == chess.Bishop {
				bishopOnLight[piece.Colour] = sq.IsLight()
			}
		}
	})
	if sufficient {
		return false
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1:
		return true // lone bishop or knight
	case len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isStandardMaterial checks if the position has the starting material.
func isStandardMaterial(pos chess.Position) bool {
	expected := map[chess.PieceKind]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	var actual [2]map[chess.PieceKind]int
	actual[chess.White] = make(map[chess.PieceKind]int)
	actual[chess.Black] = make(map[chess.PieceKind]int)
	pos.Pieces(func(_ chess.Square, piece chess.Piece) {
		actual[piece.Colour][piece.Kind]++
	})

	for _, counts := range actual {
		if len(counts) != len(expected) {
			return false
		}
		for kind, n := range expected {
			if counts[kind] != n {
				return false
			}
		}
	}
	return true
}
