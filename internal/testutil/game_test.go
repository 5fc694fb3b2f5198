package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

func TestMustParseFEN(t *testing.T) {
	pos := MustParseFEN(t, engine.InitialFEN)
	AssertEqual(t, pos, chess.DefaultPosition())
}

func TestMustPlay(t *testing.T) {
	tests := []struct {
		name    string
		moves   string
		wantFEN string
	}{
		{
			name:    "no moves",
			moves:   "",
			wantFEN: engine.InitialFEN,
		},
		{
			name:    "open game",
			moves:   "e2e4 e7e5 g1f3",
			wantFEN: "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:    "castle short",
			moves:   "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 O-O",
			wantFEN: "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustPlay(t, chess.DefaultPosition(), tt.moves)
			AssertEqual(t, engine.FEN(pos), tt.wantFEN)
		})
	}
}

func TestMoveTexts(t *testing.T) {
	moves := []chess.Move{
		chess.NormalMove{From: chess.SquareOf("e2"), To: chess.SquareOf("e4")},
		chess.CastlingMove{Side: chess.Long},
	}
	AssertEqual(t, MoveTexts(moves), []string{"e2e4", "O-O-O"})
}

func TestSquares(t *testing.T) {
	AssertEqual(t, Squares("a1", "h8"), []chess.Square{{Rank: 0, File: 0}, {Rank: 7, File: 7}})
}
