package game

import (
	"strings"
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// oracleStatus loads fen into notnil/chess and reports its verdict along
// with the number of legal moves it sees.
func oracleStatus(t *testing.T, fen string) (notnil.Method, int) {
	t.Helper()
	opt, err := notnil.FEN(fen)
	if err != nil {
		t.Fatalf("notnil.FEN(%q): %v", fen, err)
	}
	g := notnil.NewGame(opt)
	return g.Position().Status(), len(g.ValidMoves())
}

// TestStatus_MatchesOracle replays short games ply by ply and checks the
// terminal verdicts and move counts against notnil/chess.
func TestStatus_MatchesOracle(t *testing.T) {
	lines := []struct {
		name  string
		fen   string
		moves string
	}{
		{"fool's mate", "", "f2f3 e7e5 g2g4 d8h4"},
		{"scholar's mate", "", "e2e4 e7e5 f1c4 b8c6 d1h5 g8f6 h5f7"},
		{"legal's mate", "", "e2e4 e7e5 g1f3 d7d6 f1c4 c8g4 b1c3 g7g6 f3e5 g4d1 c4f7 e8e7 c3d5"},
		{"smothered mate", "6rk/6pp/8/6N1/8/8/8/6K1 w - - 0 1", "g5f7"},
		{"queen stalemate", "7k/8/6K1/8/8/8/5Q2/8 w - - 0 1", "f2f7"},
		{"pawn stalemate", "k7/P7/1K6/8/8/8/8/8 w - - 0 1", "b6a6"},
		{"en passant line", "", "e2e4 a7a6 e4e5 d7d5 e5d6 c7d6 d1h5 g7g6"},
		{"castling line", "", "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 O-O f8c5 d2d3 O-O"},
		{"promotion line", "8/P6k/8/8/8/8/6p1/K7 w - - 0 1", "a7a8=Q g2g1=N a8b7 h7g6"},
	}

	for _, tt := range lines {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := New()
			if tt.fen != "" {
				g = mustFromFEN(t, tt.fen)
			}
			check := func() {
				t.Helper()
				method, count := oracleStatus(t, g.FEN())
				testutil.AssertEqual(t, len(g.AllLegalMoves()), count, "legal moves in %s", g.FEN())
				switch method {
				case notnil.Checkmate:
					testutil.AssertEqual(t, g.Status(), Checkmate, "status of %s", g.FEN())
				case notnil.Stalemate:
					testutil.AssertEqual(t, g.Status(), Stalemate, "status of %s", g.FEN())
				default:
					testutil.AssertFalse(t, g.Status() == Checkmate || g.Status() == Stalemate,
						"%s reported %s, oracle sees a playable position", g.FEN(), g.Status())
				}
			}

			check()
			for _, text := range strings.Fields(tt.moves) {
				if _, err := g.Play(text); err != nil {
					t.Fatalf("Play(%s): %v", text, err)
				}
				check()
			}
		})
	}
}
