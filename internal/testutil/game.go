package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustParseFEN parses a FEN string, failing the test on error.
func MustParseFEN(t *testing.T, fen string) chess.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

// MustPlay plays space-separated moves ("e2e4 e7e5 O-O") from pos and
// returns the final position. Castling text is checked against the
// generator so an unsafe castle fails the test.
func MustPlay(t *testing.T, pos chess.Position, moves string) chess.Position {
	t.Helper()
	for _, text := range strings.Fields(moves) {
		m, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		if !containsMove(engine.AllLegalMoves(pos), m) {
			t.Fatalf("%s is not legal in %s", text, engine.FEN(pos))
		}
		next, ok := engine.PerformMove(pos, m)
		if !ok {
			t.Fatalf("PerformMove(%s) rejected in %s", text, engine.FEN(pos))
		}
		pos = next
	}
	return pos
}

// MoveTexts returns the String form of each move.
func MoveTexts(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return texts
}

// Squares parses square tokens known to be valid.
func Squares(tokens ...string) []chess.Square {
	squares := make([]chess.Square, len(tokens))
	for i, tok := range tokens {
		squares[i] = chess.SquareOf(tok)
	}
	return squares
}

func containsMove(moves []chess.Move, m chess.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
