package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Only success paths can be exercised without a fake *testing.T; the
// message formatting is tested directly.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42, "value should be %d", 42)
	AssertEqual(t, chess.DefaultPosition(), chess.DefaultPosition())
	AssertEqual(t, nil, nil)
}

func TestAssertSameMoves_IgnoresOrder(t *testing.T) {
	a := chess.NormalMove{From: chess.SquareOf("e2"), To: chess.SquareOf("e4")}
	b := chess.CastlingMove{Side: chess.Short}
	c := chess.PromotionMove{From: chess.SquareOf("a7"), To: chess.SquareOf("a8"), Kind: chess.Queen}

	AssertSameMoves(t, []chess.Move{a, b, c}, []chess.Move{c, a, b})
	AssertSameMoves(t, nil, []chess.Move{})
}

func TestAssertSameSquares_IgnoresOrder(t *testing.T) {
	AssertSameSquares(t,
		[]chess.Square{chess.SquareOf("d5"), chess.SquareOf("c4")},
		[]chess.Square{chess.SquareOf("c4"), chess.SquareOf("d5")})
}

func TestAssertErrors_Success(t *testing.T) {
	base := errors.New("base")
	AssertNoError(t, nil)
	AssertError(t, base, "expected error from %s", "operation")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
}

func TestAssertConditions_Success(t *testing.T) {
	var p *int
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
	AssertNil(t, p)
	AssertNil(t, nil)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
		{"non-string first", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
