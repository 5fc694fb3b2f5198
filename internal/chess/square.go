package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// Square is a board cell. Rank 0 is rank "1", file 0 is file "a".
type Square struct {
	Rank int
	File int
}

// NewSquare returns the square at (rank, file), or false if either is outside [0,7].
func NewSquare(rank, file int) (Square, bool) {
	if !onBoard(rank) || !onBoard(file) {
		return Square{}, false
	}
	return Square{Rank: rank, File: file}, true
}

// MustSquare is NewSquare for coordinates known to be valid.
func MustSquare(rank, file int) Square {
	sq, ok := NewSquare(rank, file)
	if !ok {
		panic(fmt.Sprintf("square (%d,%d) off the board", rank, file))
	}
	return sq
}

// SquareOf parses a square token known to be valid, for tables and tests.
func SquareOf(token string) Square {
	sq, err := ParseSquare(token)
	if err != nil {
		panic(err)
	}
	return sq
}

func onBoard(i int) bool {
	return i >= 0 && i < BoardSize
}

// CheckedAdd offsets the square by d, returning false if the result leaves the board.
func (s Square) CheckedAdd(d SquareDelta) (Square, bool) {
	return NewSquare(s.Rank+d.DRank, s.File+d.DFile)
}

// Sub returns the delta that takes o to s.
func (s Square) Sub(o Square) SquareDelta {
	return SquareDelta{DRank: s.Rank - o.Rank, DFile: s.File - o.File}
}

// OnBoard reports whether both coordinates lie in [0,7]. Squares built
// with a struct literal may not.
func (s Square) OnBoard() bool {
	return onBoard(s.Rank) && onBoard(s.File)
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.Rank+s.File)%2 == 1
}

// String returns the square token, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "??"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare parses a two-character square token such as "e4".
func ParseSquare(token string) (Square, error) {
	if len(token) != 2 {
		return Square{}, fmt.Errorf("%q: %w", token, errors.ErrInvalidSquare)
	}
	file, rank := token[0], token[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%q: %w", token, errors.ErrInvalidSquare)
	}
	return Square{Rank: int(rank - RankBase), File: int(file - FileBase)}, nil
}

// SquareDelta is a relative offset between squares.
type SquareDelta struct {
	DRank int
	DFile int
}

// Add returns the sum of two deltas.
func (d SquareDelta) Add(o SquareDelta) SquareDelta {
	return SquareDelta{DRank: d.DRank + o.DRank, DFile: d.DFile + o.DFile}
}

// Abs returns the delta with both components made non-negative.
func (d SquareDelta) Abs() SquareDelta {
	return SquareDelta{DRank: abs(d.DRank), DFile: abs(d.DFile)}
}

// IsDiagonal reports whether the rank and file components have equal magnitude.
func (d SquareDelta) IsDiagonal() bool {
	a := d.Abs()
	return a.DRank == a.DFile
}

// AsUnit reduces the delta to a single-step direction. Only purely horizontal,
// purely vertical and exactly diagonal deltas have one.
func (d SquareDelta) AsUnit() (SquareDelta, bool) {
	if d.DRank == 0 && d.DFile == 0 {
		return SquareDelta{}, false
	}
	if d.DRank != 0 && d.DFile != 0 && !d.IsDiagonal() {
		return SquareDelta{}, false
	}
	return SquareDelta{DRank: sign(d.DRank), DFile: sign(d.DFile)}, true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
