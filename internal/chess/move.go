package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CastlingSide distinguishes king-side from queen-side castling.
type CastlingSide int

const (
	Short CastlingSide = iota // King-side, O-O
	Long                      // Queen-side, O-O-O
)

// String returns "O-O" or "O-O-O".
func (s CastlingSide) String() string {
	if s == Long {
		return "O-O-O"
	}
	return "O-O"
}

// Castling geometry on the home rank, by file index.
const (
	KingFile = 4

	ShortRookFile     = 7
	ShortKingDestFile = 6
	ShortRookDestFile = 5

	LongRookFile     = 0
	LongKingDestFile = 2
	LongRookDestFile = 3
)

// RookFile returns the file the side's rook starts on.
func (s CastlingSide) RookFile() int {
	if s == Long {
		return LongRookFile
	}
	return ShortRookFile
}

// KingDestFile returns the file the king lands on.
func (s CastlingSide) KingDestFile() int {
	if s == Long {
		return LongKingDestFile
	}
	return ShortKingDestFile
}

// RookDestFile returns the file the rook lands on.
func (s CastlingSide) RookDestFile() int {
	if s == Long {
		return LongRookDestFile
	}
	return ShortRookDestFile
}

// Move is one of NormalMove, CastlingMove or PromotionMove. The set of
// variants is closed; every switch over a Move handles all three.
// Moves are values and compare with ==.
type Move interface {
	fmt.Stringer
	isMove()
}

// NormalMove covers every non-castling, non-promoting move, en passant included.
type NormalMove struct {
	From Square
	To   Square
}

// CastlingMove moves king and rook together. Its squares follow from the
// mover's colour and the side.
type CastlingMove struct {
	Side CastlingSide
}

// PromotionMove is a pawn move onto the far rank.
type PromotionMove struct {
	From Square
	To   Square
	Kind PieceKind
}

func (NormalMove) isMove()    {}
func (CastlingMove) isMove()  {}
func (PromotionMove) isMove() {}

func (m NormalMove) String() string {
	return m.From.String() + m.To.String()
}

func (m CastlingMove) String() string {
	return m.Side.String()
}

func (m PromotionMove) String() string {
	return m.From.String() + m.To.String() + "=" + string(m.Kind.Letter())
}

// MoveFrom returns the origin square of m for a mover of the given colour.
func MoveFrom(m Move, colour Colour) Square {
	switch mv := m.(type) {
	case NormalMove:
		return mv.From
	case PromotionMove:
		return mv.From
	case CastlingMove:
		return Square{Rank: colour.HomeRank(), File: KingFile}
	default:
		panic(fmt.Sprintf("unknown move variant %T", m))
	}
}

// MoveTo returns the destination square of m for a mover of the given colour.
// For castling this is the king's destination.
func MoveTo(m Move, colour Colour) Square {
	switch mv := m.(type) {
	case NormalMove:
		return mv.To
	case PromotionMove:
		return mv.To
	case CastlingMove:
		return Square{Rank: colour.HomeRank(), File: mv.Side.KingDestFile()}
	default:
		panic(fmt.Sprintf("unknown move variant %T", m))
	}
}

// ParseMove parses the textual form produced by Move.String:
// "e2e4", "O-O", "O-O-O" or "e7e8=Q". A lowercase promotion letter
// without '=' ("e7e8q") is also accepted.
func ParseMove(text string) (Move, error) {
	switch text {
	case "O-O", "0-0":
		return CastlingMove{Side: Short}, nil
	case "O-O-O", "0-0-0":
		return CastlingMove{Side: Long}, nil
	}
	if len(text) < 4 {
		return nil, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return nil, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return nil, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	rest := text[4:]
	switch {
	case rest == "":
		return NormalMove{From: from, To: to}, nil
	case len(rest) == 2 && rest[0] == '=':
		rest = rest[1:]
	case len(rest) != 1:
		return nil, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	kind, err := ParsePromotionKind(rest[0])
	if err != nil {
		return nil, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	return PromotionMove{From: from, To: to, Kind: kind}, nil
}
