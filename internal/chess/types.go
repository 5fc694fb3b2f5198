// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// HomeRank returns the rank index holding the colour's king and rooks.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PawnHomeRank returns the rank index the colour's pawns start on.
func (c Colour) PawnHomeRank() int {
	if c == White {
		return 1
	}
	return 6
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Empty PieceKind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotable reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotable() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// PromotionKinds lists the kinds a pawn may promote to.
var PromotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// Piece is a kind plus a colour. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter of the piece, or "." for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	return string(p.Letter())
}

// ParsePieceLetter converts a FEN letter to a piece.
func ParsePieceLetter(c byte) (Piece, error) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind PieceKind
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return NoPiece, fmt.Errorf("%q: %w", c, errors.ErrInvalidPiece)
	}
	return Piece{Kind: kind, Colour: colour}, nil
}

// ParsePromotionKind converts an uppercase or lowercase letter to a promotable kind.
func ParsePromotionKind(c byte) (PieceKind, error) {
	p, err := ParsePieceLetter(c)
	if err != nil {
		return Empty, err
	}
	if !p.Kind.IsPromotable() {
		return Empty, fmt.Errorf("cannot promote to %s: %w", p.Kind, errors.ErrInvalidPiece)
	}
	return p.Kind, nil
}
