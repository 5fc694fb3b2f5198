package chess

import "strings"

// CastlingRights holds the four independent castling flags.
type CastlingRights uint8

const (
	WhiteShort CastlingRights = 1 << iota
	WhiteLong
	BlackShort
	BlackLong

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteShort | WhiteLong | BlackShort | BlackLong
)

// CastlingRight returns the flag for a colour and side.
func CastlingRight(colour Colour, side CastlingSide) CastlingRights {
	switch {
	case colour == White && side == Short:
		return WhiteShort
	case colour == White:
		return WhiteLong
	case side == Short:
		return BlackShort
	default:
		return BlackLong
	}
}

// ColourRights returns both flags belonging to a colour.
func ColourRights(colour Colour) CastlingRights {
	if colour == White {
		return WhiteShort | WhiteLong
	}
	return BlackShort | BlackLong
}

// Has reports whether every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return r != 0 && c&r == r
}

// Without returns the rights with r cleared.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field: letters in K,Q,k,q order, or "-".
func (c CastlingRights) String() string {
	var sb strings.Builder
	if c.Has(WhiteShort) {
		sb.WriteByte('K')
	}
	if c.Has(WhiteLong) {
		sb.WriteByte('Q')
	}
	if c.Has(BlackShort) {
		sb.WriteByte('k')
	}
	if c.Has(BlackLong) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Position is a full snapshot of a game: the grid plus side to move,
// castling rights, en passant target and move counters.
//
// Position is a value type. Operations that "change" a position return
// a new value, so a Position can be shared between goroutines freely.
type Position struct {
	// Cells is indexed [rank][file].
	Cells [BoardSize][BoardSize]Piece

	// Who has the next move.
	Turn Colour

	Castling CastlingRights

	// Is en passant capture possible? If so then EnPassant is the square a
	// capturing pawn would land on.
	HasEnPassant bool
	EnPassant    Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, incremented after Black moves.
	FullmoveNumber int
}

// NewPosition creates an empty board with White to move and no rights.
func NewPosition() Position {
	return Position{
		Turn:           White,
		FullmoveNumber: 1,
	}
}

// DefaultPosition returns the standard chess starting position.
func DefaultPosition() Position {
	p := NewPosition()
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Cells[0][file] = W(backRank[file])
		p.Cells[1][file] = W(Pawn)
		p.Cells[6][file] = B(Pawn)
		p.Cells[7][file] = B(backRank[file])
	}
	p.Castling = AllCastling
	return p
}

// At returns the piece on sq.
func (p Position) At(sq Square) Piece {
	return p.Cells[sq.Rank][sq.File]
}

// Set places a piece on sq. Use NoPiece to clear it.
func (p *Position) Set(sq Square, piece Piece) {
	p.Cells[sq.Rank][sq.File] = piece
}

// EnPassantTarget returns the en passant target square, if any.
func (p Position) EnPassantTarget() (Square, bool) {
	return p.EnPassant, p.HasEnPassant
}

// SetEnPassant records sq as the en passant target.
func (p *Position) SetEnPassant(sq Square) {
	p.HasEnPassant = true
	p.EnPassant = sq
}

// ClearEnPassant removes any en passant target.
func (p *Position) ClearEnPassant() {
	p.HasEnPassant = false
	p.EnPassant = Square{}
}

// King finds the king of the given colour by scanning the grid.
func (p Position) King(colour Colour) (Square, bool) {
	king := Piece{Kind: King, Colour: colour}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p.Cells[rank][file] == king {
				return Square{Rank: rank, File: file}, true
			}
		}
	}
	return Square{}, false
}

// Pieces calls fn for every occupied square, rank 1 to 8, file a to h.
func (p Position) Pieces(fn func(sq Square, piece Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if piece := p.Cells[rank][file]; !piece.IsEmpty() {
				fn(Square{Rank: rank, File: file}, piece)
			}
		}
	}
}

// String draws the grid, rank 8 at the top, for debugging.
func (p Position) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			sb.WriteString(p.Cells[rank][file].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
