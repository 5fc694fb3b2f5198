package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// InCheck returns true if the side to move has its king attacked.
// A position without that king is never in check.
func InCheck(pos chess.Position) bool {
	king, ok := pos.King(pos.Turn)
	if !ok {
		return false
	}
	return IsThreatened(pos, pos.Turn, king)
}

// IsThreatened returns true if a piece of colour standing on sq could be
// captured by the opponent: some opposing piece has a pseudo-legal move
// landing on sq. Pawns threaten their diagonals only, whether or not the
// square is occupied, so the test also works for empty castling squares.
func IsThreatened(pos chess.Position, colour chess.Colour, sq chess.Square) bool {
	attacker := colour.Opposite()
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Cells[rank][file]
			if piece.IsEmpty() || piece.Colour != attacker {
				continue
			}
			from := chess.Square{Rank: rank, File: file}
			if attacks(piece, from, pos, sq) {
				return true
			}
		}
	}
	return false
}

// attacks reports whether piece on from attacks sq.
func attacks(piece chess.Piece, from chess.Square, pos chess.Position, sq chess.Square) bool {
	if piece.Kind == chess.Pawn {
		d := sq.Sub(from)
		return d.DRank == piece.Colour.Forward() && (d.DFile == 1 || d.DFile == -1)
	}
	for _, m := range Enumerate(piece, from, pos, false) {
		if chess.MoveTo(m, piece.Colour) == sq {
			return true
		}
	}
	return false
}

// Attackers lists the squares of opposing pieces that threaten sq.
func Attackers(pos chess.Position, colour chess.Colour, sq chess.Square) []chess.Square {
	var found []chess.Square
	attacker := colour.Opposite()
	pos.Pieces(func(from chess.Square, piece chess.Piece) {
		if piece.Colour == attacker && attacks(piece, from, pos, sq) {
			found = append(found, from)
		}
	})
	return found
}
