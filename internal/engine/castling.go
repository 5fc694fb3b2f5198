package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castlingMoves returns the castling moves available to the king of colour
// on origin. A side is offered when its right is set, king and rook stand on
// their original squares, the squares between them are empty, and neither the
// king's square nor the square it crosses is attacked. The landing square is
// left to the general check filter.
func castlingMoves(colour chess.Colour, origin chess.Square, pos *chess.Position) []chess.Move {
	home := chess.Square{Rank: colour.HomeRank(), File: chess.KingFile}
	if origin != home || pos.Castling&chess.ColourRights(colour) == 0 {
		return nil
	}

	var moves []chess.Move
	kingSafe := !IsThreatened(*pos, colour, home)
	for _, side := range [...]chess.CastlingSide{chess.Short, chess.Long} {
		if !pos.Castling.Has(chess.CastlingRight(colour, side)) {
			continue
		}
		if !kingSafe {
			break
		}
		if canCastle(colour, side, pos) {
			moves = append(moves, chess.CastlingMove{Side: side})
		}
	}
	return moves
}

// canCastle checks the rook, the path and the crossed square for one side.
func canCastle(colour chess.Colour, side chess.CastlingSide, pos *chess.Position) bool {
	rank := colour.HomeRank()
	rook := chess.Square{Rank: rank, File: side.RookFile()}
	if pos.At(rook) != (chess.Piece{Kind: chess.Rook, Colour: colour}) {
		return false
	}

	lo, hi := chess.KingFile, side.RookFile()
	if lo > hi {
		lo, hi = hi, lo
	}
	for file := lo + 1; file < hi; file++ {
		if !pos.At(chess.Square{Rank: rank, File: file}).IsEmpty() {
			return false
		}
	}

	crossed := chess.Square{Rank: rank, File: side.RookDestFile()}
	return !IsThreatened(*pos, colour, crossed)
}

// castlingSquares returns the king and rook squares, before and after, for
// a castling move by colour.
func castlingSquares(colour chess.Colour, side chess.CastlingSide) (kingFrom, kingTo, rookFrom, rookTo chess.Square) {
	rank := colour.HomeRank()
	kingFrom = chess.Square{Rank: rank, File: chess.KingFile}
	kingTo = chess.Square{Rank: rank, File: side.KingDestFile()}
	rookFrom = chess.Square{Rank: rank, File: side.RookFile()}
	rookTo = chess.Square{Rank: rank, File: side.RookDestFile()}
	return kingFrom, kingTo, rookFrom, rookTo
}

// castlingRightsAt returns the rights that depend on a piece staying on sq:
// both of a colour's rights for its king square, one right for a rook square.
func castlingRightsAt(sq chess.Square) chess.CastlingRights {
	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		if sq.Rank != colour.HomeRank() {
			continue
		}
		switch sq.File {
		case chess.KingFile:
			return chess.ColourRights(colour)
		case chess.ShortRookFile:
			return chess.CastlingRight(colour, chess.Short)
		case chess.LongRookFile:
			return chess.CastlingRight(colour, chess.Long)
		}
	}
	return chess.NoCastling
}
