package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Movement deltas for each piece geometry.
var (
	knightDeltas = [...]chess.SquareDelta{
		{DRank: 2, DFile: 1}, {DRank: 2, DFile: -1},
		{DRank: -2, DFile: 1}, {DRank: -2, DFile: -1},
		{DRank: 1, DFile: 2}, {DRank: 1, DFile: -2},
		{DRank: -1, DFile: 2}, {DRank: -1, DFile: -2},
	}

	rookDirections = [...]chess.SquareDelta{
		{DRank: 1}, {DRank: -1}, {DFile: 1}, {DFile: -1},
	}

	bishopDirections = [...]chess.SquareDelta{
		{DRank: 1, DFile: 1}, {DRank: 1, DFile: -1},
		{DRank: -1, DFile: 1}, {DRank: -1, DFile: -1},
	}

	allDirections = [...]chess.SquareDelta{
		{DRank: 1}, {DRank: -1}, {DFile: 1}, {DFile: -1},
		{DRank: 1, DFile: 1}, {DRank: 1, DFile: -1},
		{DRank: -1, DFile: 1}, {DRank: -1, DFile: -1},
	}
)

// Enumerate returns the moves available to piece standing on origin.
//
// With filterChecks false the result is pseudo-legal: movement geometry only,
// no castling. With filterChecks true castling is considered and every move
// that leaves the mover's king attacked is dropped. Attack detection always
// calls back with filterChecks false, so recursion stops after one level.
func Enumerate(piece chess.Piece, origin chess.Square, pos chess.Position, filterChecks bool) []chess.Move {
	var moves []chess.Move

	switch piece.Kind {
	case chess.Pawn:
		moves = pawnMoves(piece, origin, &pos)
	case chess.Knight:
		moves = stepMoves(piece, origin, &pos, knightDeltas[:])
	case chess.Bishop:
		moves = slidingMoves(piece, origin, &pos, bishopDirections[:])
	case chess.Rook:
		moves = slidingMoves(piece, origin, &pos, rookDirections[:])
	case chess.Queen:
		moves = slidingMoves(piece, origin, &pos, allDirections[:])
	case chess.King:
		moves = stepMoves(piece, origin, &pos, allDirections[:])
		if filterChecks {
			moves = append(moves, castlingMoves(piece.Colour, origin, &pos)...)
		}
	default:
		return nil
	}

	if !filterChecks {
		return moves
	}
	return filterSelfChecks(piece.Colour, pos, moves)
}

// stepMoves generates single-step moves (knight and king).
func stepMoves(piece chess.Piece, origin chess.Square, pos *chess.Position, deltas []chess.SquareDelta) []chess.Move {
	moves := make([]chess.Move, 0, len(deltas))
	for _, d := range deltas {
		to, ok := origin.CheckedAdd(d)
		if !ok {
			continue
		}
		if target := pos.At(to); !target.IsEmpty() && target.Colour == piece.Colour {
			continue
		}
		moves = append(moves, chess.NormalMove{From: origin, To: to})
	}
	return moves
}

// slidingMoves walks each direction until the edge or the first occupied
// square, which is included only when it holds an enemy piece.
func slidingMoves(piece chess.Piece, origin chess.Square, pos *chess.Position, directions []chess.SquareDelta) []chess.Move {
	var moves []chess.Move
	for _, d := range directions {
		to, ok := origin.CheckedAdd(d)
		for ok {
			target := pos.At(to)
			if !target.IsEmpty() {
				if target.Colour != piece.Colour {
					moves = append(moves, chess.NormalMove{From: origin, To: to})
				}
				break
			}
			moves = append(moves, chess.NormalMove{From: origin, To: to})
			to, ok = to.CheckedAdd(d)
		}
	}
	return moves
}

// pawnMoves generates pushes, double steps, captures and en passant.
func pawnMoves(piece chess.Piece, origin chess.Square, pos *chess.Position) []chess.Move {
	var moves []chess.Move
	forward := piece.Colour.Forward()

	if one, ok := origin.CheckedAdd(chess.SquareDelta{DRank: forward}); ok && pos.At(one).IsEmpty() {
		moves = appendPawnMove(moves, piece.Colour, origin, one)

		if origin.Rank == piece.Colour.PawnHomeRank() {
			if two, ok := one.CheckedAdd(chess.SquareDelta{DRank: forward}); ok && pos.At(two).IsEmpty() {
				moves = append(moves, chess.NormalMove{From: origin, To: two})
			}
		}
	}

	for _, side := range [...]int{-1, 1} {
		to, ok := origin.CheckedAdd(chess.SquareDelta{DRank: forward, DFile: side})
		if !ok {
			continue
		}
		target := pos.At(to)
		switch {
		case !target.IsEmpty() && target.Colour != piece.Colour:
			moves = appendPawnMove(moves, piece.Colour, origin, to)
		case target.IsEmpty() && isEnPassantCapture(pos, piece.Colour, to):
			moves = append(moves, chess.NormalMove{From: origin, To: to})
		}
	}
	return moves
}

// appendPawnMove adds a pawn move, expanded to one promotion per kind when
// the destination is the far rank.
func appendPawnMove(moves []chess.Move, colour chess.Colour, from, to chess.Square) []chess.Move {
	if to.Rank != colour.Opposite().HomeRank() {
		return append(moves, chess.NormalMove{From: from, To: to})
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.PromotionMove{From: from, To: to, Kind: kind})
	}
	return moves
}

// isEnPassantCapture reports whether a pawn of colour landing on to would
// capture en passant: to is the target and an enemy pawn stands behind it.
func isEnPassantCapture(pos *chess.Position, colour chess.Colour, to chess.Square) bool {
	target, ok := pos.EnPassantTarget()
	if !ok || target != to {
		return false
	}
	victim, ok := enPassantVictim(colour, to)
	if !ok {
		return false
	}
	return pos.At(victim) == chess.Piece{Kind: chess.Pawn, Colour: colour.Opposite()}
}

// enPassantVictim returns the square of the pawn removed when a pawn of
// colour captures en passant onto to: one rank behind to, from the mover's view.
func enPassantVictim(colour chess.Colour, to chess.Square) (chess.Square, bool) {
	return to.CheckedAdd(chess.SquareDelta{DRank: -colour.Forward()})
}

// filterSelfChecks drops every move after which the mover's king can be
// captured. A hypothetical position without that king keeps the move.
func filterSelfChecks(colour chess.Colour, pos chess.Position, moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, m := range moves {
		next := uncheckedPerformMove(pos, m, colour)
		king, ok := next.King(colour)
		if ok && IsThreatened(next, colour, king) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}
