package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"golang.org/x/exp/slices"
)

// IsLegal returns true if side may play m on pos.
//
// Normal and promotion moves must appear in the check-filtered enumeration
// for the piece on their origin. Castling moves only need the right for
// side: path and attack safety are enforced when the generator offers the
// castle, so a castling move that did not come from the generator should be
// checked against LegalMoves first.
func IsLegal(pos chess.Position, m chess.Move, side chess.Colour) bool {
	switch mv := m.(type) {
	case chess.CastlingMove:
		return pos.Castling.Has(chess.CastlingRight(side, mv.Side))
	case chess.NormalMove, chess.PromotionMove:
		from := chess.MoveFrom(m, side)
		if !from.OnBoard() || !chess.MoveTo(m, side).OnBoard() {
			return false
		}
		piece := pos.At(from)
		if piece.IsEmpty() || piece.Colour != side {
			return false
		}
		return slices.Contains(Enumerate(piece, from, pos, true), m)
	default:
		return false
	}
}

// PerformMove applies m for the side to move and returns the new position.
// It returns false, and pos unchanged, if m is not legal.
func PerformMove(pos chess.Position, m chess.Move) (chess.Position, bool) {
	mover := pos.Turn
	if !IsLegal(pos, m, mover) {
		return pos, false
	}

	next := pos
	next.ClearEnPassant()
	resetClock := false

	switch mv := m.(type) {
	case chess.NormalMove:
		piece := pos.At(mv.From)
		if captured := applyCapture(&pos, &next, mover, piece, mv.From, mv.To); captured {
			resetClock = true
		}
		if piece.Kind == chess.Pawn {
			resetClock = true
			if d := mv.To.Sub(mv.From); d.DRank == 2*mover.Forward() {
				next.SetEnPassant(chess.Square{Rank: mv.From.Rank + mover.Forward(), File: mv.From.File})
			}
		}
		next.Set(mv.From, chess.NoPiece)
		next.Set(mv.To, piece)
		next.Castling = next.Castling.Without(castlingRightsAt(mv.From) | castlingRightsAt(mv.To))

	case chess.PromotionMove:
		piece := pos.At(mv.From)
		applyCapture(&pos, &next, mover, piece, mv.From, mv.To)
		resetClock = true
		next.Set(mv.From, chess.NoPiece)
		next.Set(mv.To, chess.Piece{Kind: mv.Kind, Colour: mover})
		next.Castling = next.Castling.Without(castlingRightsAt(mv.To))

	case chess.CastlingMove:
		castle(&next, mover, mv.Side)
	}

	if resetClock {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if mover == chess.Black {
		next.FullmoveNumber++
	}
	next.Turn = mover.Opposite()

	return next, true
}

// applyCapture removes whatever piece m captures on next and reports whether
// there was one. An en passant capture removes the pawn behind to; finding
// no pawn there means the generator and this function disagree.
func applyCapture(pos, next *chess.Position, mover chess.Colour, piece chess.Piece, from, to chess.Square) bool {
	target := pos.At(to)
	if !target.IsEmpty() {
		return true
	}
	if piece.Kind != chess.Pawn || from.File == to.File {
		return false
	}
	ep, ok := pos.EnPassantTarget()
	if !ok || ep != to {
		return false
	}

	victim, _ := enPassantVictim(mover, to)
	if pos.At(victim) != (chess.Piece{Kind: chess.Pawn, Colour: mover.Opposite()}) {
		panic(fmt.Sprintf("en passant onto %s with no %s pawn on %s: %s",
			to, mover.Opposite(), victim, FEN(*pos)))
	}
	next.Set(victim, chess.NoPiece)
	return true
}

// castle moves king and rook and drops the mover's castling rights.
func castle(pos *chess.Position, colour chess.Colour, side chess.CastlingSide) {
	kingFrom, kingTo, rookFrom, rookTo := castlingSquares(colour, side)
	king := pos.At(kingFrom)
	rook := pos.At(rookFrom)
	pos.Set(kingFrom, chess.NoPiece)
	pos.Set(rookFrom, chess.NoPiece)
	pos.Set(kingTo, king)
	pos.Set(rookTo, rook)
	pos.Castling = pos.Castling.Without(chess.ColourRights(colour))
}

// uncheckedPerformMove relocates pieces for m as played by colour without
// any legality check or clock bookkeeping. It exists to build hypothetical
// positions for the check filter and must never be used to play a move.
func uncheckedPerformMove(pos chess.Position, m chess.Move, colour chess.Colour) chess.Position {
	next := pos
	switch mv := m.(type) {
	case chess.NormalMove:
		piece := pos.At(mv.From)
		if piece.Kind == chess.Pawn && mv.From.File != mv.To.File && pos.At(mv.To).IsEmpty() && isEnPassantCapture(&pos, colour, mv.To) {
			victim, _ := enPassantVictim(colour, mv.To)
			next.Set(victim, chess.NoPiece)
		}
		next.Set(mv.From, chess.NoPiece)
		next.Set(mv.To, piece)
	case chess.PromotionMove:
		next.Set(mv.From, chess.NoPiece)
		next.Set(mv.To, chess.Piece{Kind: mv.Kind, Colour: colour})
	case chess.CastlingMove:
		castle(&next, colour, mv.Side)
	}
	next.Turn = colour.Opposite()
	return next
}

// IsCheckmate returns true if the side to move is in check with no legal moves.
func IsCheckmate(pos chess.Position) bool {
	return InCheck(pos) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the side to move is not in check but has no legal moves.
func IsStalemate(pos chess.Position) bool {
	return !InCheck(pos) && !HasLegalMoves(pos)
}
