package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
	"golang.org/x/exp/slices"
)

// LegalMoves returns the legal moves of the piece on sq. Empty squares,
// off-board squares and pieces of the side not to move have none.
func LegalMoves(pos chess.Position, sq chess.Square) []chess.Move {
	if !sq.OnBoard() {
		return nil
	}
	piece := pos.At(sq)
	if piece.IsEmpty() || piece.Colour != pos.Turn {
		return nil
	}
	return Enumerate(piece, sq, pos, true)
}

// AllLegalMoves returns every legal move for the side to move, scanning
// rank 1 to 8, file a to h.
func AllLegalMoves(pos chess.Position) []chess.Move {
	var moves []chess.Move
	pos.Pieces(func(sq chess.Square, piece chess.Piece) {
		if piece.Colour == pos.Turn {
			moves = append(moves, Enumerate(piece, sq, pos, true)...)
		}
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
// It stops at the first piece that can move.
func HasLegalMoves(pos chess.Position) bool {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Cells[rank][file]
			if piece.IsEmpty() || piece.Colour != pos.Turn {
				continue
			}
			if len(Enumerate(piece, chess.Square{Rank: rank, File: file}, pos, true)) > 0 {
				return true
			}
		}
	}
	return false
}

// Destinations returns the distinct squares the piece on sq can reach.
// Castling contributes the king's landing square; the four promotions of
// one pawn move contribute a single square.
func Destinations(pos chess.Position, sq chess.Square) []chess.Square {
	var dests []chess.Square
	for _, m := range LegalMoves(pos, sq) {
		to := chess.MoveTo(m, pos.Turn)
		if !slices.Contains(dests, to) {
			dests = append(dests, to)
		}
	}
	return dests
}

// FindMove returns the legal move from one square to another, promoting to
// promo when the move is a promotion. Castling is matched by the king's
// squares. It returns false if no such legal move exists.
func FindMove(pos chess.Position, from, to chess.Square, promo chess.PieceKind) (chess.Move, bool) {
	moves := LegalMoves(pos, from)
	i := slices.IndexFunc(moves, func(m chess.Move) bool {
		if chess.MoveTo(m, pos.Turn) != to {
			return false
		}
		if p, ok := m.(chess.PromotionMove); ok {
			return p.Kind == promo
		}
		return true
	})
	if i < 0 {
		return nil, false
	}
	return moves[i], true
}

// LegalMovesBySquare generates legal moves for every square of the side to
// move concurrently. Squares without moves are left out of the map.
func LegalMovesBySquare(pos chess.Position, workers int) map[chess.Square][]chess.Move {
	var items []worker.WorkItem
	pos.Pieces(func(sq chess.Square, piece chess.Piece) {
		if piece.Colour == pos.Turn {
			items = append(items, worker.WorkItem{Position: pos, Square: sq})
		}
	})

	results := worker.Run(items, func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index:  item.Index,
			Square: item.Square,
			Moves:  LegalMoves(item.Position, item.Square),
		}
	}, worker.WithWorkers(workers))

	bySquare := make(map[chess.Square][]chess.Move, len(results))
	for _, r := range results {
		if len(r.Moves) > 0 {
			bySquare[r.Square] = r.Moves
		}
	}
	return bySquare
}
