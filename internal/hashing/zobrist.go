package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x5EED_C0DE

var (
	pieceKeys     [2][7][chess.BoardSize][chess.BoardSize]uint64 // [colour][kind][rank][file]
	blackToMove   uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for colour := range pieceKeys {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for rank := 0; rank < chess.BoardSize; rank++ {
				for file := 0; file < chess.BoardSize; file++ {
					pieceKeys[colour][kind][rank][file] = rng.Uint64()
				}
			}
		}
	}
	blackToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
}

// Hash returns the Zobrist hash of a position. It covers the pieces, the
// side to move, castling rights and the en passant file; the move clocks
// are ignored, so repeated positions hash equal.
func Hash(pos chess.Position) uint64 {
	var h uint64
	pos.Pieces(func(sq chess.Square, piece chess.Piece) {
		h ^= pieceKeys[piece.Colour][piece.Kind][sq.Rank][sq.File]
	})
	if pos.Turn == chess.Black {
		h ^= blackToMove
	}
	h ^= castlingKeys[pos.Castling&chess.AllCastling]
	if sq, ok := pos.EnPassantTarget(); ok {
		h ^= enPassantKeys[sq.File]
	}
	return h
}
