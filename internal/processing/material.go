package processing

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// materialOrder is the order pieces appear in a material signature.
var materialOrder = [...]chess.PieceKind{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}

// MaterialSignature describes the material on the board as
// "white:black", e.g. "KQRRP:kqrp". Uppercase for White, lowercase for Black.
func MaterialSignature(pos chess.Position) string {
	var counts [2][chess.King + 1]int
	pos.Pieces(func(_ chess.Square, p chess.Piece) {
		counts[p.Colour][p.Kind]++
	})

	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if colour == chess.Black {
			sb.WriteByte(':')
		}
		for _, kind := range materialOrder {
			letter := chess.Piece{Kind: kind, Colour: colour}.Letter()
			for i := 0; i < counts[colour][kind]; i++ {
				sb.WriteByte(letter)
			}
		}
	}
	return sb.String()
}

// MaterialBalance returns White's material minus Black's in pawns, using
// the usual 1/3/3/5/9 values.
func MaterialBalance(pos chess.Position) int {
	values := map[chess.PieceKind]int{
		chess.Pawn:   1,
		chess.Knight: 3,
		chess.Bishop: 3,
		chess.Rook:   5,
		chess.Queen:  9,
	}
	balance := 0
	pos.Pieces(func(_ chess.Square, p chess.Piece) {
		if p.Colour == chess.White {
			balance += values[p.Kind]
		} else {
			balance -= values[p.Kind]
		}
	})
	return balance
}
