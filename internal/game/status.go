package game

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status is the game-ending state of the side to move.
type Status int

const (
	Normal    Status = iota
	Check            // Side to move is in check but has a reply
	Checkmate        // Terminal
	Stalemate        // Terminal
	Draw             // Terminal, reached through the fifty-move rule
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case Normal:
		return "normal"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// IsTerminal returns true if no further moves may be made.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// Result returns the score string for a finished game, "*" otherwise.
// mover is the side to move in the final position.
func (s Status) Result(mover chess.Colour) string {
	switch s {
	case Checkmate:
		if mover == chess.White {
			return "0-1"
		}
		return "1-0"
	case Stalemate, Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}
