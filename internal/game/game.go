// Package game tracks one chess game: the history of positions and moves,
// and the status of the side to move.
package game

import (
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Game owns an append-only history of positions, the moves between them and
// the current status. boards always holds one more entry than moves.
//
// A Game is not safe for concurrent use; see Synchronized.
type Game struct {
	id     uuid.UUID
	logger *log.Logger

	boards []chess.Position
	moves  []chess.Move
	status Status

	seen *hashing.RepetitionTable
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger accepted moves and rejections are written to.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithID sets the game ID instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}

// New creates a game at the standard starting position.
func New(opts ...Option) *Game {
	return newGame(chess.DefaultPosition(), opts...)
}

// FromFEN creates a game starting from the given position.
func FromFEN(fen string, opts ...Option) (*Game, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(pos, opts...), nil
}

func newGame(start chess.Position, opts ...Option) *Game {
	g := &Game{
		id:     uuid.New(),
		logger: log.New(io.Discard, "", 0),
		boards: []chess.Position{start},
		seen:   hashing.NewRepetitionTable(0),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.seen.Add(start)
	g.updateStatus()
	return g
}

// ID returns the game's identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Boards returns every position so far, the start position first.
func (g *Game) Boards() []chess.Position {
	return append([]chess.Position(nil), g.boards...)
}

// Moves returns every move played so far.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// Len returns the number of moves that can be undone.
func (g *Game) Len() int {
	return len(g.moves)
}

// Current returns the latest position.
func (g *Game) Current() chess.Position {
	return g.boards[len(g.boards)-1]
}

// Start returns the position the game began from.
func (g *Game) Start() chess.Position {
	return g.boards[0]
}

// NextPlayer returns the side to move.
func (g *Game) NextPlayer() chess.Colour {
	return g.Current().Turn
}

// Status returns the status of the side to move.
func (g *Game) Status() Status {
	return g.status
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.FEN(g.Current())
}

// Repetitions returns how many times the current position has occurred,
// counting the current occurrence. Move clocks are ignored.
func (g *Game) Repetitions() int {
	return g.seen.Count(g.Current())
}

// LegalMoves returns the legal moves of the piece on sq.
func (g *Game) LegalMoves(sq chess.Square) []chess.Move {
	return engine.LegalMoves(g.Current(), sq)
}

// AllLegalMoves returns every legal move of the side to move.
func (g *Game) AllLegalMoves() []chess.Move {
	return engine.AllLegalMoves(g.Current())
}

// MakeMove plays m and returns the new position.
//
// Once the game is over every move is refused with ErrGameOver before its
// legality is looked at. An illegal move returns an *errors.IllegalMoveError
// and leaves the game untouched.
func (g *Game) MakeMove(m chess.Move) (chess.Position, error) {
	if g.status.IsTerminal() {
		return chess.Position{}, errors.ErrGameOver
	}

	current := g.Current()
	if m == nil || !g.offered(current, m) {
		return chess.Position{}, g.illegal(current, m)
	}
	next, ok := engine.PerformMove(current, m)
	if !ok {
		return chess.Position{}, g.illegal(current, m)
	}

	g.boards = append(g.boards, next)
	g.moves = append(g.moves, m)
	g.seen.Add(next)
	g.updateStatus()

	g.logger.Printf("game %s: ply %d %s -> %s [%s]", g.id, len(g.moves), m, engine.FEN(next), g.status)
	return next, nil
}

// offered guards castling, whose legality check only looks at the rights
// flag. The castle must also be one the generator produces, which covers
// the path and the squares the king crosses.
func (g *Game) offered(pos chess.Position, m chess.Move) bool {
	castle, ok := m.(chess.CastlingMove)
	if !ok {
		return true
	}
	for _, candidate := range engine.LegalMoves(pos, chess.MoveFrom(castle, pos.Turn)) {
		if candidate == m {
			return true
		}
	}
	return false
}

func (g *Game) illegal(pos chess.Position, m chess.Move) error {
	text := "<nil>"
	if m != nil {
		text = m.String()
	}
	err := &errors.IllegalMoveError{
		Err:  errors.ErrIllegalMove,
		Move: text,
		FEN:  engine.FEN(pos),
		Ply:  len(g.moves) + 1,
	}
	g.logger.Printf("game %s: rejected %v", g.id, err)
	return err
}

// Play parses move text ("e2e4", "O-O", "e7e8=Q") and plays it.
func (g *Game) Play(text string) (chess.Position, error) {
	m, err := chess.ParseMove(text)
	if err != nil {
		return chess.Position{}, err
	}
	return g.MakeMove(m)
}

// UndoMove removes the latest move and the position it produced, and
// returns both. The status is recomputed for the restored position, so
// undoing out of checkmate makes the game playable again.
func (g *Game) UndoMove() (chess.Position, chess.Move, error) {
	if len(g.moves) == 0 {
		return chess.Position{}, nil, errors.ErrNothingToUndo
	}

	last := len(g.moves) - 1
	pos, m := g.boards[last+1], g.moves[last]
	g.seen.Remove(pos)
	g.boards = g.boards[:last+1]
	g.moves = g.moves[:last]
	g.updateStatus()

	g.logger.Printf("game %s: undo %s [%s]", g.id, m, g.status)
	return pos, m, nil
}

// updateStatus recomputes the status from the current position. Having no
// legal move decides first; otherwise the fifty-move rule ends the game even
// when the side to move is in check.
func (g *Game) updateStatus() {
	g.status = statusOf(g.Current())
}

func statusOf(pos chess.Position) Status {
	inCheck := engine.InCheck(pos)
	if !engine.HasLegalMoves(pos) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if pos.HalfmoveClock >= engine.FiftyMoveHalfmoves {
		return Draw
	}
	if inCheck {
		return Check
	}
	return Normal
}

// DrawRules reports the informational draw conditions over the history.
// None of them changes the status.
func (g *Game) DrawRules() engine.DrawRuleResult {
	return engine.AnalyzeDrawRules(g.boards)
}
