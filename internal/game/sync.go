package game

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Synchronized serializes access to a Game with a single mutex so several
// goroutines can share it.
type Synchronized struct {
	mu   sync.Mutex
	game *Game
}

// NewSynchronized wraps g. g must not be used directly afterwards.
func NewSynchronized(g *Game) *Synchronized {
	return &Synchronized{game: g}
}

// Do runs fn with exclusive access to the game.
func (s *Synchronized) Do(fn func(g *Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// MakeMove is Game.MakeMove under the lock.
func (s *Synchronized) MakeMove(m chess.Move) (chess.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MakeMove(m)
}

// UndoMove is Game.UndoMove under the lock.
func (s *Synchronized) UndoMove() (chess.Position, chess.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.UndoMove()
}

// Current is Game.Current under the lock.
func (s *Synchronized) Current() chess.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Current()
}

// Status is Game.Status under the lock.
func (s *Synchronized) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status()
}

// Len is Game.Len under the lock.
func (s *Synchronized) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Len()
}
