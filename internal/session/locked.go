package session

import (
	"sync"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Locked wraps a Session with mutex protection for hosts that read and play
// from more than one goroutine.
type Locked struct {
	session *Session
	mu      sync.RWMutex
}

// NewLocked wraps s. The caller must not use s directly afterwards.
func NewLocked(s *Session) *Locked {
	return &Locked{session: s}
}

// With runs fn with exclusive access to the session. fn must not retain s.
func (l *Locked) With(fn func(s *Session)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.session)
}

// TryPlayMove atomically plays from -> to.
func (l *Locked) TryPlayMove(e *engine.Engine, from, to chess.Square) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.TryPlayMove(e, from, to)
}

// PieceAt returns the piece on sq.
func (l *Locked) PieceAt(sq chess.Square) (chess.Piece, chess.Colour, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.session.PieceAt(sq)
}

// Snapshot returns a deep copy of the session, safe to read without the lock.
func (l *Locked) Snapshot() *Session {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.session.Clone()
}
