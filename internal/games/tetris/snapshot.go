package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot is a read-only copy of a session for rendering, testing and
// determinism checks. Nothing in it aliases session memory.
type Snapshot struct {
	State        State
	Board        [][]core.Color
	Current      Piece
	Next         Piece
	Score        int
	HighScore    int
	NewHighScore bool
	Level        int
	Lines        int
	DropInterval int
	LastLock     LockEvent
	LockCount    int
}

// Snapshot returns a deep copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:        s.State(),
		Board:        s.board.Cells(),
		Current:      s.current.Clone(),
		Next:         s.next.Clone(),
		Score:        s.score,
		HighScore:    s.highScore,
		NewHighScore: s.newHighScore,
		Level:        s.level,
		Lines:        s.lines,
		DropInterval: s.dropInterval,
		LastLock:     s.lastLock,
		LockCount:    s.locks,
	}
}

// HasPiece reports whether the snapshot carries a falling piece to draw.
func (s Snapshot) HasPiece() bool {
	return s.State == StateRunning || s.State == StatePaused
}
