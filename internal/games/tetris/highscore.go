package tetris

import "sync"

// HighScoreStore persists the best score across sessions. HighScore is read
// once when a session is created; SetHighScore is called only when a game
// ends with a new maximum.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// MemoryHighScores keeps the high score in process memory. It is used when
// no database is available and in tests.
type MemoryHighScores struct {
	mu     sync.Mutex
	score  int
	writes int
}

// NewMemoryHighScores creates a store seeded with an initial score.
func NewMemoryHighScores(initial int) *MemoryHighScores {
	return &MemoryHighScores{score: initial}
}

// HighScore returns the stored score.
func (m *MemoryHighScores) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// SetHighScore stores score if it beats the stored one.
func (m *MemoryHighScores) SetHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = max(m.score, score)
	m.writes++
	return nil
}

// Writes returns how many times SetHighScore was called.
func (m *MemoryHighScores) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

var _ HighScoreStore = (*MemoryHighScores)(nil)
