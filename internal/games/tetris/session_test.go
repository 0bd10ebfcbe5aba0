package tetris

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// sequence yields a fixed cycle of piece types.
type sequence struct {
	types []PieceType
	i     int
}

func (s *sequence) Next() PieceType {
	t := s.types[s.i%len(s.types)]
	s.i++
	return t
}

type failingStore struct{}

func (failingStore) HighScore() (int, error) { return 0, errors.New("unavailable") }
func (failingStore) SetHighScore(int) error  { return errors.New("unavailable") }

func newTestSession(t *testing.T, store HighScoreStore, types ...PieceType) *Session {
	t.Helper()
	if len(types) == 0 {
		types = []PieceType{PieceO}
	}
	return NewSession(DefaultRules(), &sequence{types: types}, store)
}

func TestSessionStartsIdle(t *testing.T) {
	s := newTestSession(t, nil)

	assert.Equal(t, StateIdle, s.State())
	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveRight())
	assert.False(t, s.SoftDrop())
	assert.False(t, s.HardDrop())
	assert.False(t, s.Rotate())
	assert.False(t, s.TogglePause())
	assert.False(t, s.Advance(5000))
	assert.Equal(t, 0, s.Score())
}

func TestSessionStartSpawnsCurrentAndNext(t *testing.T) {
	s := newTestSession(t, nil, PieceO, PieceT)
	s.Start()

	require.Equal(t, StateRunning, s.State())
	assert.Equal(t, PieceO, s.Current().Type)
	assert.Equal(t, 4, s.Current().X)
	assert.Equal(t, 0, s.Current().Y)
	assert.Equal(t, PieceT, s.Next().Type)
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 1000, s.DropInterval())
}

func TestSessionLoadsHighScore(t *testing.T) {
	store := NewMemoryHighScores(1234)
	s := newTestSession(t, store)

	assert.Equal(t, 1234, s.HighScore())
	assert.NoError(t, s.HighScoreErr())
}

func TestStartRereadsHighScore(t *testing.T) {
	store := NewMemoryHighScores(100)
	s := newTestSession(t, store)

	// Another session sharing the store finishes with a better game.
	require.NoError(t, store.SetHighScore(700))
	s.Start()
	assert.Equal(t, 700, s.HighScore())

	for y := 2; y < 20; y++ {
		s.board.LockCell(4, y, core.ColorGray)
	}
	s.score = 300
	s.HardDrop()

	require.Equal(t, StateGameOver, s.State())
	assert.False(t, s.NewHighScore())
	assert.Equal(t, 1, store.Writes(), "only the other session wrote")
}

func TestSessionHighScoreReadFailure(t *testing.T) {
	s := newTestSession(t, failingStore{})

	assert.Equal(t, 0, s.HighScore())
	assert.Error(t, s.HighScoreErr())

	s.Start()
	assert.Equal(t, StateRunning, s.State(), "a store failure does not block play")
}

func TestIsValidMove(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.board.LockCell(4, 10, core.ColorRed)
	o := NewPiece(PieceO, 10)

	assert.True(t, s.IsValidMove(o, 0, 0))
	assert.False(t, s.IsValidMove(o, -5, 0), "outside left")
	assert.False(t, s.IsValidMove(o, 5, 0), "outside right")
	assert.False(t, s.IsValidMove(o, 0, 19), "below the floor")
	assert.False(t, s.IsValidMove(o, 0, 9), "overlaps a locked cell")
	assert.True(t, s.IsValidMove(o, 0, -2), "rows above the top always pass")

	// Validity checks never move anything.
	assert.Equal(t, o, NewPiece(PieceO, 10))
	assert.Equal(t, 0, s.Current().Y)
}

func TestAdvanceGravity(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()

	assert.False(t, s.Advance(999))
	assert.Equal(t, 0, s.Current().Y)

	assert.True(t, s.Advance(1))
	assert.Equal(t, 1, s.Current().Y)

	// A long gap produces a single step.
	assert.True(t, s.Advance(5000))
	assert.Equal(t, 2, s.Current().Y)

	assert.False(t, s.Advance(0))
	assert.False(t, s.Advance(-10))
}

func TestMoveLeftRightStopsAtWalls(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()

	moves := 0
	for s.MoveLeft() {
		moves++
	}
	assert.Equal(t, 4, moves)
	assert.Equal(t, 0, s.Current().X)

	moves = 0
	for s.MoveRight() {
		moves++
	}
	assert.Equal(t, 8, moves)
	assert.Equal(t, 8, s.Current().X)
}

func TestSoftDropAwardsPointPerRow(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()

	for i := 0; i < 18; i++ {
		require.True(t, s.SoftDrop())
	}
	assert.Equal(t, 18, s.Current().Y)
	assert.Equal(t, 18, s.Score())
	assert.Equal(t, 0, s.LockCount())

	// The step that locks does not move the piece and awards nothing.
	require.True(t, s.SoftDrop())
	assert.Equal(t, 1, s.LockCount())
	assert.Equal(t, 18, s.Score())
	assert.Equal(t, 0, s.Current().Y)
}

func TestHardDrop(t *testing.T) {
	s := newTestSession(t, nil, PieceO, PieceT)
	s.Start()

	require.True(t, s.HardDrop())

	assert.Equal(t, 36, s.Score(), "18 rows at 2 points")
	assert.Equal(t, 1, s.LockCount())
	for _, p := range []core.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		assert.Equal(t, core.ColorYellow, s.Board().Cell(p.X, p.Y))
	}
	assert.Equal(t, PieceT, s.Current().Type, "next piece becomes current")
	assert.Equal(t, PieceO, s.Next().Type)
}

func TestScoringDoubleAtLevelOne(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	fillRow(s.board, 18, core.ColorRed, 4, 5)
	fillRow(s.board, 19, core.ColorRed, 4, 5)

	s.HardDrop()

	assert.Equal(t, LockEvent{Lines: 2, Points: 300}, s.LastLock())
	assert.Equal(t, 36+300, s.Score())
	assert.Equal(t, 2, s.Lines())
	assert.Equal(t, 1, s.Level())
}

func TestScoringTetrisAtLevelThree(t *testing.T) {
	s := newTestSession(t, nil, PieceI)
	s.Start()
	s.level = 3
	s.lines = 20
	s.dropInterval = s.rules.DropIntervalFor(3)
	for y := 16; y < 20; y++ {
		fillRow(s.board, y, core.ColorRed, 5)
	}

	require.True(t, s.Rotate())
	require.True(t, s.HardDrop())

	assert.Equal(t, LockEvent{Lines: 4, Points: 2400}, s.LastLock())
	assert.Equal(t, 32+2400, s.Score())
	assert.Equal(t, 24, s.Lines())
	assert.Equal(t, 3, s.Level())
	for x := 0; x < 10; x++ {
		assert.True(t, s.Board().Cell(x, 19).IsEmpty())
	}
}

func TestLevelUpAtTenLines(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.lines = 9
	fillRow(s.board, 19, core.ColorRed, 4, 5)

	s.HardDrop()

	ev := s.LastLock()
	assert.True(t, ev.LevelUp)
	assert.Equal(t, 100, ev.Points, "points use the level before the level-up")
	assert.Equal(t, 10, s.Lines())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 900, s.DropInterval())
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	store := NewMemoryHighScores(100)
	s := newTestSession(t, store)
	s.Start()
	for y := 2; y < 20; y++ {
		s.board.LockCell(4, y, core.ColorGray)
	}
	s.score = 500

	s.HardDrop()

	require.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 500, s.HighScore())
	assert.True(t, s.NewHighScore())
	assert.Equal(t, 1, store.Writes())
	stored, _ := store.HighScore()
	assert.Equal(t, 500, stored)

	// Nothing moves after game over and the store is not written again.
	assert.False(t, s.MoveLeft())
	assert.False(t, s.HardDrop())
	assert.False(t, s.Advance(5000))
	assert.False(t, s.TogglePause())
	assert.Equal(t, 1, store.Writes())
}

func TestGameOverBelowHighScoreDoesNotWrite(t *testing.T) {
	store := NewMemoryHighScores(1000)
	s := newTestSession(t, store)
	s.Start()
	for y := 2; y < 20; y++ {
		s.board.LockCell(4, y, core.ColorGray)
	}

	s.HardDrop()

	require.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 1000, s.HighScore())
	assert.False(t, s.NewHighScore())
	assert.Equal(t, 0, store.Writes())
}

func TestHighScoreWriteFailureIsReported(t *testing.T) {
	s := newTestSession(t, failingStore{})
	s.Start()
	for y := 2; y < 20; y++ {
		s.board.LockCell(4, y, core.ColorGray)
	}
	s.score = 10

	s.HardDrop()

	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 10, s.HighScore())
	assert.Error(t, s.HighScoreErr())
}

func TestRestartKeepsHighScore(t *testing.T) {
	s := newTestSession(t, NewMemoryHighScores(0))
	s.Start()
	for y := 2; y < 20; y++ {
		s.board.LockCell(4, y, core.ColorGray)
	}
	s.score = 42
	s.HardDrop()
	require.Equal(t, StateGameOver, s.State())

	s.Restart()

	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Lines())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 42, s.HighScore())
	assert.False(t, s.NewHighScore())
	assert.True(t, s.Board().Cell(4, 19).IsEmpty())
}

func TestWallKickPlusOne(t *testing.T) {
	s := newTestSession(t, nil, PieceT)
	s.Start()
	p := s.Current()
	p.Shape = shapeFrom(
		".#.",
		".##",
		".#.",
	)
	p.X, p.Y = -1, 5
	s.current = p

	require.True(t, s.Rotate())

	assert.Equal(t, 0, s.Current().X)
	assert.Equal(t, 5, s.Current().Y)
	assert.Equal(t, shapeFrom(
		"...",
		"###",
		".#.",
	), s.Current().Shape)
}

func TestWallKickMinusOne(t *testing.T) {
	s := newTestSession(t, nil, PieceT)
	s.Start()
	p := s.Current()
	p.Shape = shapeFrom(
		".#.",
		"##.",
		".#.",
	)
	p.X, p.Y = 8, 5
	s.current = p

	require.True(t, s.Rotate())

	assert.Equal(t, 7, s.Current().X)
	assert.Equal(t, ShapeOf(PieceT), s.Current().Shape)
}

func TestWallKickPlusTwo(t *testing.T) {
	s := newTestSession(t, nil, PieceI)
	s.Start()
	vertical := s.Current().Rotated()
	vertical.X, vertical.Y = -2, 5
	s.current = vertical

	require.True(t, s.Rotate())

	assert.Equal(t, 0, s.Current().X, "+1 and -1 leave cells outside, +2 fits")
	for _, c := range s.Current().Cells() {
		assert.Equal(t, 7, c.Y)
	}
}

func TestWallKickMinusTwo(t *testing.T) {
	s := newTestSession(t, nil, PieceI)
	s.Start()
	p := s.Current()
	p.X, p.Y = 6, 5
	s.current = p
	// Rotation lands in column 8; block it and the +1 and -1 columns below
	// the piece. +2 is outside the board.
	for _, x := range []int{7, 8, 9} {
		s.board.LockCell(x, 8, core.ColorRed)
	}

	require.True(t, s.Rotate())

	assert.Equal(t, 4, s.Current().X)
	for _, c := range s.Current().Cells() {
		assert.Equal(t, 6, c.X)
	}
}

func TestWallKickOrder(t *testing.T) {
	tests := []struct {
		name    string
		blocked []int // columns blocked in row 8
		wantX   int
	}{
		{"plus one before minus one", []int{5}, 4},
		{"minus one before plus two", []int{5, 6}, 2},
		{"plus two before minus two", []int{4, 5, 6}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil, PieceI)
			s.Start()
			p := s.Current()
			p.X, p.Y = 3, 5 // vertical rotation lands in column 5
			s.current = p
			for _, x := range tt.blocked {
				s.board.LockCell(x, 8, core.ColorRed)
			}

			require.True(t, s.Rotate())
			assert.Equal(t, tt.wantX, s.Current().X)
		})
	}
}

func TestWallKickRevertsWhenNothingFits(t *testing.T) {
	s := newTestSession(t, nil, PieceI)
	s.Start()
	vertical := s.Current().Rotated()
	vertical.X, vertical.Y = -2, 5
	s.current = vertical
	s.board.LockCell(3, 7, core.ColorRed)
	before := s.Current().Clone()

	assert.False(t, s.Rotate())
	assert.Equal(t, before, s.Current())
}

func TestPauseBlocksInputAndResetsTimer(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.Advance(600)

	require.True(t, s.TogglePause())
	assert.Equal(t, StatePaused, s.State())
	assert.False(t, s.MoveLeft())
	assert.False(t, s.Rotate())
	assert.False(t, s.SoftDrop())
	assert.False(t, s.Advance(5000))
	assert.Equal(t, 0, s.Current().Y)

	require.True(t, s.TogglePause())
	assert.Equal(t, StateRunning, s.State())
	assert.False(t, s.Advance(600), "resume restarts the gravity timer")
	assert.True(t, s.Advance(400))
	assert.Equal(t, 1, s.Current().Y)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()

	snap := s.Snapshot()
	snap.Board[19][0] = core.ColorRed
	snap.Current.Shape[0][0] = false

	assert.True(t, s.Board().Cell(0, 19).IsEmpty())
	assert.True(t, s.Current().Shape[0][0])
	assert.Equal(t, StateRunning, snap.State)
	assert.True(t, snap.HasPiece())
}

func TestUniformRandomizerIsDeterministic(t *testing.T) {
	a := NewUniformRandomizer(7)
	b := NewUniformRandomizer(7)
	seen := map[PieceType]bool{}

	for i := 0; i < 200; i++ {
		pa, pb := a.Next(), b.Next()
		require.Equal(t, pa, pb)
		seen[pa] = true
	}
	assert.Len(t, seen, 7)
}
