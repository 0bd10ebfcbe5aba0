package tetris

// State is the lifecycle phase of a session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// LockEvent describes the outcome of the most recent lock.
type LockEvent struct {
	Lines   int  // Rows cleared by this lock
	Points  int  // Line-clear points awarded (drop bonuses excluded)
	LevelUp bool // Whether the clear raised the level
}

// Session is one game: the board, the falling and queued pieces, score and
// level progression. It is owned by a single caller and is not safe for
// concurrent use. Time only advances through Advance.
type Session struct {
	rules  Rules
	rand   Randomizer
	scores HighScoreStore

	board   *Board
	current Piece
	next    Piece

	score        int
	level        int
	lines        int
	dropInterval int
	elapsed      int // Milliseconds accumulated toward the next gravity step

	running  bool
	paused   bool
	gameOver bool

	highScore    int
	highScoreErr error
	newHighScore bool

	lastLock LockEvent
	locks    int
}

// NewSession creates an idle session. The high score is read from scores
// here and again on every Start; a read failure is reported by HighScoreErr.
// scores may be nil.
func NewSession(rules Rules, r Randomizer, scores HighScoreStore) *Session {
	s := &Session{
		rules:        rules,
		rand:         r,
		scores:       scores,
		board:        NewBoard(rules.Rows, rules.Cols),
		level:        1,
		dropInterval: rules.InitialDropMs,
	}
	s.loadHighScore()
	return s
}

// loadHighScore refreshes the high score from the store. Other sessions may
// have raised it since the last read. On failure the known value is kept.
func (s *Session) loadHighScore() {
	if s.scores == nil {
		return
	}
	hs, err := s.scores.HighScore()
	if err != nil {
		s.highScoreErr = err
		return
	}
	s.highScoreErr = nil
	s.highScore = max(s.highScore, hs)
}

// Start begins a new game, resetting board, score, level, lines and speed.
// Calling Start on a running or finished session restarts it.
func (s *Session) Start() {
	s.board.Reset()
	s.score = 0
	s.level = 1
	s.lines = 0
	s.dropInterval = s.rules.InitialDropMs
	s.elapsed = 0
	s.running = true
	s.paused = false
	s.gameOver = false
	s.newHighScore = false
	s.lastLock = LockEvent{}
	s.locks = 0
	s.loadHighScore()

	s.current = s.newPiece()
	s.next = s.newPiece()
	if !s.IsValidMove(s.current, 0, 0) {
		s.endGame()
	}
}

// Restart is an alias of Start.
func (s *Session) Restart() {
	s.Start()
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	switch {
	case s.gameOver:
		return StateGameOver
	case !s.running:
		return StateIdle
	case s.paused:
		return StatePaused
	default:
		return StateRunning
	}
}

// IsValidMove reports whether p shifted by (dx, dy) fits on the board.
func (s *Session) IsValidMove(p Piece, dx, dy int) bool {
	return s.board.Fits(p.Translate(dx, dy))
}

// Advance moves the session clock forward by elapsedMs. Once the accumulated
// time reaches the drop interval, one gravity step runs and the accumulator
// restarts from zero; long gaps never produce more than one step.
// Returns true if the step ran.
func (s *Session) Advance(elapsedMs int) bool {
	if !s.active() || elapsedMs <= 0 {
		return false
	}
	s.elapsed += elapsedMs
	if s.elapsed < s.dropInterval {
		return false
	}
	s.elapsed = 0
	s.step()
	return true
}

// MoveLeft shifts the falling piece one column left if it fits.
func (s *Session) MoveLeft() bool {
	return s.shift(-1)
}

// MoveRight shifts the falling piece one column right if it fits.
func (s *Session) MoveRight() bool {
	return s.shift(1)
}

// SoftDrop runs one gravity step on demand. A step that moves the piece
// down awards SoftDropPoints; a step that locks awards nothing.
func (s *Session) SoftDrop() bool {
	if !s.active() {
		return false
	}
	if !s.step() {
		s.score += s.rules.SoftDropPoints
	}
	return true
}

// HardDrop moves the piece down until it rests, awarding HardDropPoints per
// row, then locks it.
func (s *Session) HardDrop() bool {
	if !s.active() {
		return false
	}
	for s.IsValidMove(s.current, 0, 1) {
		s.current.Y++
		s.score += s.rules.HardDropPoints
	}
	s.lock()
	return true
}

// Rotate turns the falling piece clockwise. If the rotated piece collides,
// the configured wall-kick offsets are tried in order; if none fits, the
// piece is left unchanged.
func (s *Session) Rotate() bool {
	if !s.active() {
		return false
	}
	rotated := s.current.Rotated()
	if s.board.Fits(rotated) {
		s.current = rotated
		return true
	}
	for _, dx := range s.rules.WallKicks {
		if kicked := rotated.Translate(dx, 0); s.board.Fits(kicked) {
			s.current = kicked
			return true
		}
	}
	return false
}

// TogglePause pauses or resumes a running game. Resuming restarts the
// gravity timer so no drop happens immediately.
func (s *Session) TogglePause() bool {
	if !s.running {
		return false
	}
	s.paused = !s.paused
	if !s.paused {
		s.elapsed = 0
	}
	return true
}

// Board returns the live board. Callers must not modify it.
func (s *Session) Board() *Board { return s.board }

// Current returns the falling piece.
func (s *Session) Current() Piece { return s.current }

// Next returns the queued piece.
func (s *Session) Next() Piece { return s.next }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level (starting at 1).
func (s *Session) Level() int { return s.level }

// Lines returns the total rows cleared this game.
func (s *Session) Lines() int { return s.lines }

// DropInterval returns the gravity interval in milliseconds.
func (s *Session) DropInterval() int { return s.dropInterval }

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int { return s.highScore }

// NewHighScore reports whether the finished game set a new high score.
func (s *Session) NewHighScore() bool { return s.newHighScore }

// HighScoreErr returns the last error from the high score store, if any.
func (s *Session) HighScoreErr() error { return s.highScoreErr }

// LastLock returns the outcome of the most recent lock.
func (s *Session) LastLock() LockEvent { return s.lastLock }

// LockCount returns the number of pieces locked this game.
func (s *Session) LockCount() int { return s.locks }

// Rules returns the rule set of the session.
func (s *Session) Rules() Rules { return s.rules }

func (s *Session) active() bool {
	return s.running && !s.paused
}

func (s *Session) newPiece() Piece {
	return NewPiece(s.rand.Next(), s.rules.Cols)
}

func (s *Session) shift(dx int) bool {
	if !s.active() || !s.IsValidMove(s.current, dx, 0) {
		return false
	}
	s.current.X += dx
	return true
}

// step moves the piece down one row or locks it. Returns true if it locked.
func (s *Session) step() bool {
	if s.IsValidMove(s.current, 0, 1) {
		s.current.Y++
		return false
	}
	s.lock()
	return true
}

// lock commits the falling piece, clears rows, spawns the next piece and
// ends the game if the spawn position is blocked.
func (s *Session) lock() {
	s.board.Lock(s.current)
	s.lastLock = s.applyLineClear(s.board.ClearFullRows())
	s.locks++

	s.current = s.next
	s.next = s.newPiece()
	if !s.IsValidMove(s.current, 0, 0) {
		s.endGame()
	}
}

// applyLineClear scores n cleared rows at the current level, then raises the
// level and speed if the line total crossed a threshold.
func (s *Session) applyLineClear(n int) LockEvent {
	ev := LockEvent{Lines: n}
	if n == 0 {
		return ev
	}
	s.lines += n
	ev.Points = s.rules.LinePointsFor(n) * s.level
	s.score += ev.Points

	if lvl := s.rules.LevelFor(s.lines); lvl > s.level {
		s.level = lvl
		s.dropInterval = s.rules.DropIntervalFor(lvl)
		ev.LevelUp = true
	}
	return ev
}

func (s *Session) endGame() {
	s.running = false
	s.paused = false
	s.gameOver = true

	if s.score > s.highScore {
		s.highScore = s.score
		s.newHighScore = true
		if s.scores != nil {
			s.highScoreErr = s.scores.SetHighScore(s.score)
		}
	}
}
