package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// GameID is the identifier used for score storage.
const GameID = "tetris"

// flashMillis is how long a lock banner stays on the HUD.
const flashMillis = 1200

// Game adapts a Session to the platform loop: the platform calls Step at a
// fixed tick rate with the actions collected since the previous tick, and
// Render whenever it needs a frame.
type Game struct {
	rules  Rules
	scores HighScoreStore

	session *Session
	tickMs  int
	tick    uint64

	screenW  int
	screenH  int
	tooSmall bool

	flash     string
	flashLeft int // Milliseconds before the banner disappears
	seenLocks int
}

// New creates a game with the given rules. scores may be nil, in which case
// the high score only lives for the process.
func New(rules Rules, scores HighScoreStore) *Game {
	if scores == nil {
		scores = NewMemoryHighScores(0)
	}
	return &Game{rules: rules, scores: scores}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset builds a fresh idle session. The seed fixes the piece sequence.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = NewSession(g.rules, NewUniformRandomizer(cfg.Seed), g.scores)
	g.tickMs = cfg.TickMillis()
	g.tick = 0
	g.flash = ""
	g.flashLeft = 0
	g.seenLocks = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions the game lays itself out in. The
// session is left untouched.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinSize()
	g.tooSmall = w < minW || h < minH
}

// MinSize returns the smallest screen that fits the playfield and side panel.
func (g *Game) MinSize() (int, int) {
	return g.rules.Cols*2 + 2 + 1 + panelWidth, max(g.rules.Rows+2, panelHeight)
}

// Step applies the actions in arrival order, then advances the session
// clock by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}

	changed := false
	for _, a := range in.Actions {
		if g.apply(a) {
			changed = true
		}
	}

	if !g.tooSmall && g.session.Advance(g.tickMs) {
		changed = true
	}

	if g.updateFlash() {
		changed = true
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) apply(a core.Action) bool {
	s := g.session
	if a == core.ActionStart {
		switch s.State() {
		case StateIdle, StateGameOver:
			s.Start()
			g.seenLocks = 0
			g.flash = ""
			g.flashLeft = 0
			return true
		}
		return false
	}
	if g.tooSmall {
		return false
	}

	switch a {
	case core.ActionMoveLeft:
		return s.MoveLeft()
	case core.ActionMoveRight:
		return s.MoveRight()
	case core.ActionSoftDrop:
		return s.SoftDrop()
	case core.ActionRotate:
		return s.Rotate()
	case core.ActionHardDrop:
		return s.HardDrop()
	case core.ActionPause:
		return s.TogglePause()
	}
	return false
}

// updateFlash picks up new lock events and counts the banner down.
func (g *Game) updateFlash() bool {
	s := g.session
	if n := s.LockCount(); n != g.seenLocks {
		g.seenLocks = n
		if text := flashText(s.LastLock()); text != "" {
			g.flash = text
			g.flashLeft = flashMillis
			return true
		}
	}
	if g.flashLeft > 0 && s.State() == StateRunning {
		g.flashLeft -= g.tickMs
		if g.flashLeft <= 0 {
			g.flash = ""
			g.flashLeft = 0
			return true
		}
	}
	return false
}

func flashText(ev LockEvent) string {
	switch {
	case ev.Lines >= 4:
		return "TETRIS!"
	case ev.LevelUp:
		return "LEVEL UP"
	case ev.Lines == 3:
		return "TRIPLE"
	case ev.Lines == 2:
		return "DOUBLE"
	}
	return ""
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: st == StateGameOver,
		Paused:   st == StatePaused,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns a copy of the session state.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}
