package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// helpRows is the height reserved under the playfield for the key help.
const helpRows = 1

// Model is the Bubble Tea model for a Tetris session.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the finished game has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game *tetris.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// playHeight is the part of the terminal the board gets.
func playHeight(h int) int {
	return max(h-helpRows, 0)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	m.game.Reset(cfg)

	if err := m.game.Session().HighScoreErr(); err != nil {
		m.logger.Warn("could not load high score", "error", err)
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(action)

	return m, nil
}

// handleResize resizes the frame buffer. The running game is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.game.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		if !m.scoreSaved {
			m.recordGame()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordGame stores the finished game in the score history.
func (m Model) recordGame() {
	sess := m.game.Session()
	if err := sess.HighScoreErr(); err != nil && sess.NewHighScore() {
		m.logger.Warn("could not update high score", "score", sess.Score(), "error", err)
	}
	if m.store == nil || sess.Score() <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  sess.Score(),
		Lines:  sess.Lines(),
		Level:  sess.Level(),
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Debug("score saved", "player", m.player, "score", entry.Score, "lines", entry.Lines)
}

// saveScreenshot writes the current frame to ~/.tetris/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local game.
func Run(game *tetris.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, store, logger, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
