package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the current terminal.

Controls:
  Left/H, Right/L  - Move
  Up/K/X           - Rotate
  Down/J           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  Enter/R          - Start, or restart after game over
  Ctrl+S           - Save a screenshot to ~/.tetris/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start and gentler speed-up
  normal - Default rules
  hard   - Faster start and a lower speed floor
  fixed  - Speed never increases

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with your scores")
}

func runPlay(_ *cobra.Command, _ []string) error {
	rulesCfg, err := loadRules(flagDifficulty)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if f, fileErr := openLogFile(); fileErr == nil {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "tetris")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	var scores tetris.HighScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
		scores = store.HighScores(tetris.GameID)
	}

	game := tetris.New(rulesCfg.Rules(), scores)
	logger.Debug("starting game", "difficulty", flagDifficulty, "seed", flagSeed, "size", []int{width, height})

	return tui.Run(game, store, logger, cfg, tui.PlayerName(flagPlayer))
}
