// tetris is a terminal Tetris game with persistent high scores.
//
// Usage:
//
//	tetris                   - Play in the current terminal
//	tetris play              - Same as above
//	tetris scores            - Show the high score table
//	tetris serve             - Start SSH server for remote play
//	tetris config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible piece sequences
//	--db <path>         - Set database path (default: ~/.tetris/scores.db)
//	--config <path>     - Load game rules from a YAML file
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal Tetris with gravity, line clears, levels and a
persistent high score.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default rules as YAML

Examples:
  tetris
  tetris --difficulty hard
  tetris --seed 42
  tetris serve --ssh :2222
  tetris scores`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.tetris/tetris.log for appending. The TUI owns the
// terminal, so local games log to a file.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".tetris")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "tetris.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadRules reads the rules config and applies the difficulty preset.
func loadRules(difficulty string) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyTetrisPreset(&cfg, preset)
	return cfg, cfg.Validate()
}
