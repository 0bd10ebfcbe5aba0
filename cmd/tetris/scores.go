package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded games. In a terminal this opens an
interactive table; when piped it prints plain text.

Examples:
  tetris scores
  tetris scores --limit 5 | cat
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and the high score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(tetris.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store)
}

// printScores writes the top scores as plain text.
func printScores(store *storage.Store) error {
	scores, err := store.TopScores(tetris.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tetris' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %-5d  %-5d  %s\n",
			i+1, e.Player, e.Score, e.Lines, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	high, err := store.HighScore(tetris.GameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("High score: %d\n", high)
	return nil
}
