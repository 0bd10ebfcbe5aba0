package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default rules as YAML",
	Long: `Print the built-in rules. Save the output to
~/.tetris/configs/tetris.yaml or ./configs/tetris.yaml and edit it,
or pass a file with --config.

Example:
  tetris config > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
