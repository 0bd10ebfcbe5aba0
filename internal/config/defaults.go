package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Timing: TimingConfig{
			InitialDropMs: 1000,
			MinDropMs:     100,
			DropStepMs:    100,
		},
		Scoring: ScoringConfig{
			LinePoints:     []int{0, 100, 300, 500, 800},
			SoftDropPoints: 1,
			HardDropPoints: 2,
			LinesPerLevel:  10,
		},
		Rotation: RotationConfig{
			WallKicks: []int{1, -1, 2, -2},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
