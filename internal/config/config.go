// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris engine.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// TetrisConfig contains all tunable rules of a tetris session.
type TetrisConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Rotation RotationConfig `yaml:"rotation"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the gravity speed curve.
type TimingConfig struct {
	InitialDropMs int `yaml:"initial_drop_ms"` // Interval at level 1
	MinDropMs     int `yaml:"min_drop_ms"`     // Floor reached at high levels
	DropStepMs    int `yaml:"drop_step_ms"`    // Reduction per level, 0 keeps a fixed speed
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LinePoints     []int `yaml:"line_points"` // Indexed by rows cleared at once
	SoftDropPoints int   `yaml:"soft_drop_points"`
	HardDropPoints int   `yaml:"hard_drop_points"`
	LinesPerLevel  int   `yaml:"lines_per_level"`
}

// RotationConfig defines the wall-kick offsets tried after a blocked rotation.
type RotationConfig struct {
	WallKicks []int `yaml:"wall_kicks"`
}

// Validate reports the first setting that would make the game unplayable.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Rows < 4 || c.Board.Cols < 4:
		return fmt.Errorf("config: board must be at least 4x4, got %dx%d", c.Board.Rows, c.Board.Cols)
	case c.Timing.InitialDropMs <= 0:
		return errors.New("config: timing.initial_drop_ms must be positive")
	case c.Timing.MinDropMs <= 0:
		return errors.New("config: timing.min_drop_ms must be positive")
	case c.Timing.MinDropMs > c.Timing.InitialDropMs:
		return errors.New("config: timing.min_drop_ms exceeds initial_drop_ms")
	case c.Timing.DropStepMs < 0:
		return errors.New("config: timing.drop_step_ms must not be negative")
	case len(c.Scoring.LinePoints) == 0:
		return errors.New("config: scoring.line_points is empty")
	case c.Scoring.LinesPerLevel <= 0:
		return errors.New("config: scoring.lines_per_level must be positive")
	case c.Scoring.SoftDropPoints < 0 || c.Scoring.HardDropPoints < 0:
		return errors.New("config: drop points must not be negative")
	}
	return nil
}

// Rules converts the configuration into engine rules.
func (c TetrisConfig) Rules() tetris.Rules {
	return tetris.Rules{
		Rows:           c.Board.Rows,
		Cols:           c.Board.Cols,
		InitialDropMs:  c.Timing.InitialDropMs,
		MinDropMs:      c.Timing.MinDropMs,
		DropStepMs:     c.Timing.DropStepMs,
		LinePoints:     append([]int(nil), c.Scoring.LinePoints...),
		SoftDropPoints: c.Scoring.SoftDropPoints,
		HardDropPoints: c.Scoring.HardDropPoints,
		LinesPerLevel:  c.Scoring.LinesPerLevel,
		WallKicks:      append([]int(nil), c.Rotation.WallKicks...),
	}
}
