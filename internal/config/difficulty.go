package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyTetrisPreset adjusts the speed curve for a difficulty preset.
// Normal leaves the loaded configuration untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.InitialDropMs = cfg.Timing.InitialDropMs * 3 / 2
		cfg.Timing.DropStepMs = cfg.Timing.DropStepMs * 3 / 4
	case DifficultyHard:
		cfg.Timing.InitialDropMs = cfg.Timing.InitialDropMs * 3 / 5
		cfg.Timing.MinDropMs = max(1, cfg.Timing.MinDropMs/2)
	case DifficultyFixed:
		// Speed never changes with level.
		cfg.Timing.DropStepMs = 0
	}
	if cfg.Timing.MinDropMs > cfg.Timing.InitialDropMs {
		cfg.Timing.MinDropMs = cfg.Timing.InitialDropMs
	}
}
