package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// StartLevelForPreset returns the level a preset starts at. Gravity and the
// line-clear multiplier both follow the level.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 10
	default:
		return 0 // keep the configured level
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Easy also switches to the bag randomizer, which avoids long droughts.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if lvl := StartLevelForPreset(preset); lvl > 0 {
		cfg.Rules.StartLevel = lvl
	}
	if preset == DifficultyEasy {
		cfg.Pieces.Randomizer = "bag"
	}
}
