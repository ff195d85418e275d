// Package config provides YAML-based game configuration loading and
// difficulty presets for termtris.
package config

import "fmt"

// TetrisConfig contains all configuration for a Tetris session.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Rules   TetrisRules   `yaml:"rules"`
	Gravity TetrisGravity `yaml:"gravity"`
	Pieces  TetrisPieces  `yaml:"pieces"`
}

// TetrisBoard defines the playfield size in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisRules defines scoring and level progression.
type TetrisRules struct {
	StartLevel      int   `yaml:"start_level"`
	LinesPerLevel   int   `yaml:"lines_per_level"`
	LineClearPoints []int `yaml:"line_clear_points"` // index = rows cleared in one lock (0-4)
	DropBonus       int   `yaml:"drop_bonus"`        // points per row of a quick-drop
}

// TetrisGravity defines the gravity timer bounds.
type TetrisGravity struct {
	MinIntervalMs int `yaml:"min_interval_ms"`
}

// TetrisPieces defines how pieces are generated and shown.
type TetrisPieces struct {
	Randomizer string `yaml:"randomizer"` // "uniform" or "bag"
	Preview    bool   `yaml:"preview"`
}

// Validate rejects values no session can be played with.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return fmt.Errorf("config: board %dx%d must be at least 4x4", c.Board.Width, c.Board.Height)
	}
	if c.Board.Width > 40 || c.Board.Height > 60 {
		return fmt.Errorf("config: board %dx%d is larger than 40x60", c.Board.Width, c.Board.Height)
	}
	if c.Rules.StartLevel < 1 {
		return fmt.Errorf("config: rules.start_level must be >= 1, got %d", c.Rules.StartLevel)
	}
	if c.Rules.LinesPerLevel < 1 {
		return fmt.Errorf("config: rules.lines_per_level must be >= 1, got %d", c.Rules.LinesPerLevel)
	}
	if len(c.Rules.LineClearPoints) != 5 {
		return fmt.Errorf("config: rules.line_clear_points needs 5 values, got %d", len(c.Rules.LineClearPoints))
	}
	for i := 1; i < len(c.Rules.LineClearPoints); i++ {
		if c.Rules.LineClearPoints[i] <= c.Rules.LineClearPoints[i-1] {
			return fmt.Errorf("config: rules.line_clear_points must be strictly increasing")
		}
	}
	if c.Rules.DropBonus < 0 {
		return fmt.Errorf("config: rules.drop_bonus must be >= 0, got %d", c.Rules.DropBonus)
	}
	if c.Gravity.MinIntervalMs < 1 {
		return fmt.Errorf("config: gravity.min_interval_ms must be >= 1, got %d", c.Gravity.MinIntervalMs)
	}
	switch c.Pieces.Randomizer {
	case "uniform", "bag":
	default:
		return fmt.Errorf("config: pieces.randomizer must be uniform or bag, got %q", c.Pieces.Randomizer)
	}
	return nil
}
