package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Rules: TetrisRules{
			StartLevel:      1,
			LinesPerLevel:   10,
			LineClearPoints: []int{0, 100, 300, 500, 800},
			DropBonus:       2,
		},
		Gravity: TetrisGravity{
			MinIntervalMs: 50,
		},
		Pieces: TetrisPieces{
			Randomizer: "uniform",
			Preview:    true,
		},
	}
}
