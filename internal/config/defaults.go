package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration: a 15x15 board
// moving every 100ms at 60 ticks per second after a 3-2-1 countdown of
// half a second per digit.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Rows: 15,
			Cols: 15,
		},
		Speed: SnakeSpeed{
			MoveEveryTicks:    6,
			MinMoveEveryTicks: 3,
			CountdownTicks:    90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 40,
			},
		},
	}
}
