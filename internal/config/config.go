// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"errors"
	"fmt"
)

// Smallest board that can hold the initial three-segment snake at columns 1-3.
const (
	MinBoardRows = 1
	MinBoardCols = 4
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	Speed      SnakeSpeed       `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeBoard defines the grid dimensions.
type SnakeBoard struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SnakeSpeed defines pacing in simulation ticks. The board itself has no
// notion of time; these values decide how often the platform advances it.
type SnakeSpeed struct {
	MoveEveryTicks    int `yaml:"move_every_ticks"`     // Ticks between moves at the start
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"` // Fastest pace at max difficulty
	CountdownTicks    int `yaml:"countdown_ticks"`      // Delay before the first move
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // One of the Progression* constants
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// Validate reports the first problem that would make the game misbehave.
func (c SnakeConfig) Validate() error {
	if c.Board.Rows < MinBoardRows || c.Board.Cols < MinBoardCols {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Board.Rows, c.Board.Cols, MinBoardRows, MinBoardCols)
	}
	if c.Speed.MoveEveryTicks <= 0 {
		return fmt.Errorf("%w: speed.move_every_ticks must be positive, got %d", ErrInvalidConfig, c.Speed.MoveEveryTicks)
	}
	if c.Speed.MinMoveEveryTicks <= 0 || c.Speed.MinMoveEveryTicks > c.Speed.MoveEveryTicks {
		return fmt.Errorf("%w: speed.min_move_every_ticks must be in [1, %d], got %d",
			ErrInvalidConfig, c.Speed.MoveEveryTicks, c.Speed.MinMoveEveryTicks)
	}
	if c.Speed.CountdownTicks < 0 {
		return fmt.Errorf("%w: speed.countdown_ticks must not be negative", ErrInvalidConfig)
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressionNone, ProgressionScore, ProgressionTime:
	default:
		return fmt.Errorf("%w: unknown difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input yields an empty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
