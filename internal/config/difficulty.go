package config

import "math"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressionNone  = "none"
	ProgressionScore = "score" // max_at counts food eaten
	ProgressionTime  = "time"  // max_at counts platform ticks
)

// DifficultyManager turns score or elapsed ticks into a 0..1 difficulty
// level and the move interval that goes with it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager; the initial level is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: clampF(cfg.InitialLevel, 0, 1)}
}

// IsEnabled reports whether the level changes during a game.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level rises linearly from the initial level to 1 as score (or ticks)
// approach progression.max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		done = score
	case ProgressionTime:
		done = ticks
	default:
		return d.start
	}

	maxAt := float64(max(1, d.cfg.Progression.MaxAt))
	progress := clampF(float64(done)/maxAt, 0, 1)
	return d.start + progress*(1-d.start)
}

// MoveEveryTicks maps the current level onto [fastest, slowest] ticks per
// move: level 0 is slowest, level 1 is fastest.
func (d *DifficultyManager) MoveEveryTicks(slowest, fastest, score, ticks int) int {
	fastest = min(fastest, slowest)
	span := float64(slowest - fastest)
	return max(fastest, slowest-int(math.Round(d.Level(score, ticks)*span)))
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
