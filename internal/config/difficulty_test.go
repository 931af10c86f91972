package config

import "testing"

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressionScore, MaxAt: 10},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{5, 0.5},
		{10, 1.0},
		{50, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyLevelByTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: ProgressionTime, MaxAt: 100},
	})

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected 0.5", got)
	}
	if got := d.Level(0, 100); got != 1.0 {
		t.Errorf("Level at max = %v, expected 1.0", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: ProgressionScore, MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("Manager should be disabled")
	}
	if got := d.Level(100, 100); got != 0.3 {
		t.Errorf("Disabled level = %v, expected initial 0.3", got)
	}

	d = NewDifficultyManager(DifficultyConfig{InitialLevel: 2.0})
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("Initial level should clamp to 1.0, got %v", got)
	}
}

func TestMoveEveryTicks(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressionScore, MaxAt: 10},
	})

	tests := []struct {
		score    int
		expected int
	}{
		{0, 6},
		{5, 4}, // 6 - round(1.5)
		{10, 3},
		{99, 3},
	}

	for _, tc := range tests {
		if got := d.MoveEveryTicks(6, 3, tc.score, 0); got != tc.expected {
			t.Errorf("MoveEveryTicks(score=%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}

	if got := d.MoveEveryTicks(4, 8, 10, 0); got != 4 {
		t.Errorf("Fastest slower than slowest should clamp, got %d", got)
	}
}
