package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSnakeConfigIsValid(t *testing.T) {
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Fatalf("Default config should be valid, got %v", err)
	}
	// 3-2-1 at half a second per digit, 60 ticks per second
	if got := DefaultSnakeConfig().Speed.CountdownTicks; got != 90 {
		t.Errorf("CountdownTicks = %d, expected 90", got)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("Embedded YAML should parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Embedded YAML = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SnakeConfig)
		valid  bool
	}{
		{"default", func(*SnakeConfig) {}, true},
		{"minimal board", func(c *SnakeConfig) { c.Board = SnakeBoard{Rows: 1, Cols: 4} }, true},
		{"zero rows", func(c *SnakeConfig) { c.Board.Rows = 0 }, false},
		{"three cols", func(c *SnakeConfig) { c.Board.Cols = 3 }, false},
		{"zero move ticks", func(c *SnakeConfig) { c.Speed.MoveEveryTicks = 0 }, false},
		{"min faster than zero", func(c *SnakeConfig) { c.Speed.MinMoveEveryTicks = 0 }, false},
		{"min slower than start", func(c *SnakeConfig) { c.Speed.MinMoveEveryTicks = 10 }, false},
		{"negative countdown", func(c *SnakeConfig) { c.Speed.CountdownTicks = -1 }, false},
		{"bad progression", func(c *SnakeConfig) { c.Difficulty.Progression.Type = "lines" }, false},
		{"no progression", func(c *SnakeConfig) { c.Difficulty.Progression.Type = "none" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tc.valid {
				if err == nil {
					t.Error("Expected validation error")
				} else if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Error should wrap ErrInvalidConfig, got %v", err)
				}
			}
		})
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  rows: 20\n  cols: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("Source = %s, expected %s", src, SourceCustom)
	}
	if cfg.Board.Rows != 20 || cfg.Board.Cols != 30 {
		t.Errorf("Board = %+v, expected 20x30", cfg.Board)
	}
	// Keys missing from the file keep their defaults
	if cfg.Speed != DefaultSnakeConfig().Speed {
		t.Errorf("Speed = %+v, expected defaults", cfg.Speed)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	if _, _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadSnake(path); err == nil {
		t.Error("Malformed custom config should fail")
	}
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("Source = %s, expected %s", src, SourceEmbedded)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Config = %+v, expected defaults", cfg)
	}
}

func TestLoadSnakeLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("board:\n  rows: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if src != SourceLocal {
		t.Errorf("Source = %s, expected %s", src, SourceLocal)
	}
	if cfg.Board.Rows != 9 {
		t.Errorf("Rows = %d, expected 9", cfg.Board.Rows)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(insane) should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestApplySnakePreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}
	for _, p := range []DifficultyPreset{"", DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if IsFixedPreset(p) {
			t.Errorf("IsFixedPreset(%q) should be false", p)
		}
	}

	cfg = DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Speed.MoveEveryTicks != 4 {
		t.Errorf("Hard preset should move every 4 ticks, got %d", cfg.Speed.MoveEveryTicks)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Preset config should stay valid: %v", err)
	}

	cfg = DefaultSnakeConfig()
	ApplySnakePreset(&cfg, "")
	if cfg != DefaultSnakeConfig() {
		t.Error("Empty preset should not change the config")
	}
}
