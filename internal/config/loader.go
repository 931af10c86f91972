package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, Source, error) {
	var cfg SnakeConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err = parseSnake(data)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSnake(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parseSnake(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseSnake decodes YAML on top of the built-in defaults, so partial files
// only override the keys they set.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Speed.MoveEveryTicks = 9
	case DifficultyHard:
		cfg.Speed.MoveEveryTicks = 4
	}
	if cfg.Speed.MinMoveEveryTicks > cfg.Speed.MoveEveryTicks {
		cfg.Speed.MinMoveEveryTicks = cfg.Speed.MoveEveryTicks
	}
}
