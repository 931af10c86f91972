// snake is a terminal Snake game built on a deterministic board engine.
//
// Usage:
//
//	snake list               - List available boards
//	snake play [game]        - Play (default: snake)
//	snake sim                - Run a headless autopilot game and print the result
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible food placement
//	--config <path>        - Use a custom snake.yaml
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Snake is the classic grid game: steer the snake, eat food, and avoid
walls and your own body.

Available commands:
  list     - Show the available boards
  play     - Play a game
  sim      - Run a headless game driven by the autopilot

Examples:
  snake play
  snake play snake_tiny --difficulty hard
  snake sim --seed 42 --moves 500`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	logger.SetOutput(cmd.ErrOrStderr())
	return nil
}

// loadConfig resolves the snake configuration from --config and
// --difficulty and hands it to the game package.
func loadConfig() (config.SnakeConfig, error) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Debug("config loaded", "source", source, "preset", preset,
		"rows", cfg.Board.Rows, "cols", cfg.Board.Cols, "move_every", cfg.Speed.MoveEveryTicks)
	snake.SetConfig(cfg)
	return cfg, nil
}
