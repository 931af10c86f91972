package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Press any key to begin; the snake starts after a short countdown.

Controls:
  Arrows/WASD/hjkl  - Turn
  P/Esc             - Pause
  Any key           - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow snake, speeds up as you score
  normal - Default pace, speeds up as you score
  hard   - Fast snake from the start
  fixed  - Pace never changes

Examples:
  snake play
  snake play snake_tiny
  snake play --difficulty hard --seed 7
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file while playing")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q (run 'snake list' to see available games)", registry.ErrUnknownGame, gameID)
	}

	if _, err := loadConfig(); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so in-game logs only go to a file
	var gameLogger *log.Logger
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		gameLogger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake/" + gameID,
			Level:           logger.GetLevel(),
		})
	}

	logger.Debug("starting game", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, cfg, gameLogger); err != nil {
		return err
	}

	state := game.State()
	logger.Info("session ended", "game", gameID, "score", state.Score, "game_over", state.GameOver)
	return nil
}
