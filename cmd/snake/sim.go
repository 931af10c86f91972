package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagMoves int
	flagRows  int
	flagCols  int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game driven by the autopilot",
	Long: `Plays a game without a terminal UI. The autopilot chooses a turn before
every move; the run stops at game over or after --moves moves. The final
snapshot and board are printed. With a fixed --seed the result is reproducible.

Examples:
  snake sim --seed 42
  snake sim --rows 1 --cols 4
  snake sim --rows 30 --cols 40 --moves 5000`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagMoves, "moves", 1000, "Maximum number of moves")
	simCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (0 = from config)")
	simCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (0 = from config)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rows, cols := cfg.Board.Rows, cfg.Board.Cols
	if flagRows > 0 {
		rows = flagRows
	}
	if flagCols > 0 {
		cols = flagCols
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board, err := snake.NewBoard(rows, cols, snake.WithSeed(seed))
	if errors.Is(err, snake.ErrBoardTooSmall) {
		return fmt.Errorf("sim: %dx%d: %w", rows, cols, err)
	}
	if err != nil {
		return err
	}

	logger.Debug("sim started", "rows", rows, "cols", cols, "seed", seed, "moves", flagMoves)

	var pilot snake.Autopilot
	moves := 0
	for moves < flagMoves && !board.GameOver() {
		pilot.Steer(board)
		board.Advance()
		moves++
	}

	snap := board.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed=%d moves=%d score=%d length=%d game_over=%t last=%s\n",
		seed, moves, snap.Score, snap.SnakeLen, snap.GameOver, snap.Outcome)
	fmt.Fprintln(out, board.String())

	logger.Info("sim finished", "seed", seed, "moves", moves, "score", snap.Score, "game_over", snap.GameOver)
	return nil
}
