package snake

import (
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateWaiting   GameStateType = "waiting"
	StateCountdown GameStateType = "countdown"
	StatePlaying   GameStateType = "playing"
	StatePaused    GameStateType = "paused"
	StateGameOver  GameStateType = "game_over"
	StateTooSmall  GameStateType = "board_too_small"
)

// Snapshot captures the complete board state for determinism testing and replay.
type Snapshot struct {
	Rows     int
	Cols     int
	Score    int
	SnakeLen int
	Head     core.Position
	Tail     core.Position
	Dir      core.Direction
	Pending  int
	Food     core.Position
	HasFood  bool
	Outcome  Outcome
	GameOver bool
}

// Snapshot returns the current board snapshot for determinism verification.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Rows:     b.rows,
		Cols:     b.cols,
		Score:    b.score,
		SnakeLen: len(b.body),
		Head:     b.Head(),
		Tail:     b.Tail(),
		Dir:      b.direction,
		Pending:  len(b.pending),
		Food:     b.food,
		HasFood:  b.hasFood,
		Outcome:  b.lastOutcome,
		GameOver: b.gameOver,
	}
}

// String renders the board as ASCII, one line per row: '.' empty, 'o' body,
// '@' head, '*' food.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)

	head := b.Head()
	for r := range b.grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, cell := range b.grid[r] {
			switch {
			case head == core.Pos(r, c):
				sb.WriteByte('@')
			case cell == CellSnake:
				sb.WriteByte('o')
			case cell == CellFood:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
