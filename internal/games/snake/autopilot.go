package snake

import (
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var allDirections = [...]core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

// Autopilot steers a board greedily toward the food while refusing moves that
// collide on the next tick. It is used by the headless simulator and in tests
// to drive long games.
type Autopilot struct{}

// Next returns the direction the autopilot wants for the next Advance.
// When every move is fatal it keeps the current heading.
func (Autopilot) Next(b *Board) core.Direction {
	current := b.lastDirection()
	head := b.Head()
	food, hasFood := b.Food()

	best := current
	bestScore := math.MaxInt
	for _, d := range allDirections {
		if d == current.Opposite() {
			continue
		}
		next := head.Translate(d)
		if hit := b.willHit(next); hit == CellOutside || hit == CellSnake {
			continue
		}

		score := 0
		if hasFood {
			score = manhattan(next, food) * 4
		}
		score -= b.exits(next, head)
		if d == current {
			score-- // Prefer going straight on ties
		}
		if score < bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

// Steer queues the autopilot's choice on the board.
func (a Autopilot) Steer(b *Board) {
	b.ChangeDirection(a.Next(b))
}

// exits counts the free neighbours of pos, ignoring the cell we came from.
func (b *Board) exits(pos, from core.Position) int {
	n := 0
	for _, d := range allDirections {
		next := pos.Translate(d)
		if next == from {
			continue
		}
		if hit := b.willHit(next); hit == CellEmpty || hit == CellFood {
			n++
		}
	}
	return n
}

func manhattan(a, b core.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
