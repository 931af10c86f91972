package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board size limits. The initial snake occupies columns 1-3 of the middle row.
const (
	MinRows = 1
	MinCols = 4

	// MaxPendingDirections bounds the direction-change buffer.
	MaxPendingDirections = 2

	initialLength = 3
)

// ErrBoardTooSmall is returned by NewBoard when the board cannot host the
// initial snake.
var ErrBoardTooSmall = errors.New("snake: board too small")

// Cell is the content of one board cell.
type Cell int

const (
	CellEmpty Cell = iota
	CellSnake
	CellFood
	CellOutside // Derived during collision checks, never stored in the grid
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellFood:
		return "food"
	case CellOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// Outcome describes what the most recent Advance did.
type Outcome int

const (
	OutcomeNone     Outcome = iota // No Advance yet, or the game was already over
	OutcomeMoved                   // Moved into an empty cell
	OutcomeAte                     // Moved into food and grew
	OutcomeCollided                // Hit a wall or the body; the game is over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	default:
		return "none"
	}
}

// Option configures a Board at construction.
type Option func(*Board)

// WithSeed makes food placement deterministic.
func WithSeed(seed int64) Option {
	return func(b *Board) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses rng for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) {
		b.rng = rng
	}
}

// Board is the snake rules engine. It owns the grid, the snake body, the
// pending direction queue, the score and the game-over flag.
//
// The grid and the body list are two views of the same snake and are updated
// together on every mutation. Board is not safe for concurrent use; callers
// that tick and steer from different goroutines must serialize access.
type Board struct {
	rows int
	cols int
	grid [][]Cell
	body []core.Position // Head at index 0, tail last

	direction core.Direction
	pending   []core.Direction

	food    core.Position
	hasFood bool

	rng         *rand.Rand
	score       int
	gameOver    bool
	lastOutcome Outcome
}

// NewBoard creates a rows x cols board with a three-segment snake on the
// middle row at columns 1-3 heading right, and one piece of food.
func NewBoard(rows, cols int, opts ...Option) (*Board, error) {
	if rows < MinRows || cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrBoardTooSmall, rows, cols, MinRows, MinCols)
	}

	b := &Board{
		rows:      rows,
		cols:      cols,
		direction: core.DirRight,
		pending:   make([]core.Direction, 0, MaxPendingDirections),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b.grid = make([][]Cell, rows)
	for r := range b.grid {
		b.grid[r] = make([]Cell, cols)
	}

	b.placeSnake()
	b.placeFood()

	return b, nil
}

// placeSnake lays the initial snake left to right, each segment becoming the
// new head, so column 3 ends up as the head and column 1 as the tail.
func (b *Board) placeSnake() {
	r := b.rows / 2
	for c := 1; c <= initialLength; c++ {
		b.addHead(core.Pos(r, c))
	}
}

// addHead pushes pos to the front of the body and marks it on the grid.
func (b *Board) addHead(pos core.Position) {
	b.body = append(b.body, core.Position{})
	copy(b.body[1:], b.body)
	b.body[0] = pos
	b.grid[pos.Row][pos.Col] = CellSnake
}

// removeTail drops the last segment from the body and clears its cell.
func (b *Board) removeTail() {
	tail := b.body[len(b.body)-1]
	b.grid[tail.Row][tail.Col] = CellEmpty
	b.body = b.body[:len(b.body)-1]
}

// emptyCells lists every empty cell in row-major order.
func (b *Board) emptyCells() []core.Position {
	var empty []core.Position
	for r := range b.grid {
		for c, cell := range b.grid[r] {
			if cell == CellEmpty {
				empty = append(empty, core.Pos(r, c))
			}
		}
	}
	return empty
}

// placeFood puts food on a uniformly random empty cell. A full board gets no food.
func (b *Board) placeFood() {
	empty := b.emptyCells()
	if len(empty) == 0 {
		b.hasFood = false
		return
	}

	pos := empty[b.rng.Intn(len(empty))]
	b.grid[pos.Row][pos.Col] = CellFood
	b.food = pos
	b.hasFood = true
}

// lastDirection is the direction new requests are checked against: the most
// recently queued one, or the committed direction when nothing is queued.
func (b *Board) lastDirection() core.Direction {
	if len(b.pending) == 0 {
		return b.direction
	}
	return b.pending[len(b.pending)-1]
}

func (b *Board) canChangeDirection(d core.Direction) bool {
	if !d.Valid() || len(b.pending) >= MaxPendingDirections {
		return false
	}
	last := b.lastDirection()
	return d != last && d != last.Opposite()
}

// ChangeDirection queues a turn to be applied on a later Advance. Requests that
// repeat or reverse the last queued direction, or overflow the queue, are
// dropped silently.
func (b *Board) ChangeDirection(d core.Direction) {
	if b.gameOver {
		return
	}
	if b.canChangeDirection(d) {
		b.pending = append(b.pending, d)
	}
}

// willHit classifies the cell the head is about to enter. The current tail
// counts as empty because it vacates its cell on the same tick.
func (b *Board) willHit(pos core.Position) Cell {
	if !pos.In(b.rows, b.cols) {
		return CellOutside
	}
	if pos == b.Tail() {
		return CellEmpty
	}
	return b.grid[pos.Row][pos.Col]
}

// Advance moves the snake one cell. It is a no-op once the game is over.
func (b *Board) Advance() {
	if b.gameOver {
		return
	}

	if len(b.pending) > 0 {
		b.direction = b.pending[0]
		b.pending = append(b.pending[:0], b.pending[1:]...)
	}

	newHead := b.Head().Translate(b.direction)

	switch b.willHit(newHead) {
	case CellOutside, CellSnake:
		b.gameOver = true
		b.lastOutcome = OutcomeCollided
	case CellEmpty:
		b.removeTail()
		b.addHead(newHead)
		b.lastOutcome = OutcomeMoved
	case CellFood:
		b.addHead(newHead)
		b.hasFood = false
		b.score++
		b.placeFood()
		b.lastOutcome = OutcomeAte
	}
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

// Head returns the position of the snake's head.
func (b *Board) Head() core.Position {
	return b.body[0]
}

// Tail returns the position of the snake's last segment.
func (b *Board) Tail() core.Position {
	return b.body[len(b.body)-1]
}

// Body returns a copy of the snake's segments, head first.
func (b *Board) Body() []core.Position {
	body := make([]core.Position, len(b.body))
	copy(body, b.body)
	return body
}

// Len returns the number of segments.
func (b *Board) Len() int {
	return len(b.body)
}

// Cell returns the content at pos, or CellOutside for positions off the board.
func (b *Board) Cell(pos core.Position) Cell {
	if !pos.In(b.rows, b.cols) {
		return CellOutside
	}
	return b.grid[pos.Row][pos.Col]
}

// Grid returns a copy of the board, indexed [row][col].
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, b.rows)
	for r := range b.grid {
		grid[r] = make([]Cell, b.cols)
		copy(grid[r], b.grid[r])
	}
	return grid
}

// Food returns the food position. ok is false when the board is full.
func (b *Board) Food() (pos core.Position, ok bool) {
	return b.food, b.hasFood
}

// Direction returns the committed movement direction.
func (b *Board) Direction() core.Direction {
	return b.direction
}

// Pending returns a copy of the queued direction changes, oldest first.
func (b *Board) Pending() []core.Direction {
	pending := make([]core.Direction, len(b.pending))
	copy(pending, b.pending)
	return pending
}

// Score returns the number of food items eaten.
func (b *Board) Score() int {
	return b.score
}

// GameOver reports whether the snake has collided.
func (b *Board) GameOver() bool {
	return b.gameOver
}

// LastOutcome returns what the most recent effective Advance did.
func (b *Board) LastOutcome() Outcome {
	return b.lastOutcome
}
