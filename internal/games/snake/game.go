package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const hudHeight = 2

// gameConfig is the configuration used by Reset. Set it from the CLI before
// creating a game through the registry.
var gameConfig = config.DefaultSnakeConfig()

// SetConfig replaces the configuration used by subsequently reset games.
func SetConfig(cfg config.SnakeConfig) {
	gameConfig = cfg
}

// Game drives a Board from platform ticks: it waits for a key, counts down,
// forwards turns, and advances the board every few ticks. Restarting after
// game over builds a brand new Board.
type Game struct {
	id    string
	title string
	rows  int // Fixed board size for presets; 0 means use config
	cols  int

	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand

	board    *Board
	boardErr error

	tick           uint64
	moveTicker     int
	moveEveryTicks int
	countdown      int
	started        bool
	paused         bool
	best           int // Highest score this session; survives restarts
}

// New creates a Snake game sized by configuration.
func New() *Game {
	return &Game{id: "snake", title: "Snake"}
}

// NewTiny creates a Snake game on a fixed 8x10 board.
func NewTiny() *Game {
	return &Game{id: "snake_tiny", title: "Snake (Tiny)", rows: 8, cols: 10}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_tiny", func() registry.Game {
		return NewTiny()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// boardSize picks the runtime override, then the preset, then the config.
func (g *Game) boardSize() (rows, cols int) {
	switch {
	case g.runtime.Rows > 0 && g.runtime.Cols > 0:
		return g.runtime.Rows, g.runtime.Cols
	case g.rows > 0 && g.cols > 0:
		return g.rows, g.cols
	default:
		return g.cfg.Board.Rows, g.cfg.Board.Cols
	}
}

// Reset starts a new game on a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.cfg = gameConfig
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	rows, cols := g.boardSize()
	g.board, g.boardErr = NewBoard(rows, cols, WithRand(g.rng))

	g.tick = 0
	g.moveTicker = 0
	g.moveEveryTicks = g.pace(0)
	g.countdown = g.cfg.Speed.CountdownTicks
	g.started = false
	g.paused = false
}

// Err returns the configuration error from the last Reset, if any.
func (g *Game) Err() error {
	return g.boardErr
}

// Board returns the board of the current game. Nil when Err is set.
func (g *Game) Board() *Board {
	return g.board
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.board == nil {
		return core.StepResult{State: g.State()}
	}

	// Any key after game over starts a new game
	if g.board.GameOver() {
		if pressed(input) {
			g.runtime.Seed = g.rng.Int63()
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	// The first key press only starts the countdown
	if !g.started {
		if pressed(input) {
			g.started = true
		}
		return core.StepResult{State: g.State()}
	}

	if g.countdown > 0 {
		g.countdown--
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, d := range input.Directions() {
		g.board.ChangeDirection(d)
	}

	moved := false
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.board.Advance()
		g.best = max(g.best, g.board.Score())
		moved = true
		g.moveEveryTicks = g.pace(g.board.Score())
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

func pressed(input core.InputFrame) bool {
	return !input.Empty() && !input.Has(core.ActionQuit)
}

// pace is the number of ticks between moves at the given score.
func (g *Game) pace(score int) int {
	return max(1, g.difficulty.MoveEveryTicks(
		g.cfg.Speed.MoveEveryTicks, g.cfg.Speed.MinMoveEveryTicks, score, int(g.tick)))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		Length:   g.board.Len(),
		GameOver: g.board.GameOver(),
		Paused:   g.paused,
	}
}

// Phase reports which screen the game is on.
func (g *Game) Phase() GameStateType {
	switch {
	case g.board == nil:
		return StateTooSmall
	case g.board.GameOver():
		return StateGameOver
	case !g.started:
		return StateWaiting
	case g.countdown > 0:
		return StateCountdown
	case g.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

// Best returns the highest score reached since the game was created.
func (g *Game) Best() int {
	return g.best
}

// MoveEveryTicks returns the current pace.
func (g *Game) MoveEveryTicks() int {
	return g.moveEveryTicks
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.board == nil {
		g.renderOverlay(dst, core.ColorDanger, "Board too small", fmt.Sprint(g.boardErr))
		return
	}

	// Two screen columns per cell keep the board roughly square
	boardW := g.board.Cols()*2 + 1
	boardH := g.board.Rows()
	if dst.Width() < boardW+2 || dst.Height() < boardH+hudHeight+2 {
		g.renderOverlay(dst, core.ColorDanger, "Window too small", fmt.Sprintf("Need %dx%d", boardW+2, boardH+hudHeight+2))
		return
	}

	offsetX := (dst.Width() - boardW - 2) / 2
	offsetY := hudHeight
	dst.DrawBoxColor(core.NewRect(offsetX, offsetY, boardW+2, boardH+2), core.ColorBorder)
	g.renderBoard(dst, offsetX+2, offsetY+1)

	switch g.Phase() {
	case StateWaiting:
		g.renderOverlay(dst, core.ColorOverlay, "Snake", "Press any key to start")
	case StateCountdown:
		g.renderOverlay(dst, core.ColorOverlay, fmt.Sprintf("%d", g.countdownDigit()), "Get ready")
	case StatePaused:
		g.renderOverlay(dst, core.ColorOverlay, "Paused", "Press P to continue")
	case StateGameOver:
		g.renderOverlay(dst, core.ColorDanger, "Game Over", fmt.Sprintf("Score: %d  Press any key to restart", g.board.Score()))
	}
}

// countdownDigit is the number shown during the countdown: one digit per
// half second, counting down to 1.
func (g *Game) countdownDigit() int {
	step := max(1, g.runtime.WithDefaults().TickRate/2)
	return (g.countdown + step - 1) / step
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s", g.title)
	if g.board != nil {
		hud = fmt.Sprintf(" %s | Score: %d  Best: %d  Length: %d  Speed: %d",
			g.title, g.board.Score(), g.best, g.board.Len(), g.cfg.Speed.MoveEveryTicks-g.moveEveryTicks+1)
	}
	dst.DrawTextColor(0, 0, hud, core.ColorHUD)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws every cell of the board with its top-left corner at (x, y).
func (g *Game) renderBoard(dst *core.Screen, x, y int) {
	grid := g.board.Grid()
	head := g.board.Head()
	headRune, headColor, bodyColor := headGlyph(g.board.Direction()), core.ColorSnakeHead, core.ColorSnakeBody
	if g.board.GameOver() {
		headRune, headColor, bodyColor = 'x', core.ColorDanger, core.ColorDanger
	}
	for r, row := range grid {
		for c, cell := range row {
			sx := x + c*2
			sy := y + r
			switch {
			case core.Pos(r, c) == head:
				dst.SetColor(sx, sy, headRune, headColor)
			case cell == CellSnake:
				dst.SetColor(sx, sy, 'o', bodyColor)
			case cell == CellFood:
				dst.SetColor(sx, sy, '●', core.ColorFood)
			default:
				dst.SetColor(sx, sy, '·', core.ColorFloor)
			}
		}
	}
}

// headGlyph points the head the way the snake is moving.
func headGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '▲'
	case core.DirDown:
		return '▼'
	case core.DirLeft:
		return '◀'
	default:
		return '▶'
	}
}

// renderOverlay draws a centered two-line message box. On screens too
// narrow for the box it is pinned to the left edge below the HUD.
func (g *Game) renderOverlay(dst *core.Screen, title core.Color, line1, line2 string) {
	w1, w2 := len([]rune(line1)), len([]rune(line2))
	boxW, boxH := max(w1, w2)+4, 5
	x := core.Clamp((dst.Width()-boxW)/2, 0, dst.Width()-boxW)
	y := core.Clamp((dst.Height()-boxH)/2, hudHeight, dst.Height()-boxH)
	box := core.NewRect(x, y, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(box.W-w1)/2, box.Y+1, line1, title)
	dst.DrawText(box.X+(box.W-w2)/2, box.Y+3, line2)
}
