// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Position is a cell coordinate on the board. Row grows downwards, Col grows
// to the right. Equality is structural, so Positions can be compared with ==.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Translate returns the position adjacent to p in direction d.
func (p Position) Translate(d Direction) Position {
	delta := d.Delta()
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// In reports whether p lies inside a rows x cols board.
func (p Position) In(rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirNone Direction = iota // zero value, never a valid movement
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse direction (Up<->Down, Left<->Right).
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() Position {
	switch d {
	case DirUp:
		return Position{Row: -1}
	case DirDown:
		return Position{Row: 1}
	case DirLeft:
		return Position{Col: -1}
	case DirRight:
		return Position{Col: 1}
	}
	return Position{}
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
