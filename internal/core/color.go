package core

// Color names the role of a screen cell. The terminal layer maps each role
// to a concrete style, so games never deal with ANSI codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorFloor // empty board cells
	ColorBorder
	ColorHUD
	ColorOverlay
	ColorDanger
)
