package core

// DefaultTickRate is the platform tick rate when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset.
// Rows and Cols override the board size from configuration when both are set.
type RuntimeConfig struct {
	Rows     int
	Cols     int
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second
	Seed     int64 // RNG seed; the platform replaces 0 with a time-based seed
}

// WithDefaults fills unset screen and tick fields.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = 80
	}
	if c.ScreenH <= 0 {
		c.ScreenH = 24
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	Length   int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each platform tick.
type StepResult struct {
	State GameState
	Moved bool // The board advanced during this tick
}
