package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 screen at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// Ticks converts a duration in milliseconds to simulation ticks, never less than one.
func (c RuntimeConfig) Ticks(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 30
	}
	t := ms * rate / 1000
	if t < 1 {
		return 1
	}
	return t
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Session reached its terminal phase
	Paused   bool   // Timers are frozen
	Exit     bool   // Game asked to return to the menu
	Status   string // Short status line for the frame footer
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
