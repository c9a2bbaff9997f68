package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickRate   int           // Frames per second requested from the shell (default 60)
	HoldWindow time.Duration // How long a key press counts as held
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		HoldWindow: 150 * time.Millisecond,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Lives counter
	GameOver bool // Whether the game has ended (lost or cleared)
	Won      bool // Whether the game ended with every block destroyed
}

// Event is something notable that happened during a tick. Attrs are
// alternating key/value pairs suitable for structured logging.
type Event struct {
	Name  string
	Attrs []any
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
