package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to lay out their view and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Scale   int   // Rendering scale factor (1 = single, 2 = double)
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Scale:   1,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Rows cleared this session
	Level    int  // Current level
	GameOver bool // Whether the session has ended
	Quit     bool // Whether the session ended by player request
}

// StepResult is returned after each processed command or gravity tick.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State    GameState
	Accepted bool // false when the command was rejected and nothing changed
	Locked   bool // a piece was locked into the board
	Cleared  int  // rows cleared by the lock
	Dropped  int  // rows descended by a quick-drop
}
