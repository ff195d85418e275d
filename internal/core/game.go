package core

import "time"

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a short identifier used in logs.
	ID() string

	// Title returns a human-readable name; the shell uses it as the window title.
	Title() string

	// Reset starts a new session.
	// Called once at start and again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Apply processes exactly one player command.
	Apply(a Action) StepResult

	// Step advances the simulation by one gravity tick.
	Step() StepResult

	// Interval returns the delay until the next gravity tick.
	Interval() time.Duration

	// Resize informs the game of new screen dimensions without resetting it.
	Resize(width, height int)

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
