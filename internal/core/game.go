package core

// Game is the interface the platform drives. Games contain pure logic with
// no Bubble Tea dependency; the platform handles input mapping, timing and
// rendering.
type Game interface {
	// ID returns a unique identifier, used for storage keys and the CLI.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *Screen)

	// State returns score and status flags.
	State() GameState

	// Resize adapts to a new screen size without restarting.
	Resize(w, h int)
}
