package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the frame driver (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Frames    int  // Frames simulated while playing
	Obstacles int  // Live obstacle count
	Paused    bool // Whether the simulation is frozen
	InMenu    bool // Whether the game sits on its title screen
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State   GameState
	Spawned bool // An obstacle was created during this frame
}
