package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Frontend frame rate
	Seed    int64 // RNG seed for piece selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the status the platform shows around the playfield.
type GameState struct {
	Score    int    // Current score
	Lines    int    // Rows cleared this game
	Mode     string // Human-readable mode name ("menu", "playing", "game over")
	GameOver bool
	Paused   bool
	InMenu   bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State      GameState
	Locked     bool // A piece settled this frame
	Cleared    int  // Rows cleared this frame
	ScoreDelta int
	ToppedOut  bool
}
