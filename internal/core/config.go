package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second of the platform loop
	Player   string // Name recorded with finished rounds
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Player:   "local",
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	StepsLeft int  // Rotations left in the round
	StepsUsed int  // Rotations spent in the round
	GameOver  bool // Whether the round has ended
	Won       bool // Whether the round ended with a win
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	// RoundEnded is true only on the frame in which the round finished,
	// so the platform records each result once.
	RoundEnded bool
}
