package core

// RuntimeConfig contains settings the platform passes to a game at start.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second; 0 keeps the game's configured rate
	Seed     int64  // RNG seed; 0 means the platform picks one from the clock
	Player   string // Name recorded with match results
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at the
// game's configured tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Player:   "player",
	}
}

// Status is the platform-facing summary of a game after an event.
type Status struct {
	LeftScore  int  // Built-in opponent
	RightScore int  // Human player
	Started    bool // Whether play has begun
	GameOver   bool // Whether a side reached the end score
	Ticks      int  // Ticks reduced since the last restart
}

// PlayerWon reports whether the human (right) side won a finished game.
func (s Status) PlayerWon() bool {
	return s.GameOver && s.RightScore > s.LeftScore
}

// Winner returns "left" or "right" for a finished game, or "" while it runs.
func (s Status) Winner() string {
	switch {
	case !s.GameOver:
		return ""
	case s.RightScore > s.LeftScore:
		return "right"
	default:
		return "left"
	}
}
