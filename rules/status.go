package rules

// Status is the lifecycle state of a game session.
type Status string

const (
	// StatusMenu is the idle state before a game has been started
	StatusMenu Status = "menu"
	// StatusPlaying represents a running game, the only state Advance acts on
	StatusPlaying Status = "playing"
	// StatusPaused represents a game that is frozen until resumed
	StatusPaused Status = "paused"
	// StatusGameOver represents a game that ended, see Game.GameOver for the cause
	StatusGameOver Status = "game-over"
)
