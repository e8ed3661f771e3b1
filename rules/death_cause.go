package rules

const (
	// GameOverCauseOutOfBounds is when the snake runs off the board
	GameOverCauseOutOfBounds = "out-of-bounds"
	// GameOverCauseSelfCollision is when the snake runs into its own body
	GameOverCauseSelfCollision = "self-collision"
	// GameOverCauseLivesExhausted is when a wrong disposal takes the last life
	GameOverCauseLivesExhausted = "lives-exhausted"
)

// GameOver records when and why a game ended.
type GameOver struct {
	Tick  int64
	Cause string
}
