package rules

import (
	log "github.com/sirupsen/logrus"
)

// checkForDeath looks at the next head position and decides whether the move
// ends the game. Possible causes are leaving the board and running into the
// snake's own body.
func checkForDeath(game *Game, head Point) (string, bool) {
	if deathByOutOfBounds(head) {
		return GameOverCauseOutOfBounds, true
	}
	if deathBySelfCollision(game.Snake, head) {
		return GameOverCauseSelfCollision, true
	}
	return "", false
}

func deathByOutOfBounds(head Point) bool {
	return !inBounds(head)
}

func deathBySelfCollision(snake []Point, head Point) bool {
	return containsPoint(snake, head)
}

// endGame keeps the state from before the fatal move and only records the
// terminal status.
func endGame(game *Game, cause string) *Game {
	over := game.Clone()
	over.Status = StatusGameOver
	over.GameOver = &GameOver{Tick: game.Tick + 1, Cause: cause}
	log.WithFields(log.Fields{
		"Tick":  over.GameOver.Tick,
		"Cause": cause,
		"Score": over.Score,
		"Level": over.Level,
	}).Info("game over")
	return over
}
