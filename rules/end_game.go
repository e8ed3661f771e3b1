package rules

// CheckForGameOver checks if the game has ended.
func CheckForGameOver(game *Game) bool {
	return game.Status == StatusGameOver
}
