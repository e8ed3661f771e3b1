package rules

// Key is the name of a physical key as reported by an input source.
type Key string

// Keys understood by the game.
const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyW          Key = "KeyW"
	KeyA          Key = "KeyA"
	KeyS          Key = "KeyS"
	KeyD          Key = "KeyD"
	KeySpace      Key = "Space"
)

var keyDirections = map[Key]Direction{
	KeyArrowUp:    DirectionUp,
	KeyW:          DirectionUp,
	KeyArrowDown:  DirectionDown,
	KeyS:          DirectionDown,
	KeyArrowLeft:  DirectionLeft,
	KeyA:          DirectionLeft,
	KeyArrowRight: DirectionRight,
	KeyD:          DirectionRight,
}

// KeyEvent maps a key press to an event given the current status. Space
// starts a game from the menu, toggles pause while playing or paused and
// returns to the menu after a game over. Unmapped keys report false.
func KeyEvent(status Status, key Key) (Event, bool) {
	if key == KeySpace {
		switch status {
		case StatusMenu:
			return Event{Type: EventStart}, true
		case StatusPlaying, StatusPaused:
			return Event{Type: EventTogglePause}, true
		case StatusGameOver:
			return Event{Type: EventMenu}, true
		}
		return Event{}, false
	}
	if status != StatusPlaying {
		return Event{}, false
	}
	d, ok := keyDirections[key]
	if !ok {
		return Event{}, false
	}
	return MoveEvent(d), true
}
