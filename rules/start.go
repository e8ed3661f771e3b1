package rules

import (
	log "github.com/sirupsen/logrus"
)

// EventType is the kind of input event.
type EventType string

// Input events. Events that do not apply to the current status are ignored.
const (
	EventMove        EventType = "move"
	EventTogglePause EventType = "toggle-pause"
	EventStart       EventType = "start"
	EventMenu        EventType = "menu"
	// EventKey carries a raw key press, mapped against the status the game
	// has when the event is applied
	EventKey         EventType = "key"
)

// Event is a discrete intent produced by an input source.
type Event struct {
	Type      EventType
	Direction Direction
	Key       Key
}

// MoveEvent is a shorthand for a move intent.
func MoveEvent(d Direction) Event {
	return Event{Type: EventMove, Direction: d}
}

// KeyPressEvent wraps a key press for late mapping.
func KeyPressEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// Apply folds an input event into the game. The game is modified in place
// and returned, a start from the menu returns a fresh game.
func Apply(gen *Generator, game *Game, ev Event) *Game {
	switch ev.Type {
	case EventKey:
		if mapped, ok := KeyEvent(game.Status, ev.Key); ok {
			return Apply(gen, game, mapped)
		}
	case EventMove:
		Turn(game, ev.Direction)
	case EventTogglePause:
		switch game.Status {
		case StatusPlaying:
			game.Status = StatusPaused
		case StatusPaused:
			game.Status = StatusPlaying
		}
	case EventStart:
		switch game.Status {
		case StatusMenu:
			return StartGame(gen)
		case StatusGameOver:
			game.Status = StatusMenu
		}
	case EventMenu:
		if game.Status == StatusGameOver {
			game.Status = StatusMenu
		}
	}
	return game
}

// StartGame returns a new game in the playing state at level 1. Food is
// placed by the first tick.
func StartGame(gen *Generator) *Game {
	game := NewGame()
	game.Status = StatusPlaying
	game.DisposalSequence = gen.DisposalSequence(game.Level)
	log.WithField("Sequence", game.DisposalSequence).Info("game started")
	return game
}
