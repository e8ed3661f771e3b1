package rules

import "strings"

// Direction is a move intent from the input source.
type Direction string

// The four directions the snake can travel.
const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Vector returns the one cell delta for the direction.
func (d Direction) Vector() (Point, bool) {
	switch d {
	case DirectionUp:
		return Point{X: 0, Y: -GridSize}, true
	case DirectionDown:
		return Point{X: 0, Y: GridSize}, true
	case DirectionLeft:
		return Point{X: -GridSize, Y: 0}, true
	case DirectionRight:
		return Point{X: GridSize, Y: 0}, true
	}
	return Point{}, false
}

// ParseDirection maps direction names and WASD letters to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "up", "w":
		return DirectionUp, true
	case "down", "s":
		return DirectionDown, true
	case "left", "a":
		return DirectionLeft, true
	case "right", "d":
		return DirectionRight, true
	}
	return "", false
}

// DirectionOf returns the direction of a one cell delta.
func DirectionOf(v Point) (Direction, bool) {
	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		if dv, _ := d.Vector(); dv.Equal(v) {
			return d, true
		}
	}
	return "", false
}

// Turn sets the direction used by the next tick. The change is accepted only
// when it is perpendicular to the heading, moving along the current axis
// (including reversing) is ignored. Turns are only taken while playing.
func Turn(game *Game, d Direction) bool {
	if game.Status != StatusPlaying {
		return false
	}
	v, ok := d.Vector()
	if !ok {
		return false
	}
	if (v.X != 0 && game.Heading.X != 0) || (v.Y != 0 && game.Heading.Y != 0) {
		return false
	}
	game.Direction = v
	return true
}
