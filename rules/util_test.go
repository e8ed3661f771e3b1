package rules

import (
	"fmt"
)

func testGenerator() *Generator {
	n := 0
	return NewGenerator(42).WithIDs(func() string {
		n++
		return fmt.Sprintf("food-%d", n)
	})
}

func playingGame(snake ...Point) *Game {
	g := NewGame()
	g.Status = StatusPlaying
	g.Snake = snake
	g.DisposalSequence = []Color{ColorBlue, ColorBlue, ColorBlue}
	return g
}

var right = Point{X: GridSize, Y: 0}
var left = Point{X: -GridSize, Y: 0}
var down = Point{X: 0, Y: GridSize}
