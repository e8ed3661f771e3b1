package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		Input    string
		Expected Direction
		OK       bool
	}{
		{Input: "up", Expected: DirectionUp, OK: true},
		{Input: "W", Expected: DirectionUp, OK: true},
		{Input: "down", Expected: DirectionDown, OK: true},
		{Input: "s", Expected: DirectionDown, OK: true},
		{Input: "Left", Expected: DirectionLeft, OK: true},
		{Input: "a", Expected: DirectionLeft, OK: true},
		{Input: "right", Expected: DirectionRight, OK: true},
		{Input: "d", Expected: DirectionRight, OK: true},
		{Input: "jump", OK: false},
		{Input: "", OK: false},
	}
	for _, test := range tests {
		d, ok := ParseDirection(test.Input)
		require.Equal(t, test.OK, ok, "input: %s", test.Input)
		require.Equal(t, test.Expected, d, "input: %s", test.Input)
	}
}

func TestDirectionVector(t *testing.T) {
	v, ok := DirectionUp.Vector()
	require.True(t, ok)
	require.Equal(t, Point{X: 0, Y: -20}, v)

	d, ok := DirectionOf(Point{X: 20, Y: 0})
	require.True(t, ok)
	require.Equal(t, DirectionRight, d)

	_, ok = Direction("sideways").Vector()
	require.False(t, ok)
	_, ok = DirectionOf(Point{X: 40, Y: 0})
	require.False(t, ok)
}

func TestTurn(t *testing.T) {
	tests := []struct {
		Heading  Direction
		Turn     Direction
		Accepted bool
	}{
		{Heading: DirectionRight, Turn: DirectionUp, Accepted: true},
		{Heading: DirectionRight, Turn: DirectionDown, Accepted: true},
		{Heading: DirectionRight, Turn: DirectionLeft, Accepted: false},
		{Heading: DirectionRight, Turn: DirectionRight, Accepted: false},
		{Heading: DirectionUp, Turn: DirectionDown, Accepted: false},
		{Heading: DirectionUp, Turn: DirectionLeft, Accepted: true},
		{Heading: DirectionDown, Turn: DirectionRight, Accepted: true},
		{Heading: DirectionLeft, Turn: DirectionRight, Accepted: false},
	}
	for _, test := range tests {
		game := playingGame(Point{X: 400, Y: 300})
		game.Heading, _ = test.Heading.Vector()
		game.Direction = game.Heading

		require.Equal(t, test.Accepted, Turn(game, test.Turn), "%s -> %s", test.Heading, test.Turn)
		expected := game.Heading
		if test.Accepted {
			expected, _ = test.Turn.Vector()
		}
		require.Equal(t, expected, game.Direction)
	}
}

func TestTurnCannotReverseWithinOneTick(t *testing.T) {
	game := playingGame(Point{X: 400, Y: 300}, Point{X: 380, Y: 300})

	require.True(t, Turn(game, DirectionUp))
	require.False(t, Turn(game, DirectionLeft))
	up, _ := DirectionUp.Vector()
	require.Equal(t, up, game.Direction)

	next, err := Advance(testGenerator(), game, InitializeDisposalZones())
	require.NoError(t, err)
	require.Equal(t, StatusPlaying, next.Status)
	require.Equal(t, Point{X: 400, Y: 280}, next.Head())

	require.True(t, Turn(next, DirectionLeft))
}

func TestTurnIgnoredWhenNotPlaying(t *testing.T) {
	game := NewGame()
	require.False(t, Turn(game, DirectionUp))
	require.Equal(t, right, game.Direction)
}
