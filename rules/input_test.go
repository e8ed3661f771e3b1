package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		Status   Status
		Key      Key
		Expected Event
		OK       bool
	}{
		{Status: StatusMenu, Key: KeySpace, Expected: Event{Type: EventStart}, OK: true},
		{Status: StatusPlaying, Key: KeySpace, Expected: Event{Type: EventTogglePause}, OK: true},
		{Status: StatusPaused, Key: KeySpace, Expected: Event{Type: EventTogglePause}, OK: true},
		{Status: StatusGameOver, Key: KeySpace, Expected: Event{Type: EventMenu}, OK: true},
		{Status: StatusPlaying, Key: KeyArrowUp, Expected: MoveEvent(DirectionUp), OK: true},
		{Status: StatusPlaying, Key: KeyW, Expected: MoveEvent(DirectionUp), OK: true},
		{Status: StatusPlaying, Key: KeyS, Expected: MoveEvent(DirectionDown), OK: true},
		{Status: StatusPlaying, Key: KeyArrowLeft, Expected: MoveEvent(DirectionLeft), OK: true},
		{Status: StatusPlaying, Key: KeyD, Expected: MoveEvent(DirectionRight), OK: true},
		{Status: StatusPaused, Key: KeyArrowUp, OK: false},
		{Status: StatusMenu, Key: KeyA, OK: false},
		{Status: StatusPlaying, Key: "KeyQ", OK: false},
	}
	for _, test := range tests {
		ev, ok := KeyEvent(test.Status, test.Key)
		require.Equal(t, test.OK, ok, "%s %s", test.Status, test.Key)
		require.Equal(t, test.Expected, ev, "%s %s", test.Status, test.Key)
	}
}
