package worker

import (
	"context"
	"testing"

	"github.com/battlesnakeio/colorsnake/autopilot"
	"github.com/battlesnakeio/colorsnake/controller"
	"github.com/battlesnakeio/colorsnake/rules"
	"github.com/stretchr/testify/require"
)

type straightPilot struct{}

func (straightPilot) Next(*rules.Game, []rules.Zone) (rules.Direction, bool) {
	return "", false
}

func TestRunner_GameOver(t *testing.T) {
	ctrl := newController(t)

	game, err := Runner(context.Background(), ctrl, straightPilot{}, RunOptions{Validate: true})
	require.NoError(t, err)
	require.Equal(t, rules.StatusGameOver, game.Status)
	require.Equal(t, rules.GameOverCauseOutOfBounds, game.GameOver.Cause)
	require.Equal(t, int64(19), game.Tick)
	require.Equal(t, int32(780), game.Head().X)
}

func TestRunner_MaxTicks(t *testing.T) {
	ctrl := newController(t)

	game, err := Runner(context.Background(), ctrl, straightPilot{}, RunOptions{MaxTicks: 5})
	require.NoError(t, err)
	require.Equal(t, rules.StatusPlaying, game.Status)
	require.Equal(t, int64(5), game.Tick)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Runner(ctx, newController(t), straightPilot{}, RunOptions{})
	require.Equal(t, context.Canceled, err)
}

// inOrderPilot fails the test when the inventory stops being a prefix of the
// disposal sequence, such an item could never be disposed.
type inOrderPilot struct {
	t     *testing.T
	pilot *autopilot.Pilot
}

func (p inOrderPilot) Next(game *rules.Game, zones []rules.Zone) (rules.Direction, bool) {
	require.True(p.t, len(game.Inventory) <= len(game.DisposalSequence), "inventory %v", game.Inventory)
	for i, c := range game.Inventory {
		require.Equal(p.t, game.DisposalSequence[i], c, "inventory %v", game.Inventory)
	}
	return p.pilot.Next(game, zones)
}

func TestRunner_Autopilot(t *testing.T) {
	ctrl, err := controller.New(rules.NewGenerator(8), rules.InitializeDisposalZones(), 0)
	require.NoError(t, err)

	game, err := Runner(context.Background(), ctrl, inOrderPilot{t: t, pilot: autopilot.New()}, RunOptions{
		MaxTicks: 3000,
		Validate: true,
	})
	require.NoError(t, err)
	require.True(t, game.Score > 0, "autopilot should collect food")
	require.True(t, game.Level > 1, "autopilot should clear a disposal sequence, level %d", game.Level)
	require.True(t, game.Speed < rules.InitialSpeed)
}
