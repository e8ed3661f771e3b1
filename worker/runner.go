package worker

import (
	"context"

	"github.com/battlesnakeio/colorsnake/controller"
	"github.com/battlesnakeio/colorsnake/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Pilot chooses the direction for the next tick of a headless game.
type Pilot interface {
	Next(game *rules.Game, zones []rules.Zone) (rules.Direction, bool)
}

// RunOptions tune a headless run.
type RunOptions struct {
	// MaxTicks stops the run early when positive
	MaxTicks int64
	// Validate checks the game invariants after every tick
	Validate bool
}

// Runner will start a game on the controller and run it to completion, with
// the pilot as the input source. It returns the last state.
func Runner(ctx context.Context, ctrl *controller.Controller, pilot Pilot, opts RunOptions) (*rules.Game, error) {
	game := ctrl.Snapshot()
	if game.Status == rules.StatusMenu {
		ctrl.Send(rules.Event{Type: rules.EventStart})
	}
	zones := ctrl.Zones()

	for {
		select {
		case <-ctx.Done():
			return game, ctx.Err()
		default:
		}

		next, err := ctrl.Step()
		if err != nil {
			// This is a fatal error, no more game processing can take place.
			log.WithError(err).
				WithField("tick", game.Tick).
				Error("ending game due to fatal error")
			return game, err
		}
		game = next

		if opts.Validate {
			if err := rules.ValidateGame(game, zones); err != nil {
				return game, errors.Wrapf(err, "invalid state at tick %d", game.Tick)
			}
		}

		if rules.CheckForGameOver(game) {
			log.WithField("tick", game.Tick).
				WithField("score", game.Score).
				WithField("cause", game.GameOver.Cause).
				Info("ending game")
			return game, nil
		}
		if game.Status != rules.StatusPlaying {
			return game, errors.Errorf("game is %s, not playing", game.Status)
		}
		if opts.MaxTicks > 0 && game.Tick >= opts.MaxTicks {
			log.WithField("tick", game.Tick).Info("tick limit reached")
			return game, nil
		}

		if d, ok := pilot.Next(game, zones); ok {
			ctrl.Send(rules.MoveEvent(d))
		}
	}
}
