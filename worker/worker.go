// Package worker drives game sessions. Worker is the real time scheduler used
// for interactive play, Runner plays a game to completion without delays.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/colorsnake/controller"
	"github.com/battlesnakeio/colorsnake/rules"
	log "github.com/sirupsen/logrus"
)

// DefaultPollInterval is how often a session that is not playing is stepped
// to pick up start and pause events.
const DefaultPollInterval = 20 * time.Millisecond

// Publisher receives a snapshot after every step.
type Publisher func(game *rules.Game)

// Worker steps a controller on the cadence given by the current speed of the
// game.
type Worker struct {
	Controller   *controller.Controller
	PollInterval time.Duration
	Publish      Publisher

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// Run will run the worker in a loop until the context is done or stepping
// the game fails.
func (w *Worker) Run(ctx context.Context) error {
	poll := w.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	now, after := w.now, w.after
	if now == nil {
		now = time.Now
	}
	if after == nil {
		after = time.After
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		start := now()

		game, err := w.Controller.Step()
		if err != nil {
			log.WithError(err).Error("ending session due to fatal error")
			return err
		}
		if w.Publish != nil {
			w.Publish(game)
		}

		// the speed is read again on every tick, it changes on level up
		delay := poll
		if game.Status == rules.StatusPlaying {
			delay = game.TickInterval()
		}
		remainingDelay := delay - now().Sub(start)
		if remainingDelay <= 0 {
			continue
		}
		select {
		case <-after(remainingDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
