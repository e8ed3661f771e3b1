// Package controller owns the state of a game session. Input sources send
// events to it, renderers read snapshots from it and only Step mutates the
// game.
package controller

import (
	"sync"

	"github.com/battlesnakeio/colorsnake/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultQueueSize is the number of input events buffered between two steps.
const DefaultQueueSize = 64

// Controller is the single owner of a game session.
type Controller struct {
	gen    *rules.Generator
	zones  []rules.Zone
	events chan rules.Event

	lock sync.RWMutex
	game *rules.Game
}

// New will initialize a new Controller with a game sitting in the menu. The
// zones must not overlap.
func New(gen *rules.Generator, zones []rules.Zone, queueSize int) (*Controller, error) {
	if err := rules.ValidateZones(zones); err != nil {
		return nil, err
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Controller{
		gen:    gen,
		zones:  append([]rules.Zone(nil), zones...),
		events: make(chan rules.Event, queueSize),
		game:   rules.NewGame(),
	}, nil
}

// Send queues an event for the next step. It never blocks, events that do
// not fit in the queue are dropped.
func (c *Controller) Send(ev rules.Event) bool {
	select {
	case c.events <- ev:
		return true
	default:
		droppedEvents.Inc()
		log.WithField("event", ev.Type).Warn("event queue full, dropping event")
		return false
	}
}

// Step applies the queued events in the order they were sent and then
// advances the game one tick. It returns a snapshot of the new state.
func (c *Controller) Step() (*rules.Game, error) {
	defer instrument()()

	c.lock.Lock()
	defer c.lock.Unlock()

	game := c.game
	for n := len(c.events); n > 0; n-- {
		ev := <-c.events
		game = rules.Apply(c.gen, game, ev)
	}
	c.game = game

	next, err := rules.Advance(c.gen, game, c.zones)
	if err != nil {
		return nil, errors.Wrap(err, "controller: unable to advance game")
	}
	observe(game, next)
	c.game = next
	return next.Clone(), nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() *rules.Game {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.game.Clone()
}

// Zones returns the disposal zones of the session.
func (c *Controller) Zones() []rules.Zone {
	return append([]rules.Zone(nil), c.zones...)
}
