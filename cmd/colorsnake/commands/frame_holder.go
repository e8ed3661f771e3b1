package commands

import (
	"sync"

	"github.com/battlesnakeio/colorsnake/rules"
)

// frameHolder keeps the latest published snapshot. Older frames are
// overwritten, the renderer only ever draws the newest one.
type frameHolder struct {
	sync.RWMutex
	frame *rules.Game
	ready chan struct{}
}

func newFrameHolder() *frameHolder {
	return &frameHolder{ready: make(chan struct{}, 1)}
}

func (fh *frameHolder) set(frame *rules.Game) {
	fh.Lock()
	fh.frame = frame
	fh.Unlock()

	select {
	case fh.ready <- struct{}{}:
	default:
	}
}

func (fh *frameHolder) get() *rules.Game {
	fh.RLock()
	defer fh.RUnlock()

	return fh.frame
}

// updated fires once after one or more calls to set.
func (fh *frameHolder) updated() <-chan struct{} {
	return fh.ready
}
