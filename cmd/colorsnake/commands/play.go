package commands

import (
	"context"
	"io/ioutil"
	"os"
	"unicode"

	"github.com/battlesnakeio/colorsnake/config"
	"github.com/battlesnakeio/colorsnake/controller"
	"github.com/battlesnakeio/colorsnake/rules"
	"github.com/battlesnakeio/colorsnake/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var logFile string

func init() {
	playCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file, the terminal is owned by the game")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays colorsnake in the terminal",
	Run: func(c *cobra.Command, args []string) {
		if changed(c, "log-file") {
			cfg.LogFile = logFile
		}
		closeLog, err := redirectLogs(cfg.LogFile)
		if err != nil {
			log.WithError(err).Fatal("unable to open log file")
		}
		defer closeLog()

		if err := play(); err != nil {
			log.WithError(err).Error("game ended with an error")
			os.Exit(1)
		}
	},
}

// redirectLogs sends logs to path, or drops them when path is empty.
func redirectLogs(path string) (func(), error) {
	if path == "" {
		log.SetOutput(ioutil.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failure to close log file")
		}
	}, nil
}

func play() error {
	ctrl, err := controller.New(newGenerator(), rules.InitializeDisposalZones(), config.EventQueueSize)
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialize terminal")
	}
	defer termbox.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := newFrameHolder()
	w := &worker.Worker{
		Controller:   ctrl,
		PollInterval: config.PollInterval,
		Publish:      frames.set,
	}
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	limiter := rate.NewLimiter(cfg.RenderLimit(), config.RenderBurst)
	eventQueue := setupEventQueue()
	zones := ctrl.Zones()

	for {
		select {
		case ev := <-eventQueue:
			switch ev.Type {
			case termbox.EventError:
				return errors.Wrap(ev.Err, "terminal input failed")
			case termbox.EventResize:
				if frame := frames.get(); frame != nil {
					if err = render(frame, zones); err != nil {
						return err
					}
				}
			case termbox.EventKey:
				if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' {
					return nil
				}
				key, ok := translateKey(ev)
				if !ok {
					continue
				}
				ctrl.Send(rules.KeyPressEvent(key))
			}
		case <-frames.updated():
			if !limiter.Allow() {
				continue
			}
			if err = render(frames.get(), zones); err != nil {
				return err
			}
		case err = <-done:
			return err
		}
	}
}

func translateKey(ev termbox.Event) (rules.Key, bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return rules.KeyArrowUp, true
	case termbox.KeyArrowDown:
		return rules.KeyArrowDown, true
	case termbox.KeyArrowLeft:
		return rules.KeyArrowLeft, true
	case termbox.KeyArrowRight:
		return rules.KeyArrowRight, true
	case termbox.KeySpace:
		return rules.KeySpace, true
	}

	switch unicode.ToLower(ev.Ch) {
	case 'w':
		return rules.KeyW, true
	case 'a':
		return rules.KeyA, true
	case 's':
		return rules.KeyS, true
	case 'd':
		return rules.KeyD, true
	case ' ':
		return rules.KeySpace, true
	}
	return "", false
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
