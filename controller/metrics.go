package controller

import (
	"github.com/battlesnakeio/colorsnake/rules"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	stepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "colorsnake",
			Subsystem: "controller",
			Name:      "step_seconds",
			Help:      "Time spent applying events and advancing the game.",
		},
	)
	ticks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "colorsnake",
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Ticks the snake has moved.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "colorsnake",
			Subsystem: "game",
			Name:      "food_eaten_total",
			Help:      "Food items collected.",
		},
	)
	disposals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "colorsnake",
			Subsystem: "game",
			Name:      "disposals_total",
			Help:      "Disposals by result.",
		},
		[]string{"result"},
	)
	gameOvers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "colorsnake",
			Subsystem: "game",
			Name:      "game_overs_total",
			Help:      "Finished games by cause.",
		},
		[]string{"cause"},
	)
	level = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "colorsnake",
			Subsystem: "game",
			Name:      "level",
			Help:      "Level of the current game.",
		},
	)
	score = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "colorsnake",
			Subsystem: "game",
			Name:      "score",
			Help:      "Score of the current game.",
		},
	)
	droppedEvents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "colorsnake",
			Subsystem: "controller",
			Name:      "dropped_events_total",
			Help:      "Input events dropped because the queue was full.",
		},
	)
)

func init() {
	prometheus.MustRegister(stepDuration, ticks, foodEaten, disposals, gameOvers, level, score, droppedEvents)
}

func instrument() func() {
	t := prometheus.NewTimer(stepDuration)
	return t.ObserveDuration
}

// stepStats is what changed between two consecutive states.
type stepStats struct {
	moved    bool
	eaten    int
	correct  bool
	wrong    bool
	gameOver string
}

func diff(prev, next *rules.Game) stepStats {
	st := stepStats{moved: next.Tick > prev.Tick}

	// a correct disposal pops the sequence, or clears it on a level up
	st.correct = next.Level > prev.Level || len(next.DisposalSequence) < len(prev.DisposalSequence)
	st.wrong = next.Lives < prev.Lives

	// eating appends to the inventory, a correct disposal pops its front
	st.eaten = len(next.Inventory) - len(prev.Inventory)
	if st.correct {
		st.eaten++
	}

	if next.Status == rules.StatusGameOver && prev.Status != rules.StatusGameOver && next.GameOver != nil {
		st.gameOver = next.GameOver.Cause
	}
	return st
}

// observe records what happened between two consecutive states.
func observe(prev, next *rules.Game) {
	level.Set(float64(next.Level))
	score.Set(float64(next.Score))

	st := diff(prev, next)
	if st.moved {
		ticks.Inc()
	}
	if st.eaten > 0 {
		foodEaten.Add(float64(st.eaten))
	}
	if st.correct {
		disposals.WithLabelValues("correct").Inc()
	}
	if st.wrong {
		disposals.WithLabelValues("wrong").Inc()
	}
	if st.gameOver != "" {
		gameOvers.WithLabelValues(st.gameOver).Inc()
	}
}
