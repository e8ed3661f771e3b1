package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of rendering and input handling.
var (
	RenderRate     = rate.Limit(getEnvInt("RENDER_FPS", 30))
	RenderBurst    = getEnvInt("RENDER_BURST", 1)
	EventQueueSize = getEnvInt("EVENT_QUEUE", 64)
	PollInterval   = time.Duration(getEnvInt("POLL_INTERVAL_MS", 20)) * time.Millisecond
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
