package daemon

import (
	"context"
	"time"
)

// EventLoop runs periodic maintenance while the daemon is up.
type EventLoop struct {
	daemon *Daemon
}

// NewEventLoop creates a new event loop
func NewEventLoop(d *Daemon) *EventLoop {
	return &EventLoop{
		daemon: d,
	}
}

// Run runs the event loop until the context is canceled.
func (e *EventLoop) Run(ctx context.Context) {
	e.daemon.logger.Info().Msg("Event loop started")

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.daemon.logger.Info().Msg("Event loop stopping")
			return

		case <-ticker.C:
			e.processTasks()
		}
	}
}

// processTasks publishes store occupancy. The session table has no eviction
// unless the reaper is enabled, so this is also the operator's view of
// unbounded growth.
func (e *EventLoop) processTasks() {
	stats := e.daemon.store.Stats()
	e.daemon.metrics.SessionsActive.Set(float64(stats.Sessions))

	e.daemon.logger.Debug().
		Int("sessions", stats.Sessions).
		Int("turns", stats.Turns).
		Msg("Store stats")
}
