package session

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultReapInterval = 10 * time.Minute
	DefaultIdleTTL      = 24 * time.Hour
)

// Reaper periodically evicts idle sessions from a Store. It is optional: a
// store without a reaper keeps every session for the process lifetime.
type Reaper struct {
	store    *Store
	interval time.Duration
	ttl      time.Duration
	stopCh   chan struct{}
	running  bool
}

// NewReaper creates a reaper that evicts sessions idle longer than ttl,
// checking every interval. Zero values fall back to defaults.
func NewReaper(store *Store, interval, ttl time.Duration) *Reaper {
	if interval <= 0 {
		interval = DefaultReapInterval
	}
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}

	return &Reaper{
		store:    store,
		interval: interval,
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
}

// Start starts the reaper loop.
func (r *Reaper) Start() error {
	if r.running {
		return fmt.Errorf("reaper is already running")
	}

	r.running = true
	go r.run()

	log.Info().
		Dur("interval", r.interval).
		Dur("idle_ttl", r.ttl).
		Msg("Session reaper started")

	return nil
}

// Stop stops the reaper loop.
func (r *Reaper) Stop() error {
	if !r.running {
		return fmt.Errorf("reaper is not running")
	}

	close(r.stopCh)
	r.running = false

	log.Info().Msg("Session reaper stopped")

	return nil
}

func (r *Reaper) run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.store.EvictIdle(time.Now().Add(-r.ttl))
		}
	}
}
