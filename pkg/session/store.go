package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultMaxHistory is the default number of turns kept per user.
const DefaultMaxHistory = 20

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn represents a single conversation turn. Immutable once created.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// history holds one user's turns. Mutations are serialized by mu; the slice
// never exceeds the store's capacity.
type history struct {
	mu         sync.Mutex
	turns      []Turn
	lastActive time.Time
}

// Store maps user IDs to bounded conversation histories. Entries are created
// lazily on first contact and replaced wholesale on reset. The zero value is
// not usable; call New.
type Store struct {
	maxHistory int

	mu       sync.RWMutex
	sessions map[int64]*history
}

// Stats describes the store's current occupancy.
type Stats struct {
	Sessions int
	Turns    int
}

// New creates a Store keeping at most maxHistory turns per user. Values less
// than one fall back to DefaultMaxHistory.
func New(maxHistory int) *Store {
	if maxHistory < 1 {
		maxHistory = DefaultMaxHistory
	}

	s := &Store{
		maxHistory: maxHistory,
		sessions:   make(map[int64]*history),
	}

	log.Info().Int("max_history", maxHistory).Msg("Session store initialized")

	return s
}

// MaxHistory returns the per-user turn capacity.
func (s *Store) MaxHistory() int {
	return s.maxHistory
}

// ensure returns the user's history, creating an empty one if absent.
func (s *Store) ensure(userID int64) *history {
	s.mu.RLock()
	h, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return h
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have created it between the two locks.
	if h, ok := s.sessions[userID]; ok {
		return h
	}

	h = &history{
		turns:      make([]Turn, 0, s.maxHistory),
		lastActive: time.Now(),
	}
	s.sessions[userID] = h

	log.Debug().Int64("user_id", userID).Msg("Session created")

	return h
}

// Ensure creates an empty session for userID if none exists. Idempotent; an
// existing history is never touched.
func (s *Store) Ensure(userID int64) {
	s.ensure(userID)
}

// Reset replaces the user's history with a fresh empty one. An append still
// in flight against the old history writes into an orphaned copy and is
// discarded: reset always wins.
func (s *Store) Reset(userID int64) {
	s.mu.Lock()
	s.sessions[userID] = &history{
		turns:      make([]Turn, 0, s.maxHistory),
		lastActive: time.Now(),
	}
	s.mu.Unlock()

	log.Debug().Int64("user_id", userID).Msg("Session reset")
}

// Append adds a turn to the user's history, creating the session if needed.
// At capacity the oldest turn is evicted before the insert.
func (s *Store) Append(userID int64, turn Turn) {
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now()
	}

	h := s.ensure(userID)

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.turns) >= s.maxHistory {
		evict := len(h.turns) - s.maxHistory + 1
		h.turns = append(h.turns[:0], h.turns[evict:]...)
	}
	h.turns = append(h.turns, turn)
	h.lastActive = time.Now()
}

// Snapshot returns a copy of the user's history at the moment of the call,
// in chronological order. The caller may read it without synchronization.
// Unknown users yield an empty snapshot.
func (s *Store) Snapshot(userID int64) []Turn {
	s.mu.RLock()
	h, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return []Turn{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

// Stats returns the current session and turn counts.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Sessions: len(s.sessions)}
	for _, h := range s.sessions {
		h.mu.Lock()
		st.Turns += len(h.turns)
		h.mu.Unlock()
	}
	return st
}

// EvictIdle removes sessions with no activity since cutoff and returns the
// number removed. Sessions never expire unless this is called; without a
// running Reaper the table grows for the life of the process.
func (s *Store) EvictIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, h := range s.sessions {
		h.mu.Lock()
		idle := h.lastActive.Before(cutoff)
		h.mu.Unlock()

		if idle {
			delete(s.sessions, userID)
			removed++
		}
	}

	if removed > 0 {
		log.Info().Int("removed", removed).Msg("Idle sessions evicted")
	}

	return removed
}
