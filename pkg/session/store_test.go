package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendAndSnapshot(t *testing.T) {
	s := New(20)

	s.Append(1, Turn{Role: RoleUser, Content: "Hello"})
	s.Append(1, Turn{Role: RoleAssistant, Content: "Hi there"})

	turns := s.Snapshot(1)
	require.Len(t, turns, 2)
	assert.Equal(t, RoleUser, turns[0].Role)
	assert.Equal(t, "Hello", turns[0].Content)
	assert.Equal(t, RoleAssistant, turns[1].Role)
	assert.Equal(t, "Hi there", turns[1].Content)
	assert.False(t, turns[0].Timestamp.IsZero())
}

func TestStore_BoundedHistory(t *testing.T) {
	s := New(20)

	for i := 0; i < 50; i++ {
		s.Append(1, Turn{Role: RoleUser, Content: fmt.Sprintf("msg-%d", i)})
	}

	turns := s.Snapshot(1)
	require.Len(t, turns, 20)

	// Only the last 20 turns survive, in chronological order.
	for i, turn := range turns {
		assert.Equal(t, fmt.Sprintf("msg-%d", 30+i), turn.Content)
	}
}

func TestStore_EvictionAtCapacity(t *testing.T) {
	s := New(4)

	for i := 0; i < 4; i++ {
		s.Append(1, Turn{Role: RoleUser, Content: fmt.Sprintf("old-%d", i)})
	}

	// One exchange evicts the two oldest turns.
	s.Append(1, Turn{Role: RoleUser, Content: "question"})
	s.Append(1, Turn{Role: RoleAssistant, Content: "answer"})

	turns := s.Snapshot(1)
	require.Len(t, turns, 4)
	assert.Equal(t, "old-2", turns[0].Content)
	assert.Equal(t, "old-3", turns[1].Content)
	assert.Equal(t, "question", turns[2].Content)
	assert.Equal(t, "answer", turns[3].Content)
}

func TestStore_ResetClearsState(t *testing.T) {
	s := New(20)

	s.Append(1, Turn{Role: RoleUser, Content: "Hello"})
	s.Append(1, Turn{Role: RoleAssistant, Content: "Hi"})
	s.Reset(1)

	assert.Empty(t, s.Snapshot(1))
}

func TestStore_EnsureIdempotent(t *testing.T) {
	s := New(20)

	s.Ensure(1)
	assert.Empty(t, s.Snapshot(1))

	s.Append(1, Turn{Role: RoleUser, Content: "Hello"})
	s.Ensure(1)

	turns := s.Snapshot(1)
	require.Len(t, turns, 1)
	assert.Equal(t, "Hello", turns[0].Content)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := New(20)

	s.Append(1, Turn{Role: RoleUser, Content: "original"})

	snap := s.Snapshot(1)
	snap[0].Content = "mutated"
	s.Append(1, Turn{Role: RoleAssistant, Content: "reply"})

	turns := s.Snapshot(1)
	require.Len(t, turns, 2)
	assert.Equal(t, "original", turns[0].Content)
}

func TestStore_SnapshotUnknownUser(t *testing.T) {
	s := New(20)

	assert.Empty(t, s.Snapshot(42))
}

func TestStore_UsersAreIndependent(t *testing.T) {
	s := New(20)

	s.Append(1, Turn{Role: RoleUser, Content: "from one"})
	s.Append(2, Turn{Role: RoleUser, Content: "from two"})
	s.Reset(1)

	assert.Empty(t, s.Snapshot(1))
	require.Len(t, s.Snapshot(2), 1)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	s := New(20)

	var wg sync.WaitGroup
	for u := int64(1); u <= 8; u++ {
		for i := 0; i < 40; i++ {
			wg.Add(1)
			go func(userID int64) {
				defer wg.Done()
				s.Append(userID, Turn{Role: RoleUser, Content: "x"})
			}(u)
		}
	}
	wg.Wait()

	for u := int64(1); u <= 8; u++ {
		assert.Len(t, s.Snapshot(u), 20)
	}
}

func TestStore_Stats(t *testing.T) {
	s := New(20)

	s.Append(1, Turn{Role: RoleUser, Content: "a"})
	s.Append(1, Turn{Role: RoleAssistant, Content: "b"})
	s.Append(2, Turn{Role: RoleUser, Content: "c"})

	st := s.Stats()
	assert.Equal(t, 2, st.Sessions)
	assert.Equal(t, 3, st.Turns)
}

func TestStore_EvictIdle(t *testing.T) {
	s := New(20)

	s.Append(1, Turn{Role: RoleUser, Content: "stale"})
	time.Sleep(20 * time.Millisecond)
	cutoff := time.Now()
	s.Append(2, Turn{Role: RoleUser, Content: "fresh"})

	removed := s.EvictIdle(cutoff)
	assert.Equal(t, 1, removed)
	assert.Empty(t, s.Snapshot(1))
	require.Len(t, s.Snapshot(2), 1)

	// Nothing left to evict with the same cutoff.
	assert.Equal(t, 0, s.EvictIdle(cutoff))
}
