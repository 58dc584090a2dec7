package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaper_StartStop(t *testing.T) {
	r := NewReaper(New(20), time.Minute, time.Hour)

	require.NoError(t, r.Start())
	assert.Error(t, r.Start())

	require.NoError(t, r.Stop())
	assert.Error(t, r.Stop())
}

func TestReaper_Defaults(t *testing.T) {
	r := NewReaper(New(20), 0, 0)

	assert.Equal(t, DefaultReapInterval, r.interval)
	assert.Equal(t, DefaultIdleTTL, r.ttl)
}

func TestReaper_EvictsIdleSessions(t *testing.T) {
	s := New(20)
	s.Append(1, Turn{Role: RoleUser, Content: "hello"})

	r := NewReaper(s, 10*time.Millisecond, time.Nanosecond)
	require.NoError(t, r.Start())
	defer r.Stop()

	assert.Eventually(t, func() bool {
		return s.Stats().Sessions == 0
	}, time.Second, 10*time.Millisecond)
}
