package completion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	e := &Error{Kind: KindAuth, Err: errors.New("401 unauthorized")}
	assert.Contains(t, e.Error(), "auth")
	assert.Contains(t, e.Error(), "401 unauthorized")

	bare := &Error{Kind: KindMalformed}
	assert.Contains(t, bare.Error(), "malformed")
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	e := &Error{Kind: KindTransport, Err: cause}

	assert.ErrorIs(t, e, cause)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"typed auth error", &Error{Kind: KindAuth}, KindAuth},
		{"wrapped typed error", fmt.Errorf("call: %w", &Error{Kind: KindQuota}), KindQuota},
		{"deadline exceeded", context.DeadlineExceeded, KindTimeout},
		{"canceled", context.Canceled, KindTimeout},
		{"plain error", errors.New("boom"), KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, KindAuth, classifyStatus(401))
	assert.Equal(t, KindAuth, classifyStatus(403))
	assert.Equal(t, KindQuota, classifyStatus(429))
	assert.Equal(t, KindTransport, classifyStatus(500))
	assert.Equal(t, KindTransport, classifyStatus(400))
}

func TestWrap_ContextExpiryWinsOverStatus(t *testing.T) {
	err := fmt.Errorf("request: %w", context.DeadlineExceeded)
	assert.Equal(t, KindTimeout, wrap(KindTransport, err).Kind)

	plain := errors.New("502 bad gateway")
	assert.Equal(t, KindTransport, wrap(KindTransport, plain).Kind)
}
