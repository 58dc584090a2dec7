package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "openai", cfg.Completion.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Completion.Model)
	assert.Equal(t, 1000, cfg.Completion.MaxTokens)
	assert.Equal(t, 0.7, cfg.Completion.Temperature)
	assert.NotEmpty(t, cfg.Completion.SystemPrompt)
	assert.NotEmpty(t, cfg.Completion.Apology)

	assert.Equal(t, 20, cfg.Chat.MaxHistory)
	assert.False(t, cfg.Chat.ReapIdleSessions)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 60*time.Second, cfg.Completion.CompletionTimeout())
	assert.Equal(t, 24*time.Hour, cfg.Chat.IdleTTL())
	assert.Equal(t, 10*time.Minute, cfg.Chat.ReapInterval())
}
