package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_ValidateTelegramToken(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		token     string
		shouldErr bool
	}{
		{"valid token", "123456789:ABCdefGHIjklMNOpqrsTUVwxyz", false},
		{"empty token", "", true},
		{"missing colon", "123456789ABCdef", true},
		{"non-numeric id", "abc:ABCdef", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateTelegramToken(tt.token)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ValidateAPIKey(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateAPIKey("sk-abc", "openai"))
	assert.Error(t, v.ValidateAPIKey("", "openai"))
	assert.Error(t, v.ValidateAPIKey("abc", "openai"))

	assert.NoError(t, v.ValidateAPIKey("sk-ant-abc", "anthropic"))
	assert.Error(t, v.ValidateAPIKey("sk-abc", "anthropic"))
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	cfg := DefaultConfig()
	cfg.Telegram.BotToken = "123456:ABC-DEF"
	cfg.Completion.APIKey = "sk-test"
	assert.NoError(t, v.Validate(cfg))

	broken := DefaultConfig()
	broken.Telegram.BotToken = "123456:ABC-DEF"
	broken.Completion.APIKey = "sk-test"
	broken.Chat.MaxHistory = 0
	assert.Error(t, v.Validate(broken))

	broken = DefaultConfig()
	broken.Telegram.BotToken = "bad"
	assert.Error(t, v.Validate(broken))
}
