package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_MissingFileReturnsDefaults(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope.json"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Chat.MaxHistory)
	assert.NotEmpty(t, cfg.Logging.File)
}

func TestLoader_ReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "besedka.json")
	content := `{
		"telegram": {"bot_token": "123456:ABC-DEF"},
		"completion": {"provider": "openai", "api_key": "sk-file", "model": "gpt-4o"},
		"chat": {"max_history": 10}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "123456:ABC-DEF", cfg.Telegram.BotToken)
	assert.Equal(t, "gpt-4o", cfg.Completion.Model)
	assert.Equal(t, 10, cfg.Chat.MaxHistory)

	// Untouched fields keep their defaults.
	assert.Equal(t, 1000, cfg.Completion.MaxTokens)
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "999:env-token")
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := NewLoader(filepath.Join(t.TempDir(), "nope.json")).Load()
	require.NoError(t, err)
	assert.Equal(t, "999:env-token", cfg.Telegram.BotToken)
	assert.Equal(t, "sk-env", cfg.Completion.APIKey)
}

func TestLoader_AnthropicKeyOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "besedka.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"completion": {"provider": "anthropic"}}`), 0600))

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-env")
	t.Setenv("OPENAI_API_KEY", "sk-should-be-ignored")

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-env", cfg.Completion.APIKey)
}
