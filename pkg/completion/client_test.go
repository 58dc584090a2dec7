package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	openai, err := NewClient("openai", "sk-test")
	require.NoError(t, err)
	assert.Equal(t, "openai", openai.Provider())

	anthropic, err := NewClient("anthropic", "sk-ant-test")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", anthropic.Provider())

	_, err = NewClient("gemini", "key")
	assert.Error(t, err)
}
