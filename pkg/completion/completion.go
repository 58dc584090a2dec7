// Package completion wraps language-model chat completion services behind a
// single-call client interface with a typed failure taxonomy.
package completion

import (
	"context"
	"fmt"
)

// Message is one role-tagged turn forwarded to the completion service.
type Message struct {
	Role    string
	Content string
}

// Request contains the parameters for one completion call.
type Request struct {
	Model        string
	Messages     []Message
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

// Response contains the top-ranked completion.
type Response struct {
	Content string
}

// Client is a chat completion service. A failed call returns a *Error so
// callers can distinguish fault categories.
type Client interface {
	// Complete makes a single completion call.
	Complete(ctx context.Context, request Request) (*Response, error)

	// Provider returns the provider name.
	Provider() string
}

// NewClient creates a completion client for the named provider.
func NewClient(provider, apiKey string) (Client, error) {
	switch provider {
	case "openai":
		return NewOpenAIClient(apiKey), nil
	case "anthropic":
		return NewAnthropicClient(apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
