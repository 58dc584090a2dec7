package completion

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient implements Client for OpenAI chat completions.
type OpenAIClient struct {
	client openai.Client
}

// NewOpenAIClient creates a new OpenAI completion client.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Provider returns the provider name.
func (c *OpenAIClient) Provider() string {
	return "openai"
}

// Complete makes a single chat completion call to OpenAI.
func (c *OpenAIClient) Complete(ctx context.Context, request Request) (*Response, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}

	if request.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(request.SystemPrompt))
	}

	for _, msg := range request.Messages {
		switch msg.Role {
		case "user":
			messages = append(messages, openai.UserMessage(msg.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(request.Model),
		Messages: messages,
	}

	if request.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(request.MaxTokens))
	}

	if request.Temperature > 0 {
		params.Temperature = openai.Float(request.Temperature)
	}

	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return nil, wrap(classifyStatus(apierr.StatusCode), err)
		}
		return nil, wrap(KindTransport, err)
	}

	if len(response.Choices) == 0 {
		return nil, &Error{Kind: KindMalformed, Err: errors.New("response contains no choices")}
	}

	return &Response{Content: response.Choices[0].Message.Content}, nil
}
