package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	ErrMissingAPIKey = errors.New("completion provider API key is not configured")
	ErrEmptyResponse = errors.New("completion provider returned no choices")
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// Client is the text-completion capability behind the assist operations:
// one system instruction, one user message, one awaited reply.
type Client interface {
	Complete(ctx context.Context, system, user string, maxTokens int64) (string, error)
}

// GroqClient talks to Groq's OpenAI-compatible chat completions API.
type GroqClient struct {
	client openai.Client
	apiKey string
	model  string
}

// NewGroqClient creates a Groq-backed completion client. An empty API key is
// tolerated here and reported on the first Complete call, so the server can
// start without assist configured.
func NewGroqClient(apiKey, model string) *GroqClient {
	return &GroqClient{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(groqBaseURL),
		),
		apiKey: apiKey,
		model:  model,
	}
}

// Complete sends a system/user message pair and returns the trimmed reply
// text. There is no retry; a failed call surfaces immediately.
func (c *GroqClient) Complete(ctx context.Context, system, user string, maxTokens int64) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(0.7),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
