package extractor

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type xaiBackend struct {
	client *openai.Client
	model  string
}

// NewXAIBackend creates a Backend for the xAI chat completions API.
// The endpoint is OpenAI-compatible, so the client only needs the base
// URL pointed at it.
func NewXAIBackend(apiKey, baseURL, model string) Backend {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &xaiBackend{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (b *xaiBackend) Complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Temperature: float32(temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
