package extractor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiBackend struct {
	apiKey string
	model  string
}

// NewGeminiBackend creates a Backend for the Gemini API.
func NewGeminiBackend(apiKey, model string) Backend {
	return &geminiBackend{
		apiKey: apiKey,
		model:  model,
	}
}

func (b *geminiBackend) Complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  b.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	prompt := system + "\n\n" + user
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(temperature)),
	}

	result, err := client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}
