// Package llm talks to Gemini models through google.golang.org/genai,
// either on the Gemini API or on Vertex AI.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// contentGenerator is satisfied by (*genai.Client).Models.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type ClientConfig struct {
	Vertex   bool
	APIKey   string
	Project  string
	Location string
}

func NewClient(ctx context.Context, cfg ClientConfig) (*genai.Client, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Vertex {
		clientConfig = &genai.ClientConfig{
			Project:  cfg.Project,
			Location: cfg.Location,
			Backend:  genai.BackendVertexAI,
		}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return client, nil
}
