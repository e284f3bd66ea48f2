// Package gemini adapts the Google GenAI SDK to the assistant's Generator port.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"papergenius_backend/platform/config"
)

// Client generates replies with a Gemini model.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini client from configuration. Returns nil when no
// API key is set so the caller can run the assistant disabled.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	if !cfg.IsGeminiEnabled() {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GetGeminiAPIKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, model: cfg.GetGeminiModel()}, nil
}

// Generate sends the full prompt to the model and returns the reply text.
// The system instruction and user question travel in one prompt.
func (c *Client) Generate(ctx context.Context, systemInstruction, userMessage string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nUser Question: %s", systemInstruction, userMessage)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}
