package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiService struct {
	client    *genai.Client
	modelName string
}

// NewGeminiService creates a CompletionService backed by the Gemini API.
// Fails before any call when the key is missing.
func NewGeminiService(apiKey, modelName string) (CompletionService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set GEMINI_API_KEY in your .env file", ErrMissingAPIKey)
	}
	if modelName == "" {
		modelName = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateText implements CompletionService.
func (s *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in gemini response")
	}

	return text, nil
}

// Provider implements CompletionService.
func (s *geminiService) Provider() string {
	return ProviderGemini
}

// Model implements CompletionService.
func (s *geminiService) Model() string {
	return s.modelName
}
