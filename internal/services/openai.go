package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "gpt-4-turbo"

type openAIService struct {
	client    openai.Client
	modelName string
}

// NewOpenAIService creates a CompletionService backed by the OpenAI Chat
// Completions API. Fails before any call when the key is missing.
func NewOpenAIService(apiKey, modelName string) (CompletionService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set OPENAI_API_KEY in your .env file", ErrMissingAPIKey)
	}
	if modelName == "" {
		modelName = defaultOpenAIModel
	}

	return &openAIService{
		client:    openai.NewClient(option.WithAPIKey(apiKey)),
		modelName: modelName,
	}, nil
}

// GenerateText implements CompletionService.
func (s *openAIService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.modelName,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(float64(temperature)),
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai API returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("no text content in openai response")
	}

	return text, nil
}

// Provider implements CompletionService.
func (s *openAIService) Provider() string {
	return ProviderOpenAI
}

// Model implements CompletionService.
func (s *openAIService) Model() string {
	return s.modelName
}
