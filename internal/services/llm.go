package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ErrMissingAPIKey is returned before any network call when the selected
// provider has no credential configured.
var ErrMissingAPIKey = errors.New("LLM API key is not configured")

// CompletionService generates a single free-text completion for a prompt.
type CompletionService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	Provider() string
	Model() string
}

// LLMSettings identifies one provider client. Two settings values compare
// equal exactly when they can share a client.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
}

// NewCompletionService builds a provider client for the given settings.
func NewCompletionService(settings LLMSettings) (CompletionService, error) {
	switch settings.Provider {
	case ProviderOpenAI:
		return NewOpenAIService(settings.APIKey, settings.Model)
	case ProviderGemini:
		return NewGeminiService(settings.APIKey, settings.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", settings.Provider)
	}
}

// CompletionProvider hands out a CompletionService for the requested settings.
type CompletionProvider interface {
	Get(settings LLMSettings) (CompletionService, error)
}

// CompletionFactory caches the last-built client and rebuilds it only when
// the settings tuple changes, so per-request model overrides do not allocate
// a client per call.
type CompletionFactory struct {
	mu       sync.Mutex
	settings LLMSettings
	client   CompletionService
}

func NewCompletionFactory() *CompletionFactory {
	return &CompletionFactory{}
}

// Get implements CompletionProvider.
func (f *CompletionFactory) Get(settings LLMSettings) (CompletionService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil && f.settings == settings {
		return f.client, nil
	}

	client, err := NewCompletionService(settings)
	if err != nil {
		return nil, err
	}

	f.settings = settings
	f.client = client
	return client, nil
}
