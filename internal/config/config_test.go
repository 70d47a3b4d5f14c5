package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, float32(0.7), cfg.LLM.Temperature)
	assert.Equal(t, "feedback_history.json", cfg.History.FilePath)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_MODEL", "gemini-2.5-flash")
	t.Setenv("LLM_TEMPERATURE", "0.3")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("HISTORY_FILE", "/tmp/history.json")
	t.Setenv("MAX_FILE_SIZE", "1024")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, float32(0.3), cfg.LLM.Temperature)
	assert.Equal(t, "/tmp/history.json", cfg.History.FilePath)
	assert.Equal(t, int64(1024), cfg.Storage.MaxFileSize)
}

func TestAPIKeyFollowsProvider(t *testing.T) {
	llm := LLMConfig{Provider: "openai", OpenAIAPIKey: "oa-key", GeminiAPIKey: "gem-key"}
	assert.Equal(t, "oa-key", llm.APIKey())

	llm.Provider = "gemini"
	assert.Equal(t, "gem-key", llm.APIKey())
}
