package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"unicode/utf8"

	"alfredoptarigan/interview-evaluator/internal/models"
	"alfredoptarigan/interview-evaluator/internal/repositories"
)

// SummaryLimit bounds the stored summary, counted in runes so accented
// transcripts are not cut mid-character.
const SummaryLimit = 500

// TruncationMarker is appended to summaries that were cut at SummaryLimit.
const TruncationMarker = "..."

// EvaluateOptions carries the per-request model controls. Zero values fall
// back to the configured defaults.
type EvaluateOptions struct {
	Model       string
	Temperature *float32
}

type EvaluationService interface {
	Evaluate(ctx context.Context, transcript, sourceName string, opts EvaluateOptions) (*models.FeedbackRecord, error)
	History() ([]models.FeedbackRecord, error)
}

type evaluationService struct {
	historyRepo        repositories.HistoryRepository
	summarizer         *HistorySummarizer
	promptBuilder      *PromptBuilder
	extractor          *ScoreExtractor
	completions        CompletionProvider
	defaults           LLMSettings
	defaultTemperature float32

	// Serializes the load-mutate-save cycle so concurrent requests cannot
	// lose appends.
	mu sync.Mutex
}

func NewEvaluationService(
	historyRepo repositories.HistoryRepository,
	completions CompletionProvider,
	defaults LLMSettings,
	defaultTemperature float32,
) EvaluationService {
	return &evaluationService{
		historyRepo:        historyRepo,
		summarizer:         NewHistorySummarizer(),
		promptBuilder:      NewPromptBuilder(),
		extractor:          NewScoreExtractor(),
		completions:        completions,
		defaults:           defaults,
		defaultTemperature: defaultTemperature,
	}
}

// Evaluate implements EvaluationService: load history, digest it, build the
// prompt, call the model, extract the score and persist exactly one new
// record. A failed model call aborts before any mutation of the history.
func (e *evaluationService) Evaluate(ctx context.Context, transcript, sourceName string, opts EvaluateOptions) (*models.FeedbackRecord, error) {
	settings := e.defaults
	if opts.Model != "" {
		settings.Model = opts.Model
	}
	temperature := e.defaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	// Fail fast on configuration problems before touching history or network.
	llm, err := e.completions.Get(settings)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	history, err := e.historyRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback history: %w", err)
	}

	digest := e.summarizer.Digest(history)
	prompt := e.promptBuilder.BuildFeedbackPrompt(transcript, digest)

	log.Printf("🤖 Generating feedback for %s with %s/%s (prompt: %d characters)\n",
		sourceName, llm.Provider(), llm.Model(), len(prompt))

	response, err := llm.GenerateText(ctx, prompt, temperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate feedback: %w", err)
	}

	score := e.extractor.Extract(response)
	if !score.Valid {
		log.Printf("⚠️  Could not extract a score from the response for %s, storing %s\n",
			sourceName, models.ScoreUnavailableMarker)
	}

	record := models.FeedbackRecord{
		Timestamp:  models.Now(),
		SourceName: sourceName,
		Score:      score,
		Summary:    summarize(response),
		FullText:   response,
	}

	history = append(history, record)
	if err := e.historyRepo.Save(history); err != nil {
		return nil, fmt.Errorf("failed to persist feedback history: %w", err)
	}

	log.Printf("✅ Feedback for %s saved (nota: %s, history: %d records)\n",
		sourceName, record.Score, len(history))

	return &record, nil
}

// History implements EvaluationService, most recent first.
func (e *evaluationService) History() ([]models.FeedbackRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	records, err := e.historyRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback history: %w", err)
	}

	reversed := make([]models.FeedbackRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}

	return reversed, nil
}

// summarize keeps a bounded prefix of the full response for the history
// digest.
func summarize(text string) string {
	if utf8.RuneCountInString(text) <= SummaryLimit {
		return text
	}
	runes := []rune(text)
	return string(runes[:SummaryLimit]) + TruncationMarker
}
