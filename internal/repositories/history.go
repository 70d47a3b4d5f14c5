package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"alfredoptarigan/interview-evaluator/internal/models"
)

// HistoryRepository persists the feedback history as a single JSON file.
// Save overwrites the whole file; records are kept in chronological order.
type HistoryRepository interface {
	Load() ([]models.FeedbackRecord, error)
	Save(records []models.FeedbackRecord) error
	FilePath() string
}

type historyRepository struct {
	filePath string
}

func NewHistoryRepository(filePath string) HistoryRepository {
	return &historyRepository{filePath: filePath}
}

// Load implements HistoryRepository. A missing file yields an empty history.
// A malformed file is reported as a warning and also yields an empty history:
// the log is an advisory aid, not a ledger worth failing over.
func (r *historyRepository) Load() ([]models.FeedbackRecord, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.FeedbackRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var records []models.FeedbackRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("⚠️  History file %s is corrupted or empty, starting a new one: %v\n", r.filePath, err)
		return []models.FeedbackRecord{}, nil
	}
	if records == nil {
		records = []models.FeedbackRecord{}
	}

	return records, nil
}

// Save implements HistoryRepository.
func (r *historyRepository) Save(records []models.FeedbackRecord) error {
	if dir := filepath.Dir(r.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	// Transcripts carry accented text; keep it readable in the file.
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := os.WriteFile(r.filePath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	return nil
}

// FilePath implements HistoryRepository.
func (r *historyRepository) FilePath() string {
	return r.filePath
}
