package repositories

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-evaluator/internal/models"
)

func sampleRecords() []models.FeedbackRecord {
	return []models.FeedbackRecord{
		{
			Timestamp:  models.NewTimestamp(time.Date(2026, 3, 1, 10, 30, 0, 0, time.Local)),
			SourceName: "entrevista_joão.txt",
			Score:      models.NewScore(7.5),
			Summary:    "Boa comunicação, respostas claras até aqui.",
			FullText:   "Boa comunicação, respostas claras até aqui. O candidato demonstrou segurança.",
		},
		{
			Timestamp:  models.NewTimestamp(time.Date(2026, 3, 2, 9, 15, 42, 0, time.Local)),
			SourceName: "segunda_entrevista.txt",
			Score:      models.UnavailableScore(),
			Summary:    "Resposta sem nota numérica.",
			FullText:   "Resposta sem nota numérica.",
		},
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_history.json")
	repo := NewHistoryRepository(path)

	records := sampleRecords()
	require.NoError(t, repo.Save(records))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestHistoryFileIsHumanInspectable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_history.json")
	repo := NewHistoryRepository(path)

	require.NoError(t, repo.Save(sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "2026-03-01 10:30:00")
	assert.Contains(t, content, `"N/A"`)
	// Accented characters must survive as-is, not as \uXXXX escapes.
	assert.Contains(t, content, "entrevista_joão.txt")
	assert.Contains(t, content, "comunicação")
}

func TestLoadMissingFileReturnsEmptyHistory(t *testing.T) {
	repo := NewHistoryRepository(filepath.Join(t.TempDir(), "nope.json"))

	records, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestLoadCorruptFileReturnsEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	repo := NewHistoryRepository(path)
	records, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadEmptyFileReturnsEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_history.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	repo := NewHistoryRepository(path)
	records, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveOverwritesPriorContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_history.json")
	repo := NewHistoryRepository(path)

	records := sampleRecords()
	require.NoError(t, repo.Save(records))
	require.NoError(t, repo.Save(records[:1]))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, records[0], loaded[0])
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "feedback_history.json")
	repo := NewHistoryRepository(path)

	require.NoError(t, repo.Save(sampleRecords()))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}
