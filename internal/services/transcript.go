package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TranscriptParserService extracts the plain text of an interview transcript
// file. Plain .txt uploads are passed through untouched; .pdf uploads go
// through text extraction and whitespace cleanup. Transcript content is
// never validated, an empty transcript is still a transcript.
type TranscriptParserService interface {
	ExtractText(filePath string) (string, error)
}

type transcriptParserService struct{}

func NewTranscriptParserService() TranscriptParserService {
	return &transcriptParserService{}
}

// ExtractText implements TranscriptParserService.
func (p *transcriptParserService) ExtractText(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".txt":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read transcript: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return p.extractPDFText(filePath)
	default:
		return "", fmt.Errorf("unsupported transcript format: %s", filepath.Ext(filePath))
	}
}

func (p *transcriptParserService) extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, the rest of the transcript is still useful
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := CleanText(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

// CleanText normalizes extracted text: trims each line and drops blank ones.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
