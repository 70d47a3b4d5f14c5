package services

import (
	"regexp"
	"strconv"

	"alfredoptarigan/interview-evaluator/internal/models"
)

var (
	// scoreLabelPattern locates topic 1 of the response, tolerating case
	// changes and markdown around the label.
	scoreLabelPattern = regexp.MustCompile(`(?i)nota geral de 0 a 10 da minha performance`)
	// scoreValuePattern accepts integers and one-decimal numerals.
	scoreValuePattern = regexp.MustCompile(`\d+(?:\.\d)?`)
)

// ScoreExtractor pulls the 0-10 grade out of the free-text model response.
// Best-effort by design: the response format is instructed, not guaranteed,
// so a miss yields the unavailable sentinel rather than an error.
type ScoreExtractor struct{}

func NewScoreExtractor() *ScoreExtractor {
	return &ScoreExtractor{}
}

// Extract finds the first occurrence of the score label and returns the first
// in-range numeral after it, however much whitespace or text intervenes. No
// label or no usable numeral yields the unavailable sentinel.
func (e *ScoreExtractor) Extract(responseText string) models.Score {
	label := scoreLabelPattern.FindStringIndex(responseText)
	if label == nil {
		return models.UnavailableScore()
	}

	for _, candidate := range scoreValuePattern.FindAllString(responseText[label[1]:], -1) {
		value, err := strconv.ParseFloat(candidate, 64)
		if err != nil {
			continue
		}
		if value >= 0 && value <= 10 {
			return models.NewScore(value)
		}
	}

	return models.UnavailableScore()
}
