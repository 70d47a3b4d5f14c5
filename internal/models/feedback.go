package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// TimestampLayout is the wire format for record timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// ScoreUnavailableMarker is persisted when no numeric score could be
// extracted from the model response.
const ScoreUnavailableMarker = "N/A"

type FeedbackRecord struct {
	Timestamp  Timestamp `json:"timestamp"`
	SourceName string    `json:"source_name"`
	Score      Score     `json:"score"`
	Summary    string    `json:"summary"`
	FullText   string    `json:"full_text"`
}

// Score is a 0-10 evaluation grade. Valid is false when extraction from the
// model response failed; such scores serialize as the "N/A" marker.
type Score struct {
	Value float64
	Valid bool
}

func NewScore(value float64) Score {
	return Score{Value: value, Valid: true}
}

func UnavailableScore() Score {
	return Score{}
}

func (s Score) String() string {
	if !s.Valid {
		return ScoreUnavailableMarker
	}
	return strconv.FormatFloat(s.Value, 'f', -1, 64)
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return json.Marshal(ScoreUnavailableMarker)
	}
	return json.Marshal(s.Value)
}

func (s *Score) UnmarshalJSON(data []byte) error {
	var value float64
	if err := json.Unmarshal(data, &value); err == nil {
		*s = NewScore(value)
		return nil
	}

	// Older entries store the score as a string ("N/A" or a numeral).
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	if value, err := strconv.ParseFloat(text, 64); err == nil {
		*s = NewScore(value)
		return nil
	}
	*s = UnavailableScore()
	return nil
}

// Timestamp is a second-precision creation time serialized with
// TimestampLayout.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

func Now() Timestamp {
	return NewTimestamp(time.Now())
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(TimestampLayout, text, time.Local)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
