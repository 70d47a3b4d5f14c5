package models

type EvaluateResponse struct {
	Record            FeedbackRecord `json:"record"`
	TranscriptPreview string         `json:"transcript_preview"`
}

type HistoryResponse struct {
	Count   int              `json:"count"`
	Records []FeedbackRecord `json:"records"`
}
