package model

import "time"

// Summary is a stored clinical summary generated from a completed (or
// partial) intake transcript.
type Summary struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Text      string    `json:"text" bson:"text"`
	FilePath  string    `json:"file_path" bson:"filePath"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

// GenerateSummaryRequest carries the full transcript string to summarize.
type GenerateSummaryRequest struct {
	Context string `json:"context"`
}

// SummaryResult is the soft-failure response of the summary generator:
// oracle errors surface here as Success=false, never as a transport fault.
type SummaryResult struct {
	Success  bool   `json:"success"`
	Summary  string `json:"summary,omitempty"`
	FilePath string `json:"file_path,omitempty"`
	Error    string `json:"error,omitempty"`
}
