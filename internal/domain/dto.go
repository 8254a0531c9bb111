package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreateSessionResponse is returned when a new session is opened.
type CreateSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Step      Step      `json:"step"`
}

// UploadState is the upload widget as the client renders it.
type UploadState struct {
	Status     UploadStatus  `json:"status"`
	StatusText string        `json:"status_text"`
	File       *SelectedFile `json:"file,omitempty"`
}

// SessionResponse represents the current screen of a session.
type SessionResponse struct {
	SessionID uuid.UUID   `json:"session_id"`
	Step      Step        `json:"step"`
	FileName  string      `json:"file_name,omitempty"`
	Upload    UploadState `json:"upload"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// SectionSummary is the score card of one analysis area.
type SectionSummary struct {
	Score int       `json:"score"`
	Band  ScoreBand `json:"band"`
	Count int       `json:"count"`
}

// AnalysisResponse is the analysis screen, either loading or complete.
type AnalysisResponse struct {
	FileName string                    `json:"file_name"`
	Loading  bool                      `json:"loading"`
	Result   *AnalysisResult           `json:"result,omitempty"`
	Summary  map[string]SectionSummary `json:"summary,omitempty"`
}

// JobMatchResponse is one listing together with its match band.
type JobMatchResponse struct {
	JobListing
	MatchBand MatchBand `json:"match_band"`
}

// JobsResponse is the job matching screen, either loading or complete.
type JobsResponse struct {
	Loading bool               `json:"loading"`
	Jobs    []JobMatchResponse `json:"jobs,omitempty"`
	Stats   *JobStats          `json:"stats,omitempty"`
}

// UploadRejectedResponse is the body returned when a file is rejected.
type UploadRejectedResponse struct {
	Error  string      `json:"error"`
	Reason string      `json:"reason"`
	Upload UploadState `json:"upload"`
}
