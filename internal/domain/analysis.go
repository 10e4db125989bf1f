package domain

import (
	"context"
	"time"
)

// JobAnalysis is the structured result extracted from a scraped job posting.
// All six fields must be present in the adapter's output.
type JobAnalysis struct {
	Description string `json:"description"`
	Company     string `json:"company"`
	Country     string `json:"country"`
	Industry    string `json:"industry"`
	Format      string `json:"format"`
	Position    string `json:"position"`
}

// JobAnalyzer is the hosted language-model collaborator. Implementations
// bound input length and schema-validate their own output.
type JobAnalyzer interface {
	Analyze(ctx context.Context, text string) (*JobAnalysis, error)
}

// SessionStatus is the extension popup's analysis lifecycle state.
type SessionStatus string

const (
	SessionIdle      SessionStatus = "idle"
	SessionAnalyzing SessionStatus = "analyzing"
	SessionReview    SessionStatus = "review"
	SessionSuccess   SessionStatus = "success"
	SessionError     SessionStatus = "error"
)

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionIdle, SessionAnalyzing, SessionReview, SessionSuccess, SessionError:
		return true
	}
	return false
}

// AnalysisSession is the popup's persisted state, keyed per user, so any
// popup instance reconciles the same analysis in progress.
type AnalysisSession struct {
	Status    SessionStatus `json:"status"`
	JobData   *JobAnalysis  `json:"job_data,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SessionRepository is the key-value capability backing AnalysisSession.
type SessionRepository interface {
	Get(ctx context.Context, userID string) (*AnalysisSession, error)
	Save(ctx context.Context, userID string, session *AnalysisSession) error
}

// AnalyzeUsecase defines the analysis operations
type AnalyzeUsecase interface {
	AnalyzeJob(ctx context.Context, text string) (*JobAnalysis, error)
	GetSession(ctx context.Context, userID string) (*AnalysisSession, error)
	SaveSession(ctx context.Context, userID string, session *AnalysisSession) error
}
