package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"
	"go-jobtracker-backend/pkg/logger"
)

type analyzeUsecase struct {
	analyzer domain.JobAnalyzer
	sessions domain.SessionRepository
}

// NewAnalyzeUsecase creates the job analysis usecase. sessions may be nil
// when Redis is not configured; session operations then fail gracefully.
func NewAnalyzeUsecase(analyzer domain.JobAnalyzer, sessions domain.SessionRepository) domain.AnalyzeUsecase {
	return &analyzeUsecase{analyzer: analyzer, sessions: sessions}
}

// AnalyzeJob forwards posting text to the extraction adapter. The adapter
// bounds input length and schema-validates its output; anything unusable
// surfaces as a single generic analysis failure.
func (uc *analyzeUsecase) AnalyzeJob(ctx context.Context, text string) (*domain.JobAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperror.Validation([]apperror.FieldError{
			{Field: "text", Message: "text is required"},
		})
	}

	analysis, err := uc.analyzer.Analyze(ctx, text)
	if err != nil {
		logger.Log.Error("job analysis failed", "error", err)
		return nil, apperror.Extraction(err)
	}
	return analysis, nil
}

// GetSession loads the extension popup's persisted analysis state.
func (uc *analyzeUsecase) GetSession(ctx context.Context, userID string) (*domain.AnalysisSession, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	if uc.sessions == nil {
		return nil, apperror.BadRequest("Session storage is not available")
	}

	session, err := uc.sessions.Get(ctx, userID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return session, nil
}

// SaveSession persists the popup's analysis state after validating the
// status against the fixed lifecycle set.
func (uc *analyzeUsecase) SaveSession(ctx context.Context, userID string, session *domain.AnalysisSession) error {
	if userID == "" {
		return apperror.Unauthorized("Unauthorized")
	}
	if uc.sessions == nil {
		return apperror.BadRequest("Session storage is not available")
	}

	if !session.Status.IsValid() {
		return apperror.Validation([]apperror.FieldError{
			{Field: "status", Message: "status must be one of: idle analyzing review success error"},
		})
	}

	session.UpdatedAt = time.Now().UTC()
	if err := uc.sessions.Save(ctx, userID, session); err != nil {
		return apperror.Store(err)
	}
	return nil
}
