package v1

import (
	"net/http"

	"go-jobtracker-backend/internal/delivery/http/response"
	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"
	"go-jobtracker-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AnalyzeHandler struct {
	analyzeUC domain.AnalyzeUsecase
}

// NewAnalyzeHandler registers the analysis and extension session routes
func NewAnalyzeHandler(r *gin.RouterGroup, analyzeUC domain.AnalyzeUsecase) {
	handler := &AnalyzeHandler{analyzeUC: analyzeUC}

	r.POST("/analyze-job", handler.AnalyzeJob)
	r.GET("/extension/session", handler.GetSession)
	r.PUT("/extension/session", handler.SaveSession)
}

// AnalyzeJobRequest carries scraped page text. The popup truncates to 15000
// characters before sending; the adapter enforces the same bound again.
type AnalyzeJobRequest struct {
	Text string `json:"text" binding:"required"`
}

// SaveSessionRequest is the popup's persisted analysis state
type SaveSessionRequest struct {
	Status  string              `json:"status" binding:"required"`
	JobData *domain.JobAnalysis `json:"jobData"`
}

// AnalyzeJob extracts structured job fields from posting text
func (h *AnalyzeHandler) AnalyzeJob(c *gin.Context) {
	var req AnalyzeJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	analysis, err := h.analyzeUC.AnalyzeJob(c, req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, analysis)
}

// GetSession returns the popup's last persisted analysis state, idle when
// none exists
func (h *AnalyzeHandler) GetSession(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	session, err := h.analyzeUC.GetSession(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, session)
}

// SaveSession persists the popup's analysis state
func (h *AnalyzeHandler) SaveSession(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req SaveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	session := &domain.AnalysisSession{
		Status:  domain.SessionStatus(req.Status),
		JobData: req.JobData,
	}
	if err := h.analyzeUC.SaveSession(c, userID, session); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, session)
}
