package v1

import (
	"net/http"

	"go-jobtracker-backend/internal/delivery/http/response"
	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"
	"go-jobtracker-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers job application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	r.GET("/applications", handler.ListApplications)
	r.POST("/applications", handler.CreateApplication)
	r.PATCH("/applications/:id/status", handler.UpdateStatus)
	r.PATCH("/applications/:id/industry", handler.UpdateIndustry)
	r.PATCH("/applications/:id/salary", handler.UpdateSalary)
	r.DELETE("/applications/:id", handler.DeleteApplication)
}

// CreateApplicationRequest is the create payload. Validation failures are
// reported per field so the form can highlight offending inputs.
type CreateApplicationRequest struct {
	ProfileID   string  `json:"profileId" binding:"required,uuid"`
	CompanyName string  `json:"companyName" binding:"required"`
	JobURL      string  `json:"jobUrl" binding:"required,url"`
	Description string  `json:"description" binding:"required"`
	WorkType    string  `json:"workType" binding:"required,oneof=remote office hybrid"`
	Industry    *string `json:"industry"`
	Location    *string `json:"location"`
}

// UpdateStatusRequest targets exactly one field
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateIndustryRequest targets exactly one field
type UpdateIndustryRequest struct {
	Industry string `json:"industry" binding:"required"`
}

// UpdateSalaryRequest replaces the full salary sub-record. Omitted amounts
// clear the salary; currency/type/period keep whatever the client sends.
type UpdateSalaryRequest struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency *string  `json:"currency"`
	Type     *string  `json:"type" binding:"omitempty,oneof=gross net"`
	Period   *string  `json:"period" binding:"omitempty,oneof=year month"`
}

// ListApplications returns the caller's applications for one profile
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profileID := c.Query("profileId")
	if profileID == "" {
		c.Error(apperror.Validation([]apperror.FieldError{
			{Field: "profileId", Message: "profileId is required"},
		}))
		return
	}

	apps, err := h.applicationUC.ListApplications(c, userID, profileID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, apps)
}

// CreateApplication records a new application. This is the endpoint the
// extension popup posts to cross-origin after the user reviews the
// extracted fields.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	app, err := h.applicationUC.CreateApplication(c, userID, domain.CreateApplicationInput{
		ProfileID:   req.ProfileID,
		CompanyName: req.CompanyName,
		JobURL:      req.JobURL,
		Description: req.Description,
		WorkType:    domain.WorkType(req.WorkType),
		Industry:    req.Industry,
		Location:    req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, app)
}

// UpdateStatus moves an application to another pipeline stage
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	if err := h.applicationUC.UpdateStatus(c, userID, c.Param("id"), domain.ApplicationStatus(req.Status)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// UpdateIndustry relabels an application's industry
func (h *ApplicationHandler) UpdateIndustry(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req UpdateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	if err := h.applicationUC.UpdateIndustry(c, userID, c.Param("id"), req.Industry); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// UpdateSalary replaces the salary sub-record atomically
func (h *ApplicationHandler) UpdateSalary(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	salary := domain.Salary{
		Min:      req.Min,
		Max:      req.Max,
		Currency: req.Currency,
		Type:     req.Type,
		Period:   req.Period,
	}
	if err := h.applicationUC.UpdateSalary(c, userID, c.Param("id"), salary); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// DeleteApplication permanently removes an application
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.applicationUC.DeleteApplication(c, userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
