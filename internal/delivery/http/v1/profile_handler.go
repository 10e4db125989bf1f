package v1

import (
	"net/http"

	"go-jobtracker-backend/internal/delivery/http/response"
	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

// NewProfileHandler registers job profile routes
func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	r.GET("/profiles", handler.ListProfiles)
	r.POST("/profiles", handler.CreateProfile)
	r.PATCH("/profiles/:id", handler.RenameProfile)
	r.DELETE("/profiles/:id", handler.DeleteProfile)
}

// ProfileRequest carries a profile display name. Length rules live in the
// usecase because they apply post-trim.
type ProfileRequest struct {
	Name string `json:"name"`
}

// ListProfiles returns all profiles owned by the caller, newest first
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profiles, err := h.profileUC.ListProfiles(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, profiles)
}

// CreateProfile creates a profile owned by the caller
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.CreateProfile(c, userID, req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// RenameProfile renames an owned profile in place
func (h *ProfileHandler) RenameProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.RenameProfile(c, userID, c.Param("id"), req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// DeleteProfile deletes an owned profile; its applications cascade away
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.DeleteProfile(c, userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
