package v1

import (
	"net/http"

	"go-jobtracker-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the session probe consumed by the dashboard and the
// extension popup.
type AuthHandler struct{}

// NewAuthHandler registers auth routes on the optionally-authenticated group
func NewAuthHandler(r *gin.RouterGroup) {
	handler := &AuthHandler{}
	r.GET("/auth/me", handler.Me)
}

// Me reports whether the caller holds a valid session. It never errors on a
// missing or invalid token; the extension polls it to decide whether to show
// the login prompt.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false, "user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": domain.AuthUser{
			ID:    userID,
			Email: c.GetString(string(domain.KeyUserEmail)),
		},
	})
}
