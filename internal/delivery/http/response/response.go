package response

import (
	"github.com/gin-gonic/gin"

	"go-jobtracker-backend/pkg/apperror"
)

// Response standardizes the API JSON envelope. Every operation resolves to
// this shape; failures never propagate unhandled to the client.
type Response struct {
	Success   bool                  `json:"success"`
	Data      interface{}           `json:"data,omitempty"`
	Error     string                `json:"error,omitempty"`
	Details   []apperror.FieldError `json:"details,omitempty"`
	RequestID string                `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details []apperror.FieldError) {
	c.JSON(code, Response{
		Success:   false,
		Error:     message,
		Details:   details,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
