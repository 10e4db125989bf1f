package middleware

import (
	"errors"
	"net/http"

	"go-jobtracker-backend/internal/delivery/http/response"
	"go-jobtracker-backend/pkg/apperror"
	"go-jobtracker-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the operation boundary: every error a handler attaches is
// converted to the structured envelope here. Internal detail is logged and
// never serialized to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"error", appErr.Err,
					"path", c.Request.URL.Path,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
	}
}
