package middleware

import (
	"errors"
	"net/http"

	"reelskills-backend/internal/delivery/http/response"
	"reelskills-backend/pkg/apperror"
	"reelskills-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(response.RequestIDKey)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"request_id", reqID,
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Unwrap(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("Internal server error", "request_id", reqID, "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
