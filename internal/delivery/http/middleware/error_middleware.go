package middleware

import (
	"errors"
	"net/http"

	"go-rotech-website/internal/delivery/http/response"
	"go-rotech-website/pkg/apperror"
	"go-rotech-website/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// Log the underlying cause server-side; the client only
				// ever sees the coded message.
				if appErr.Err != nil {
					logger.Log.Error("Request failed",
						"status", appErr.Code, "message", appErr.Message, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("Unhandled internal error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
