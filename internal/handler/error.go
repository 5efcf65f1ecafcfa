package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookify/internal/apperr"
	"github.com/snnyvrz/bookify/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// ErrorHandler renders the last error pushed by a handler. Operational
// errors keep their status and message; anything else becomes a bare 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		if ae, ok := apperr.As(err); ok {
			if ae.Status >= http.StatusInternalServerError {
				logger.ErrorContext(c.Request.Context(), ae.Message,
					"code", ae.Code,
					"error", err,
					"path", c.Request.URL.Path,
				)
			}
			writeError(c, apperr.StatusOf(ae), ae.Code, ae.Message)
			return
		}

		logger.ErrorContext(c.Request.Context(), "unhandled error",
			"error", err,
			"path", c.Request.URL.Path,
		)
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal Server Error")
	}
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	abortWithError(c, apperr.NotFound("ROUTE_NOT_FOUND", "route not found"))
}
