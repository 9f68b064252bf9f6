package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-optimizer/internal/shared/telemetry"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "requestId"

// InternalErrorMessage is the only message clients see for unexpected failures.
const InternalErrorMessage = "An unexpected error occurred"

// ErrorResponse is the error body returned by every route.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs the failure and aborts the request with a JSON error body.
// cause is logged server side only and never sent to the client.
func Error(c *gin.Context, status int, message string, cause error) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString(RequestIDKey),
	}
	if cause != nil {
		fields["error"] = cause.Error()
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// Internal responds with a 500 and the generic message.
func Internal(c *gin.Context, cause error) {
	Error(c, http.StatusInternalServerError, InternalErrorMessage, cause)
}
