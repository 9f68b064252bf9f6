package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"energy-optimizer/internal/shared/telemetry"
)

// BuildingTypeKey is the context key handlers use to annotate access logs.
const BuildingTypeKey = "buildingType"

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if bt := c.GetString(BuildingTypeKey); bt != "" {
			fields["building_type"] = bt
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		telemetry.Info("request.complete", fields)
	}
}
