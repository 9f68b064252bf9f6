package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-optimizer/internal/analyses"
	"energy-optimizer/internal/services/health"
	"energy-optimizer/internal/shared/config"
	"energy-optimizer/internal/shared/metrics"
	"energy-optimizer/internal/shared/server/middleware"
	"energy-optimizer/internal/shared/server/respond"
)

// RouterDeps lists the handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	Health          *health.Service
	AnalysisHandler *analyses.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if deps.Health == nil {
		deps.Health = health.NewService()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		respond.Text(c, http.StatusOK, deps.Health.Liveness())
	})
	r.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})
	r.GET("/metrics", metrics.Handler())

	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(r)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
