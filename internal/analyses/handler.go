package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"energy-optimizer/internal/analyses/recommendations"
	"energy-optimizer/internal/shared/metrics"
	"energy-optimizer/internal/shared/server/middleware"
	"energy-optimizer/internal/shared/server/respond"
	"energy-optimizer/internal/shared/telemetry"
)

const maxBodySize = 1 << 20 // 1MB

// statusClientClosedRequest is returned when the caller goes away mid-request.
const statusClientClosedRequest = 499

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	start := time.Now()
	metrics.IncAnalysisRequests()
	defer func() {
		metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	req, bindErr := bindRequest(c)
	telemetry.Info("analyze.received", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"payload":    req,
	})
	if bindErr != nil {
		metrics.IncAnalysisRejected(reasonNoData)
		respond.Error(c, http.StatusBadRequest, MessageNoData, bindErr)
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			metrics.IncAnalysisRejected(reasonCanceled)
			telemetry.Info("analyze.canceled", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"error":      err.Error(),
			})
			c.AbortWithStatus(statusClientClosedRequest)
		case errors.Is(err, ErrNoData):
			metrics.IncAnalysisRejected(reasonNoData)
			respond.Error(c, http.StatusBadRequest, MessageNoData, err)
		case errors.Is(err, recommendations.ErrUnsupportedBuildingType):
			metrics.IncAnalysisRejected(reasonUnsupportedBuildingType)
			respond.Error(c, http.StatusBadRequest, MessageUnsupportedBuildingType, err)
		default:
			metrics.IncAnalysisFailed()
			respond.Internal(c, err)
		}
		return
	}

	c.Set(middleware.BuildingTypeKey, result.BuildingType)
	metrics.IncAnalysisCompleted(result.BuildingType)
	telemetry.Debug("analyze.completed", map[string]any{
		"request_id":      middleware.RequestIDFromContext(c),
		"building_type":   result.BuildingType,
		"recommendations": result.Recommendations,
	})
	respond.OK(c, result)
}

// bindRequest decodes the body as exactly one JSON object. An absent, empty,
// oversized, non-object or trailing-data body is reported as ErrNoData.
func bindRequest(c *gin.Context) (ConsumptionRequest, error) {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil, ErrNoData
	}
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize))
	if err != nil {
		return nil, errors.Join(ErrNoData, err)
	}

	var req ConsumptionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, errors.Join(ErrNoData, err)
	}
	if req == nil {
		return nil, ErrNoData
	}
	return req, nil
}
