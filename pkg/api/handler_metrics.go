package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agent-tracker/pkg/observability"
)

// metricsHandler handles GET /api/metrics, the JSON snapshot polled by
// external monitoring. Section failures are reported inside the snapshot;
// only an unreachable store fails the whole request.
func (s *Server) metricsHandler(c *gin.Context) {
	snapshot, err := s.svc.Metrics.Collect(c.Request.Context())
	if err != nil {
		slog.Error("Metrics collection failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, MetricsErrorResponse{
			Error:     "Metrics collection failed",
			Message:   err.Error(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	for _, e := range snapshot.Errors {
		observability.MetricsSectionFailures.WithLabelValues(e.Section).Inc()
	}
	c.JSON(http.StatusOK, snapshot)
}
