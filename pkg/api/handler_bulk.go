package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/observability"
	"github.com/codeready-toolchain/agent-tracker/pkg/services"
)

// bulkCreateHandler handles POST /api/agent_invocations/bulk_create.
// The batch is all-or-nothing: 201 with every created id, or 422 listing
// every rejected index with nothing persisted.
func (s *Server) bulkCreateHandler(c *gin.Context) {
	var req models.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		observability.BulkBatches.WithLabelValues(observability.OutcomeRejected).Inc()
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	observability.BulkBatchSize.Observe(float64(len(req.Invocations)))

	resp, err := s.svc.Ingest.BulkCreateJSON(c.Request.Context(), req.Invocations)
	if err != nil {
		var bulkErr *services.BulkError
		switch {
		case errors.As(err, &bulkErr):
			observability.BulkBatches.WithLabelValues(observability.OutcomeRejected).Inc()
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, models.BulkErrorResponse{
				Success: false,
				Errors:  bulkErr.Records,
			})
		case errors.Is(err, services.ErrEmptyBatch), errors.Is(err, services.ErrBatchTooLarge):
			observability.BulkBatches.WithLabelValues(observability.OutcomeRejected).Inc()
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			observability.BulkBatches.WithLabelValues(observability.OutcomeError).Inc()
			slog.Error("Bulk ingestion failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		}
		return
	}

	observability.BulkBatches.WithLabelValues(observability.OutcomeCommitted).Inc()
	observability.InvocationsRecorded.WithLabelValues(observability.SourceBulk).Add(float64(resp.CreatedCount))
	c.JSON(http.StatusCreated, resp)
}
