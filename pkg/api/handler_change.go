package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// The change log is append-only: there is no update or delete route.

func (s *Server) listChangesHandler(c *gin.Context) {
	lp, errPage := listParams(c)
	agentID, errAgent := queryInt(c, "agent_id")
	changeType, errType := queryEnum[models.ChangeType](c, "change_type")
	triggeredBy, errTrigger := queryEnum[models.TriggeredBy](c, "triggered_by")
	if err := collect(errPage, errAgent, errType, errTrigger); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := s.svc.Changes.ListChanges(c.Request.Context(), models.ChangeFilters{
		ListParams:  lp,
		AgentID:     agentID,
		ChangeType:  changeType,
		TriggeredBy: triggeredBy,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) createChangeHandler(c *gin.Context) {
	var req models.CreateChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	change, err := s.svc.Changes.CreateChange(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, change)
}

func (s *Server) getChangeHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	change, err := s.svc.Changes.GetChange(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, change)
}
