package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

func (s *Server) listImprovementsHandler(c *gin.Context) {
	lp, errPage := listParams(c)
	agentID, errAgent := queryInt(c, "agent_id")
	priority, errPriority := queryInt(c, "priority")
	status, errStatus := queryEnum[models.ImprovementStatus](c, "status")
	if err := collect(errPage, errAgent, errPriority, errStatus); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := s.svc.Improvements.ListImprovements(c.Request.Context(), models.ImprovementFilters{
		ListParams: lp,
		AgentID:    agentID,
		Priority:   priority,
		Status:     status,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) createImprovementHandler(c *gin.Context) {
	var req models.CreateImprovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	imp, err := s.svc.Improvements.CreateImprovement(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, imp)
}

func (s *Server) getImprovementHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	imp, err := s.svc.Improvements.GetImprovement(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, imp)
}

// updateImprovementHandler handles PATCH /agent_tracker/agent_improvements/:id.
// Moving to implemented stamps implemented_at the first time only.
func (s *Server) updateImprovementHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	var req models.UpdateImprovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	imp, err := s.svc.Improvements.UpdateImprovement(c.Request.Context(), id, req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, imp)
}

func (s *Server) deleteImprovementHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := s.svc.Improvements.DeleteImprovement(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
