package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/observability"
)

// listInvocationsHandler handles GET /agent_tracker/agent_invocations.
func (s *Server) listInvocationsHandler(c *gin.Context) {
	lp, errPage := listParams(c)
	agentID, errAgent := queryInt(c, "agent_id")
	mode, errMode := queryEnum[models.InvocationMode](c, "mode")
	success, errSuccess := queryBool(c, "success")
	if err := collect(errPage, errAgent, errMode, errSuccess); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := s.svc.Invocations.ListInvocations(c.Request.Context(), models.InvocationFilters{
		ListParams: lp,
		AgentID:    agentID,
		Mode:       mode,
		Success:    success,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// invocationFormHandler handles GET /agent_tracker/agent_invocations/new and
// its /agent_tracker/quick_log alias.
func (s *Server) invocationFormHandler(c *gin.Context) {
	defaults, err := s.svc.Invocations.FormDefaults(c.Request.Context(), s.svc.Agents)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, defaults)
}

// createInvocationHandler handles POST /agent_tracker/agent_invocations.
func (s *Server) createInvocationHandler(c *gin.Context) {
	var req models.CreateInvocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	inv, err := s.svc.Invocations.CreateInvocation(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	observability.InvocationsRecorded.WithLabelValues(observability.SourceForm).Inc()
	c.JSON(http.StatusCreated, inv)
}

// getInvocationHandler handles GET /agent_tracker/agent_invocations/:id.
func (s *Server) getInvocationHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	detail, err := s.svc.Invocations.GetInvocation(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// updateInvocationHandler handles PATCH /agent_tracker/agent_invocations/:id.
func (s *Server) updateInvocationHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	var req models.UpdateInvocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	inv, err := s.svc.Invocations.UpdateInvocation(c.Request.Context(), id, req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// deleteInvocationHandler handles DELETE /agent_tracker/agent_invocations/:id.
func (s *Server) deleteInvocationHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := s.svc.Invocations.DeleteInvocation(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
