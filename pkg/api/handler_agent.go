package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// dashboardHandler handles GET /agent_tracker/.
func (s *Server) dashboardHandler(c *gin.Context) {
	dash, err := s.svc.Dashboard.GetDashboard(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// listAgentsHandler handles GET /agent_tracker/agents.
func (s *Server) listAgentsHandler(c *gin.Context) {
	lp, errPage := listParams(c)
	category, errCategory := queryEnum[models.Category](c, "category")
	tier, errTier := queryInt(c, "tier")
	status, errStatus := queryEnum[models.AgentStatus](c, "status")
	if err := collect(errPage, errCategory, errTier, errStatus); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := s.svc.Agents.ListAgents(c.Request.Context(), models.AgentFilters{
		ListParams: lp,
		Category:   category,
		Tier:       tier,
		Status:     status,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getAgentHandler handles GET /agent_tracker/agents/:id.
func (s *Server) getAgentHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	detail, err := s.svc.Agents.GetAgentDetail(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// createAgentHandler handles POST /agent_tracker/agents.
func (s *Server) createAgentHandler(c *gin.Context) {
	var req models.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	agent, err := s.svc.Agents.CreateAgent(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agent)
}

// updateAgentHandler handles PATCH /agent_tracker/agents/:id.
func (s *Server) updateAgentHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	var req models.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	agent, err := s.svc.Agents.UpdateAgent(c.Request.Context(), id, req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// deleteAgentHandler handles DELETE /agent_tracker/agents/:id.
// Invocations, issues, improvements and changes of the agent go with it.
func (s *Server) deleteAgentHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := s.svc.Agents.DeleteAgent(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
