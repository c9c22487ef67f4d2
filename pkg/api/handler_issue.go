package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

func (s *Server) listIssuesHandler(c *gin.Context) {
	lp, errPage := listParams(c)
	agentID, errAgent := queryInt(c, "agent_id")
	severity, errSeverity := queryInt(c, "severity")
	status, errStatus := queryEnum[models.IssueStatus](c, "status")
	if err := collect(errPage, errAgent, errSeverity, errStatus); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := s.svc.Issues.ListIssues(c.Request.Context(), models.IssueFilters{
		ListParams: lp,
		AgentID:    agentID,
		Severity:   severity,
		Status:     status,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) createIssueHandler(c *gin.Context) {
	var req models.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	issue, err := s.svc.Issues.CreateIssue(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, issue)
}

func (s *Server) getIssueHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	issue, err := s.svc.Issues.GetIssue(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (s *Server) updateIssueHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	var req models.UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	issue, err := s.svc.Issues.UpdateIssue(c.Request.Context(), id, req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (s *Server) deleteIssueHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := s.svc.Issues.DeleteIssue(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
