package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/services"
	testdb "github.com/codeready-toolchain/agent-tracker/test/database"
)

func newTestServer(t *testing.T) (*Server, *services.AgentService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)
	return New(agents, services.NewInvocationService(client.Client)), agents
}

func toolRequest(name string, args map[string]any) mcplib.CallToolRequest {
	return mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// parseToolText extracts the first TextContent text from a CallToolResult.
func parseToolText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	for _, c := range result.Content {
		if tc, ok := c.(mcplib.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatal("no TextContent found in tool result")
	return ""
}

func seedCatalog(t *testing.T, agents *services.AgentService) {
	t.Helper()
	for _, req := range []models.CreateAgentRequest{
		{AgentNumber: 1, Name: "Market Research Specialist", Category: models.CategoryResearch, Tier: 1},
		{AgentNumber: 2, Name: "Security Auditor", Category: models.CategorySecurity, Tier: 2},
		{AgentNumber: 3, Name: "Legacy Reporter", Category: models.CategoryResearch, Tier: 3, Status: models.AgentStatusDeprecated},
	} {
		_, err := agents.CreateAgent(context.Background(), req)
		require.NoError(t, err)
	}
}

func TestHandleLogInvocation(t *testing.T) {
	s, agents := newTestServer(t)
	seedCatalog(t, agents)
	ctx := context.Background()

	t.Run("records a completed invocation", func(t *testing.T) {
		result, err := s.handleLogInvocation(ctx, toolRequest("log_invocation", map[string]any{
			"agent_number":        float64(1),
			"task_description":    "Size the market",
			"started_at":          "2026-10-01T09:00:00Z",
			"completed_at":        "2026-10-01T09:20:00Z",
			"success":             true,
			"satisfaction_rating": float64(5),
			"tokens_total":        float64(1200),
		}))
		require.NoError(t, err)
		require.False(t, result.IsError, parseToolText(t, result))

		var resp struct {
			ID              int    `json:"id"`
			AgentNumber     int    `json:"agent_number"`
			DurationMinutes *int   `json:"duration_minutes"`
			Status          string `json:"status"`
		}
		require.NoError(t, json.Unmarshal([]byte(parseToolText(t, result)), &resp))
		assert.Equal(t, "recorded", resp.Status)
		assert.Equal(t, 1, resp.AgentNumber)
		assert.NotZero(t, resp.ID)
		require.NotNil(t, resp.DurationMinutes)
		assert.Equal(t, 20, *resp.DurationMinutes)
	})

	tests := []struct {
		name    string
		args    map[string]any
		errText string
	}{
		{
			name:    "missing agent number",
			args:    map[string]any{"task_description": "x"},
			errText: "agent_number is required",
		},
		{
			name:    "unknown agent",
			args:    map[string]any{"agent_number": float64(99), "task_description": "x"},
			errText: "Agent not found with agent_number: 99",
		},
		{
			name:    "bad timestamp",
			args:    map[string]any{"agent_number": float64(1), "task_description": "x", "started_at": "yesterday"},
			errText: "invalid started_at",
		},
		{
			name:    "fractional agent number",
			args:    map[string]any{"agent_number": 1.5, "task_description": "x"},
			errText: "agent_number must be an integer",
		},
		{
			name:    "fractional rating",
			args:    map[string]any{"agent_number": float64(1), "task_description": "x", "satisfaction_rating": 4.7},
			errText: "satisfaction_rating must be an integer",
		},
		{
			name:    "fractional tokens",
			args:    map[string]any{"agent_number": float64(1), "task_description": "x", "tokens_input": 10.5},
			errText: "tokens_input must be an integer",
		},
		{
			name:    "blank task description",
			args:    map[string]any{"agent_number": float64(1), "task_description": "  "},
			errText: "Task description can't be blank",
		},
		{
			name:    "validation failure",
			args:    map[string]any{"agent_number": float64(1), "task_description": "", "satisfaction_rating": float64(7)},
			errText: "Satisfaction rating must be between 1 and 5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.handleLogInvocation(ctx, toolRequest("log_invocation", tt.args))
			require.NoError(t, err, "handler should not return go error, only tool error")
			require.True(t, result.IsError)
			assert.Contains(t, parseToolText(t, result), tt.errText)
		})
	}
}

func TestHandleListAgents(t *testing.T) {
	s, agents := newTestServer(t)
	seedCatalog(t, agents)
	ctx := context.Background()

	result, err := s.handleListAgents(ctx, toolRequest("list_agents", map[string]any{"category": "research"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var resp struct {
		Agents []struct {
			AgentNumber int    `json:"agent_number"`
			Status      string `json:"status"`
		} `json:"agents"`
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(parseToolText(t, result)), &resp))
	assert.Equal(t, 2, resp.TotalCount)
	require.Len(t, resp.Agents, 2)
	assert.Equal(t, 1, resp.Agents[0].AgentNumber)
	assert.Equal(t, 3, resp.Agents[1].AgentNumber)

	result, err = s.handleListAgents(ctx, toolRequest("list_agents", map[string]any{"status": "deprecated"}))
	require.NoError(t, err)
	assert.Contains(t, parseToolText(t, result), `"total_count":1`)

	result, err = s.handleListAgents(ctx, toolRequest("list_agents", map[string]any{"category": "astrology"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleAgentStats(t *testing.T) {
	s, agents := newTestServer(t)
	seedCatalog(t, agents)
	ctx := context.Background()

	for _, ok := range []bool{true, true, false} {
		result, err := s.handleLogInvocation(ctx, toolRequest("log_invocation", map[string]any{
			"agent_number":        float64(2),
			"task_description":    "audit",
			"success":             ok,
			"satisfaction_rating": float64(4),
		}))
		require.NoError(t, err)
		require.False(t, result.IsError, parseToolText(t, result))
	}

	result, err := s.handleAgentStats(ctx, toolRequest("agent_stats", map[string]any{"agent_number": float64(2)}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var resp struct {
		Name  string            `json:"name"`
		Stats models.AgentStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(parseToolText(t, result)), &resp))
	assert.Equal(t, "Security Auditor", resp.Name)
	assert.Equal(t, 3, resp.Stats.TotalInvocations)
	assert.InDelta(t, 66.7, resp.Stats.SuccessRate, 0.001)
	require.NotNil(t, resp.Stats.AverageSatisfaction)
	assert.InDelta(t, 4.0, *resp.Stats.AverageSatisfaction, 0.001)

	result, err = s.handleAgentStats(ctx, toolRequest("agent_stats", map[string]any{"agent_number": float64(50)}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHTTPHandler_ListsTools(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.HTTPHandler()

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json, text/event-stream")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := post(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"name":"agent-tracker"`)
}
