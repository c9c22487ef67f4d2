package mcp

import (
	"context"
	"fmt"
	"math"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/observability"
	"github.com/codeready-toolchain/agent-tracker/pkg/services"
)

func (s *Server) registerTools() {
	// log_invocation: record one invocation against a catalog agent.
	s.mcpServer.AddTool(
		mcplib.NewTool("log_invocation",
			mcplib.WithDescription("Record an agent invocation. Omit completed_at while the task is still running."),
			mcplib.WithNumber("agent_number", mcplib.Description("Catalog number of the invoked agent"), mcplib.Required()),
			mcplib.WithString("task_description", mcplib.Description("What the agent was asked to do"), mcplib.Required()),
			mcplib.WithString("invocation_mode",
				mcplib.Description("How the agent was invoked"),
				mcplib.Enum(models.InvocationMode("").Values()...),
			),
			mcplib.WithString("started_at", mcplib.Description("ISO-8601 start time, defaults to now")),
			mcplib.WithString("completed_at", mcplib.Description("ISO-8601 completion time")),
			mcplib.WithBoolean("success", mcplib.Description("Whether the task succeeded")),
			mcplib.WithNumber("satisfaction_rating", mcplib.Description("Rating from 1 to 5")),
			mcplib.WithString("context_notes", mcplib.Description("Context given to the agent")),
			mcplib.WithString("outcome_notes", mcplib.Description("What came out of the invocation")),
			mcplib.WithNumber("tokens_input", mcplib.Description("Input tokens consumed")),
			mcplib.WithNumber("tokens_output", mcplib.Description("Output tokens produced")),
			mcplib.WithNumber("tokens_total", mcplib.Description("Total tokens")),
		),
		s.handleLogInvocation,
	)

	// list_agents: browse the catalog.
	s.mcpServer.AddTool(
		mcplib.NewTool("list_agents",
			mcplib.WithDescription("List catalog agents ordered by agent number"),
			mcplib.WithString("category",
				mcplib.Description("Filter by category"),
				mcplib.Enum(models.Category("").Values()...),
			),
			mcplib.WithString("status",
				mcplib.Description("Filter by lifecycle status"),
				mcplib.Enum(models.AgentStatus("").Values()...),
			),
			mcplib.WithNumber("page", mcplib.Description("1-based page number")),
		),
		s.handleListAgents,
	)

	// agent_stats: derived metrics for one agent.
	s.mcpServer.AddTool(
		mcplib.NewTool("agent_stats",
			mcplib.WithDescription("Success rate, average satisfaction and open work for one agent"),
			mcplib.WithNumber("agent_number", mcplib.Description("Catalog number of the agent"), mcplib.Required()),
		),
		s.handleAgentStats,
	)
}

func (s *Server) handleLogInvocation(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	number, errResult := agentNumberArg(request)
	if errResult != nil {
		return errResult, nil
	}
	agent, err := s.agents.GetAgentByNumber(ctx, number)
	if err != nil {
		return serviceErrorResult(err, fmt.Sprintf("Agent not found with agent_number: %d", number))
	}

	req := models.CreateInvocationRequest{
		AgentID:         agent.ID,
		TaskDescription: request.GetString("task_description", ""),
		InvocationMode:  models.InvocationMode(request.GetString("invocation_mode", string(models.InvocationModeSubagent))),
	}
	if req.StartedAt, err = services.ParseTimestamp(request.GetString("started_at", "")); err != nil {
		return errorResult("invalid started_at: " + err.Error()), nil
	}
	if req.CompletedAt, err = services.ParseTimestamp(request.GetString("completed_at", "")); err != nil {
		return errorResult("invalid completed_at: " + err.Error()), nil
	}

	args := request.GetArguments()
	if _, ok := args["success"]; ok {
		v := request.GetBool("success", false)
		req.Success = &v
	}
	for key, dst := range map[string]**int{
		"satisfaction_rating": &req.SatisfactionRating,
		"tokens_input":        &req.TokensInput,
		"tokens_output":       &req.TokensOutput,
		"tokens_total":        &req.TokensTotal,
	} {
		if *dst, err = optionalInt(request, args, key); err != nil {
			return errorResult(err.Error()), nil
		}
	}
	req.ContextNotes = optionalString(request, "context_notes")
	req.OutcomeNotes = optionalString(request, "outcome_notes")

	inv, err := s.invocations.CreateInvocation(ctx, req)
	if err != nil {
		return serviceErrorResult(err, "agent no longer exists")
	}
	observability.InvocationsRecorded.WithLabelValues(observability.SourceMCP).Inc()

	return jsonResult(map[string]any{
		"id":               inv.ID,
		"agent_number":     agent.AgentNumber,
		"task_description": inv.TaskDescription,
		"duration_minutes": inv.DurationMinutes,
		"status":           "recorded",
	})
}

func (s *Server) handleListAgents(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	filters := models.AgentFilters{
		ListParams: models.ListParams{Page: request.GetInt("page", 1), PageSize: models.MaxPageSize},
	}
	if raw := request.GetString("category", ""); raw != "" {
		c := models.Category(raw)
		if !c.IsValid() {
			return errorResult(fmt.Sprintf("unknown category %q", raw)), nil
		}
		filters.Category = &c
	}
	if raw := request.GetString("status", ""); raw != "" {
		st := models.AgentStatus(raw)
		if !st.IsValid() {
			return errorResult(fmt.Sprintf("unknown status %q", raw)), nil
		}
		filters.Status = &st
	}

	result, err := s.agents.ListAgents(ctx, filters)
	if err != nil {
		return nil, err
	}

	type agentSummary struct {
		AgentNumber int                `json:"agent_number"`
		Name        string             `json:"name"`
		Category    models.Category    `json:"category"`
		Tier        int                `json:"tier"`
		Status      models.AgentStatus `json:"status"`
	}
	agents := make([]agentSummary, len(result.Items))
	for i, a := range result.Items {
		agents[i] = agentSummary{
			AgentNumber: a.AgentNumber,
			Name:        a.Name,
			Category:    a.Category,
			Tier:        a.Tier,
			Status:      a.Status,
		}
	}
	return jsonResult(map[string]any{
		"agents":      agents,
		"total_count": result.TotalCount,
		"page":        result.Page,
	})
}

func (s *Server) handleAgentStats(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	number, errResult := agentNumberArg(request)
	if errResult != nil {
		return errResult, nil
	}
	agent, err := s.agents.GetAgentByNumber(ctx, number)
	if err != nil {
		return serviceErrorResult(err, fmt.Sprintf("Agent not found with agent_number: %d", number))
	}
	stats, err := s.agents.AgentStats(ctx, agent.ID)
	if err != nil {
		return nil, err
	}
	return jsonResult(map[string]any{
		"agent_number": agent.AgentNumber,
		"name":         agent.Name,
		"stats":        stats,
	})
}

func agentNumberArg(request mcplib.CallToolRequest) (int, *mcplib.CallToolResult) {
	n, err := optionalInt(request, request.GetArguments(), "agent_number")
	if err != nil {
		return 0, errorResult(err.Error())
	}
	if n == nil || *n <= 0 {
		return 0, errorResult("agent_number is required")
	}
	return *n, nil
}

// optionalInt reads an integer argument. Fractional numbers are rejected
// rather than truncated.
func optionalInt(request mcplib.CallToolRequest, args map[string]any, key string) (*int, error) {
	raw, ok := args[key]
	if !ok {
		return nil, nil
	}
	if f, isFloat := raw.(float64); isFloat && f != math.Trunc(f) {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	v := request.GetInt(key, 0)
	return &v, nil
}

func optionalString(request mcplib.CallToolRequest, key string) *string {
	v := request.GetString(key, "")
	if v == "" {
		return nil
	}
	return &v
}
