package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/pkg/config"
	"github.com/codeready-toolchain/agent-tracker/pkg/database"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/services"
	testdb "github.com/codeready-toolchain/agent-tracker/test/database"
)

const testToken = "test-token"

func newTestServer(t *testing.T, mutate func(cfg *config.Config, svc *Services, db *database.Client)) *Server {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	cfg := config.DefaultConfig()
	cfg.Auth.APIToken = testToken
	cfg.Ingest.RateLimit = 0
	svc := NewServices(cfg, dbClient)
	if mutate != nil {
		mutate(cfg, &svc, dbClient)
	}
	return NewServer(cfg, dbClient, svc)
}

func doJSON(t *testing.T, s *Server, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createAgent(t *testing.T, s *Server, number int, name string) models.AgentView {
	t.Helper()
	rec := doJSON(t, s, http.MethodPost, "/agent_tracker/agents", models.CreateAgentRequest{
		AgentNumber: number,
		Name:        name,
		Category:    models.CategoryResearch,
		Tier:        1,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[models.AgentView](t, rec)
}

func TestHealth(t *testing.T) {
	t.Run("healthy with database and token", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := doJSON(t, s, http.MethodGet, "/health", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[HealthResponse](t, rec)
		assert.Equal(t, healthStatusHealthy, resp.Status)
		assert.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
		assert.NotEmpty(t, resp.Version)
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	})

	t.Run("missing token degrades", func(t *testing.T) {
		s := newTestServer(t, func(cfg *config.Config, _ *Services, _ *database.Client) {
			cfg.Auth.APIToken = ""
		})
		rec := doJSON(t, s, http.MethodGet, "/health", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[HealthResponse](t, rec)
		assert.Equal(t, healthStatusDegraded, resp.Status)
		assert.Equal(t, healthStatusDegraded, resp.Checks["api_token"].Status)
	})
}

func TestInvocationRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	agent := createAgent(t, s, 7, "Research Lead")

	t.Run("form defaults list active agents on both routes", func(t *testing.T) {
		for _, path := range []string{"/agent_tracker/agent_invocations/new", "/agent_tracker/quick_log"} {
			rec := doJSON(t, s, http.MethodGet, path, nil, "")
			require.Equal(t, http.StatusOK, rec.Code, path)
			defaults := decode[models.InvocationFormDefaults](t, rec)
			assert.Equal(t, models.InvocationModeSubagent, defaults.InvocationMode)
			require.Len(t, defaults.Agents, 1)
			assert.Equal(t, agent.ID, defaults.Agents[0].ID)
		}
	})

	var created models.InvocationView
	t.Run("create", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/agent_tracker/agent_invocations", map[string]any{
			"agent_id":         agent.ID,
			"task_description": "Survey competitors",
			"invocation_mode":  "manual",
			"started_at":       "2026-10-01T10:00:00Z",
		}, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		created = decode[models.InvocationView](t, rec)
		assert.True(t, created.InProgress)
		assert.Equal(t, "Unknown", created.SuccessLabel)
	})

	t.Run("complete via patch", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPatch, "/agent_tracker/agent_invocations/"+strconv.Itoa(created.ID), map[string]any{
			"completed_at":        "2026-10-01T10:30:00Z",
			"success":             true,
			"satisfaction_rating": 4,
		}, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decode[models.InvocationView](t, rec)
		require.NotNil(t, updated.DurationMinutes)
		assert.Equal(t, 30, *updated.DurationMinutes)
		assert.False(t, updated.InProgress)
	})

	t.Run("get detail", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/agent_tracker/agent_invocations/"+strconv.Itoa(created.ID), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		detail := decode[models.InvocationDetail](t, rec)
		assert.Equal(t, "Survey competitors", detail.TaskDescription)
		assert.Empty(t, detail.Issues)
	})

	t.Run("list with filters", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/agent_tracker/agent_invocations?mode=manual&success=true", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[models.ListResult[models.InvocationView]](t, rec)
		assert.Equal(t, 1, page.TotalCount)

		rec = doJSON(t, s, http.MethodGet, "/agent_tracker/agent_invocations?mode=subagent", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		page = decode[models.ListResult[models.InvocationView]](t, rec)
		assert.Equal(t, 0, page.TotalCount)
	})

	t.Run("validation maps to 422 with details", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/agent_tracker/agent_invocations", map[string]any{
			"agent_id":            agent.ID,
			"task_description":    "",
			"satisfaction_rating": 9,
		}, "")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := decode[ErrorResponse](t, rec)
		fields := make([]string, 0, len(resp.Details))
		for _, d := range resp.Details {
			fields = append(fields, d.Field)
		}
		assert.ElementsMatch(t, []string{"task_description", "satisfaction_rating"}, fields)
	})

	t.Run("bad input maps to 400", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, doJSON(t, s, http.MethodGet, "/agent_tracker/agent_invocations?success=maybe", nil, "").Code)
		assert.Equal(t, http.StatusBadRequest, doJSON(t, s, http.MethodGet, "/agent_tracker/agent_invocations/abc", nil, "").Code)
		assert.Equal(t, http.StatusBadRequest, doJSON(t, s, http.MethodPost, "/agent_tracker/agent_invocations", "{not json", "").Code)
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/agent_tracker/agent_invocations/999999", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"resource not found"}`, rec.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodDelete, "/agent_tracker/agent_invocations/"+strconv.Itoa(created.ID), nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		rec = doJSON(t, s, http.MethodGet, "/agent_tracker/agent_invocations/"+strconv.Itoa(created.ID), nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRecordRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	agent := createAgent(t, s, 3, "Debugger")

	rec := doJSON(t, s, http.MethodPost, "/agent_tracker/agent_issues", map[string]any{
		"agent_id":          agent.ID,
		"issue_description": "Loops on empty input",
		"severity":          4,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	issue := decode[models.IssueView](t, rec)
	assert.Equal(t, models.IssueStatusOpen, issue.Status)

	rec = doJSON(t, s, http.MethodPatch, "/agent_tracker/agent_issues/"+strconv.Itoa(issue.ID), map[string]any{"status": "resolved"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.IssueStatusResolved, decode[models.IssueView](t, rec).Status)

	rec = doJSON(t, s, http.MethodPost, "/agent_tracker/agent_improvements", map[string]any{
		"agent_id":                agent.ID,
		"improvement_description": "Guard empty input",
		"priority":                5,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	imp := decode[models.ImprovementView](t, rec)

	rec = doJSON(t, s, http.MethodPatch, "/agent_tracker/agent_improvements/"+strconv.Itoa(imp.ID), map[string]any{"status": "implemented"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotNil(t, decode[models.ImprovementView](t, rec).ImplementedAt)

	rec = doJSON(t, s, http.MethodPost, "/agent_tracker/agent_changes", map[string]any{
		"agent_id":             agent.ID,
		"change_type":          "bug_fix",
		"change_description":   "Return early on empty input",
		"triggered_by":         "invocation_issue",
		"agent_issue_id":       issue.ID,
		"agent_improvement_id": imp.ID,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	change := decode[models.ChangeView](t, rec)

	rec = doJSON(t, s, http.MethodGet, "/agent_tracker/agent_changes?triggered_by=invocation_issue", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[models.ListResult[models.ChangeView]](t, rec).TotalCount)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, s, http.MethodGet, "/agent_tracker/agent_changes?change_type=rewrite", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, s, http.MethodGet, "/agent_tracker/agent_issues?severity=high", nil, "").Code)

	rec = doJSON(t, s, http.MethodGet, "/agent_tracker/agents/"+strconv.Itoa(agent.ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[models.AgentDetail](t, rec)
	assert.Len(t, detail.RecentIssues, 1)
	assert.Len(t, detail.RecentChanges, 1)
	assert.Equal(t, 0, detail.Stats.OpenIssues)

	assert.Equal(t, http.StatusNoContent, doJSON(t, s, http.MethodDelete, "/agent_tracker/agent_issues/"+strconv.Itoa(issue.ID), nil, "").Code)
	assert.Equal(t, http.StatusNoContent, doJSON(t, s, http.MethodDelete, "/agent_tracker/agent_improvements/"+strconv.Itoa(imp.ID), nil, "").Code)

	rec = doJSON(t, s, http.MethodGet, "/agent_tracker/agent_changes/"+strconv.Itoa(change.ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	kept := decode[models.ChangeView](t, rec)
	assert.Nil(t, kept.IssueID)
	assert.Nil(t, kept.ImprovementID)

	rec = doJSON(t, s, http.MethodGet, "/agent_tracker/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[models.Dashboard](t, rec).TotalAgents)
}

func TestBulkCreate(t *testing.T) {
	const path = "/api/agent_invocations/bulk_create"

	t.Run("commits the whole batch", func(t *testing.T) {
		s := newTestServer(t, nil)
		createAgent(t, s, 1, "One")
		createAgent(t, s, 2, "Two")

		rec := doJSON(t, s, http.MethodPost, path, map[string]any{"invocations": []map[string]any{
			{"agent_number": 1, "task_description": "first", "started_at": "2026-10-01T09:00:00Z"},
			{"agent_number": 2, "task_description": "second", "started_at": "2026-10-01T09:05:00Z", "invocation_mode": "manual"},
		}}, testToken)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decode[models.BulkCreateResponse](t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.CreatedCount)
		require.Len(t, resp.Invocations, 2)
		assert.Equal(t, "first", resp.Invocations[0].TaskDescription)
		assert.Equal(t, "second", resp.Invocations[1].TaskDescription)
	})

	t.Run("rejects the whole batch on one bad record", func(t *testing.T) {
		s := newTestServer(t, nil)
		createAgent(t, s, 1, "One")

		rec := doJSON(t, s, http.MethodPost, path, map[string]any{"invocations": []map[string]any{
			{"agent_number": 1, "task_description": "ok", "started_at": "2026-10-01T09:00:00Z"},
			{"agent_number": 42, "task_description": "orphan", "started_at": "2026-10-01T09:00:00Z"},
		}}, testToken)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"success":false,"errors":[{"index":1,"error":"Agent not found with agent_number: 42"}]}`, rec.Body.String())

		list := doJSON(t, s, http.MethodGet, "/agent_tracker/agent_invocations", nil, "")
		assert.Equal(t, 0, decode[models.ListResult[models.InvocationView]](t, list).TotalCount)
	})

	t.Run("a mistyped field is rejected at its index", func(t *testing.T) {
		s := newTestServer(t, nil)
		createAgent(t, s, 1, "One")

		rec := doJSON(t, s, http.MethodPost, path, `{"invocations":[
			{"agent_number":1,"task_description":"ok","started_at":"2026-10-01T09:00:00Z"},
			{"agent_number":1,"task_description":"rated","started_at":"2026-10-01T09:00:00Z","satisfaction_rating":4.5}
		]}`, testToken)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"success":false,"errors":[{"index":1,"errors":["Satisfaction rating must be an integer"]}]}`, rec.Body.String())
	})

	t.Run("blank task description is rejected", func(t *testing.T) {
		s := newTestServer(t, nil)
		createAgent(t, s, 1, "One")

		rec := doJSON(t, s, http.MethodPost, path, map[string]any{"invocations": []map[string]any{
			{"agent_number": 1, "task_description": "   ", "started_at": "2026-10-01T09:00:00Z"},
		}}, testToken)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"success":false,"errors":[{"index":0,"errors":["Task description can't be blank"]}]}`, rec.Body.String())
	})

	t.Run("empty batch and malformed body are 400", func(t *testing.T) {
		s := newTestServer(t, nil)
		assert.Equal(t, http.StatusBadRequest, doJSON(t, s, http.MethodPost, path, map[string]any{"invocations": []any{}}, testToken).Code)
		assert.Equal(t, http.StatusBadRequest, doJSON(t, s, http.MethodPost, path, `{"invocations": 5}`, testToken).Code)
	})

	t.Run("requires the bearer token", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := doJSON(t, s, http.MethodPost, path, map[string]any{"invocations": []any{}}, "wrong")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("unset token fails closed", func(t *testing.T) {
		s := newTestServer(t, func(cfg *config.Config, _ *Services, _ *database.Client) {
			cfg.Auth.APIToken = ""
		})
		rec := doJSON(t, s, http.MethodPost, path, map[string]any{"invocations": []any{}}, "anything")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"API not configured"}`, rec.Body.String())
	})
}

func TestMetricsEndpoint(t *testing.T) {
	const path = "/api/metrics"

	t.Run("serves the snapshot with the metrics token", func(t *testing.T) {
		s := newTestServer(t, func(cfg *config.Config, _ *Services, _ *database.Client) {
			cfg.Auth.MetricsAPIToken = "metrics-token"
		})
		assert.Equal(t, http.StatusUnauthorized, doJSON(t, s, http.MethodGet, path, nil, testToken).Code)

		rec := doJSON(t, s, http.MethodGet, path, nil, "metrics-token")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		snap := decode[models.MetricsSnapshot](t, rec)
		assert.Equal(t, config.DefaultAppName, snap.AppName)
		assert.True(t, snap.Health.Database)
		assert.Empty(t, snap.Errors)
	})

	t.Run("auth can be disabled", func(t *testing.T) {
		s := newTestServer(t, func(cfg *config.Config, _ *Services, _ *database.Client) {
			disabled := false
			cfg.Auth.MetricsAuthRequired = &disabled
		})
		assert.Equal(t, http.StatusOK, doJSON(t, s, http.MethodGet, path, nil, "").Code)
	})

	t.Run("unreachable store fails the request", func(t *testing.T) {
		s := newTestServer(t, func(_ *config.Config, svc *Services, db *database.Client) {
			svc.Metrics = services.NewMetricsService(db.Client, func(context.Context) bool { return false }, services.AppInfo{})
		})
		rec := doJSON(t, s, http.MethodGet, path, nil, testToken)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decode[MetricsErrorResponse](t, rec)
		assert.Equal(t, "Metrics collection failed", resp.Error)
		assert.Contains(t, resp.Message, "database unreachable")
		assert.NotEmpty(t, resp.Timestamp)
	})
}

func TestMCPMount(t *testing.T) {
	s := newTestServer(t, nil)
	s.SetMCPHandler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	assert.Equal(t, http.StatusUnauthorized, doJSON(t, s, http.MethodPost, "/mcp", "{}", "").Code)
	assert.Equal(t, http.StatusAccepted, doJSON(t, s, http.MethodPost, "/mcp", "{}", testToken).Code)
}

func TestPrometheusEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	doJSON(t, s, http.MethodGet, "/health", nil, "")

	rec := doJSON(t, s, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `agent_tracker_http_requests_total{method="GET",route="/health"`)
}
