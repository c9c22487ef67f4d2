package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	testdb "github.com/codeready-toolchain/agent-tracker/test/database"
)

func TestInvocationService_CreateInvocation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInvocationService(client.Client)
	ctx := context.Background()
	a := seedAgent(t, client.Client, 1, "Researcher")

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("derives duration from timestamps", func(t *testing.T) {
		inv, err := service.CreateInvocation(ctx, models.CreateInvocationRequest{
			AgentID:            a.ID,
			TaskDescription:    "Summarise the RFC",
			StartedAt:          &started,
			CompletedAt:        ptr(started.Add(30*time.Minute + 30*time.Second)),
			Success:            ptr(true),
			SatisfactionRating: ptr(4),
		})
		require.NoError(t, err)
		require.NotNil(t, inv.DurationMinutes)
		assert.Equal(t, 31, *inv.DurationMinutes)
		assert.Equal(t, "31m", inv.DurationDisplay)
		assert.Equal(t, models.InvocationModeSubagent, inv.InvocationMode)
		assert.Equal(t, "★★★★☆", inv.RatingStars)
		assert.Equal(t, "Success", inv.SuccessLabel)
		require.NotNil(t, inv.Agent)
		assert.Equal(t, "Researcher", inv.Agent.Name)
	})

	t.Run("in progress without completion", func(t *testing.T) {
		inv, err := service.CreateInvocation(ctx, models.CreateInvocationRequest{
			AgentID:         a.ID,
			TaskDescription: "Long running",
			InvocationMode:  models.InvocationModeManual,
		})
		require.NoError(t, err)
		assert.Nil(t, inv.DurationMinutes)
		assert.True(t, inv.InProgress)
		assert.Equal(t, "In progress", inv.DurationDisplay)
		assert.Equal(t, "—", inv.RatingStars)
		assert.WithinDuration(t, time.Now(), inv.StartedAt, time.Minute)
	})

	t.Run("validates", func(t *testing.T) {
		tests := []struct {
			name  string
			req   models.CreateInvocationRequest
			field string
		}{
			{"missing task", models.CreateInvocationRequest{AgentID: a.ID}, "task_description"},
			{"missing agent", models.CreateInvocationRequest{TaskDescription: "x"}, "agent_id"},
			{"unknown agent", models.CreateInvocationRequest{AgentID: 987654, TaskDescription: "x"}, "agent_id"},
			{"bad mode", models.CreateInvocationRequest{AgentID: a.ID, TaskDescription: "x", InvocationMode: "auto"}, "invocation_mode"},
			{"rating too high", models.CreateInvocationRequest{AgentID: a.ID, TaskDescription: "x", SatisfactionRating: ptr(6)}, "satisfaction_rating"},
			{"rating zero", models.CreateInvocationRequest{AgentID: a.ID, TaskDescription: "x", SatisfactionRating: ptr(0)}, "satisfaction_rating"},
			{"negative tokens", models.CreateInvocationRequest{AgentID: a.ID, TaskDescription: "x", TokensTotal: ptr(-1)}, "tokens_total"},
			{"blank task", models.CreateInvocationRequest{AgentID: a.ID, TaskDescription: "   "}, "task_description"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateInvocation(ctx, tt.req)
				requireValidationField(t, err, tt.field)
			})
		}
	})
}

func TestInvocationService_UpdateInvocation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInvocationService(client.Client)
	ctx := context.Background()
	a := seedAgent(t, client.Client, 1, "Researcher")
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	created, err := service.CreateInvocation(ctx, models.CreateInvocationRequest{
		AgentID: a.ID, TaskDescription: "Investigate", StartedAt: &started,
	})
	require.NoError(t, err)
	require.Nil(t, created.DurationMinutes)

	updated, err := service.UpdateInvocation(ctx, created.ID, models.UpdateInvocationRequest{
		CompletedAt:  ptr(started.Add(2*time.Hour + 5*time.Minute)),
		Success:      ptr(false),
		OutcomeNotes: ptr("Ran out of context"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.DurationMinutes)
	assert.Equal(t, 125, *updated.DurationMinutes)
	assert.Equal(t, "2h 5m", updated.DurationDisplay)
	assert.Equal(t, "Failed", updated.SuccessLabel)
	assert.Equal(t, models.ColorRed, updated.SuccessBadgeColor)

	// Moving the start recomputes the stored duration
	updated, err = service.UpdateInvocation(ctx, created.ID, models.UpdateInvocationRequest{
		StartedAt: ptr(started.Add(time.Hour)),
	})
	require.NoError(t, err)
	assert.Equal(t, 65, *updated.DurationMinutes)

	// Completion before start is stored as reported
	updated, err = service.UpdateInvocation(ctx, created.ID, models.UpdateInvocationRequest{
		StartedAt: ptr(started.Add(5 * time.Hour)),
	})
	require.NoError(t, err)
	assert.Equal(t, -175, *updated.DurationMinutes)

	_, err = service.UpdateInvocation(ctx, created.ID, models.UpdateInvocationRequest{TaskDescription: ptr(" ")})
	requireValidationField(t, err, "task_description")

	_, err = service.UpdateInvocation(ctx, 31337, models.UpdateInvocationRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvocationService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInvocationService(client.Client)
	ctx := context.Background()

	a := seedAgent(t, client.Client, 1, "A")
	b := seedAgent(t, client.Client, 2, "B")
	now := time.Now()
	first := seedInvocation(t, client.Client, a.ID, now.Add(-2*time.Hour), ptr(true), nil)
	seedInvocation(t, client.Client, a.ID, now.Add(-time.Hour), ptr(false), nil)
	seedInvocation(t, client.Client, b.ID, now, nil, nil)

	issue, err := client.AgentIssue.Create().SetAgentID(a.ID).SetAgentInvocationID(first.ID).
		SetIssueDescription("hallucinated an API").SetSeverity(4).Save(ctx)
	require.NoError(t, err)
	_, err = client.AgentChange.Create().SetAgentID(a.ID).SetAgentInvocationID(first.ID).SetAgentIssueID(issue.ID).
		SetChangeType(models.ChangeTypeContextUpdate).SetChangeDescription("add API docs").
		SetTriggeredBy(models.TriggeredByInvocationIssue).Save(ctx)
	require.NoError(t, err)

	t.Run("detail includes issues and changes", func(t *testing.T) {
		detail, err := service.GetInvocation(ctx, first.ID)
		require.NoError(t, err)
		require.Len(t, detail.Issues, 1)
		assert.Equal(t, "High", detail.Issues[0].SeverityLabel)
		require.Len(t, detail.Changes, 1)
		assert.Equal(t, "Context update", detail.Changes[0].ChangeTypeLabel)

		_, err = service.GetInvocation(ctx, 777777)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists newest first", func(t *testing.T) {
		res, err := service.ListInvocations(ctx, models.InvocationFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalCount)
		assert.Equal(t, models.DefaultPageSize, res.PageSize)
		require.Len(t, res.Items, 3)
		assert.Equal(t, b.ID, res.Items[0].AgentID)
		assert.Equal(t, first.ID, res.Items[2].ID)
	})

	t.Run("filters by agent and success", func(t *testing.T) {
		res, err := service.ListInvocations(ctx, models.InvocationFilters{AgentID: &a.ID})
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalCount)

		res, err = service.ListInvocations(ctx, models.InvocationFilters{Success: ptr(true)})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, first.ID, res.Items[0].ID)

		res, err = service.ListInvocations(ctx, models.InvocationFilters{Mode: ptr(models.InvocationModeManual)})
		require.NoError(t, err)
		assert.Zero(t, res.TotalCount)
	})

	t.Run("delete keeps issues and changes", func(t *testing.T) {
		require.NoError(t, service.DeleteInvocation(ctx, first.ID))

		reloaded, err := client.AgentIssue.Get(ctx, issue.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.AgentInvocationID)

		changes, err := client.AgentChange.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, changes, 1)
		assert.Nil(t, changes[0].AgentInvocationID)

		assert.ErrorIs(t, service.DeleteInvocation(ctx, first.ID), ErrNotFound)
	})
}

func TestInvocationService_FormDefaults(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInvocationService(client.Client)
	agents := NewAgentService(client.Client)
	ctx := context.Background()

	seedAgent(t, client.Client, 2, "Zeta")
	seedAgent(t, client.Client, 1, "Alpha")
	fixed := time.Date(2026, 10, 15, 9, 30, 45, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	defaults, err := service.FormDefaults(ctx, agents)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC), defaults.StartedAt)
	assert.Equal(t, models.InvocationModeSubagent, defaults.InvocationMode)
	require.Len(t, defaults.Agents, 2)
	assert.Equal(t, "Alpha", defaults.Agents[0].Name)
	assert.Equal(t, []string{"subagent", "manual"}, defaults.Modes)
}
