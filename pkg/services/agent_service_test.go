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

func TestAgentService_CreateAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("creates agent with default status", func(t *testing.T) {
		a, err := service.CreateAgent(ctx, models.CreateAgentRequest{
			AgentNumber: 1,
			Name:        "Researcher",
			Category:    models.CategoryResearch,
			Tier:        3,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, a.AgentNumber)
		assert.Equal(t, models.AgentStatusActive, a.Status)
		assert.Equal(t, models.ColorGreen, a.StatusBadgeColor)
		assert.Equal(t, models.ColorYellow, a.TierBadgeColor)
		assert.Equal(t, "Research", a.CategoryLabel)
	})

	t.Run("rejects duplicate agent number", func(t *testing.T) {
		_, err := service.CreateAgent(ctx, models.CreateAgentRequest{
			AgentNumber: 1,
			Name:        "Other",
			Category:    models.CategoryWriting,
			Tier:        1,
		})
		requireValidationField(t, err, "agent_number")
		assert.Contains(t, err.Error(), "has already been taken")
	})

	t.Run("validates fields", func(t *testing.T) {
		tests := []struct {
			name  string
			req   models.CreateAgentRequest
			field string
		}{
			{"zero agent number", models.CreateAgentRequest{Name: "x", Category: models.CategoryCoding, Tier: 1}, "agent_number"},
			{"negative agent number", models.CreateAgentRequest{AgentNumber: -4, Name: "x", Category: models.CategoryCoding, Tier: 1}, "agent_number"},
			{"missing name", models.CreateAgentRequest{AgentNumber: 50, Category: models.CategoryCoding, Tier: 1}, "name"},
			{"unknown category", models.CreateAgentRequest{AgentNumber: 50, Name: "x", Category: "cooking", Tier: 1}, "category"},
			{"tier out of range", models.CreateAgentRequest{AgentNumber: 50, Name: "x", Category: models.CategoryCoding, Tier: 6}, "tier"},
			{"unknown status", models.CreateAgentRequest{AgentNumber: 50, Name: "x", Category: models.CategoryCoding, Tier: 1, Status: "retired"}, "status"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateAgent(ctx, tt.req)
				requireValidationField(t, err, tt.field)
			})
		}

		count, err := client.Agent.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestAgentService_GetAgentDetail(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	a := seedAgent(t, client.Client, 10, "Debugger")
	other := seedAgent(t, client.Client, 11, "Planner")
	now := time.Now()

	seedInvocation(t, client.Client, a.ID, now.Add(-3*time.Hour), ptr(true), ptr(5))
	seedInvocation(t, client.Client, a.ID, now.Add(-2*time.Hour), ptr(true), ptr(4))
	seedInvocation(t, client.Client, a.ID, now.Add(-time.Hour), ptr(false), nil)
	seedInvocation(t, client.Client, a.ID, now, nil, nil)
	seedInvocation(t, client.Client, other.ID, now, ptr(false), ptr(1))

	_, err := client.AgentIssue.Create().SetAgentID(a.ID).SetIssueDescription("open").SetSeverity(2).Save(ctx)
	require.NoError(t, err)
	_, err = client.AgentIssue.Create().SetAgentID(a.ID).SetIssueDescription("done").SetSeverity(2).
		SetStatus(models.IssueStatusResolved).Save(ctx)
	require.NoError(t, err)
	for _, st := range []models.ImprovementStatus{
		models.ImprovementStatusProposed, models.ImprovementStatusApproved, models.ImprovementStatusRejected,
	} {
		_, err = client.AgentImprovement.Create().SetAgentID(a.ID).SetImprovementDescription("idea").
			SetPriority(3).SetStatus(st).Save(ctx)
		require.NoError(t, err)
	}

	detail, err := service.GetAgentDetail(ctx, a.ID)
	require.NoError(t, err)

	assert.Equal(t, "Debugger", detail.Name)
	assert.Equal(t, 4, detail.Stats.TotalInvocations)
	assert.InDelta(t, 66.7, detail.Stats.SuccessRate, 0.001)
	require.NotNil(t, detail.Stats.AverageSatisfaction)
	assert.InDelta(t, 4.5, *detail.Stats.AverageSatisfaction, 0.001)
	assert.Equal(t, 1, detail.Stats.OpenIssues)
	assert.Equal(t, 2, detail.Stats.PendingImprovements)

	require.Len(t, detail.RecentInvocations, 4)
	assert.True(t, detail.RecentInvocations[0].InProgress, "newest first")
	assert.Len(t, detail.RecentIssues, 2)
	assert.Len(t, detail.RecentImprovements, 3)
	assert.Empty(t, detail.RecentChanges)

	_, err = service.GetAgentDetail(ctx, 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentService_AgentStats_NoInvocations(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)

	a := seedAgent(t, client.Client, 3, "Idle")
	s, err := service.AgentStats(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Zero(t, s.TotalInvocations)
	assert.Zero(t, s.SuccessRate)
	assert.Nil(t, s.AverageSatisfaction)
}

func TestAgentService_ListAgents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	for _, req := range []models.CreateAgentRequest{
		{AgentNumber: 3, Name: "C", Category: models.CategoryCoding, Tier: 1},
		{AgentNumber: 1, Name: "A", Category: models.CategoryResearch, Tier: 2},
		{AgentNumber: 2, Name: "B", Category: models.CategoryCoding, Tier: 2, Status: models.AgentStatusArchived},
	} {
		_, err := service.CreateAgent(ctx, req)
		require.NoError(t, err)
	}

	t.Run("orders by agent number", func(t *testing.T) {
		res, err := service.ListAgents(ctx, models.AgentFilters{})
		require.NoError(t, err)
		require.Len(t, res.Items, 3)
		assert.Equal(t, 3, res.TotalCount)
		assert.Equal(t, AgentPageSize, res.PageSize)
		assert.Equal(t, []int{1, 2, 3}, []int{res.Items[0].AgentNumber, res.Items[1].AgentNumber, res.Items[2].AgentNumber})
	})

	t.Run("filters", func(t *testing.T) {
		coding := models.CategoryCoding
		res, err := service.ListAgents(ctx, models.AgentFilters{Category: &coding})
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalCount)

		res, err = service.ListAgents(ctx, models.AgentFilters{Category: &coding, Tier: ptr(2)})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "B", res.Items[0].Name)

		archived := models.AgentStatusArchived
		res, err = service.ListAgents(ctx, models.AgentFilters{Status: &archived})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		res, err := service.ListAgents(ctx, models.AgentFilters{ListParams: models.ListParams{Page: 2, PageSize: 2}})
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalCount)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 3, res.Items[0].AgentNumber)
	})

	t.Run("active agents by name", func(t *testing.T) {
		refs, err := service.ListActiveAgents(ctx)
		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "A", refs[0].Name)
		assert.Equal(t, "C", refs[1].Name)
	})
}

func TestAgentService_UpdateAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	a := seedAgent(t, client.Client, 5, "Writer")
	inv := seedInvocation(t, client.Client, a.ID, time.Now(), nil, nil)
	_, err := client.AgentIssue.Create().SetAgentID(a.ID).SetAgentInvocationID(inv.ID).
		SetIssueDescription("slow").SetSeverity(1).Save(ctx)
	require.NoError(t, err)

	updated, err := service.UpdateAgent(ctx, a.ID, models.UpdateAgentRequest{
		Status: ptr(models.AgentStatusDeprecated),
		Tier:   ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusDeprecated, updated.Status)
	assert.Equal(t, models.ColorOrange, updated.TierBadgeColor)

	_, err = service.UpdateAgent(ctx, a.ID, models.UpdateAgentRequest{Tier: ptr(0)})
	requireValidationField(t, err, "tier")

	_, err = service.UpdateAgent(ctx, 424242, models.UpdateAgentRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, service.DeleteAgent(ctx, a.ID))
	invocations, err := client.AgentInvocation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, invocations)
	issues, err := client.AgentIssue.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, issues)

	assert.ErrorIs(t, service.DeleteAgent(ctx, a.ID), ErrNotFound)
}
