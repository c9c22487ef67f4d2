package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	testdb "github.com/codeready-toolchain/agent-tracker/test/database"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDashboardService(client.Client)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		d, err := service.GetDashboard(ctx)
		require.NoError(t, err)
		assert.Zero(t, d.TotalAgents)
		assert.Zero(t, d.SuccessRate)
		assert.Nil(t, d.AverageSatisfaction)
		assert.Empty(t, d.MostUsedAgents)
		assert.NotNil(t, d.RecentInvocations)
		assert.Empty(t, d.AgentsByCategory)
	})

	now := time.Now()
	low := seedAgent(t, client.Client, 3, "Low")
	high := seedAgent(t, client.Client, 7, "High")
	busy := seedAgent(t, client.Client, 9, "Busy")
	_, err := client.Agent.Create().SetAgentNumber(12).SetName("Auditor").
		SetCategory(models.CategorySecurity).SetTier(4).SetStatus(models.AgentStatusInactive).Save(ctx)
	require.NoError(t, err)

	// busy: 3, high: 2, low: 2. Ties go to the lower agent number.
	for i := range 3 {
		seedInvocation(t, client.Client, busy.ID, now.Add(-time.Duration(i)*time.Hour), ptr(true), ptr(5))
	}
	seedInvocation(t, client.Client, high.ID, now.Add(-5*time.Hour), ptr(false), ptr(2))
	seedInvocation(t, client.Client, high.ID, now.Add(-6*time.Hour), nil, nil)
	seedInvocation(t, client.Client, low.ID, now.Add(-7*time.Hour), ptr(true), nil)
	seedInvocation(t, client.Client, low.ID, now.Add(-8*time.Hour), nil, nil)

	for _, sev := range []int{5, 4, 3} {
		_, err := client.AgentIssue.Create().SetAgentID(high.ID).SetIssueDescription("sev").SetSeverity(sev).Save(ctx)
		require.NoError(t, err)
	}
	_, err = client.AgentIssue.Create().SetAgentID(high.ID).SetIssueDescription("fixed").SetSeverity(5).
		SetStatus(models.IssueStatusResolved).Save(ctx)
	require.NoError(t, err)

	for _, st := range []models.ImprovementStatus{models.ImprovementStatusProposed, models.ImprovementStatusImplemented} {
		_, err := client.AgentImprovement.Create().SetAgentID(low.ID).SetImprovementDescription("i").
			SetPriority(2).SetStatus(st).Save(ctx)
		require.NoError(t, err)
	}
	_, err = client.AgentChange.Create().SetAgentID(busy.ID).SetChangeType(models.ChangeTypeExampleAdded).
		SetChangeDescription("more examples").SetTriggeredBy(models.TriggeredByUserRequest).Save(ctx)
	require.NoError(t, err)

	d, err := service.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, d.TotalAgents)
	assert.Equal(t, 3, d.ActiveAgents)
	assert.Equal(t, 7, d.TotalInvocations)
	require.Len(t, d.RecentInvocations, 7)
	assert.Equal(t, busy.ID, d.RecentInvocations[0].AgentID)

	// 4 successes out of 5 known outcomes
	assert.InDelta(t, 80.0, d.SuccessRate, 0.001)
	require.NotNil(t, d.AverageSatisfaction)
	assert.InDelta(t, 4.3, *d.AverageSatisfaction, 0.001)

	require.Len(t, d.MostUsedAgents, 3)
	assert.Equal(t, "Busy", d.MostUsedAgents[0].Name)
	assert.Equal(t, 3, d.MostUsedAgents[0].InvocationCount)
	assert.Equal(t, "Low", d.MostUsedAgents[1].Name)
	assert.Equal(t, "High", d.MostUsedAgents[2].Name)

	assert.Equal(t, 3, d.OpenIssuesCount)
	require.Len(t, d.HighSeverityIssues, 2)
	for _, issue := range d.HighSeverityIssues {
		assert.GreaterOrEqual(t, issue.Severity, 4)
		assert.Equal(t, models.IssueStatusOpen, issue.Status)
	}

	assert.Equal(t, 1, d.PendingImprovementsCount)
	assert.Equal(t, map[models.Category]int{models.CategoryCoding: 3, models.CategorySecurity: 1}, d.AgentsByCategory)
	require.Len(t, d.RecentChanges, 1)
	assert.Equal(t, "Example added", d.RecentChanges[0].ChangeTypeLabel)
}

func TestMetricsService_Collect(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	info := AppInfo{Name: "agent-tracker", Environment: "test", Version: "1.2.3"}
	// Windows are relative to now; updated_at and created_at are stamped by the store
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("unreachable store fails the snapshot", func(t *testing.T) {
		service := NewMetricsService(client.Client, func(context.Context) bool { return false }, info)
		_, err := service.Collect(ctx)
		assert.True(t, errors.Is(err, ErrAggregation))
	})

	service := NewMetricsService(client.Client, nil, info)
	service.now = func() time.Time { return now }

	t.Run("no recent activity", func(t *testing.T) {
		snap, err := service.Collect(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap.Errors)
		assert.True(t, snap.Health.Database)
		assert.Nil(t, snap.Health.Cache)
		require.NotNil(t, snap.Custom.Agents)
		assert.Equal(t, "None", snap.Custom.Agents.MostUsed)
		require.NotNil(t, snap.Custom.Performance)
		assert.Nil(t, snap.Custom.Performance.AvgDurationMinutes)
	})

	a := seedAgent(t, client.Client, 1, "Alpha")
	b := seedAgent(t, client.Client, 2, "Beta")
	seedAgent(t, client.Client, 3, "Dormant")

	mk := func(agentID int, startedAt time.Time, minutes int, success *bool, rating *int) {
		t.Helper()
		c := client.AgentInvocation.Create().SetAgentID(agentID).SetTaskDescription("t").
			SetStartedAt(startedAt).SetNillableSuccess(success).SetNillableSatisfactionRating(rating).SetTokensTotal(100)
		if minutes > 0 {
			c.SetCompletedAt(startedAt.Add(time.Duration(minutes) * time.Minute)).SetDurationMinutes(minutes)
		}
		_, err := c.Save(ctx)
		require.NoError(t, err)
	}
	mk(a.ID, now.Add(-2*time.Hour), 10, ptr(true), ptr(5))
	mk(a.ID, now.Add(-3*day), 15, ptr(false), ptr(4))
	mk(b.ID, now.Add(-4*day), 0, nil, nil)
	mk(b.ID, now.Add(-20*day), 20, ptr(true), ptr(4))
	mk(b.ID, now.Add(-40*day), 0, nil, nil)

	_, err := client.AgentIssue.Create().SetAgentID(a.ID).SetIssueDescription("open").SetSeverity(3).Save(ctx)
	require.NoError(t, err)
	_, err = client.AgentIssue.Create().SetAgentID(a.ID).SetIssueDescription("done").SetSeverity(3).
		SetStatus(models.IssueStatusResolved).Save(ctx)
	require.NoError(t, err)
	_, err = client.AgentImprovement.Create().SetAgentID(b.ID).SetImprovementDescription("x").SetPriority(1).Save(ctx)
	require.NoError(t, err)

	snap, err := service.Collect(ctx)
	require.NoError(t, err)
	require.Empty(t, snap.Errors)

	assert.Equal(t, "agent-tracker", snap.AppName)
	assert.Equal(t, "test", snap.Environment)
	assert.Equal(t, "1.2.3", snap.Version)
	assert.Equal(t, now.Format(time.RFC3339), snap.Timestamp)
	assert.Nil(t, snap.Revenue)
	assert.Nil(t, snap.Users)

	require.NotNil(t, snap.Engagement)
	assert.Equal(t, 3, snap.Engagement.MetricValue)
	assert.Equal(t, models.EngagementDetails{Today: 1, ThisWeek: 3, ThisMonth: 4}, snap.Engagement.Details)

	assert.Equal(t, &models.AgentMetrics{Total: 3, Active7d: 2, MostUsed: "Alpha"}, snap.Custom.Agents)

	inv := snap.Custom.Invocations
	require.NotNil(t, inv)
	assert.Equal(t, 5, inv.Total)
	assert.Equal(t, 3, inv.Completed)
	assert.Equal(t, 2, inv.InProgress)
	assert.Equal(t, 2, inv.Successful)
	assert.Equal(t, 1, inv.Failed)
	assert.InDelta(t, 66.7, inv.SuccessRate, 0.001)

	perf := snap.Custom.Performance
	require.NotNil(t, perf)
	require.NotNil(t, perf.AvgDurationMinutes)
	assert.InDelta(t, 15.0, *perf.AvgDurationMinutes, 0.001)
	require.NotNil(t, perf.AvgSatisfactionRating)
	assert.InDelta(t, 4.33, *perf.AvgSatisfactionRating, 0.001)
	assert.Equal(t, 500, perf.TotalTokensUsed)

	assert.Equal(t, &models.IssueMetrics{Total: 2, Unresolved: 1, Resolved7d: 1}, snap.Custom.Issues)
	assert.Equal(t, &models.ImprovementMetrics{Total: 1, ThisWeek: 1}, snap.Custom.Improvements)

	act := snap.Custom.Activity
	require.NotNil(t, act)
	assert.Equal(t, 1, act.InvocationsToday)
	assert.Equal(t, 3, act.Invocations7d)
	assert.InDelta(t, 0.43, act.AvgInvocationsPerDay, 0.001)
}
