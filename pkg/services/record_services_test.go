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

func TestIssueService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIssueService(client.Client)
	ctx := context.Background()

	a := seedAgent(t, client.Client, 1, "Deployer")
	inv := seedInvocation(t, client.Client, a.ID, time.Now(), ptr(false), nil)

	issue, err := service.CreateIssue(ctx, models.CreateIssueRequest{
		AgentID:           a.ID,
		AgentInvocationID: &inv.ID,
		IssueDescription:  "Rolled out to the wrong cluster",
		Severity:          5,
	})
	require.NoError(t, err)
	assert.Equal(t, models.IssueStatusOpen, issue.Status)
	assert.Equal(t, "Critical", issue.SeverityLabel)
	assert.Equal(t, models.ColorRed, issue.SeverityBadgeColor)
	assert.Equal(t, models.ColorRed, issue.StatusBadgeColor)
	require.NotNil(t, issue.InvocationID)

	t.Run("validates", func(t *testing.T) {
		_, err := service.CreateIssue(ctx, models.CreateIssueRequest{AgentID: a.ID, IssueDescription: "x", Severity: 0})
		requireValidationField(t, err, "severity")

		_, err = service.CreateIssue(ctx, models.CreateIssueRequest{AgentID: a.ID, IssueDescription: "x", Severity: 2, Status: "closed"})
		requireValidationField(t, err, "status")

		_, err = service.CreateIssue(ctx, models.CreateIssueRequest{AgentID: a.ID, AgentInvocationID: ptr(123456), IssueDescription: "x", Severity: 2})
		requireValidationField(t, err, "agent_invocation_id")
	})

	t.Run("any status transition is allowed", func(t *testing.T) {
		for _, st := range []models.IssueStatus{
			models.IssueStatusResolved, models.IssueStatusOpen, models.IssueStatusInvestigating, models.IssueStatusOpen,
		} {
			updated, err := service.UpdateIssue(ctx, issue.ID, models.UpdateIssueRequest{Status: ptr(st)})
			require.NoError(t, err)
			assert.Equal(t, st, updated.Status)
		}
	})

	t.Run("lists with filters", func(t *testing.T) {
		_, err := service.CreateIssue(ctx, models.CreateIssueRequest{AgentID: a.ID, IssueDescription: "typo", Severity: 1})
		require.NoError(t, err)

		res, err := service.ListIssues(ctx, models.IssueFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalCount)
		assert.Equal(t, "typo", res.Items[0].IssueDescription)

		res, err = service.ListIssues(ctx, models.IssueFilters{Severity: ptr(5)})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalCount)
	})

	t.Run("delete nullifies change references", func(t *testing.T) {
		change, err := client.AgentChange.Create().SetAgentID(a.ID).SetAgentIssueID(issue.ID).
			SetChangeType(models.ChangeTypeBugFix).SetChangeDescription("pin cluster").
			SetTriggeredBy(models.TriggeredByInvocationIssue).Save(ctx)
		require.NoError(t, err)

		require.NoError(t, service.DeleteIssue(ctx, issue.ID))
		reloaded, err := client.AgentChange.Get(ctx, change.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.AgentIssueID)

		_, err = service.GetIssue(ctx, issue.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestImprovementService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewImprovementService(client.Client)
	ctx := context.Background()
	a := seedAgent(t, client.Client, 1, "Tester")

	first := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return first }

	imp, err := service.CreateImprovement(ctx, models.CreateImprovementRequest{
		AgentID:                a.ID,
		ImprovementDescription: "Run flaky tests twice",
		Priority:               1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ImprovementStatusProposed, imp.Status)
	assert.Equal(t, "Very Low", imp.PriorityLabel)
	assert.Nil(t, imp.ImplementedAt)

	t.Run("implemented_at is stamped once", func(t *testing.T) {
		updated, err := service.UpdateImprovement(ctx, imp.ID, models.UpdateImprovementRequest{
			Status: ptr(models.ImprovementStatusImplemented),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.ImplementedAt)
		assert.True(t, first.Equal(*updated.ImplementedAt))

		service.now = func() time.Time { return first.Add(48 * time.Hour) }

		// Leaving and re-entering implemented keeps the original stamp
		_, err = service.UpdateImprovement(ctx, imp.ID, models.UpdateImprovementRequest{
			Status: ptr(models.ImprovementStatusApproved),
		})
		require.NoError(t, err)
		updated, err = service.UpdateImprovement(ctx, imp.ID, models.UpdateImprovementRequest{
			Status: ptr(models.ImprovementStatusImplemented),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.ImplementedAt)
		assert.True(t, first.Equal(*updated.ImplementedAt))
	})

	t.Run("created as implemented is stamped", func(t *testing.T) {
		created, err := service.CreateImprovement(ctx, models.CreateImprovementRequest{
			AgentID:                a.ID,
			ImprovementDescription: "Already shipped",
			Priority:               4,
			Status:                 models.ImprovementStatusImplemented,
		})
		require.NoError(t, err)
		assert.NotNil(t, created.ImplementedAt)
	})

	t.Run("validates", func(t *testing.T) {
		_, err := service.CreateImprovement(ctx, models.CreateImprovementRequest{AgentID: a.ID, ImprovementDescription: "x", Priority: 9})
		requireValidationField(t, err, "priority")

		_, err = service.UpdateImprovement(ctx, imp.ID, models.UpdateImprovementRequest{Status: ptr(models.ImprovementStatus("shelved"))})
		requireValidationField(t, err, "status")

		_, err = service.UpdateImprovement(ctx, 55555, models.UpdateImprovementRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists pending by status", func(t *testing.T) {
		res, err := service.ListImprovements(ctx, models.ImprovementFilters{Status: ptr(models.ImprovementStatusImplemented)})
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalCount)
	})

	t.Run("delete nullifies change references", func(t *testing.T) {
		change, err := client.AgentChange.Create().SetAgentID(a.ID).SetAgentImprovementID(imp.ID).
			SetChangeType(models.ChangeTypeCapabilityAdded).SetChangeDescription("retry flaky").
			SetTriggeredBy(models.TriggeredByImprovement).Save(ctx)
		require.NoError(t, err)

		require.NoError(t, service.DeleteImprovement(ctx, imp.ID))
		reloaded, err := client.AgentChange.Get(ctx, change.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.AgentImprovementID)
	})
}

func TestChangeService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewChangeService(client.Client)
	ctx := context.Background()
	a := seedAgent(t, client.Client, 1, "Architect")
	b := seedAgent(t, client.Client, 2, "Scribe")

	change, err := service.CreateChange(ctx, models.CreateChangeRequest{
		AgentID:           a.ID,
		ChangeType:        models.ChangeTypeSpecUpdate,
		ChangeDescription: "Clarify output format",
		BeforeValue:       ptr("free text"),
		AfterValue:        ptr("markdown table"),
		TriggeredBy:       models.TriggeredByUserRequest,
	})
	require.NoError(t, err)
	assert.Equal(t, "Spec update", change.ChangeTypeLabel)
	assert.Equal(t, models.ColorBlue, change.ChangeTypeBadgeColor)
	assert.Equal(t, "User request", change.TriggeredByLabel)
	require.NotNil(t, change.Agent)
	assert.Equal(t, "Architect", change.Agent.Name)

	_, err = service.CreateChange(ctx, models.CreateChangeRequest{
		AgentID: b.ID, ChangeType: models.ChangeTypeStatusChange, ChangeDescription: "Retire", TriggeredBy: models.TriggeredByRefactor,
	})
	require.NoError(t, err)

	t.Run("validates", func(t *testing.T) {
		_, err := service.CreateChange(ctx, models.CreateChangeRequest{AgentID: a.ID, ChangeType: "rename", ChangeDescription: "x", TriggeredBy: models.TriggeredByRefactor})
		requireValidationField(t, err, "change_type")

		_, err = service.CreateChange(ctx, models.CreateChangeRequest{AgentID: a.ID, ChangeType: models.ChangeTypeBugFix, ChangeDescription: "x"})
		requireValidationField(t, err, "triggered_by")

		_, err = service.CreateChange(ctx, models.CreateChangeRequest{
			AgentID: a.ID, ChangeType: models.ChangeTypeBugFix, ChangeDescription: "x", TriggeredBy: models.TriggeredByImprovement,
			AgentImprovementID: ptr(4040),
		})
		requireValidationField(t, err, "agent_improvement_id")
	})

	t.Run("lists with filters", func(t *testing.T) {
		res, err := service.ListChanges(ctx, models.ChangeFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalCount)

		res, err = service.ListChanges(ctx, models.ChangeFilters{AgentID: &a.ID})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, change.ID, res.Items[0].ID)

		res, err = service.ListChanges(ctx, models.ChangeFilters{TriggeredBy: ptr(models.TriggeredByRefactor)})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalCount)

		res, err = service.ListChanges(ctx, models.ChangeFilters{ChangeType: ptr(models.ChangeTypeBugFix)})
		require.NoError(t, err)
		assert.Zero(t, res.TotalCount)
	})
}
