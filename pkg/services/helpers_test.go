package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

func ptr[T any](v T) *T { return &v }

// seedAgent inserts an agent directly, bypassing service validation.
func seedAgent(t *testing.T, client *ent.Client, number int, name string) *ent.Agent {
	t.Helper()
	a, err := client.Agent.Create().
		SetAgentNumber(number).
		SetName(name).
		SetCategory(models.CategoryCoding).
		SetTier(2).
		Save(context.Background())
	require.NoError(t, err)
	return a
}

// seedInvocation inserts an invocation that started at startedAt.
func seedInvocation(t *testing.T, client *ent.Client, agentID int, startedAt time.Time, success *bool, rating *int) *ent.AgentInvocation {
	t.Helper()
	inv, err := client.AgentInvocation.Create().
		SetAgentID(agentID).
		SetTaskDescription("task").
		SetStartedAt(startedAt).
		SetNillableSuccess(success).
		SetNillableSatisfactionRating(rating).
		Save(context.Background())
	require.NoError(t, err)
	return inv
}

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, f := range verr.Errors {
		if f.Field == field {
			return
		}
	}
	t.Fatalf("expected a violation on %q, got %v", field, verr.Errors)
}
