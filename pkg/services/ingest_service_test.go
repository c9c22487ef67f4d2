package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	testdb "github.com/codeready-toolchain/agent-tracker/test/database"
)

func bulkRecord(number int, task string) models.BulkInvocationRecord {
	return models.BulkInvocationRecord{
		AgentNumber:     ptr(number),
		TaskDescription: task,
		StartedAt:       "2026-04-01T09:00:00Z",
	}
}

func TestIngestService_BulkCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIngestService(client.Client, 0)
	ctx := context.Background()

	assert.Equal(t, DefaultMaxBatchSize, service.MaxBatchSize())

	a := seedAgent(t, client.Client, 1, "Researcher")
	seedAgent(t, client.Client, 2, "Writer")

	t.Run("stores the batch in input order", func(t *testing.T) {
		second := bulkRecord(2, "draft")
		second.InvocationMode = "manual"
		second.CompletedAt = ptr("2026-04-01T09:45:00Z")
		second.DurationMinutes = ptr(999)
		second.Success = ptr(true)

		resp, err := service.BulkCreate(ctx, []models.BulkInvocationRecord{
			bulkRecord(1, "research"),
			second,
			bulkRecord(1, "follow up"),
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 3, resp.CreatedCount)
		require.Len(t, resp.Invocations, 3)
		assert.Equal(t, "research", resp.Invocations[0].TaskDescription)
		assert.Equal(t, "draft", resp.Invocations[1].TaskDescription)
		assert.Less(t, resp.Invocations[0].ID, resp.Invocations[1].ID)
		assert.Less(t, resp.Invocations[1].ID, resp.Invocations[2].ID)

		stored, err := client.AgentInvocation.Get(ctx, resp.Invocations[1].ID)
		require.NoError(t, err)
		assert.Equal(t, models.InvocationModeManual, stored.InvocationMode)
		require.NotNil(t, stored.DurationMinutes)
		assert.Equal(t, 45, *stored.DurationMinutes, "supplied duration is recomputed")

		first, err := client.AgentInvocation.Get(ctx, resp.Invocations[0].ID)
		require.NoError(t, err)
		assert.Equal(t, a.ID, first.AgentID)
		assert.Equal(t, models.InvocationModeSubagent, first.InvocationMode)
	})

	t.Run("unknown agent rolls back the whole batch", func(t *testing.T) {
		before, err := client.AgentInvocation.Query().Count(ctx)
		require.NoError(t, err)

		_, err = service.BulkCreate(ctx, []models.BulkInvocationRecord{
			bulkRecord(1, "one"),
			bulkRecord(2, "two"),
			bulkRecord(1, "three"),
			bulkRecord(99, "four"),
		})
		var bulkErr *BulkError
		require.ErrorAs(t, err, &bulkErr)
		require.Len(t, bulkErr.Records, 1)
		assert.Equal(t, 3, bulkErr.Records[0].Index)
		assert.Equal(t, "Agent not found with agent_number: 99", bulkErr.Records[0].Error)

		after, err := client.AgentInvocation.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
		exists, err := client.AgentInvocation.Query().Where(agentinvocation.TaskDescriptionEQ("one")).Exist(ctx)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("reports every failing record", func(t *testing.T) {
		noNumber := bulkRecord(1, "x")
		noNumber.AgentNumber = nil
		badRating := bulkRecord(1, "rated")
		badRating.SatisfactionRating = ptr(7)
		badTime := bulkRecord(1, "when")
		badTime.StartedAt = "yesterday"

		_, err := service.BulkCreate(ctx, []models.BulkInvocationRecord{
			bulkRecord(1, "fine"),
			noNumber,
			bulkRecord(1, ""),
			badRating,
			badTime,
			bulkRecord(2, "  "),
		})
		var bulkErr *BulkError
		require.ErrorAs(t, err, &bulkErr)
		require.Len(t, bulkErr.Records, 5)

		byIndex := make(map[int]models.BulkRecordError)
		for _, r := range bulkErr.Records {
			byIndex[r.Index] = r
		}
		assert.NotContains(t, byIndex, 0)
		assert.Equal(t, []string{"Agent number can't be blank"}, byIndex[1].Errors)
		assert.Contains(t, byIndex[2].Errors, "Task description can't be blank")
		assert.Contains(t, byIndex[3].Errors, "Satisfaction rating must be between 1 and 5")
		assert.Contains(t, byIndex[4].Error, "invalid started_at")
		assert.Equal(t, []string{"Task description can't be blank"}, byIndex[5].Errors)
	})

	t.Run("completion before start is accepted", func(t *testing.T) {
		rec := bulkRecord(1, "clock skew")
		rec.StartedAt = "2026-04-01T10:00:00Z"
		rec.CompletedAt = ptr("2026-04-01T09:55:00Z")

		resp, err := service.BulkCreate(ctx, []models.BulkInvocationRecord{rec})
		require.NoError(t, err)
		stored, err := client.AgentInvocation.Get(ctx, resp.Invocations[0].ID)
		require.NoError(t, err)
		require.NotNil(t, stored.DurationMinutes)
		assert.Equal(t, -5, *stored.DurationMinutes)
	})

	t.Run("missing started_at is a validation error", func(t *testing.T) {
		rec := bulkRecord(1, "no start")
		rec.StartedAt = ""
		_, err := service.BulkCreate(ctx, []models.BulkInvocationRecord{rec})
		var bulkErr *BulkError
		require.ErrorAs(t, err, &bulkErr)
		assert.Contains(t, bulkErr.Records[0].Errors, "Started at can't be blank")
	})
}

func TestIngestService_BulkCreateJSON(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIngestService(client.Client, 0)
	ctx := context.Background()
	seedAgent(t, client.Client, 1, "Researcher")

	raw := func(records ...string) []json.RawMessage {
		out := make([]json.RawMessage, len(records))
		for i, r := range records {
			out[i] = json.RawMessage(r)
		}
		return out
	}

	t.Run("wrong types are reported per record", func(t *testing.T) {
		_, err := service.BulkCreateJSON(ctx, raw(
			`{"agent_number":1,"task_description":"fine","started_at":"2026-04-01T09:00:00Z"}`,
			`{"agent_number":1,"task_description":"rated","started_at":"2026-04-01T09:00:00Z","satisfaction_rating":4.5}`,
			`{"agent_number":1,"task_description":"typed","started_at":"2026-04-01T09:00:00Z","success":"yes"}`,
			`{"agent_number":"abc","task_description":"named","started_at":"2026-04-01T09:00:00Z"}`,
			`5`,
			`{"agent_number":99,"task_description":"orphan","started_at":"2026-04-01T09:00:00Z"}`,
		))
		var bulkErr *BulkError
		require.ErrorAs(t, err, &bulkErr)
		require.Len(t, bulkErr.Records, 5)

		assert.Equal(t, models.BulkRecordError{Index: 1, Errors: []string{"Satisfaction rating must be an integer"}}, bulkErr.Records[0])
		assert.Equal(t, models.BulkRecordError{Index: 2, Errors: []string{"Success must be true or false"}}, bulkErr.Records[1])
		assert.Equal(t, models.BulkRecordError{Index: 3, Errors: []string{"Agent number must be an integer"}}, bulkErr.Records[2])
		assert.Equal(t, 4, bulkErr.Records[3].Index)
		assert.Contains(t, bulkErr.Records[3].Error, "JSON object")
		assert.Equal(t, "Agent not found with agent_number: 99", bulkErr.Records[4].Error)

		count, err := client.AgentInvocation.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("valid records are stored", func(t *testing.T) {
		resp, err := service.BulkCreateJSON(ctx, raw(
			`{"agent_number":1,"task_description":"one","started_at":"2026-04-01T09:00:00Z","satisfaction_rating":4}`,
		))
		require.NoError(t, err)
		assert.Equal(t, 1, resp.CreatedCount)
	})

	t.Run("bounds are checked before decoding", func(t *testing.T) {
		_, err := service.BulkCreateJSON(ctx, nil)
		assert.ErrorIs(t, err, ErrEmptyBatch)
	})
}

func TestIngestService_BatchBounds(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIngestService(client.Client, 2)
	ctx := context.Background()

	_, err := service.BulkCreate(ctx, nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = service.BulkCreate(ctx, []models.BulkInvocationRecord{
		bulkRecord(1, "a"), bulkRecord(1, "b"), bulkRecord(1, "c"),
	})
	assert.ErrorIs(t, err, ErrBatchTooLarge)
	assert.Contains(t, err.Error(), "3 exceeds the maximum of 2")
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-04-01T09:30:00Z", want},
		{"2026-04-01T09:30:00.000Z", want},
		{"2026-04-01T11:30:00+02:00", want},
		{"2026-04-01T09:30:00", want},
		{"2026-04-01 09:30:00", want},
		{"2026-04-01 04:30:00 -0500", want},
		{"2026-04-01", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), fmt.Sprintf("got %s", got))
		})
	}

	got, err := ParseTimestamp("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseTimestamp("01/04/2026")
	assert.Error(t, err)
}
