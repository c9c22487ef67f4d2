package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

func TestValidateStruct_Messages(t *testing.T) {
	verr := validateStruct(models.CreateAgentRequest{
		AgentNumber: 0,
		Category:    "cooking",
		Tier:        9,
	})
	require.Error(t, verr.OrNil())

	assert.ElementsMatch(t, []string{
		"Agent number can't be blank",
		"Name can't be blank",
		"Category is not included in the list",
		"Tier must be between 1 and 5",
	}, verr.FullMessages())
	assert.Contains(t, verr.Error(), "validation failed: ")
}

func TestValidateStruct_PointerFieldsSkippedWhenNil(t *testing.T) {
	verr := validateStruct(models.UpdateInvocationRequest{})
	assert.NoError(t, verr.OrNil())

	verr = validateStruct(models.UpdateInvocationRequest{SatisfactionRating: ptr(0)})
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "satisfaction_rating", verr.Errors[0].Field)
}

func TestValidateStruct_WhitespaceIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		req   any
		field string
	}{
		{"agent name", models.CreateAgentRequest{AgentNumber: 1, Name: " \t", Category: models.CategoryResearch, Tier: 1}, "name"},
		{"task description", models.CreateInvocationRequest{AgentID: 1, TaskDescription: "   "}, "task_description"},
		{"issue description", models.CreateIssueRequest{AgentID: 1, IssueDescription: "\n", Severity: 2}, "issue_description"},
		{"improvement description", models.CreateImprovementRequest{AgentID: 1, ImprovementDescription: " ", Priority: 2}, "improvement_description"},
		{"change description", models.CreateChangeRequest{
			AgentID: 1, ChangeType: models.ChangeTypeSpecUpdate, ChangeDescription: "  ", TriggeredBy: models.TriggeredByUserRequest,
		}, "change_description"},
		{"updated task description", models.UpdateInvocationRequest{TaskDescription: ptr("  ")}, "task_description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := validateStruct(tt.req)
			require.Len(t, verr.Errors, 1)
			assert.Equal(t, tt.field, verr.Errors[0].Field)
			assert.Equal(t, "can't be blank", verr.Errors[0].Message)
		})
	}

	assert.NoError(t, validateStruct(models.UpdateInvocationRequest{TaskDescription: ptr(" kept ")}).OrNil())
}

func TestValidationErrorHelpers(t *testing.T) {
	err := NewValidationError("tier", "must be between 1 and 5")
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "validation error on field 'tier': must be between 1 and 5", err.Error())
	assert.False(t, IsValidationError(errors.New("boom")))

	var empty *ValidationError
	assert.NoError(t, empty.OrNil())

	assert.Equal(t, "Agent not found with agent_number: 42", (&AgentReferenceError{AgentNumber: 42}).Error())
	assert.Equal(t, "bulk ingestion rejected: 2 record(s) failed",
		(&BulkError{Records: make([]models.BulkRecordError, 2)}).Error())
}
