// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescAgentNumber is the schema descriptor for agent_number field.
	agentDescAgentNumber := agentFields[0].Descriptor()
	// agent.AgentNumberValidator is a validator for the "agent_number" field. It is called by the builders before save.
	agent.AgentNumberValidator = agentDescAgentNumber.Validators[0].(func(int) error)
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[1].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = agentDescName.Validators[0].(func(string) error)
	// agentDescTier is the schema descriptor for tier field.
	agentDescTier := agentFields[3].Descriptor()
	// agent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	agent.TierValidator = agentDescTier.Validators[0].(func(int) error)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[5].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[6].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentchangeFields := schema.AgentChange{}.Fields()
	_ = agentchangeFields
	// agentchangeDescChangeDescription is the schema descriptor for change_description field.
	agentchangeDescChangeDescription := agentchangeFields[2].Descriptor()
	// agentchange.ChangeDescriptionValidator is a validator for the "change_description" field. It is called by the builders before save.
	agentchange.ChangeDescriptionValidator = agentchangeDescChangeDescription.Validators[0].(func(string) error)
	// agentchangeDescCreatedAt is the schema descriptor for created_at field.
	agentchangeDescCreatedAt := agentchangeFields[9].Descriptor()
	// agentchange.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentchange.DefaultCreatedAt = agentchangeDescCreatedAt.Default.(func() time.Time)
	// agentchangeDescUpdatedAt is the schema descriptor for updated_at field.
	agentchangeDescUpdatedAt := agentchangeFields[10].Descriptor()
	// agentchange.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentchange.DefaultUpdatedAt = agentchangeDescUpdatedAt.Default.(func() time.Time)
	// agentchange.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentchange.UpdateDefaultUpdatedAt = agentchangeDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentimprovementFields := schema.AgentImprovement{}.Fields()
	_ = agentimprovementFields
	// agentimprovementDescImprovementDescription is the schema descriptor for improvement_description field.
	agentimprovementDescImprovementDescription := agentimprovementFields[1].Descriptor()
	// agentimprovement.ImprovementDescriptionValidator is a validator for the "improvement_description" field. It is called by the builders before save.
	agentimprovement.ImprovementDescriptionValidator = agentimprovementDescImprovementDescription.Validators[0].(func(string) error)
	// agentimprovementDescPriority is the schema descriptor for priority field.
	agentimprovementDescPriority := agentimprovementFields[2].Descriptor()
	// agentimprovement.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	agentimprovement.PriorityValidator = agentimprovementDescPriority.Validators[0].(func(int) error)
	// agentimprovementDescCreatedAt is the schema descriptor for created_at field.
	agentimprovementDescCreatedAt := agentimprovementFields[5].Descriptor()
	// agentimprovement.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentimprovement.DefaultCreatedAt = agentimprovementDescCreatedAt.Default.(func() time.Time)
	// agentimprovementDescUpdatedAt is the schema descriptor for updated_at field.
	agentimprovementDescUpdatedAt := agentimprovementFields[6].Descriptor()
	// agentimprovement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentimprovement.DefaultUpdatedAt = agentimprovementDescUpdatedAt.Default.(func() time.Time)
	// agentimprovement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentimprovement.UpdateDefaultUpdatedAt = agentimprovementDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentinvocationFields := schema.AgentInvocation{}.Fields()
	_ = agentinvocationFields
	// agentinvocationDescTaskDescription is the schema descriptor for task_description field.
	agentinvocationDescTaskDescription := agentinvocationFields[1].Descriptor()
	// agentinvocation.TaskDescriptionValidator is a validator for the "task_description" field. It is called by the builders before save.
	agentinvocation.TaskDescriptionValidator = agentinvocationDescTaskDescription.Validators[0].(func(string) error)
	// agentinvocationDescSatisfactionRating is the schema descriptor for satisfaction_rating field.
	agentinvocationDescSatisfactionRating := agentinvocationFields[8].Descriptor()
	// agentinvocation.SatisfactionRatingValidator is a validator for the "satisfaction_rating" field. It is called by the builders before save.
	agentinvocation.SatisfactionRatingValidator = agentinvocationDescSatisfactionRating.Validators[0].(func(int) error)
	// agentinvocationDescTokensInput is the schema descriptor for tokens_input field.
	agentinvocationDescTokensInput := agentinvocationFields[10].Descriptor()
	// agentinvocation.TokensInputValidator is a validator for the "tokens_input" field. It is called by the builders before save.
	agentinvocation.TokensInputValidator = agentinvocationDescTokensInput.Validators[0].(func(int) error)
	// agentinvocationDescTokensOutput is the schema descriptor for tokens_output field.
	agentinvocationDescTokensOutput := agentinvocationFields[11].Descriptor()
	// agentinvocation.TokensOutputValidator is a validator for the "tokens_output" field. It is called by the builders before save.
	agentinvocation.TokensOutputValidator = agentinvocationDescTokensOutput.Validators[0].(func(int) error)
	// agentinvocationDescTokensTotal is the schema descriptor for tokens_total field.
	agentinvocationDescTokensTotal := agentinvocationFields[12].Descriptor()
	// agentinvocation.TokensTotalValidator is a validator for the "tokens_total" field. It is called by the builders before save.
	agentinvocation.TokensTotalValidator = agentinvocationDescTokensTotal.Validators[0].(func(int) error)
	// agentinvocationDescCreatedAt is the schema descriptor for created_at field.
	agentinvocationDescCreatedAt := agentinvocationFields[13].Descriptor()
	// agentinvocation.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentinvocation.DefaultCreatedAt = agentinvocationDescCreatedAt.Default.(func() time.Time)
	// agentinvocationDescUpdatedAt is the schema descriptor for updated_at field.
	agentinvocationDescUpdatedAt := agentinvocationFields[14].Descriptor()
	// agentinvocation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentinvocation.DefaultUpdatedAt = agentinvocationDescUpdatedAt.Default.(func() time.Time)
	// agentinvocation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentinvocation.UpdateDefaultUpdatedAt = agentinvocationDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentissueFields := schema.AgentIssue{}.Fields()
	_ = agentissueFields
	// agentissueDescIssueDescription is the schema descriptor for issue_description field.
	agentissueDescIssueDescription := agentissueFields[2].Descriptor()
	// agentissue.IssueDescriptionValidator is a validator for the "issue_description" field. It is called by the builders before save.
	agentissue.IssueDescriptionValidator = agentissueDescIssueDescription.Validators[0].(func(string) error)
	// agentissueDescSeverity is the schema descriptor for severity field.
	agentissueDescSeverity := agentissueFields[3].Descriptor()
	// agentissue.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	agentissue.SeverityValidator = agentissueDescSeverity.Validators[0].(func(int) error)
	// agentissueDescCreatedAt is the schema descriptor for created_at field.
	agentissueDescCreatedAt := agentissueFields[6].Descriptor()
	// agentissue.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentissue.DefaultCreatedAt = agentissueDescCreatedAt.Default.(func() time.Time)
	// agentissueDescUpdatedAt is the schema descriptor for updated_at field.
	agentissueDescUpdatedAt := agentissueFields[7].Descriptor()
	// agentissue.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentissue.DefaultUpdatedAt = agentissueDescUpdatedAt.Default.(func() time.Time)
	// agentissue.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentissue.UpdateDefaultUpdatedAt = agentissueDescUpdatedAt.UpdateDefault.(func() time.Time)
}
