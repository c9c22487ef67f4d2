// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_number", Type: field.TypeInt, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"research", "planning", "writing", "coding", "debugging", "deployment", "database", "testing", "monitoring", "analysis", "optimization", "security", "infrastructure", "documentation", "design", "marketing", "finance", "operations"}},
		{Name: "tier", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "deprecated", "archived"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_category",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3]},
			},
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[5]},
			},
			{
				Name:    "agent_tier",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[4]},
			},
		},
	}
	// AgentChangesColumns holds the columns for the "agent_changes" table.
	AgentChangesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "change_type", Type: field.TypeEnum, Enums: []string{"spec_update", "context_update", "example_added", "status_change", "subagent_integration", "bug_fix", "capability_added", "capability_removed"}},
		{Name: "change_description", Type: field.TypeString, Size: 2147483647},
		{Name: "before_value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "after_value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "triggered_by", Type: field.TypeEnum, Enums: []string{"invocation_issue", "user_request", "improvement", "refactor", "initial_creation"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt},
		{Name: "agent_improvement_id", Type: field.TypeInt, Nullable: true},
		{Name: "agent_invocation_id", Type: field.TypeInt, Nullable: true},
		{Name: "agent_issue_id", Type: field.TypeInt, Nullable: true},
	}
	// AgentChangesTable holds the schema information for the "agent_changes" table.
	AgentChangesTable = &schema.Table{
		Name:       "agent_changes",
		Columns:    AgentChangesColumns,
		PrimaryKey: []*schema.Column{AgentChangesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_changes_agents_changes",
				Columns:    []*schema.Column{AgentChangesColumns[8]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_changes_agent_improvements_changes",
				Columns:    []*schema.Column{AgentChangesColumns[9]},
				RefColumns: []*schema.Column{AgentImprovementsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "agent_changes_agent_invocations_changes",
				Columns:    []*schema.Column{AgentChangesColumns[10]},
				RefColumns: []*schema.Column{AgentInvocationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "agent_changes_agent_issues_changes",
				Columns:    []*schema.Column{AgentChangesColumns[11]},
				RefColumns: []*schema.Column{AgentIssuesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentchange_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentChangesColumns[8], AgentChangesColumns[6]},
			},
			{
				Name:    "agentchange_change_type",
				Unique:  false,
				Columns: []*schema.Column{AgentChangesColumns[1]},
			},
			{
				Name:    "agentchange_triggered_by",
				Unique:  false,
				Columns: []*schema.Column{AgentChangesColumns[5]},
			},
			{
				Name:    "agentchange_agent_invocation_id",
				Unique:  false,
				Columns: []*schema.Column{AgentChangesColumns[10]},
			},
			{
				Name:    "agentchange_agent_issue_id",
				Unique:  false,
				Columns: []*schema.Column{AgentChangesColumns[11]},
			},
			{
				Name:    "agentchange_agent_improvement_id",
				Unique:  false,
				Columns: []*schema.Column{AgentChangesColumns[9]},
			},
		},
	}
	// AgentImprovementsColumns holds the columns for the "agent_improvements" table.
	AgentImprovementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "improvement_description", Type: field.TypeString, Size: 2147483647},
		{Name: "priority", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"proposed", "approved", "implemented", "rejected"}, Default: "proposed"},
		{Name: "implemented_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt},
	}
	// AgentImprovementsTable holds the schema information for the "agent_improvements" table.
	AgentImprovementsTable = &schema.Table{
		Name:       "agent_improvements",
		Columns:    AgentImprovementsColumns,
		PrimaryKey: []*schema.Column{AgentImprovementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_improvements_agents_improvements",
				Columns:    []*schema.Column{AgentImprovementsColumns[7]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentimprovement_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentImprovementsColumns[7], AgentImprovementsColumns[3]},
			},
			{
				Name:    "agentimprovement_priority",
				Unique:  false,
				Columns: []*schema.Column{AgentImprovementsColumns[2]},
			},
			{
				Name:    "agentimprovement_status",
				Unique:  false,
				Columns: []*schema.Column{AgentImprovementsColumns[3]},
			},
		},
	}
	// AgentInvocationsColumns holds the columns for the "agent_invocations" table.
	AgentInvocationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_description", Type: field.TypeString, Size: 2147483647},
		{Name: "invocation_mode", Type: field.TypeEnum, Enums: []string{"subagent", "manual"}, Default: "subagent"},
		{Name: "context_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "success", Type: field.TypeBool, Nullable: true},
		{Name: "satisfaction_rating", Type: field.TypeInt, Nullable: true},
		{Name: "outcome_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tokens_input", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_output", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_total", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt},
	}
	// AgentInvocationsTable holds the schema information for the "agent_invocations" table.
	AgentInvocationsTable = &schema.Table{
		Name:       "agent_invocations",
		Columns:    AgentInvocationsColumns,
		PrimaryKey: []*schema.Column{AgentInvocationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_invocations_agents_invocations",
				Columns:    []*schema.Column{AgentInvocationsColumns[15]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentinvocation_agent_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentInvocationsColumns[15], AgentInvocationsColumns[4]},
			},
			{
				Name:    "agentinvocation_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentInvocationsColumns[4]},
			},
			{
				Name:    "agentinvocation_invocation_mode",
				Unique:  false,
				Columns: []*schema.Column{AgentInvocationsColumns[2]},
			},
			{
				Name:    "agentinvocation_success",
				Unique:  false,
				Columns: []*schema.Column{AgentInvocationsColumns[7]},
			},
		},
	}
	// AgentIssuesColumns holds the columns for the "agent_issues" table.
	AgentIssuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "issue_description", Type: field.TypeString, Size: 2147483647},
		{Name: "severity", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "investigating", "resolved"}, Default: "open"},
		{Name: "resolution_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt},
		{Name: "agent_invocation_id", Type: field.TypeInt, Nullable: true},
	}
	// AgentIssuesTable holds the schema information for the "agent_issues" table.
	AgentIssuesTable = &schema.Table{
		Name:       "agent_issues",
		Columns:    AgentIssuesColumns,
		PrimaryKey: []*schema.Column{AgentIssuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_issues_agents_issues",
				Columns:    []*schema.Column{AgentIssuesColumns[7]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_issues_agent_invocations_issues",
				Columns:    []*schema.Column{AgentIssuesColumns[8]},
				RefColumns: []*schema.Column{AgentInvocationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentissue_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentIssuesColumns[7], AgentIssuesColumns[3]},
			},
			{
				Name:    "agentissue_agent_invocation_id",
				Unique:  false,
				Columns: []*schema.Column{AgentIssuesColumns[8]},
			},
			{
				Name:    "agentissue_severity",
				Unique:  false,
				Columns: []*schema.Column{AgentIssuesColumns[2]},
			},
			{
				Name:    "agentissue_status",
				Unique:  false,
				Columns: []*schema.Column{AgentIssuesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentChangesTable,
		AgentImprovementsTable,
		AgentInvocationsTable,
		AgentIssuesTable,
	}
)

func init() {
	AgentChangesTable.ForeignKeys[0].RefTable = AgentsTable
	AgentChangesTable.ForeignKeys[1].RefTable = AgentImprovementsTable
	AgentChangesTable.ForeignKeys[2].RefTable = AgentInvocationsTable
	AgentChangesTable.ForeignKeys[3].RefTable = AgentIssuesTable
	AgentImprovementsTable.ForeignKeys[0].RefTable = AgentsTable
	AgentInvocationsTable.ForeignKeys[0].RefTable = AgentsTable
	AgentIssuesTable.ForeignKeys[0].RefTable = AgentsTable
	AgentIssuesTable.ForeignKeys[1].RefTable = AgentInvocationsTable
}
