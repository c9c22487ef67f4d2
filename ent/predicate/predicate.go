// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentChange is the predicate function for agentchange builders.
type AgentChange func(*sql.Selector)

// AgentImprovement is the predicate function for agentimprovement builders.
type AgentImprovement func(*sql.Selector)

// AgentInvocation is the predicate function for agentinvocation builders.
type AgentInvocation func(*sql.Selector)

// AgentIssue is the predicate function for agentissue builders.
type AgentIssue func(*sql.Selector)
