package services

import (
	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/stats"
)

func toAgentRef(a *ent.Agent) *models.AgentRef {
	if a == nil {
		return nil
	}
	return &models.AgentRef{ID: a.ID, AgentNumber: a.AgentNumber, Name: a.Name}
}

func toAgentView(a *ent.Agent) models.AgentView {
	return models.AgentView{
		ID:               a.ID,
		AgentNumber:      a.AgentNumber,
		Name:             a.Name,
		Category:         a.Category,
		CategoryLabel:    a.Category.Label(),
		Tier:             a.Tier,
		TierBadgeColor:   models.LevelBadgeColor(a.Tier),
		Status:           a.Status,
		StatusBadgeColor: a.Status.BadgeColor(),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toInvocationView(inv *ent.AgentInvocation) models.InvocationView {
	return models.InvocationView{
		ID:                 inv.ID,
		AgentID:            inv.AgentID,
		Agent:              toAgentRef(inv.Edges.Agent),
		TaskDescription:    inv.TaskDescription,
		InvocationMode:     inv.InvocationMode,
		ModeBadgeColor:     inv.InvocationMode.BadgeColor(),
		ContextNotes:       inv.ContextNotes,
		StartedAt:          inv.StartedAt,
		CompletedAt:        inv.CompletedAt,
		DurationMinutes:    inv.DurationMinutes,
		DurationDisplay:    stats.DurationDisplay(inv.DurationMinutes),
		InProgress:         inv.CompletedAt == nil,
		Success:            inv.Success,
		SuccessLabel:       models.SuccessLabel(inv.Success),
		SuccessBadgeColor:  models.SuccessBadgeColor(inv.Success),
		SatisfactionRating: inv.SatisfactionRating,
		RatingStars:        models.RatingStars(inv.SatisfactionRating),
		OutcomeNotes:       inv.OutcomeNotes,
		TokensInput:        inv.TokensInput,
		TokensOutput:       inv.TokensOutput,
		TokensTotal:        inv.TokensTotal,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

func toIssueView(i *ent.AgentIssue) models.IssueView {
	return models.IssueView{
		ID:                 i.ID,
		AgentID:            i.AgentID,
		Agent:              toAgentRef(i.Edges.Agent),
		InvocationID:       i.AgentInvocationID,
		IssueDescription:   i.IssueDescription,
		Severity:           i.Severity,
		SeverityLabel:      models.SeverityLabel(i.Severity),
		SeverityBadgeColor: models.LevelBadgeColor(i.Severity),
		Status:             i.Status,
		StatusBadgeColor:   i.Status.BadgeColor(),
		ResolutionNotes:    i.ResolutionNotes,
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          i.UpdatedAt,
	}
}

func toImprovementView(i *ent.AgentImprovement) models.ImprovementView {
	return models.ImprovementView{
		ID:                     i.ID,
		AgentID:                i.AgentID,
		Agent:                  toAgentRef(i.Edges.Agent),
		ImprovementDescription: i.ImprovementDescription,
		Priority:               i.Priority,
		PriorityLabel:          models.PriorityLabel(i.Priority),
		PriorityBadgeColor:     models.LevelBadgeColor(i.Priority),
		Status:                 i.Status,
		StatusBadgeColor:       i.Status.BadgeColor(),
		ImplementedAt:          i.ImplementedAt,
		CreatedAt:              i.CreatedAt,
		UpdatedAt:              i.UpdatedAt,
	}
}

func toChangeView(c *ent.AgentChange) models.ChangeView {
	return models.ChangeView{
		ID:                    c.ID,
		AgentID:               c.AgentID,
		Agent:                 toAgentRef(c.Edges.Agent),
		ChangeType:            c.ChangeType,
		ChangeTypeLabel:       c.ChangeType.Label(),
		ChangeTypeBadgeColor:  c.ChangeType.BadgeColor(),
		ChangeDescription:     c.ChangeDescription,
		BeforeValue:           c.BeforeValue,
		AfterValue:            c.AfterValue,
		TriggeredBy:           c.TriggeredBy,
		TriggeredByLabel:      c.TriggeredBy.Label(),
		TriggeredByBadgeColor: c.TriggeredBy.BadgeColor(),
		InvocationID:          c.AgentInvocationID,
		IssueID:               c.AgentIssueID,
		ImprovementID:         c.AgentImprovementID,
		CreatedAt:             c.CreatedAt,
	}
}

// mapAll converts a slice of entities with fn, never returning nil.
func mapAll[E any, V any](in []E, fn func(E) V) []V {
	out := make([]V, len(in))
	for i, e := range in {
		out[i] = fn(e)
	}
	return out
}
