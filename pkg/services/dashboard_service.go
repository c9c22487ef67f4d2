package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/ent/predicate"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/stats"
)

// Dashboard list sizes.
const (
	dashboardRecentLimit       = 10
	dashboardMostUsedLimit     = 10
	dashboardHighSeverityLimit = 5
	highSeverityThreshold      = 4
)

// DashboardService derives the landing-page overview. Nothing is cached;
// every call reads the store.
type DashboardService struct {
	client *ent.Client
	now    func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(client *ent.Client) *DashboardService {
	if client == nil {
		panic("NewDashboardService: client must not be nil")
	}
	return &DashboardService{client: client, now: time.Now}
}

// GetDashboard builds the overview snapshot
func (s *DashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	d := &models.Dashboard{GeneratedAt: s.now().UTC()}
	var err error

	if d.TotalAgents, err = s.client.Agent.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count agents: %w", err)
	}
	if d.ActiveAgents, err = s.client.Agent.Query().Where(agent.StatusEQ(models.AgentStatusActive)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count active agents: %w", err)
	}
	if d.TotalInvocations, err = s.client.AgentInvocation.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count invocations: %w", err)
	}

	recent, err := s.client.AgentInvocation.Query().
		WithAgent().
		Order(ent.Desc(agentinvocation.FieldStartedAt), ent.Desc(agentinvocation.FieldID)).
		Limit(dashboardRecentLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent invocations: %w", err)
	}
	d.RecentInvocations = mapAll(recent, toInvocationView)

	if d.SuccessRate, err = successRate(ctx, s.client); err != nil {
		return nil, err
	}
	if d.AverageSatisfaction, err = averageRating(ctx, s.client, 1); err != nil {
		return nil, err
	}

	if d.MostUsedAgents, err = agentUsage(ctx, s.client, dashboardMostUsedLimit); err != nil {
		return nil, err
	}

	if d.OpenIssuesCount, err = s.client.AgentIssue.Query().Where(agentissue.StatusEQ(models.IssueStatusOpen)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count open issues: %w", err)
	}
	high, err := s.client.AgentIssue.Query().
		Where(
			agentissue.StatusEQ(models.IssueStatusOpen),
			agentissue.SeverityGTE(highSeverityThreshold),
		).
		WithAgent().
		Order(ent.Desc(agentissue.FieldCreatedAt), ent.Desc(agentissue.FieldID)).
		Limit(dashboardHighSeverityLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load high severity issues: %w", err)
	}
	d.HighSeverityIssues = mapAll(high, toIssueView)

	d.PendingImprovementsCount, err = s.client.AgentImprovement.Query().
		Where(agentimprovement.StatusIn(models.PendingImprovementStatuses...)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending improvements: %w", err)
	}

	if d.AgentsByCategory, err = agentsByCategory(ctx, s.client); err != nil {
		return nil, err
	}

	changes, err := s.client.AgentChange.Query().
		WithAgent().
		Order(ent.Desc(agentchange.FieldCreatedAt), ent.Desc(agentchange.FieldID)).
		Limit(dashboardRecentLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent changes: %w", err)
	}
	d.RecentChanges = mapAll(changes, toChangeView)

	return d, nil
}

// successRate is the share of invocations with a known outcome that succeeded.
func successRate(ctx context.Context, client *ent.Client) (float64, error) {
	known, err := client.AgentInvocation.Query().Where(agentinvocation.SuccessNotNil()).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count known outcomes: %w", err)
	}
	succeeded, err := client.AgentInvocation.Query().Where(agentinvocation.SuccessEQ(true)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count successful invocations: %w", err)
	}
	return stats.Rate(succeeded, known), nil
}

// averageRating is the mean satisfaction rating rounded to places, nil when unrated.
func averageRating(ctx context.Context, client *ent.Client, places int) (*float64, error) {
	ratings, err := client.AgentInvocation.Query().
		Where(agentinvocation.SatisfactionRatingNotNil()).
		Select(agentinvocation.FieldSatisfactionRating).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load satisfaction ratings: %w", err)
	}
	return stats.Mean(ratings, places), nil
}

// agentUsage ranks agents with at least one matching invocation by count,
// breaking ties by the lower agent number. limit <= 0 returns every agent.
func agentUsage(ctx context.Context, client *ent.Client, limit int, preds ...predicate.AgentInvocation) ([]models.AgentUsage, error) {
	var rows []struct {
		AgentID int `json:"agent_id"`
		Count   int `json:"count"`
	}
	err := client.AgentInvocation.Query().
		Where(preds...).
		GroupBy(agentinvocation.FieldAgentID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count invocations per agent: %w", err)
	}
	if len(rows) == 0 {
		return []models.AgentUsage{}, nil
	}

	ids := make([]int, len(rows))
	counts := make(map[int]int, len(rows))
	for i, r := range rows {
		ids[i] = r.AgentID
		counts[r.AgentID] = r.Count
	}
	agents, err := client.Agent.Query().Where(agent.IDIn(ids...)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}

	usage := make([]models.AgentUsage, len(agents))
	for i, a := range agents {
		usage[i] = models.AgentUsage{
			AgentRef:        *toAgentRef(a),
			Category:        a.Category,
			Tier:            a.Tier,
			InvocationCount: counts[a.ID],
		}
	}
	slices.SortFunc(usage, func(a, b models.AgentUsage) int {
		if c := cmp.Compare(b.InvocationCount, a.InvocationCount); c != 0 {
			return c
		}
		return cmp.Compare(a.AgentNumber, b.AgentNumber)
	})
	if limit > 0 && len(usage) > limit {
		usage = usage[:limit]
	}
	return usage, nil
}

func agentsByCategory(ctx context.Context, client *ent.Client) (map[models.Category]int, error) {
	var rows []struct {
		Category models.Category `json:"category"`
		Count    int             `json:"count"`
	}
	err := client.Agent.Query().
		GroupBy(agent.FieldCategory).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count agents by category: %w", err)
	}
	out := make(map[models.Category]int, len(rows))
	for _, r := range rows {
		out[r.Category] = r.Count
	}
	return out, nil
}
