package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/stats"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// AppInfo identifies the running deployment in the metrics snapshot.
type AppInfo struct {
	Name        string
	Environment string
	Version     string
}

// MetricsService builds the snapshot consumed by external monitoring.
type MetricsService struct {
	client *ent.Client
	ping   func(context.Context) bool
	info   AppInfo
	now    func() time.Time
}

// NewMetricsService creates a new MetricsService. ping reports store
// reachability; when it fails the whole snapshot fails.
func NewMetricsService(client *ent.Client, ping func(context.Context) bool, info AppInfo) *MetricsService {
	if client == nil {
		panic("NewMetricsService: client must not be nil")
	}
	if ping == nil {
		ping = func(context.Context) bool { return true }
	}
	return &MetricsService{client: client, ping: ping, info: info, now: time.Now}
}

// Collect computes every section independently. A failing section is left
// nil and reported in Errors; the rest of the snapshot is still returned.
func (s *MetricsService) Collect(ctx context.Context) (*models.MetricsSnapshot, error) {
	now := s.now()
	snapshot := &models.MetricsSnapshot{
		AppName:     s.info.Name,
		Environment: s.info.Environment,
		Timestamp:   now.UTC().Format(time.RFC3339),
		Version:     s.info.Version,
	}

	snapshot.Health.Database = s.ping(ctx)
	if !snapshot.Health.Database {
		return nil, fmt.Errorf("%w: database unreachable", ErrAggregation)
	}

	record := func(section string, err error) {
		slog.Warn("Metrics section failed", "section", section, "error", err)
		snapshot.Errors = append(snapshot.Errors, models.SectionError{Section: section, Message: err.Error()})
	}

	if v, err := s.engagement(ctx, now); err != nil {
		record("engagement", err)
	} else {
		snapshot.Engagement = v
	}
	if v, err := s.agents(ctx, now); err != nil {
		record("agents", err)
	} else {
		snapshot.Custom.Agents = v
	}
	if v, err := s.invocations(ctx); err != nil {
		record("invocations", err)
	} else {
		snapshot.Custom.Invocations = v
	}
	if v, err := s.performance(ctx); err != nil {
		record("performance", err)
	} else {
		snapshot.Custom.Performance = v
	}
	if v, err := s.issues(ctx, now); err != nil {
		record("issues", err)
	} else {
		snapshot.Custom.Issues = v
	}
	if v, err := s.improvements(ctx, now); err != nil {
		record("improvements", err)
	} else {
		snapshot.Custom.Improvements = v
	}
	if v, err := s.activity(ctx, now); err != nil {
		record("activity", err)
	} else {
		snapshot.Custom.Activity = v
	}

	return snapshot, nil
}

func (s *MetricsService) startedSince(ctx context.Context, since time.Time) (int, error) {
	n, err := s.client.AgentInvocation.Query().Where(agentinvocation.StartedAtGT(since)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count invocations since %s: %w", ErrAggregation, since.Format(time.RFC3339), err)
	}
	return n, nil
}

func (s *MetricsService) engagement(ctx context.Context, now time.Time) (*models.EngagementMetrics, error) {
	today, err := s.startedSince(ctx, now.Add(-day))
	if err != nil {
		return nil, err
	}
	thisWeek, err := s.startedSince(ctx, now.Add(-week))
	if err != nil {
		return nil, err
	}
	thisMonth, err := s.startedSince(ctx, now.Add(-30*day))
	if err != nil {
		return nil, err
	}
	return &models.EngagementMetrics{
		MetricName:  "Agent Invocations (7 days)",
		MetricValue: thisWeek,
		MetricUnit:  "invocations",
		Details: models.EngagementDetails{
			Today:     today,
			ThisWeek:  thisWeek,
			ThisMonth: thisMonth,
		},
	}, nil
}

func (s *MetricsService) agents(ctx context.Context, now time.Time) (*models.AgentMetrics, error) {
	since := now.Add(-week)
	total, err := s.client.Agent.Query().Count(ctx)
	if err != nil {
		return nil, aggregationError("count agents", err)
	}
	active, err := s.client.Agent.Query().
		Where(agent.HasInvocationsWith(agentinvocation.StartedAtGT(since))).
		Count(ctx)
	if err != nil {
		return nil, aggregationError("count recently active agents", err)
	}
	usage, err := agentUsage(ctx, s.client, 1, agentinvocation.StartedAtGT(since))
	if err != nil {
		return nil, aggregationError("rank agents", err)
	}

	mostUsed := "None"
	if len(usage) > 0 {
		mostUsed = usage[0].Name
	}
	return &models.AgentMetrics{Total: total, Active7d: active, MostUsed: mostUsed}, nil
}

func (s *MetricsService) invocations(ctx context.Context) (*models.InvocationMetrics, error) {
	q := s.client.AgentInvocation.Query
	var m models.InvocationMetrics
	var err error

	if m.Total, err = q().Count(ctx); err != nil {
		return nil, aggregationError("count invocations", err)
	}
	if m.Completed, err = q().Where(agentinvocation.CompletedAtNotNil()).Count(ctx); err != nil {
		return nil, aggregationError("count completed invocations", err)
	}
	if m.InProgress, err = q().Where(agentinvocation.CompletedAtIsNil()).Count(ctx); err != nil {
		return nil, aggregationError("count in-progress invocations", err)
	}
	if m.Successful, err = q().Where(agentinvocation.SuccessEQ(true)).Count(ctx); err != nil {
		return nil, aggregationError("count successful invocations", err)
	}
	if m.Failed, err = q().Where(agentinvocation.SuccessEQ(false)).Count(ctx); err != nil {
		return nil, aggregationError("count failed invocations", err)
	}
	m.SuccessRate = stats.Rate(m.Successful, m.Successful+m.Failed)
	return &m, nil
}

func (s *MetricsService) performance(ctx context.Context) (*models.PerformanceMetrics, error) {
	durations, err := s.client.AgentInvocation.Query().
		Where(agentinvocation.CompletedAtNotNil(), agentinvocation.DurationMinutesNotNil()).
		Select(agentinvocation.FieldDurationMinutes).
		Ints(ctx)
	if err != nil {
		return nil, aggregationError("load durations", err)
	}
	rating, err := averageRating(ctx, s.client, 2)
	if err != nil {
		return nil, aggregationError("average ratings", err)
	}
	tokens, err := s.client.AgentInvocation.Query().
		Where(agentinvocation.TokensTotalNotNil()).
		Select(agentinvocation.FieldTokensTotal).
		Ints(ctx)
	if err != nil {
		return nil, aggregationError("sum tokens", err)
	}

	var totalTokens int
	for _, t := range tokens {
		totalTokens += t
	}
	return &models.PerformanceMetrics{
		AvgDurationMinutes:    stats.Mean(durations, 1),
		AvgSatisfactionRating: rating,
		TotalTokensUsed:       totalTokens,
	}, nil
}

func (s *MetricsService) issues(ctx context.Context, now time.Time) (*models.IssueMetrics, error) {
	var m models.IssueMetrics
	var err error
	if m.Total, err = s.client.AgentIssue.Query().Count(ctx); err != nil {
		return nil, aggregationError("count issues", err)
	}
	if m.Unresolved, err = s.client.AgentIssue.Query().Where(agentissue.StatusNEQ(models.IssueStatusResolved)).Count(ctx); err != nil {
		return nil, aggregationError("count unresolved issues", err)
	}
	// Resolution time is not stored; the last update of a resolved issue stands in for it
	m.Resolved7d, err = s.client.AgentIssue.Query().
		Where(agentissue.StatusEQ(models.IssueStatusResolved), agentissue.UpdatedAtGT(now.Add(-week))).
		Count(ctx)
	if err != nil {
		return nil, aggregationError("count resolved issues", err)
	}
	return &m, nil
}

func (s *MetricsService) improvements(ctx context.Context, now time.Time) (*models.ImprovementMetrics, error) {
	total, err := s.client.AgentImprovement.Query().Count(ctx)
	if err != nil {
		return nil, aggregationError("count improvements", err)
	}
	thisWeek, err := s.client.AgentImprovement.Query().Where(agentimprovement.CreatedAtGT(now.Add(-week))).Count(ctx)
	if err != nil {
		return nil, aggregationError("count recent improvements", err)
	}
	return &models.ImprovementMetrics{Total: total, ThisWeek: thisWeek}, nil
}

func (s *MetricsService) activity(ctx context.Context, now time.Time) (*models.ActivityMetrics, error) {
	today, err := s.startedSince(ctx, now.Add(-day))
	if err != nil {
		return nil, err
	}
	lastWeek, err := s.startedSince(ctx, now.Add(-week))
	if err != nil {
		return nil, err
	}
	return &models.ActivityMetrics{
		InvocationsToday:     today,
		Invocations7d:        lastWeek,
		AvgInvocationsPerDay: stats.PerDay(lastWeek, 7),
	}, nil
}

func aggregationError(what string, err error) error {
	if errors.Is(err, ErrAggregation) {
		return err
	}
	return fmt.Errorf("%w: failed to %s: %w", ErrAggregation, what, err)
}
