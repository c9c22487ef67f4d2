package services

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/stats"
)

// AgentPageSize is the default page size for agent listings.
const AgentPageSize = 50

// Limits for the related records shown on the agent detail view.
const (
	detailInvocationLimit  = 20
	detailIssueLimit       = 10
	detailImprovementLimit = 10
	detailChangeLimit      = 15
)

// AgentService manages the agent catalog
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	if client == nil {
		panic("NewAgentService: client must not be nil")
	}
	return &AgentService{client: client}
}

// CreateAgent adds an agent to the catalog
func (s *AgentService) CreateAgent(ctx context.Context, req models.CreateAgentRequest) (*models.AgentView, error) {
	verr := validateStruct(req)
	if req.AgentNumber > 0 {
		exists, err := s.client.Agent.Query().Where(agent.AgentNumberEQ(req.AgentNumber)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check agent number: %w", err)
		}
		if exists {
			verr.Add("agent_number", "has already been taken")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	create := s.client.Agent.Create().
		SetAgentNumber(req.AgentNumber).
		SetName(req.Name).
		SetCategory(req.Category).
		SetTier(req.Tier)
	if req.Status != "" {
		create.SetStatus(req.Status)
	}

	a, err := create.Save(ctx)
	if err != nil {
		// Lost a race with a concurrent insert of the same number
		if err = constraintToValidation(err, "agent_number", "has already been taken"); IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	view := toAgentView(a)
	return &view, nil
}

// GetAgent retrieves an agent by ID
func (s *AgentService) GetAgent(ctx context.Context, id int) (*models.AgentView, error) {
	a, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	view := toAgentView(a)
	return &view, nil
}

// GetAgentByNumber retrieves an agent by its stable catalog number
func (s *AgentService) GetAgentByNumber(ctx context.Context, number int) (*models.AgentView, error) {
	a, err := s.client.Agent.Query().Where(agent.AgentNumberEQ(number)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent by number: %w", err)
	}
	view := toAgentView(a)
	return &view, nil
}

// GetAgentDetail returns an agent with its most recent records and stats
func (s *AgentService) GetAgentDetail(ctx context.Context, id int) (*models.AgentDetail, error) {
	a, err := s.client.Agent.Query().
		Where(agent.IDEQ(id)).
		WithInvocations(func(q *ent.AgentInvocationQuery) {
			q.Order(ent.Desc(agentinvocation.FieldStartedAt)).Limit(detailInvocationLimit)
		}).
		WithIssues(func(q *ent.AgentIssueQuery) {
			q.Order(ent.Desc(agentissue.FieldCreatedAt)).Limit(detailIssueLimit)
		}).
		WithImprovements(func(q *ent.AgentImprovementQuery) {
			q.Order(ent.Desc(agentimprovement.FieldCreatedAt)).Limit(detailImprovementLimit)
		}).
		WithChanges(func(q *ent.AgentChangeQuery) {
			q.Order(ent.Desc(agentchange.FieldCreatedAt)).Limit(detailChangeLimit)
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent detail: %w", err)
	}

	agentStats, err := s.AgentStats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.AgentDetail{
		AgentView:          toAgentView(a),
		Stats:              *agentStats,
		RecentInvocations:  mapAll(a.Edges.Invocations, toInvocationView),
		RecentIssues:       mapAll(a.Edges.Issues, toIssueView),
		RecentImprovements: mapAll(a.Edges.Improvements, toImprovementView),
		RecentChanges:      mapAll(a.Edges.Changes, toChangeView),
	}, nil
}

// AgentStats computes the per-agent derived metrics over all of its invocations
func (s *AgentService) AgentStats(ctx context.Context, id int) (*models.AgentStats, error) {
	invocations, err := s.client.AgentInvocation.Query().
		Where(agentinvocation.AgentIDEQ(id)).
		Select(agentinvocation.FieldSuccess, agentinvocation.FieldSatisfactionRating).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent invocations: %w", err)
	}

	outcomes := make([]*bool, len(invocations))
	ratings := make([]*int, len(invocations))
	for i, inv := range invocations {
		outcomes[i] = inv.Success
		ratings[i] = inv.SatisfactionRating
	}

	openIssues, err := s.client.AgentIssue.Query().
		Where(agentissue.AgentIDEQ(id), agentissue.StatusEQ(models.IssueStatusOpen)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count open issues: %w", err)
	}

	pending, err := s.client.AgentImprovement.Query().
		Where(agentimprovement.AgentIDEQ(id), agentimprovement.StatusIn(models.PendingImprovementStatuses...)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending improvements: %w", err)
	}

	return &models.AgentStats{
		TotalInvocations:    len(invocations),
		SuccessRate:         stats.SuccessRate(outcomes),
		AverageSatisfaction: stats.AverageSatisfaction(ratings),
		OpenIssues:          openIssues,
		PendingImprovements: pending,
	}, nil
}

// ListAgents lists agents ordered by agent number with filtering and pagination
func (s *AgentService) ListAgents(ctx context.Context, filters models.AgentFilters) (*models.ListResult[models.AgentView], error) {
	query := s.client.Agent.Query()

	if filters.Category != nil {
		query = query.Where(agent.CategoryEQ(*filters.Category))
	}
	if filters.Tier != nil {
		query = query.Where(agent.TierEQ(*filters.Tier))
	}
	if filters.Status != nil {
		query = query.Where(agent.StatusEQ(*filters.Status))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count agents: %w", err)
	}

	page := filters.ListParams.Normalize(AgentPageSize)
	agents, err := query.
		Order(ent.Asc(agent.FieldAgentNumber)).
		Limit(page.PageSize).
		Offset(page.Offset()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return &models.ListResult[models.AgentView]{
		Items:      mapAll(agents, toAgentView),
		TotalCount: totalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}

// ListActiveAgents returns active agents ordered by name, for the manual-entry form
func (s *AgentService) ListActiveAgents(ctx context.Context) ([]models.AgentRef, error) {
	agents, err := s.client.Agent.Query().
		Where(agent.StatusEQ(models.AgentStatusActive)).
		Order(ent.Asc(agent.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active agents: %w", err)
	}
	refs := make([]models.AgentRef, len(agents))
	for i, a := range agents {
		refs[i] = *toAgentRef(a)
	}
	return refs, nil
}

// UpdateAgent changes catalog attributes. The agent number is immutable.
func (s *AgentService) UpdateAgent(ctx context.Context, id int, req models.UpdateAgentRequest) (*models.AgentView, error) {
	if err := validateStruct(req).OrNil(); err != nil {
		return nil, err
	}

	update := s.client.Agent.UpdateOneID(id)
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Category != nil {
		update.SetCategory(*req.Category)
	}
	if req.Tier != nil {
		update.SetTier(*req.Tier)
	}
	if req.Status != nil {
		update.SetStatus(*req.Status)
	}

	a, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	view := toAgentView(a)
	return &view, nil
}

// DeleteAgent removes an agent together with its invocations, issues,
// improvements and change log.
func (s *AgentService) DeleteAgent(ctx context.Context, id int) error {
	err := s.client.Agent.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// agentExists reports whether an agent with id exists.
func agentExists(ctx context.Context, client *ent.Client, id int) (bool, error) {
	exists, err := client.Agent.Query().Where(agent.IDEQ(id)).Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check agent: %w", err)
	}
	return exists, nil
}
