package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/ent/agentinvocation"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/stats"
)

// InvocationService records agent invocations
type InvocationService struct {
	client *ent.Client
	now    func() time.Time
}

// NewInvocationService creates a new InvocationService
func NewInvocationService(client *ent.Client) *InvocationService {
	if client == nil {
		panic("NewInvocationService: client must not be nil")
	}
	return &InvocationService{client: client, now: time.Now}
}

// CreateInvocation validates and stores an invocation. Duration is derived
// from the timestamps and cannot be supplied.
func (s *InvocationService) CreateInvocation(ctx context.Context, req models.CreateInvocationRequest) (*models.InvocationView, error) {
	startedAt := s.now()
	if req.StartedAt != nil {
		startedAt = *req.StartedAt
	}

	verr := validateStruct(req)
	if req.AgentID != 0 {
		ok, err := agentExists(ctx, s.client, req.AgentID)
		if err != nil {
			return nil, err
		}
		if !ok {
			verr.Add("agent_id", "must exist")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	create := s.client.AgentInvocation.Create().
		SetAgentID(req.AgentID).
		SetTaskDescription(req.TaskDescription).
		SetStartedAt(startedAt).
		SetNillableContextNotes(req.ContextNotes).
		SetNillableCompletedAt(req.CompletedAt).
		SetNillableDurationMinutes(stats.DurationMinutes(startedAt, req.CompletedAt)).
		SetNillableSuccess(req.Success).
		SetNillableSatisfactionRating(req.SatisfactionRating).
		SetNillableOutcomeNotes(req.OutcomeNotes).
		SetNillableTokensInput(req.TokensInput).
		SetNillableTokensOutput(req.TokensOutput).
		SetNillableTokensTotal(req.TokensTotal)
	if req.InvocationMode != "" {
		create.SetInvocationMode(req.InvocationMode)
	}

	inv, err := create.Save(ctx)
	if err != nil {
		if err = constraintToValidation(err, "agent_id", "must exist"); IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create invocation: %w", err)
	}

	return s.GetInvocationView(ctx, inv.ID)
}

// GetInvocationView retrieves an invocation with its agent
func (s *InvocationService) GetInvocationView(ctx context.Context, id int) (*models.InvocationView, error) {
	inv, err := s.client.AgentInvocation.Query().
		Where(agentinvocation.IDEQ(id)).
		WithAgent().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invocation: %w", err)
	}
	view := toInvocationView(inv)
	return &view, nil
}

// GetInvocation retrieves an invocation with its agent, issues and changes
func (s *InvocationService) GetInvocation(ctx context.Context, id int) (*models.InvocationDetail, error) {
	inv, err := s.client.AgentInvocation.Query().
		Where(agentinvocation.IDEQ(id)).
		WithAgent().
		WithIssues(func(q *ent.AgentIssueQuery) {
			q.Order(ent.Desc(agentissue.FieldCreatedAt))
		}).
		WithChanges(func(q *ent.AgentChangeQuery) {
			q.Order(ent.Desc(agentchange.FieldCreatedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invocation: %w", err)
	}

	return &models.InvocationDetail{
		InvocationView: toInvocationView(inv),
		Issues:         mapAll(inv.Edges.Issues, toIssueView),
		Changes:        mapAll(inv.Edges.Changes, toChangeView),
	}, nil
}

// ListInvocations lists invocations newest first with filtering and pagination
func (s *InvocationService) ListInvocations(ctx context.Context, filters models.InvocationFilters) (*models.ListResult[models.InvocationView], error) {
	query := s.client.AgentInvocation.Query()

	if filters.AgentID != nil {
		query = query.Where(agentinvocation.AgentIDEQ(*filters.AgentID))
	}
	if filters.Mode != nil {
		query = query.Where(agentinvocation.InvocationModeEQ(*filters.Mode))
	}
	if filters.Success != nil {
		query = query.Where(agentinvocation.SuccessEQ(*filters.Success))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count invocations: %w", err)
	}

	page := filters.ListParams.Normalize(models.DefaultPageSize)
	invocations, err := query.
		WithAgent().
		Order(ent.Desc(agentinvocation.FieldStartedAt), ent.Desc(agentinvocation.FieldID)).
		Limit(page.PageSize).
		Offset(page.Offset()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invocations: %w", err)
	}

	return &models.ListResult[models.InvocationView]{
		Items:      mapAll(invocations, toInvocationView),
		TotalCount: totalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}

// UpdateInvocation amends an invocation and recomputes its duration
func (s *InvocationService) UpdateInvocation(ctx context.Context, id int, req models.UpdateInvocationRequest) (*models.InvocationView, error) {
	current, err := s.client.AgentInvocation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invocation: %w", err)
	}

	startedAt := current.StartedAt
	if req.StartedAt != nil {
		startedAt = *req.StartedAt
	}
	completedAt := current.CompletedAt
	if req.CompletedAt != nil {
		completedAt = req.CompletedAt
	}

	if err := validateStruct(req).OrNil(); err != nil {
		return nil, err
	}

	update := current.Update().
		SetStartedAt(startedAt).
		SetNillableCompletedAt(completedAt).
		SetNillableContextNotes(req.ContextNotes).
		SetNillableSuccess(req.Success).
		SetNillableSatisfactionRating(req.SatisfactionRating).
		SetNillableOutcomeNotes(req.OutcomeNotes).
		SetNillableTokensInput(req.TokensInput).
		SetNillableTokensOutput(req.TokensOutput).
		SetNillableTokensTotal(req.TokensTotal)
	if duration := stats.DurationMinutes(startedAt, completedAt); duration != nil {
		update.SetDurationMinutes(*duration)
	} else {
		update.ClearDurationMinutes()
	}
	if req.TaskDescription != nil {
		update.SetTaskDescription(*req.TaskDescription)
	}
	if req.InvocationMode != nil {
		update.SetInvocationMode(*req.InvocationMode)
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update invocation: %w", err)
	}

	return s.GetInvocationView(ctx, id)
}

// DeleteInvocation removes an invocation. Issues and changes referencing it
// keep existing with the reference cleared.
func (s *InvocationService) DeleteInvocation(ctx context.Context, id int) error {
	err := s.client.AgentInvocation.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete invocation: %w", err)
	}
	return nil
}

// FormDefaults returns the values the manual-entry form starts with
func (s *InvocationService) FormDefaults(ctx context.Context, agents *AgentService) (*models.InvocationFormDefaults, error) {
	active, err := agents.ListActiveAgents(ctx)
	if err != nil {
		return nil, err
	}
	return &models.InvocationFormDefaults{
		StartedAt:      s.now().UTC().Truncate(time.Minute),
		InvocationMode: models.InvocationModeSubagent,
		Agents:         active,
		Modes:          models.InvocationMode("").Values(),
	}, nil
}
