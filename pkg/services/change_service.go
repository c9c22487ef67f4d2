package services

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentchange"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// ChangeService appends to and reads the agent change log. Entries are
// never edited after creation.
type ChangeService struct {
	client *ent.Client
}

// NewChangeService creates a new ChangeService
func NewChangeService(client *ent.Client) *ChangeService {
	if client == nil {
		panic("NewChangeService: client must not be nil")
	}
	return &ChangeService{client: client}
}

// CreateChange appends an entry to an agent's change log
func (s *ChangeService) CreateChange(ctx context.Context, req models.CreateChangeRequest) (*models.ChangeView, error) {
	verr := validateStruct(req)
	err := checkReferences(ctx, s.client, verr, req.AgentID, refs{
		invocation:  req.AgentInvocationID,
		issue:       req.AgentIssueID,
		improvement: req.AgentImprovementID,
	})
	if err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	change, err := s.client.AgentChange.Create().
		SetAgentID(req.AgentID).
		SetChangeType(req.ChangeType).
		SetChangeDescription(req.ChangeDescription).
		SetNillableBeforeValue(req.BeforeValue).
		SetNillableAfterValue(req.AfterValue).
		SetTriggeredBy(req.TriggeredBy).
		SetNillableAgentInvocationID(req.AgentInvocationID).
		SetNillableAgentIssueID(req.AgentIssueID).
		SetNillableAgentImprovementID(req.AgentImprovementID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create change: %w", err)
	}
	return s.GetChange(ctx, change.ID)
}

// GetChange retrieves a change-log entry with its agent
func (s *ChangeService) GetChange(ctx context.Context, id int) (*models.ChangeView, error) {
	change, err := s.client.AgentChange.Query().
		Where(agentchange.IDEQ(id)).
		WithAgent().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get change: %w", err)
	}
	view := toChangeView(change)
	return &view, nil
}

// ListChanges lists change-log entries newest first with filtering and pagination
func (s *ChangeService) ListChanges(ctx context.Context, filters models.ChangeFilters) (*models.ListResult[models.ChangeView], error) {
	query := s.client.AgentChange.Query()

	if filters.AgentID != nil {
		query = query.Where(agentchange.AgentIDEQ(*filters.AgentID))
	}
	if filters.ChangeType != nil {
		query = query.Where(agentchange.ChangeTypeEQ(*filters.ChangeType))
	}
	if filters.TriggeredBy != nil {
		query = query.Where(agentchange.TriggeredByEQ(*filters.TriggeredBy))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count changes: %w", err)
	}

	page := filters.ListParams.Normalize(models.DefaultPageSize)
	changes, err := query.
		WithAgent().
		Order(ent.Desc(agentchange.FieldCreatedAt), ent.Desc(agentchange.FieldID)).
		Limit(page.PageSize).
		Offset(page.Offset()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}

	return &models.ListResult[models.ChangeView]{
		Items:      mapAll(changes, toChangeView),
		TotalCount: totalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}
