package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentimprovement"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// ImprovementService manages improvement proposals for agents
type ImprovementService struct {
	client *ent.Client
	now    func() time.Time
}

// NewImprovementService creates a new ImprovementService
func NewImprovementService(client *ent.Client) *ImprovementService {
	if client == nil {
		panic("NewImprovementService: client must not be nil")
	}
	return &ImprovementService{client: client, now: time.Now}
}

// CreateImprovement validates and stores a proposal. A proposal created as
// implemented is stamped immediately.
func (s *ImprovementService) CreateImprovement(ctx context.Context, req models.CreateImprovementRequest) (*models.ImprovementView, error) {
	verr := validateStruct(req)
	if err := checkReferences(ctx, s.client, verr, req.AgentID, refs{}); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	create := s.client.AgentImprovement.Create().
		SetAgentID(req.AgentID).
		SetImprovementDescription(req.ImprovementDescription).
		SetPriority(req.Priority)
	if req.Status != "" {
		create.SetStatus(req.Status)
	}
	if req.Status == models.ImprovementStatusImplemented {
		create.SetImplementedAt(s.now())
	}

	imp, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create improvement: %w", err)
	}
	return s.GetImprovement(ctx, imp.ID)
}

// GetImprovement retrieves an improvement with its agent
func (s *ImprovementService) GetImprovement(ctx context.Context, id int) (*models.ImprovementView, error) {
	imp, err := s.client.AgentImprovement.Query().
		Where(agentimprovement.IDEQ(id)).
		WithAgent().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get improvement: %w", err)
	}
	view := toImprovementView(imp)
	return &view, nil
}

// ListImprovements lists improvements newest first with filtering and pagination
func (s *ImprovementService) ListImprovements(ctx context.Context, filters models.ImprovementFilters) (*models.ListResult[models.ImprovementView], error) {
	query := s.client.AgentImprovement.Query()

	if filters.AgentID != nil {
		query = query.Where(agentimprovement.AgentIDEQ(*filters.AgentID))
	}
	if filters.Priority != nil {
		query = query.Where(agentimprovement.PriorityEQ(*filters.Priority))
	}
	if filters.Status != nil {
		query = query.Where(agentimprovement.StatusEQ(*filters.Status))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count improvements: %w", err)
	}

	page := filters.ListParams.Normalize(models.DefaultPageSize)
	improvements, err := query.
		WithAgent().
		Order(ent.Desc(agentimprovement.FieldCreatedAt), ent.Desc(agentimprovement.FieldID)).
		Limit(page.PageSize).
		Offset(page.Offset()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list improvements: %w", err)
	}

	return &models.ListResult[models.ImprovementView]{
		Items:      mapAll(improvements, toImprovementView),
		TotalCount: totalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}

// UpdateImprovement amends an improvement. The first transition into
// implemented stamps implemented_at; later transitions never overwrite it.
func (s *ImprovementService) UpdateImprovement(ctx context.Context, id int, req models.UpdateImprovementRequest) (*models.ImprovementView, error) {
	if err := validateStruct(req).OrNil(); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.AgentImprovement.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get improvement: %w", err)
	}

	update := current.Update()
	if req.ImprovementDescription != nil {
		update.SetImprovementDescription(*req.ImprovementDescription)
	}
	if req.Priority != nil {
		update.SetPriority(*req.Priority)
	}
	if req.Status != nil {
		update.SetStatus(*req.Status)
		if *req.Status == models.ImprovementStatusImplemented &&
			current.Status != models.ImprovementStatusImplemented &&
			current.ImplementedAt == nil {
			update.SetImplementedAt(s.now())
		}
	}

	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update improvement: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.GetImprovement(ctx, id)
}

// DeleteImprovement removes an improvement. Changes referencing it keep
// existing with the reference cleared.
func (s *ImprovementService) DeleteImprovement(ctx context.Context, id int) error {
	err := s.client.AgentImprovement.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete improvement: %w", err)
	}
	return nil
}
