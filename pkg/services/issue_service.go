package services

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/ent/agentissue"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
)

// IssueService tracks problems reported against agents
type IssueService struct {
	client *ent.Client
}

// NewIssueService creates a new IssueService
func NewIssueService(client *ent.Client) *IssueService {
	if client == nil {
		panic("NewIssueService: client must not be nil")
	}
	return &IssueService{client: client}
}

// CreateIssue validates and stores an issue
func (s *IssueService) CreateIssue(ctx context.Context, req models.CreateIssueRequest) (*models.IssueView, error) {
	verr := validateStruct(req)
	if err := checkReferences(ctx, s.client, verr, req.AgentID, refs{invocation: req.AgentInvocationID}); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	create := s.client.AgentIssue.Create().
		SetAgentID(req.AgentID).
		SetNillableAgentInvocationID(req.AgentInvocationID).
		SetIssueDescription(req.IssueDescription).
		SetSeverity(req.Severity).
		SetNillableResolutionNotes(req.ResolutionNotes)
	if req.Status != "" {
		create.SetStatus(req.Status)
	}

	issue, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	return s.GetIssue(ctx, issue.ID)
}

// GetIssue retrieves an issue with its agent
func (s *IssueService) GetIssue(ctx context.Context, id int) (*models.IssueView, error) {
	issue, err := s.client.AgentIssue.Query().
		Where(agentissue.IDEQ(id)).
		WithAgent().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	view := toIssueView(issue)
	return &view, nil
}

// ListIssues lists issues newest first with filtering and pagination
func (s *IssueService) ListIssues(ctx context.Context, filters models.IssueFilters) (*models.ListResult[models.IssueView], error) {
	query := s.client.AgentIssue.Query()

	if filters.AgentID != nil {
		query = query.Where(agentissue.AgentIDEQ(*filters.AgentID))
	}
	if filters.Severity != nil {
		query = query.Where(agentissue.SeverityEQ(*filters.Severity))
	}
	if filters.Status != nil {
		query = query.Where(agentissue.StatusEQ(*filters.Status))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count issues: %w", err)
	}

	page := filters.ListParams.Normalize(models.DefaultPageSize)
	issues, err := query.
		WithAgent().
		Order(ent.Desc(agentissue.FieldCreatedAt), ent.Desc(agentissue.FieldID)).
		Limit(page.PageSize).
		Offset(page.Offset()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	return &models.ListResult[models.IssueView]{
		Items:      mapAll(issues, toIssueView),
		TotalCount: totalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}

// UpdateIssue amends an issue. Status may move in any direction.
func (s *IssueService) UpdateIssue(ctx context.Context, id int, req models.UpdateIssueRequest) (*models.IssueView, error) {
	if err := validateStruct(req).OrNil(); err != nil {
		return nil, err
	}

	update := s.client.AgentIssue.UpdateOneID(id).
		SetNillableResolutionNotes(req.ResolutionNotes)
	if req.IssueDescription != nil {
		update.SetIssueDescription(*req.IssueDescription)
	}
	if req.Severity != nil {
		update.SetSeverity(*req.Severity)
	}
	if req.Status != nil {
		update.SetStatus(*req.Status)
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}
	return s.GetIssue(ctx, id)
}

// DeleteIssue removes an issue. Changes referencing it keep existing with
// the reference cleared.
func (s *IssueService) DeleteIssue(ctx context.Context, id int) error {
	err := s.client.AgentIssue.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete issue: %w", err)
	}
	return nil
}
