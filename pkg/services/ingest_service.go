package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/codeready-toolchain/agent-tracker/ent"
	"github.com/codeready-toolchain/agent-tracker/ent/agent"
	"github.com/codeready-toolchain/agent-tracker/pkg/models"
	"github.com/codeready-toolchain/agent-tracker/pkg/stats"
)

// DefaultMaxBatchSize bounds the number of records in one bulk request.
const DefaultMaxBatchSize = 500

// timestampLayouts are tried in order when parsing bulk timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02",
}

// IngestService stores batches of invocations submitted by external agents.
// A batch is committed as a whole or not at all.
type IngestService struct {
	client       *ent.Client
	maxBatchSize int
}

// NewIngestService creates a new IngestService. A non-positive maxBatchSize
// selects DefaultMaxBatchSize.
func NewIngestService(client *ent.Client, maxBatchSize int) *IngestService {
	if client == nil {
		panic("NewIngestService: client must not be nil")
	}
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &IngestService{client: client, maxBatchSize: maxBatchSize}
}

// MaxBatchSize returns the largest accepted batch.
func (s *IngestService) MaxBatchSize() int {
	return s.maxBatchSize
}

// BulkCreate validates every record, then inserts them all in input order
// inside one transaction. If any record fails, nothing is persisted and a
// *BulkError lists every failing index.
func (s *IngestService) BulkCreate(ctx context.Context, records []models.BulkInvocationRecord) (*models.BulkCreateResponse, error) {
	if err := s.checkBatchSize(len(records)); err != nil {
		return nil, err
	}
	return s.bulkCreate(ctx, records, nil)
}

// BulkCreateJSON is BulkCreate for undecoded records. Each record is decoded
// on its own so a malformed field is reported at its index alongside the
// other rejected records.
func (s *IngestService) BulkCreateJSON(ctx context.Context, raw []json.RawMessage) (*models.BulkCreateResponse, error) {
	if err := s.checkBatchSize(len(raw)); err != nil {
		return nil, err
	}

	records := make([]models.BulkInvocationRecord, len(raw))
	decodeErrs := make(map[int]models.BulkRecordError)
	for i, r := range raw {
		if recErr := decodeBulkRecord(r, &records[i]); recErr != nil {
			records[i] = models.BulkInvocationRecord{}
			decodeErrs[i] = *recErr
		}
	}
	return s.bulkCreate(ctx, records, decodeErrs)
}

func (s *IngestService) checkBatchSize(n int) error {
	if n == 0 {
		return ErrEmptyBatch
	}
	if n > s.maxBatchSize {
		return fmt.Errorf("%w: %d exceeds the maximum of %d", ErrBatchTooLarge, n, s.maxBatchSize)
	}
	return nil
}

// bulkCreate validates and inserts records. decodeErrs holds records that
// were already rejected while decoding, keyed by index.
func (s *IngestService) bulkCreate(ctx context.Context, records []models.BulkInvocationRecord, decodeErrs map[int]models.BulkRecordError) (*models.BulkCreateResponse, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	agentIDs, err := resolveAgentNumbers(ctx, tx, records)
	if err != nil {
		return nil, err
	}

	// Phase 1: validate everything before writing anything
	var rejected []models.BulkRecordError
	reqs := make([]models.CreateInvocationRequest, len(records))
	for i, rec := range records {
		if decErr, ok := decodeErrs[i]; ok {
			decErr.Index = i
			rejected = append(rejected, decErr)
			continue
		}
		req, recErr := buildInvocationRequest(rec, agentIDs)
		if recErr != nil {
			recErr.Index = i
			rejected = append(rejected, *recErr)
			continue
		}
		reqs[i] = req
	}
	if len(rejected) > 0 {
		slog.Info("Bulk ingestion rejected", "records", len(records), "failed", len(rejected))
		return nil, &BulkError{Records: rejected}
	}

	// Phase 2: insert in input order
	created := make([]models.BulkCreatedInvocation, 0, len(reqs))
	for i, req := range reqs {
		inv, err := tx.AgentInvocation.Create().
			SetAgentID(req.AgentID).
			SetTaskDescription(req.TaskDescription).
			SetInvocationMode(req.InvocationMode).
			SetNillableContextNotes(req.ContextNotes).
			SetStartedAt(*req.StartedAt).
			SetNillableCompletedAt(req.CompletedAt).
			SetNillableDurationMinutes(stats.DurationMinutes(*req.StartedAt, req.CompletedAt)).
			SetNillableSuccess(req.Success).
			SetNillableSatisfactionRating(req.SatisfactionRating).
			SetNillableOutcomeNotes(req.OutcomeNotes).
			SetNillableTokensInput(req.TokensInput).
			SetNillableTokensOutput(req.TokensOutput).
			SetNillableTokensTotal(req.TokensTotal).
			Save(ctx)
		if err != nil {
			slog.Warn("Bulk ingestion insert failed", "index", i, "error", err)
			return nil, &BulkError{Records: []models.BulkRecordError{{Index: i, Error: err.Error()}}}
		}
		created = append(created, models.BulkCreatedInvocation{ID: inv.ID, TaskDescription: inv.TaskDescription})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("Bulk ingestion committed", "created", len(created))
	return &models.BulkCreateResponse{
		Success:      true,
		CreatedCount: len(created),
		Invocations:  created,
	}, nil
}

// resolveAgentNumbers maps every agent number in the batch to its agent id.
// Numbers without a catalog entry are absent from the result.
func resolveAgentNumbers(ctx context.Context, tx *ent.Tx, records []models.BulkInvocationRecord) (map[int]int, error) {
	numbers := make([]int, 0, len(records))
	seen := make(map[int]bool, len(records))
	for _, rec := range records {
		if rec.AgentNumber != nil && !seen[*rec.AgentNumber] {
			seen[*rec.AgentNumber] = true
			numbers = append(numbers, *rec.AgentNumber)
		}
	}

	ids := make(map[int]int, len(numbers))
	if len(numbers) == 0 {
		return ids, nil
	}

	agents, err := tx.Agent.Query().
		Where(agent.AgentNumberIn(numbers...)).
		Select(agent.FieldID, agent.FieldAgentNumber).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve agent numbers: %w", err)
	}
	for _, a := range agents {
		ids[a.AgentNumber] = a.ID
	}
	return ids, nil
}

// buildInvocationRequest converts one bulk record into a validated create
// request, or describes why it was rejected.
func buildInvocationRequest(rec models.BulkInvocationRecord, agentIDs map[int]int) (models.CreateInvocationRequest, *models.BulkRecordError) {
	var req models.CreateInvocationRequest

	if rec.AgentNumber == nil {
		return req, &models.BulkRecordError{Errors: []string{FieldError{Field: "agent_number", Message: "can't be blank"}.FullMessage()}}
	}
	agentID, ok := agentIDs[*rec.AgentNumber]
	if !ok {
		return req, &models.BulkRecordError{Error: (&AgentReferenceError{AgentNumber: *rec.AgentNumber}).Error()}
	}

	verr := &ValidationError{}
	startedAt, err := ParseTimestamp(rec.StartedAt)
	if err != nil {
		return req, &models.BulkRecordError{Error: fmt.Sprintf("invalid started_at: %v", err)}
	}
	if startedAt == nil {
		verr.Add("started_at", "can't be blank")
	}
	var completedAt *time.Time
	if rec.CompletedAt != nil {
		completedAt, err = ParseTimestamp(*rec.CompletedAt)
		if err != nil {
			return req, &models.BulkRecordError{Error: fmt.Sprintf("invalid completed_at: %v", err)}
		}
	}

	mode := models.InvocationMode(rec.InvocationMode)
	if mode == "" {
		mode = models.InvocationModeSubagent
	}

	req = models.CreateInvocationRequest{
		AgentID:            agentID,
		TaskDescription:    rec.TaskDescription,
		InvocationMode:     mode,
		ContextNotes:       rec.ContextNotes,
		StartedAt:          startedAt,
		CompletedAt:        completedAt,
		Success:            rec.Success,
		SatisfactionRating: rec.SatisfactionRating,
		OutcomeNotes:       rec.OutcomeNotes,
		TokensInput:        rec.TokensInput,
		TokensOutput:       rec.TokensOutput,
		TokensTotal:        rec.TokensTotal,
	}

	verr.Errors = append(verr.Errors, validateStruct(req).Errors...)
	if len(verr.Errors) > 0 {
		return req, &models.BulkRecordError{Errors: verr.FullMessages()}
	}
	return req, nil
}

// decodeBulkRecord unmarshals one record. A value of the wrong JSON type is
// reported against its field the way validation failures are.
func decodeBulkRecord(raw json.RawMessage, rec *models.BulkInvocationRecord) *models.BulkRecordError {
	err := json.Unmarshal(raw, rec)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fe := FieldError{Field: typeErr.Field, Message: "must be " + describeJSONType(typeErr.Type)}
		return &models.BulkRecordError{Errors: []string{fe.FullMessage()}}
	}
	return &models.BulkRecordError{Error: "invalid record: must be a JSON object"}
}

func describeJSONType(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "valid"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.Bool:
		return "true or false"
	case reflect.String:
		return "a string"
	default:
		return "valid"
	}
}

// ParseTimestamp parses an ISO-8601 timestamp. An empty string yields nil.
func ParseTimestamp(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("cannot parse %q as an ISO-8601 timestamp", s)
}
