package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/subhashitt/LogPiolt/ent"
	"github.com/subhashitt/LogPiolt/ent/logbatch"
	"github.com/subhashitt/LogPiolt/pkg/filter"
	"github.com/subhashitt/LogPiolt/pkg/masking"
	"github.com/subhashitt/LogPiolt/pkg/models"
	"github.com/subhashitt/LogPiolt/pkg/parser"
)

// IngestInput contains the domain-level data needed to create a batch.
// Transformed from the HTTP request + headers by the handler.
type IngestInput struct {
	Source string
	Text   string // raw log text, parsed line by line
	Author string // from oauth2-proxy headers
}

// IngestResult is what a successful ingest hands back to the handler:
// the stored batch plus advisory warnings that do not fail the request.
type IngestResult struct {
	Batch    *ent.LogBatch
	Warnings []string
}

// BatchListFilters narrows and pages the batch listing. The created-at
// bounds are inclusive; either may be nil for an open-ended window.
type BatchListFilters struct {
	Source      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

// BatchListResult is one page of batches plus the total match count.
type BatchListResult struct {
	Batches    []*ent.LogBatch
	TotalCount int
	Limit      int
	Offset     int
}

// BatchService handles log ingestion and record retrieval.
type BatchService struct {
	client *ent.Client
	parser *parser.Parser
	masker *masking.Masker
}

// NewBatchService creates a new BatchService.
func NewBatchService(client *ent.Client, p *parser.Parser, m *masking.Masker) *BatchService {
	if client == nil {
		panic("NewBatchService: client must not be nil")
	}
	if p == nil {
		panic("NewBatchService: parser must not be nil")
	}
	if m == nil {
		panic("NewBatchService: masker must not be nil")
	}
	return &BatchService{
		client: client,
		parser: p,
		masker: m,
	}
}

// Ingest parses raw log text into records and stores them as a new batch.
// Records are stored unmasked; masking happens on read and at the analyzer
// boundary, so the raw data stays available for operators with access.
func (s *BatchService) Ingest(ctx context.Context, input IngestInput) (*IngestResult, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, NewValidationError("text", "log text is required")
	}

	records, diag := s.parser.ParseBatch(input.Text)
	if len(records) == 0 {
		return nil, NewValidationError("text", "no non-blank lines to ingest")
	}

	batchID := uuid.New().String()

	builder := s.client.LogBatch.Create().
		SetID(batchID).
		SetLineCount(diag.TotalLines - diag.BlankLines).
		SetRecordCount(len(records)).
		SetFallbackCount(diag.Fallbacks).
		SetRecords(records)

	if input.Source != "" {
		builder.SetSource(input.Source)
	}
	if input.Author != "" {
		builder.SetAuthor(input.Author)
	}

	batch, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}

	return &IngestResult{
		Batch:    batch,
		Warnings: ingestWarnings(records, diag),
	}, nil
}

// ingestWarnings flags batches that parsed but look degraded, so callers can
// double-check their input format without the request failing.
// minExpectedRecords is the batch size below which an ingest is flagged as
// suspiciously short, since a truncated upload looks the same as a tiny log.
const minExpectedRecords = 3

func ingestWarnings(records []models.LogRecord, diag parser.Diagnostics) []string {
	var warnings []string

	if len(records) < minExpectedRecords {
		warnings = append(warnings,
			fmt.Sprintf("only %d record(s) ingested; the upload may be truncated", len(records)))
	}

	if diag.Fallbacks > 0 {
		warnings = append(warnings,
			fmt.Sprintf("%d of %d lines could not be parsed and were stored as fallback records", diag.Fallbacks, len(records)))
	}

	missingLevel := 0
	for _, rec := range records {
		if rec.Level == models.LevelInfo && !strings.Contains(strings.ToUpper(rec.Message), "INFO") {
			missingLevel++
		}
	}
	// More than half the batch defaulting to INFO usually means an
	// unrecognized log format rather than a quiet system.
	if missingLevel*2 > len(records) {
		warnings = append(warnings,
			fmt.Sprintf("%d of %d records carry no explicit level; check the log format", missingLevel, len(records)))
	}

	return warnings
}

// GetBatch returns a single batch by ID.
func (s *BatchService) GetBatch(ctx context.Context, batchID string) (*ent.LogBatch, error) {
	batch, err := s.client.LogBatch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}
	return batch, nil
}

// ListBatches lists batches with filtering and pagination, newest first.
func (s *BatchService) ListBatches(ctx context.Context, filters BatchListFilters) (*BatchListResult, error) {
	query := s.client.LogBatch.Query()

	if filters.Source != "" {
		query = query.Where(logbatch.SourceEQ(filters.Source))
	}
	if filters.CreatedFrom != nil && filters.CreatedTo != nil && filters.CreatedTo.Before(*filters.CreatedFrom) {
		return nil, NewValidationError("created_to", "must not be before created_from")
	}
	if filters.CreatedFrom != nil {
		query = query.Where(logbatch.CreatedAtGTE(*filters.CreatedFrom))
	}
	if filters.CreatedTo != nil {
		query = query.Where(logbatch.CreatedAtLTE(*filters.CreatedTo))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count batches: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	batches, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(logbatch.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	return &BatchListResult{
		Batches:    batches,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// DeleteOldBatches removes batches older than the retention window. Analysis
// jobs cascade with their batch. Returns the number of batches deleted.
func (s *BatchService) DeleteOldBatches(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, NewValidationError("retention_days", "must be positive")
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	n, err := s.client.LogBatch.Delete().
		Where(logbatch.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old batches: %w", err)
	}
	return n, nil
}

// GetRecords returns a batch's records, optionally filtered and optionally
// masked. The masked view is the only one safe to share outside the team.
func (s *BatchService) GetRecords(ctx context.Context, batchID string, f *filter.RecordFilter, masked bool) ([]models.LogRecord, error) {
	if f != nil {
		if err := f.Validate(); err != nil {
			return nil, NewValidationError("filter", err.Error())
		}
	}

	batch, err := s.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	records := batch.Records
	if f != nil {
		records = f.Apply(records)
	}
	if masked {
		records = s.masker.MaskRecords(records)
	}
	return records, nil
}
