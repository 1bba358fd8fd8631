package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/subhashitt/LogPiolt/ent"
	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	"github.com/subhashitt/LogPiolt/ent/logbatch"
)

// AnalysisService handles analysis job submission and retrieval. Execution
// itself belongs to the worker pool; this service only manages the rows.
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(client *ent.Client) *AnalysisService {
	if client == nil {
		panic("NewAnalysisService: client must not be nil")
	}
	return &AnalysisService{client: client}
}

// Submit creates a new analysis job for a batch. The job starts in "pending"
// status and is picked up by the worker pool.
func (s *AnalysisService) Submit(ctx context.Context, batchID string) (*ent.AnalysisJob, error) {
	if batchID == "" {
		return nil, NewValidationError("batch_id", "required")
	}

	// Verify the batch exists before queueing work against it
	exists, err := s.client.LogBatch.Query().
		Where(logbatch.IDEQ(batchID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check batch: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	jobID := uuid.New().String()

	job, err := s.client.AnalysisJob.Create().
		SetID(jobID).
		SetBatchID(batchID).
		SetStatus(analysisjob.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis job: %w", err)
	}

	return job, nil
}

// GetJob returns a single analysis job by ID.
func (s *AnalysisService) GetJob(ctx context.Context, jobID string) (*ent.AnalysisJob, error) {
	job, err := s.client.AnalysisJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis job: %w", err)
	}
	return job, nil
}

// ListJobsForBatch returns every job queued against a batch, newest first.
func (s *AnalysisService) ListJobsForBatch(ctx context.Context, batchID string) ([]*ent.AnalysisJob, error) {
	jobs, err := s.client.AnalysisJob.Query().
		Where(analysisjob.BatchIDEQ(batchID)).
		Order(ent.Desc(analysisjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis jobs: %w", err)
	}
	return jobs, nil
}
