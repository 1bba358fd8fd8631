package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/subhashitt/LogPiolt/ent"
	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	"github.com/subhashitt/LogPiolt/pkg/analyzer"
	"github.com/subhashitt/LogPiolt/pkg/masking"
	"github.com/subhashitt/LogPiolt/pkg/services"
)

// BatchAnalysisExecutor runs one analysis job: load the batch, mask every
// record, and send the masked lines to the analyzer. Raw record content never
// leaves the process.
type BatchAnalysisExecutor struct {
	client   *ent.Client
	masker   *masking.Masker
	analyzer *analyzer.Client
	warnings *services.SystemWarningsService
}

// NewBatchAnalysisExecutor creates an executor backed by the given analyzer
// client. warnings may be nil, which disables analyzer health tracking.
func NewBatchAnalysisExecutor(client *ent.Client, masker *masking.Masker, analyzerClient *analyzer.Client, warnings *services.SystemWarningsService) *BatchAnalysisExecutor {
	if client == nil {
		panic("NewBatchAnalysisExecutor: client must not be nil")
	}
	if masker == nil {
		panic("NewBatchAnalysisExecutor: masker must not be nil")
	}
	if analyzerClient == nil {
		panic("NewBatchAnalysisExecutor: analyzerClient must not be nil")
	}
	return &BatchAnalysisExecutor{
		client:   client,
		masker:   masker,
		analyzer: analyzerClient,
		warnings: warnings,
	}
}

// Execute processes a single claimed job to a terminal result. A failed
// analysis never touches the batch itself; the batch stays readable and the
// job can simply be resubmitted.
func (e *BatchAnalysisExecutor) Execute(ctx context.Context, job *ent.AnalysisJob) *ExecutionResult {
	log := slog.With("job_id", job.ID, "batch_id", job.BatchID)

	batch, err := e.client.LogBatch.Get(ctx, job.BatchID)
	if err != nil {
		return &ExecutionResult{
			Status: analysisjob.StatusFailed,
			Error:  fmt.Errorf("failed to load batch: %w", err),
		}
	}

	masked := e.masker.MaskRecords(batch.Records)
	lines := make([]string, 0, len(masked))
	for _, rec := range masked {
		lines = append(lines, rec.Message)
	}

	log.Info("Sending masked batch to analyzer", "record_count", len(lines))

	analysis, err := e.analyzer.Analyze(ctx, lines)
	if err != nil {
		e.warnings.AddWarning(services.WarningCategoryAnalyzerHealth,
			"Analyzer call failed", err.Error(), "analyzer")
		return &ExecutionResult{
			Status: analysisjob.StatusFailed,
			Error:  fmt.Errorf("analyzer call failed: %w", err),
		}
	}
	e.warnings.ClearBySource(services.WarningCategoryAnalyzerHealth, "analyzer")

	return &ExecutionResult{
		Status: analysisjob.StatusCompleted,
		Result: analysis,
	}
}
