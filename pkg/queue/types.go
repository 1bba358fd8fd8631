// Package queue provides analysis job queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/subhashitt/LogPiolt/ent"
	"github.com/subhashitt/LogPiolt/ent/analysisjob"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")
)

// AnalysisExecutor is the interface for job processing.
//
// The executor owns the work itself: loading the batch, masking the records,
// and calling the analyzer. The worker only handles claiming, timeouts, and
// the terminal status update.
type AnalysisExecutor interface {
	Execute(ctx context.Context, job *ent.AnalysisJob) *ExecutionResult
}

// ExecutionResult is just the terminal state of one job.
type ExecutionResult struct {
	Status analysisjob.Status // completed, failed
	Result string             // Analyzer output (if completed)
	Error  error              // Error details (if failed)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
