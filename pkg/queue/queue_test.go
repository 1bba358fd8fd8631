package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/ent"
	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	"github.com/subhashitt/LogPiolt/pkg/config"
	"github.com/subhashitt/LogPiolt/pkg/models"
)

// stubExecutor returns a canned result and records which jobs it saw.
type stubExecutor struct {
	mu     sync.Mutex
	seen   []string
	result *ExecutionResult
}

func (s *stubExecutor) Execute(_ context.Context, job *ent.AnalysisJob) *ExecutionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, job.ID)
	return s.result
}

func (s *stubExecutor) seenJobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.seen...)
}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		PollInterval:            25 * time.Millisecond,
		PollIntervalJitter:      5 * time.Millisecond,
		JobTimeout:              5 * time.Second,
		GracefulShutdownTimeout: 5 * time.Second,
	}
}

func createTestBatch(t *testing.T, client *ent.Client, lines ...string) *ent.LogBatch {
	t.Helper()

	records := make([]models.LogRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, models.LogRecord{
			ID:        uuid.New().String()[:8],
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Level:     models.LevelInfo,
			Message:   line,
		})
	}

	batch, err := client.LogBatch.Create().
		SetID(uuid.New().String()).
		SetLineCount(len(lines)).
		SetRecordCount(len(records)).
		SetFallbackCount(0).
		SetRecords(records).
		Save(context.Background())
	require.NoError(t, err)
	return batch
}

func createTestJob(t *testing.T, client *ent.Client, batchID string) *ent.AnalysisJob {
	t.Helper()

	job, err := client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetBatchID(batchID).
		SetStatus(analysisjob.StatusPending).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func waitForJobStatus(t *testing.T, client *ent.Client, jobID string, want analysisjob.Status) *ent.AnalysisJob {
	t.Helper()

	var job *ent.AnalysisJob
	require.Eventually(t, func() bool {
		var err error
		job, err = client.AnalysisJob.Get(context.Background(), jobID)
		if err != nil {
			return false
		}
		return job.Status == want
	}, 10*time.Second, 25*time.Millisecond, "job %s never reached status %s", jobID, want)
	return job
}
