package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	testdb "github.com/subhashitt/LogPiolt/test/database"
)

func TestWorker_ProcessesPendingJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	batch := createTestBatch(t, client.Client, "INFO all good")
	job := createTestJob(t, client.Client, batch.ID)

	executor := &stubExecutor{result: &ExecutionResult{
		Status: analysisjob.StatusCompleted,
		Result: "nothing suspicious found",
	}}

	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, nil)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	done := waitForJobStatus(t, client.Client, job.ID, analysisjob.StatusCompleted)

	require.NotNil(t, done.Result)
	assert.Equal(t, "nothing suspicious found", *done.Result)
	require.NotNil(t, done.PodID)
	assert.Equal(t, "test-pod", *done.PodID)
	assert.NotNil(t, done.StartedAt)
	assert.NotNil(t, done.CompletedAt)
	assert.Nil(t, done.ErrorMessage)
	assert.Equal(t, []string{job.ID}, executor.seenJobs())
}

func TestWorker_FailedJobKeepsBatchReadable(t *testing.T) {
	client := testdb.NewTestClient(t)
	batch := createTestBatch(t, client.Client, "ERROR disk on fire")
	job := createTestJob(t, client.Client, batch.ID)

	executor := &stubExecutor{result: &ExecutionResult{
		Status: analysisjob.StatusFailed,
		Error:  errors.New("analyzer unavailable"),
	}}

	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, nil)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	done := waitForJobStatus(t, client.Client, job.ID, analysisjob.StatusFailed)

	require.NotNil(t, done.ErrorMessage)
	assert.Contains(t, *done.ErrorMessage, "analyzer unavailable")
	assert.Nil(t, done.Result)

	// The batch itself is untouched by the failure.
	stored, err := client.LogBatch.Get(context.Background(), batch.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Records, 1)
}

func TestWorker_ProcessesJobsInFIFOOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	batch := createTestBatch(t, client.Client, "INFO line")

	first := createTestJob(t, client.Client, batch.ID)
	// Make creation times unambiguous.
	time.Sleep(10 * time.Millisecond)
	second := createTestJob(t, client.Client, batch.ID)

	executor := &stubExecutor{result: &ExecutionResult{
		Status: analysisjob.StatusCompleted,
		Result: "ok",
	}}

	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, nil)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	waitForJobStatus(t, client.Client, second.ID, analysisjob.StatusCompleted)
	waitForJobStatus(t, client.Client, first.ID, analysisjob.StatusCompleted)

	assert.Equal(t, []string{first.ID, second.ID}, executor.seenJobs())
}

func TestWorker_NilExecutorResultFailsJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	batch := createTestBatch(t, client.Client, "INFO line")
	job := createTestJob(t, client.Client, batch.ID)

	executor := &stubExecutor{result: nil}

	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, nil)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	done := waitForJobStatus(t, client.Client, job.ID, analysisjob.StatusFailed)
	require.NotNil(t, done.ErrorMessage)
	assert.Contains(t, *done.ErrorMessage, "nil result")
}

func TestWorkerPool_StopIsIdempotentAndGraceful(t *testing.T) {
	client := testdb.NewTestClient(t)

	executor := &stubExecutor{result: &ExecutionResult{Status: analysisjob.StatusCompleted, Result: "ok"}}
	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, nil)
	require.NoError(t, pool.Start(context.Background()))

	// Duplicate Start is a no-op.
	require.NoError(t, pool.Start(context.Background()))

	pool.Stop()
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)
	batch := createTestBatch(t, client.Client, "INFO line")
	createTestJob(t, client.Client, batch.ID)

	executor := &stubExecutor{result: &ExecutionResult{Status: analysisjob.StatusCompleted, Result: "ok"}}
	cfg := testQueueConfig()
	cfg.WorkerCount = 2
	// Keep the queue full so depth is observable before workers drain it.
	cfg.PollInterval = time.Hour

	pool := NewWorkerPool("health-pod", client.Client, cfg, executor, nil)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "health-pod", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
}
