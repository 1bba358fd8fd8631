package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	testdb "github.com/subhashitt/LogPiolt/test/database"
)

func TestAnalysisService_Submit(t *testing.T) {
	client := testdb.NewTestClient(t)
	batchSvc := setupTestBatchService(t, client)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	ingested, err := batchSvc.Ingest(ctx, IngestInput{Text: "ERROR something broke"})
	require.NoError(t, err)

	t.Run("creates pending job", func(t *testing.T) {
		job, err := service.Submit(ctx, ingested.Batch.ID)
		require.NoError(t, err)

		assert.NotEmpty(t, job.ID)
		assert.Equal(t, ingested.Batch.ID, job.BatchID)
		assert.Equal(t, analysisjob.StatusPending, job.Status)
		assert.Nil(t, job.Result)
		assert.Nil(t, job.StartedAt)
		assert.WithinDuration(t, time.Now(), job.CreatedAt, 5*time.Second)
	})

	t.Run("allows multiple jobs per batch", func(t *testing.T) {
		first, err := service.Submit(ctx, ingested.Batch.ID)
		require.NoError(t, err)
		second, err := service.Submit(ctx, ingested.Batch.ID)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("unknown batch maps to ErrNotFound", func(t *testing.T) {
		_, err := service.Submit(ctx, "no-such-batch")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty batch ID is a validation error", func(t *testing.T) {
		_, err := service.Submit(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAnalysisService_GetJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	batchSvc := setupTestBatchService(t, client)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	ingested, err := batchSvc.Ingest(ctx, IngestInput{Text: "WARN disk filling up"})
	require.NoError(t, err)
	job, err := service.Submit(ctx, ingested.Batch.ID)
	require.NoError(t, err)

	t.Run("returns stored job", func(t *testing.T) {
		got, err := service.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, job.ID, got.ID)
		assert.Equal(t, analysisjob.StatusPending, got.Status)
	})

	t.Run("unknown ID maps to ErrNotFound", func(t *testing.T) {
		_, err := service.GetJob(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAnalysisService_ListJobsForBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	batchSvc := setupTestBatchService(t, client)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	ingested, err := batchSvc.Ingest(ctx, IngestInput{Text: "INFO hello"})
	require.NoError(t, err)
	other, err := batchSvc.Ingest(ctx, IngestInput{Text: "INFO other"})
	require.NoError(t, err)

	for range 3 {
		_, err := service.Submit(ctx, ingested.Batch.ID)
		require.NoError(t, err)
	}
	_, err = service.Submit(ctx, other.Batch.ID)
	require.NoError(t, err)

	jobs, err := service.ListJobsForBatch(ctx, ingested.Batch.ID)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
	for _, j := range jobs {
		assert.Equal(t, ingested.Batch.ID, j.BatchID)
	}

	empty, err := service.ListJobsForBatch(ctx, "no-such-batch")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
