package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/ent"
	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	"github.com/subhashitt/LogPiolt/pkg/config"
	"github.com/subhashitt/LogPiolt/pkg/masking"
	"github.com/subhashitt/LogPiolt/pkg/parser"
	"github.com/subhashitt/LogPiolt/pkg/services"
	testdb "github.com/subhashitt/LogPiolt/test/database"
)

func setupBatchService(t *testing.T) (*ent.Client, *services.BatchService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	masker := masking.NewMasker(&config.MaskingConfig{})
	return client.Client, services.NewBatchService(client.Client, parser.NewParser(), masker)
}

func ingestBatch(t *testing.T, batchService *services.BatchService) *ent.LogBatch {
	t.Helper()
	result, err := batchService.Ingest(context.Background(), services.IngestInput{
		Source: "retention-test",
		Text:   "2026-03-14T09:00:00Z INFO [AuthService] user logged in",
	})
	require.NoError(t, err)
	return result.Batch
}

func backdateBatch(t *testing.T, client *ent.Client, batchID string, age time.Duration) {
	t.Helper()
	err := client.LogBatch.UpdateOneID(batchID).
		SetCreatedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestService_DeletesExpiredBatches(t *testing.T) {
	client, batchService := setupBatchService(t)
	ctx := context.Background()

	oldBatch := ingestBatch(t, batchService)
	backdateBatch(t, client, oldBatch.ID, 40*24*time.Hour)

	// Jobs on the expired batch must go with it.
	_, err := client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetBatchID(oldBatch.ID).
		SetStatus(analysisjob.StatusCompleted).
		SetResult("stale analysis").
		Save(ctx)
	require.NoError(t, err)

	recentBatch := ingestBatch(t, batchService)

	cfg := &config.RetentionConfig{
		BatchRetentionDays: 30,
		CleanupInterval:    1 * time.Hour,
	}
	svc := NewService(cfg, batchService)
	svc.deleteOldBatches()

	_, err = batchService.GetBatch(ctx, oldBatch.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	jobCount, err := client.AnalysisJob.Query().
		Where(analysisjob.BatchIDEQ(oldBatch.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, jobCount, "jobs should cascade with their batch")

	kept, err := batchService.GetBatch(ctx, recentBatch.ID)
	require.NoError(t, err)
	assert.Equal(t, recentBatch.ID, kept.ID)
}

func TestService_PreservesBatchesInsideWindow(t *testing.T) {
	client, batchService := setupBatchService(t)
	ctx := context.Background()

	batch := ingestBatch(t, batchService)
	backdateBatch(t, client, batch.ID, 29*24*time.Hour)

	cfg := &config.RetentionConfig{
		BatchRetentionDays: 30,
		CleanupInterval:    1 * time.Hour,
	}
	svc := NewService(cfg, batchService)
	svc.deleteOldBatches()

	kept, err := batchService.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, batch.ID, kept.ID)
}

func TestService_StartStop(t *testing.T) {
	client, batchService := setupBatchService(t)
	ctx := context.Background()

	oldBatch := ingestBatch(t, batchService)
	backdateBatch(t, client, oldBatch.ID, 40*24*time.Hour)

	cfg := &config.RetentionConfig{
		BatchRetentionDays: 30,
		CleanupInterval:    1 * time.Hour,
	}
	svc := NewService(cfg, batchService)
	svc.Start(ctx)

	// The first sweep runs on startup, before the ticker fires.
	require.Eventually(t, func() bool {
		_, err := batchService.GetBatch(ctx, oldBatch.ID)
		return err != nil
	}, 5*time.Second, 25*time.Millisecond)

	svc.Stop()
	svc.Stop() // idempotent
}
