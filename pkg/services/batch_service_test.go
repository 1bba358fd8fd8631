package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/pkg/config"
	"github.com/subhashitt/LogPiolt/pkg/database"
	"github.com/subhashitt/LogPiolt/pkg/filter"
	"github.com/subhashitt/LogPiolt/pkg/masking"
	"github.com/subhashitt/LogPiolt/pkg/models"
	testdb "github.com/subhashitt/LogPiolt/test/database"
)

func setupTestBatchService(t *testing.T, client *database.Client) *BatchService {
	t.Helper()
	masker := masking.NewMasker(&config.MaskingConfig{})
	return NewBatchService(client.Client, newTestParser(), masker)
}

const sampleLogText = `2026-03-14T09:00:00Z INFO [AuthService] user alice@example.com logged in from 10.1.2.3
2026-03-14T09:00:05Z ERROR [PaymentService] POST /api/charge?token=tok_secret123 returned status=502

2026-03-14T09:00:10Z WARN [CacheModule] slow response
`

func TestNewBatchService(t *testing.T) {
	client := testdb.NewTestClient(t)
	masker := masking.NewMasker(&config.MaskingConfig{})

	t.Run("panics when client is nil", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBatchService(nil, newTestParser(), masker)
		})
	})

	t.Run("panics when masker is nil", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBatchService(client.Client, newTestParser(), nil)
		})
	})

	t.Run("succeeds with valid inputs", func(t *testing.T) {
		assert.NotNil(t, NewBatchService(client.Client, newTestParser(), masker))
	})
}

func TestBatchService_Ingest(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestBatchService(t, client)
	ctx := context.Background()

	t.Run("creates batch with parsed records", func(t *testing.T) {
		result, err := service.Ingest(ctx, IngestInput{
			Source: "payments-prod",
			Text:   sampleLogText,
			Author: "alice@example.com",
		})
		require.NoError(t, err)
		require.NotNil(t, result.Batch)

		batch := result.Batch
		assert.NotEmpty(t, batch.ID)
		assert.Equal(t, "payments-prod", batch.Source)
		require.NotNil(t, batch.Author)
		assert.Equal(t, "alice@example.com", *batch.Author)
		assert.Equal(t, 3, batch.LineCount, "blank line must not count")
		assert.Equal(t, 3, batch.RecordCount)
		assert.Equal(t, 0, batch.FallbackCount)
		require.Len(t, batch.Records, 3)
		assert.Equal(t, "log-1", batch.Records[0].ID)
		assert.Equal(t, models.LevelError, batch.Records[1].Level)
		assert.WithinDuration(t, time.Now(), batch.CreatedAt, 5*time.Second)
	})

	t.Run("records are stored unmasked", func(t *testing.T) {
		result, err := service.Ingest(ctx, IngestInput{Text: sampleLogText})
		require.NoError(t, err)

		stored, err := client.LogBatch.Get(ctx, result.Batch.ID)
		require.NoError(t, err)
		assert.Contains(t, stored.Records[0].Message, "alice@example.com")
		assert.Contains(t, stored.Records[1].Message, "tok_secret123")
	})

	t.Run("optional fields stay empty", func(t *testing.T) {
		result, err := service.Ingest(ctx, IngestInput{Text: "one line"})
		require.NoError(t, err)
		assert.Empty(t, result.Batch.Source)
		assert.Nil(t, result.Batch.Author)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := service.Ingest(ctx, IngestInput{Text: "   \n \n  "})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestBatchService_GetBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestBatchService(t, client)
	ctx := context.Background()

	result, err := service.Ingest(ctx, IngestInput{Text: sampleLogText})
	require.NoError(t, err)

	t.Run("returns stored batch", func(t *testing.T) {
		got, err := service.GetBatch(ctx, result.Batch.ID)
		require.NoError(t, err)
		assert.Equal(t, result.Batch.ID, got.ID)
		assert.Len(t, got.Records, 3)
	})

	t.Run("unknown ID maps to ErrNotFound", func(t *testing.T) {
		_, err := service.GetBatch(ctx, "no-such-batch")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBatchService_ListBatches(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestBatchService(t, client)
	ctx := context.Background()

	for _, source := range []string{"prod", "prod", "staging"} {
		_, err := service.Ingest(ctx, IngestInput{Source: source, Text: "INFO line"})
		require.NoError(t, err)
	}

	t.Run("lists all with defaults", func(t *testing.T) {
		result, err := service.ListBatches(ctx, BatchListFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalCount)
		assert.Len(t, result.Batches, 3)
		assert.Equal(t, 20, result.Limit)
	})

	t.Run("filters by source", func(t *testing.T) {
		result, err := service.ListBatches(ctx, BatchListFilters{Source: "prod"})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalCount)
	})

	t.Run("filters by creation window", func(t *testing.T) {
		// Backdate one batch so the window has something to exclude.
		all, err := service.ListBatches(ctx, BatchListFilters{})
		require.NoError(t, err)
		require.NotEmpty(t, all.Batches)
		old := all.Batches[len(all.Batches)-1]
		backdated := time.Now().AddDate(0, 0, -30)
		_, err = client.LogBatch.UpdateOneID(old.ID).SetCreatedAt(backdated).Save(ctx)
		require.NoError(t, err)

		from := time.Now().Add(-24 * time.Hour)
		recent, err := service.ListBatches(ctx, BatchListFilters{CreatedFrom: &from})
		require.NoError(t, err)
		assert.Equal(t, 2, recent.TotalCount)
		for _, b := range recent.Batches {
			assert.NotEqual(t, old.ID, b.ID)
		}

		to := time.Now().Add(-24 * time.Hour)
		older, err := service.ListBatches(ctx, BatchListFilters{CreatedTo: &to})
		require.NoError(t, err)
		require.Equal(t, 1, older.TotalCount)
		assert.Equal(t, old.ID, older.Batches[0].ID)
	})

	t.Run("rejects inverted creation window", func(t *testing.T) {
		from := time.Now()
		to := from.Add(-time.Hour)
		_, err := service.ListBatches(ctx, BatchListFilters{CreatedFrom: &from, CreatedTo: &to})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("paginates", func(t *testing.T) {
		result, err := service.ListBatches(ctx, BatchListFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalCount)
		assert.Len(t, result.Batches, 2)

		rest, err := service.ListBatches(ctx, BatchListFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest.Batches, 1)
	})
}

func TestBatchService_GetRecords(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestBatchService(t, client)
	ctx := context.Background()

	result, err := service.Ingest(ctx, IngestInput{Text: sampleLogText})
	require.NoError(t, err)
	batchID := result.Batch.ID

	t.Run("raw view returns everything", func(t *testing.T) {
		records, err := service.GetRecords(ctx, batchID, nil, false)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Contains(t, records[0].Message, "alice@example.com")
	})

	t.Run("masked view hides sensitive values", func(t *testing.T) {
		records, err := service.GetRecords(ctx, batchID, nil, true)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.NotContains(t, records[0].Message, "alice@example.com")
		assert.NotContains(t, records[0].Message, "10.1.2.3")
		assert.NotContains(t, records[1].Message, "tok_secret123")
	})

	t.Run("filter narrows records", func(t *testing.T) {
		f := &filter.RecordFilter{Level: models.LevelError}
		records, err := service.GetRecords(ctx, batchID, f, false)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "log-2", records[0].ID)
	})

	t.Run("invalid filter maps to validation error", func(t *testing.T) {
		f := &filter.RecordFilter{Level: "LOUD"}
		_, err := service.GetRecords(ctx, batchID, f, false)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown batch maps to ErrNotFound", func(t *testing.T) {
		_, err := service.GetRecords(ctx, "missing", nil, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestIngestWarnings(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestBatchService(t, client)
	ctx := context.Background()

	t.Run("clean batch has no warnings", func(t *testing.T) {
		result, err := service.Ingest(ctx, IngestInput{Text: sampleLogText})
		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
	})

	t.Run("tiny batch gets a truncation warning", func(t *testing.T) {
		result, err := service.Ingest(ctx, IngestInput{
			Text: "2026-03-14T09:00:00Z INFO [AuthService] just one line",
		})
		require.NoError(t, err)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "may be truncated")
	})

	t.Run("unleveled batch gets a format warning", func(t *testing.T) {
		result, err := service.Ingest(ctx, IngestInput{
			Text: "first line without any level\nsecond line without any level\nthird one too",
		})
		require.NoError(t, err)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "no explicit level")
	})
}
