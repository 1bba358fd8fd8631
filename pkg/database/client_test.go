package database

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	"github.com/subhashitt/LogPiolt/pkg/models"
	"github.com/subhashitt/LogPiolt/test/util"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestAnalysisResultFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	batch, err := client.LogBatch.Create().
		SetID(uuid.New().String()).
		SetSource("gateway").
		SetLineCount(1).
		SetRecordCount(1).
		SetFallbackCount(0).
		SetRecords([]models.LogRecord{
			{ID: "log-1", Timestamp: "2026-03-14T09:00:00Z", Level: models.LevelError, Message: "boom"},
		}).
		Save(ctx)
	require.NoError(t, err)

	job1, err := client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetBatchID(batch.ID).
		SetStatus(analysisjob.StatusCompleted).
		SetResult("Critical error in production cluster with repeated payment failures").
		Save(ctx)
	require.NoError(t, err)

	job2, err := client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetBatchID(batch.ID).
		SetStatus(analysisjob.StatusCompleted).
		SetResult("High memory usage detected in cache layer").
		Save(ctx)
	require.NoError(t, err)

	search := func(query string) []string {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT job_id FROM analysis_jobs
			WHERE to_tsvector('english', COALESCE(result, '')) @@ to_tsquery('english', $1)`,
			query,
		)
		require.NoError(t, err)
		defer rows.Close()

		var ids []string
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			ids = append(ids, id)
		}
		require.NoError(t, rows.Err())
		return ids
	}

	results := search("error & production")
	require.Len(t, results, 1)
	assert.Equal(t, job1.ID, results[0])

	results = search("memory")
	require.Len(t, results, 1)
	assert.Equal(t, job2.ID, results[0])
}

func TestRecordsJSONBContainment(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	withError, err := client.LogBatch.Create().
		SetID(uuid.New().String()).
		SetLineCount(2).
		SetRecordCount(2).
		SetFallbackCount(0).
		SetRecords([]models.LogRecord{
			{ID: "log-1", Timestamp: "2026-03-14T09:00:00Z", Level: models.LevelInfo, Message: "ok"},
			{ID: "log-2", Timestamp: "2026-03-14T09:00:05Z", Level: models.LevelError, Message: "boom"},
		}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.LogBatch.Create().
		SetID(uuid.New().String()).
		SetLineCount(1).
		SetRecordCount(1).
		SetFallbackCount(0).
		SetRecords([]models.LogRecord{
			{ID: "log-1", Timestamp: "2026-03-14T09:01:00Z", Level: models.LevelInfo, Message: "quiet"},
		}).
		Save(ctx)
	require.NoError(t, err)

	// The jsonb_path_ops GIN index serves containment queries like this one.
	rows, err := client.DB().QueryContext(ctx,
		`SELECT batch_id FROM log_batches WHERE records @> $1`,
		`[{"level":"ERROR"}]`,
	)
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())

	require.Len(t, ids, 1)
	assert.Equal(t, withError.ID, ids[0])
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		t.Cleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "logpilot", cfg.User)
		assert.Equal(t, "logpilot", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, 50, cfg.MaxOpenConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_PORT", "not-a-port")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be under a second")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	// Durations must serialize as milliseconds, not nanoseconds.
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000))

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.Less(t, waitDuration, float64(1000000))
}
