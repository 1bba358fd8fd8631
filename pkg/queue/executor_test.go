package queue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/ent/analysisjob"
	"github.com/subhashitt/LogPiolt/pkg/analyzer"
	"github.com/subhashitt/LogPiolt/pkg/config"
	"github.com/subhashitt/LogPiolt/pkg/masking"
	"github.com/subhashitt/LogPiolt/pkg/services"
	testdb "github.com/subhashitt/LogPiolt/test/database"
)

func newTestExecutorAnalyzer(t *testing.T, handler http.HandlerFunc) *analyzer.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return analyzer.NewClient(&config.AnalyzerConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func TestBatchAnalysisExecutor_MasksBeforeSending(t *testing.T) {
	client := testdb.NewTestClient(t)
	masker := masking.NewMasker(&config.MaskingConfig{})

	batch := createTestBatch(t, client.Client,
		"user alice@example.com logged in from 10.1.2.3",
		"request with token=super-secret-token failed",
	)
	job := createTestJob(t, client.Client, batch.ID)

	var gotLines []string
	analyzerClient := newTestExecutorAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Lines []string `json:"lines"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotLines = req.Lines
		json.NewEncoder(w).Encode(map[string]string{"analysis": "looks like an auth problem"})
	})

	executor := NewBatchAnalysisExecutor(client.Client, masker, analyzerClient, nil)
	result := executor.Execute(context.Background(), job)

	require.NotNil(t, result)
	assert.Equal(t, analysisjob.StatusCompleted, result.Status)
	assert.Equal(t, "looks like an auth problem", result.Result)

	require.Len(t, gotLines, 2)
	for _, line := range gotLines {
		assert.NotContains(t, line, "alice@example.com")
		assert.NotContains(t, line, "10.1.2.3")
		assert.NotContains(t, line, "super-secret-token")
	}
	assert.Contains(t, gotLines[0], "logged in from")
}

func TestBatchAnalysisExecutor_AnalyzerFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	masker := masking.NewMasker(&config.MaskingConfig{})

	batch := createTestBatch(t, client.Client, "ERROR kaboom")
	job := createTestJob(t, client.Client, batch.ID)

	analyzerClient := newTestExecutorAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "meltdown", http.StatusInternalServerError)
	})

	executor := NewBatchAnalysisExecutor(client.Client, masker, analyzerClient, nil)
	result := executor.Execute(context.Background(), job)

	require.NotNil(t, result)
	assert.Equal(t, analysisjob.StatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "analyzer call failed")
}

func TestBatchAnalysisExecutor_AnalyzerHealthWarnings(t *testing.T) {
	client := testdb.NewTestClient(t)
	masker := masking.NewMasker(&config.MaskingConfig{})
	warnings := services.NewSystemWarningsService()

	batch := createTestBatch(t, client.Client, "ERROR kaboom")
	job := createTestJob(t, client.Client, batch.ID)

	var healthy atomic.Bool
	analyzerClient := newTestExecutorAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			http.Error(w, "meltdown", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"analysis": "fine"})
	})

	executor := NewBatchAnalysisExecutor(client.Client, masker, analyzerClient, warnings)

	// Failure records a warning.
	result := executor.Execute(context.Background(), job)
	assert.Equal(t, analysisjob.StatusFailed, result.Status)
	got := warnings.GetWarnings()
	require.Len(t, got, 1)
	assert.Equal(t, services.WarningCategoryAnalyzerHealth, got[0].Category)

	// Recovery clears it.
	healthy.Store(true)
	result = executor.Execute(context.Background(), job)
	assert.Equal(t, analysisjob.StatusCompleted, result.Status)
	assert.Empty(t, warnings.GetWarnings())
}

func TestBatchAnalysisExecutor_MissingBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	masker := masking.NewMasker(&config.MaskingConfig{})

	batch := createTestBatch(t, client.Client, "INFO line")
	job := createTestJob(t, client.Client, batch.ID)

	// Delete the batch out from under the job.
	require.NoError(t, client.LogBatch.DeleteOneID(batch.ID).Exec(context.Background()))

	analyzerClient := newTestExecutorAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("analyzer must not be called when the batch is gone")
	})

	executor := NewBatchAnalysisExecutor(client.Client, masker, analyzerClient, nil)
	result := executor.Execute(context.Background(), job)

	require.NotNil(t, result)
	assert.Equal(t, analysisjob.StatusFailed, result.Status)
	assert.Contains(t, result.Error.Error(), "failed to load batch")
}
