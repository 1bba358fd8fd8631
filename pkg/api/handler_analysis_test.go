package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAnalysis(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()
	created := ingestBatch(t, h, "prod", "ERROR upstream is down")

	t.Run("queues a pending job", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/batches/"+created.Batch.BatchID+"/analyze", nil)
		require.Equal(t, http.StatusAccepted, rec.Code)

		job := decode[JobResponse](t, rec)
		assert.NotEmpty(t, job.JobID)
		assert.Equal(t, created.Batch.BatchID, job.BatchID)
		assert.Equal(t, "pending", job.Status)
		assert.Empty(t, job.Result)
		assert.Nil(t, job.StartedAt)
	})

	t.Run("unknown batch is a 404", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/batches/nope/analyze", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetAnalysis(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()
	created := ingestBatch(t, h, "prod", "WARN something odd")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/batches/"+created.Batch.BatchID+"/analyze", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	job := decode[JobResponse](t, rec)

	t.Run("returns job", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/analyses/"+job.JobID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode[JobResponse](t, rec)
		assert.Equal(t, job.JobID, got.JobID)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("unknown job is a 404", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/analyses/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListAnalyses(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()
	created := ingestBatch(t, h, "prod", "INFO fine")

	for range 2 {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/batches/"+created.Batch.BatchID+"/analyze", nil)
		require.Equal(t, http.StatusAccepted, rec.Code)
	}

	t.Run("lists jobs for batch", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches/"+created.Batch.BatchID+"/analyses", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			BatchID  string        `json:"batch_id"`
			Analyses []JobResponse `json:"analyses"`
		}
		require.NoError(t, decodeInto(rec, &got))
		assert.Equal(t, created.Batch.BatchID, got.BatchID)
		assert.Len(t, got.Analyses, 2)
	})

	t.Run("unknown batch is a 404", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches/nope/analyses", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
