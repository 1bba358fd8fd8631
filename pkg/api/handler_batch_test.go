package api

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiSampleLog = `2026-03-14T09:00:00Z INFO [AuthService] user bob@example.com logged in from 10.1.2.3
2026-03-14T09:05:00Z ERROR [PaymentService] GET /charge?token=tok_abc123 status=502
2026-03-14T09:10:00Z WARN [CacheModule] slow response`

func TestIngestBatch(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	t.Run("creates batch", func(t *testing.T) {
		resp := ingestBatch(t, h, "payments-prod", apiSampleLog)

		assert.NotEmpty(t, resp.Batch.BatchID)
		assert.Equal(t, "payments-prod", resp.Batch.Source)
		assert.Equal(t, "api-client", resp.Batch.Author)
		assert.Equal(t, 3, resp.Batch.RecordCount)
		assert.Equal(t, 0, resp.Batch.FallbackCount)
	})

	t.Run("missing text is a 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/batches", map[string]string{"source": "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("blank-only text is a 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/batches", IngestRequest{Text: "  \n \n"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIngestBatch_AuthorFromProxyHeaders(t *testing.T) {
	s := newTestServer(t)

	rec := doJSONWithHeaders(t, s.Handler(), http.MethodPost, "/api/v1/batches",
		IngestRequest{Text: "INFO hello"},
		map[string]string{"X-Forwarded-User": "alice"})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[IngestResponse](t, rec)
	assert.Equal(t, "alice", resp.Batch.Author)
}

func TestGetBatch(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()
	created := ingestBatch(t, h, "prod", apiSampleLog)

	t.Run("returns batch", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches/"+created.Batch.BatchID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode[BatchResponse](t, rec)
		assert.Equal(t, created.Batch.BatchID, got.BatchID)
		assert.Equal(t, 3, got.RecordCount)
	})

	t.Run("unknown batch is a 404", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListBatches(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	ingestBatch(t, h, "prod", "INFO one")
	ingestBatch(t, h, "prod", "INFO two")
	ingestBatch(t, h, "staging", "INFO three")

	t.Run("lists all", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode[BatchListResponse](t, rec)
		assert.Equal(t, 3, got.TotalCount)
		assert.Len(t, got.Batches, 3)
	})

	t.Run("filters by source", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches?source=prod", nil)
		got := decode[BatchListResponse](t, rec)
		assert.Equal(t, 2, got.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches?limit=2&offset=2", nil)
		got := decode[BatchListResponse](t, rec)
		assert.Equal(t, 3, got.TotalCount)
		assert.Len(t, got.Batches, 1)
	})

	t.Run("filters by creation window", func(t *testing.T) {
		from := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
		to := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)

		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches?from="+from+"&to="+to, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[BatchListResponse](t, rec)
		assert.Equal(t, 3, got.TotalCount, "all batches were just created")

		rec = doJSON(t, h, http.MethodGet, "/api/v1/batches?to="+from, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		got = decode[BatchListResponse](t, rec)
		assert.Equal(t, 0, got.TotalCount, "nothing predates the window")
	})

	t.Run("bad limit is a 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad from timestamp is a 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches?from=yesterday", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetRecords(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()
	created := ingestBatch(t, h, "prod", apiSampleLog)
	base := "/api/v1/batches/" + created.Batch.BatchID + "/records"

	t.Run("defaults to the masked view", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, base, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode[RecordsResponse](t, rec)
		assert.Equal(t, "masked", got.View)
		require.Equal(t, 3, got.Count)
		assert.NotContains(t, got.Records[0].Message, "bob@example.com")
		assert.NotContains(t, got.Records[0].Message, "10.1.2.3")
		assert.NotContains(t, got.Records[1].Message, "tok_abc123")
	})

	t.Run("raw view must be requested explicitly", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, base+"?view=raw", nil)
		got := decode[RecordsResponse](t, rec)
		assert.Equal(t, "raw", got.View)
		assert.Contains(t, got.Records[0].Message, "bob@example.com")
	})

	t.Run("invalid view is a 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, base+"?view=shiny", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("level filter", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, base+"?level=ERROR", nil)
		got := decode[RecordsResponse](t, rec)
		require.Equal(t, 1, got.Count)
		assert.Equal(t, "log-2", got.Records[0].ID)
	})

	t.Run("time window filter", func(t *testing.T) {
		q := url.Values{}
		q.Set("from", "2026-03-14T09:05:00Z")
		q.Set("to", "2026-03-14T09:10:00Z")
		rec := doJSON(t, h, http.MethodGet, base+"?"+q.Encode(), nil)
		got := decode[RecordsResponse](t, rec)
		assert.Equal(t, 2, got.Count)
	})

	t.Run("keyword and component filters combine", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, base+"?keyword=slow&component=cache", nil)
		got := decode[RecordsResponse](t, rec)
		require.Equal(t, 1, got.Count)
		assert.Equal(t, "log-3", got.Records[0].ID)
	})

	t.Run("response code category filter", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, base+"?responseCode=5", nil)
		got := decode[RecordsResponse](t, rec)
		require.Equal(t, 1, got.Count)
		assert.Equal(t, "502", got.Records[0].ResponseCode)
	})

	t.Run("invalid filter value is a 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, base+"?level=LOUD", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid from timestamp is a 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, base+"?from=yesterday", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no matches returns an empty array", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, base+"?keyword=zzznope", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[RecordsResponse](t, rec)
		assert.Equal(t, 0, got.Count)
		assert.NotNil(t, got.Records)
	})

	t.Run("unknown batch is a 404", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/batches/nope/records", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
