package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/pkg/config"
	"github.com/subhashitt/LogPiolt/pkg/masking"
	"github.com/subhashitt/LogPiolt/pkg/parser"
	"github.com/subhashitt/LogPiolt/pkg/services"
	testdb "github.com/subhashitt/LogPiolt/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires a Server against a real test database.
// The worker pool is nil; queue behavior has its own tests.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	client := testdb.NewTestClient(t)
	masker := masking.NewMasker(&config.MaskingConfig{})

	cfg := &config.Config{
		HTTPPort:       "0",
		MaxIngestBytes: 1024 * 1024,
	}

	return NewServer(
		cfg,
		client,
		services.NewBatchService(client.Client, parser.NewParser(), masker),
		services.NewAnalysisService(client.Client),
		nil,
		services.NewSystemWarningsService(),
	)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func doJSONWithHeaders(t *testing.T, handler http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func decodeInto(rec *httptest.ResponseRecorder, out any) error {
	return json.Unmarshal(rec.Body.Bytes(), out)
}

// ingestBatch creates a batch via the API and returns its response.
func ingestBatch(t *testing.T, handler http.Handler, source, text string) IngestResponse {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/batches", IngestRequest{Source: source, Text: text})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	return decode[IngestResponse](t, rec)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[HealthResponse](t, rec)
	require.Equal(t, "healthy", health.Status)
	require.Equal(t, "healthy", health.Checks["database"].Status)
	require.NotEmpty(t, health.Version)
}

func TestHealthEndpoint_SystemWarningsDegrade(t *testing.T) {
	s := newTestServer(t)
	s.warnings.AddWarning(services.WarningCategoryAnalyzerHealth,
		"Analyzer call failed", "connection refused", "analyzer")

	rec := doJSON(t, s.Handler(), http.MethodGet, "/health", nil)

	// Degraded but still serving - warnings are advisory.
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[HealthResponse](t, rec)
	require.Equal(t, "degraded", health.Status)
	require.Len(t, health.Warnings, 1)
	require.Equal(t, "Analyzer call failed", health.Warnings[0].Message)
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/health", nil)

	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestIngestTooLarge(t *testing.T) {
	s := newTestServer(t)
	s.maxIngestBytes = 64

	big := IngestRequest{Text: fmt.Sprintf("%0200d", 1)}
	rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/batches", big)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
