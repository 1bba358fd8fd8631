package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/pkg/config"
)

func newTestClient(baseURL, apiKey string) *Client {
	return NewClient(&config.AnalyzerConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Timeout: 5 * time.Second,
	})
}

func TestAnalyze_Success(t *testing.T) {
	var gotBody analyzeRequest
	var gotAuth, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/analyze", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(analyzeResponse{Analysis: "everything is on fire"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "test-key")
	got, err := c.Analyze(context.Background(), []string{"line one", "line two"})
	require.NoError(t, err)

	assert.Equal(t, "everything is on fire", got)
	assert.Equal(t, []string{"line one", "line two"}, gotBody.Lines)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestAnalyze_NoAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(analyzeResponse{Analysis: "ok"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "")
	_, err := c.Analyze(context.Background(), []string{"x"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestAnalyze_Unauthorized(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		c := newTestClient(srv.URL, "bad-key")
		_, err := c.Analyze(context.Background(), []string{"x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)

		srv.Close()
	}
}

func TestAnalyze_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream melted", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "k")
	_, err := c.Analyze(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "502")
}

func TestAnalyze_MalformedResponse(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "k")
		_, err := c.Analyze(context.Background(), []string{"x"})
		assert.ErrorIs(t, err, ErrBadResponse)
	})

	t.Run("missing analysis field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"analysis": ""}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "k")
		_, err := c.Analyze(context.Background(), []string{"x"})
		assert.ErrorIs(t, err, ErrBadResponse)
	})
}

func TestAnalyze_TransportError(t *testing.T) {
	// Point at a server that is already gone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv.URL, "k")
	_, err := c.Analyze(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrBadResponse)
}

func TestAnalyze_ContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := newTestClient(srv.URL, "k")
	_, err := c.Analyze(ctx, []string{"x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAnalyze_SingleAttempt(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "k")
	_, err := c.Analyze(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "client must not retry on its own")
}
