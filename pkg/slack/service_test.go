package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	// Should not panic.
	s.NotifyJobFinished(context.Background(), JobFinishedInput{
		JobID:   "job-1",
		BatchID: "batch-1",
		Status:  "completed",
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}

// mockSlackAPI records chat.postMessage calls and serves an empty channel
// history so fingerprint lookups find no thread.
type mockSlackAPI struct {
	mu        sync.Mutex
	postCalls []map[string]string
}

func (m *mockSlackAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/conversations.history", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":       true,
			"messages": []any{},
		})
	})
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		m.mu.Lock()
		m.postCalls = append(m.postCalls, map[string]string{
			"channel":   r.FormValue("channel"),
			"blocks":    r.FormValue("blocks"),
			"thread_ts": r.FormValue("thread_ts"),
		})
		m.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":      true,
			"channel": r.FormValue("channel"),
			"ts":      "1700000000.000100",
		})
	})
	return mux
}

func (m *mockSlackAPI) calls() []map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]map[string]string(nil), m.postCalls...)
}

func TestService_NotifyJobFinished(t *testing.T) {
	mock := &mockSlackAPI{}
	server := httptest.NewServer(mock.handler())
	defer server.Close()

	client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	svc := NewServiceWithClient(client, "https://dash.example.com")

	svc.NotifyJobFinished(context.Background(), JobFinishedInput{
		JobID:    "job-1",
		BatchID:  "batch-abc",
		Status:   "completed",
		Analysis: "nothing suspicious",
	})

	calls := mock.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "C123", calls[0]["channel"])
	assert.Contains(t, calls[0]["blocks"], "batch:batch-abc")
	assert.Contains(t, calls[0]["blocks"], "nothing suspicious")
	assert.Empty(t, calls[0]["thread_ts"], "no prior message means no thread")
}

func TestService_NotifyJobFinished_PostFailureIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	svc := NewServiceWithClient(client, "")

	// Must not panic or return anything - delivery is best-effort.
	svc.NotifyJobFinished(context.Background(), JobFinishedInput{
		JobID:   "job-1",
		BatchID: "batch-abc",
		Status:  "failed",
	})
}
