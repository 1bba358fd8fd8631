// Package analyzer talks to the external log-analysis service. Only
// masked record content ever crosses this boundary; callers are
// responsible for masking before they hand lines to the client.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/subhashitt/LogPiolt/pkg/config"
)

// Sentinel errors let callers distinguish failure classes without
// string matching. None of them trigger a retry here; retry policy
// belongs to the queue layer.
var (
	// ErrUnauthorized means the analyzer rejected our credentials.
	ErrUnauthorized = errors.New("analyzer rejected credentials")

	// ErrBadResponse means the analyzer answered but the payload was
	// not in the shape we expect.
	ErrBadResponse = errors.New("analyzer returned malformed response")
)

// Client is an HTTP client for the analysis service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates an analyzer client from configuration.
// apiKey may be empty when the analyzer runs without authentication.
func NewClient(cfg *config.AnalyzerConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     slog.Default(),
	}
}

type analyzeRequest struct {
	Lines []string `json:"lines"`
}

type analyzeResponse struct {
	Analysis string `json:"analysis"`
}

// Analyze submits masked log lines and returns the analysis text.
// A single attempt per call; timeouts and cancellation come from ctx
// and the configured client timeout.
func (c *Client) Analyze(ctx context.Context, lines []string) (string, error) {
	payload, err := json.Marshal(analyzeRequest{Lines: lines})
	if err != nil {
		return "", fmt.Errorf("encode analyze request: %w", err)
	}

	endpoint := c.baseURL + "/v1/analyze"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeader(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call analyzer at %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w (HTTP %d)", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("analyzer returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if out.Analysis == "" {
		return "", fmt.Errorf("%w: empty analysis field", ErrBadResponse)
	}

	c.logger.Info("Analyzer call completed",
		"lines", len(lines),
		"duration_ms", time.Since(start).Milliseconds())

	return out.Analysis, nil
}

func (c *Client) setAuthHeader(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
