// Package slack delivers operational notifications when analysis jobs reach
// a terminal state. Delivery is best-effort: failures are logged and never
// influence job processing.
package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// JobFinishedInput contains data for a terminal job notification.
type JobFinishedInput struct {
	JobID        string
	BatchID      string
	Status       string // completed, failed
	Analysis     string // set when completed
	ErrorMessage string // set when failed
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when the service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty, which disables notifications.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyJobFinished sends a terminal status notification for an analysis job.
// If an earlier notification for the same batch is still in channel history,
// this one threads under it. Fail-open: errors are logged, never returned.
func (s *Service) NotifyJobFinished(ctx context.Context, input JobFinishedInput) {
	if s == nil {
		return
	}

	threadTS, err := s.client.FindMessageByFingerprint(ctx, BatchFingerprint(input.BatchID))
	if err != nil {
		s.logger.Warn("Failed to find Slack thread for batch",
			"job_id", input.JobID,
			"batch_id", input.BatchID,
			"error", err)
	}

	blocks := BuildJobFinishedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack notification",
			"job_id", input.JobID,
			"batch_id", input.BatchID,
			"status", input.Status,
			"error", err)
	}
}
