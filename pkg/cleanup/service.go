// Package cleanup provides data retention enforcement.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/subhashitt/LogPiolt/pkg/config"
	"github.com/subhashitt/LogPiolt/pkg/services"
)

// Service periodically hard-deletes batches past the retention window.
// Analysis jobs cascade with their batch. Deletion is idempotent and safe to
// run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	batchService *services.BatchService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, batchService *services.BatchService) *Service {
	return &Service{
		config:       cfg,
		batchService: batchService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"batch_retention_days", s.config.BatchRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.deleteOldBatches()

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.deleteOldBatches()
		}
	}
}

func (s *Service) deleteOldBatches() {
	count, err := s.batchService.DeleteOldBatches(context.Background(), s.config.BatchRetentionDays)
	if err != nil {
		slog.Error("Retention: batch deletion failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired batches", "count", count)
	}
}
