// LogPilot server - parses raw log batches into structured records, masks
// sensitive data, and runs analysis jobs against the external analyzer.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/subhashitt/LogPiolt/pkg/analyzer"
	"github.com/subhashitt/LogPiolt/pkg/api"
	"github.com/subhashitt/LogPiolt/pkg/cleanup"
	"github.com/subhashitt/LogPiolt/pkg/config"
	"github.com/subhashitt/LogPiolt/pkg/database"
	"github.com/subhashitt/LogPiolt/pkg/masking"
	"github.com/subhashitt/LogPiolt/pkg/parser"
	"github.com/subhashitt/LogPiolt/pkg/queue"
	"github.com/subhashitt/LogPiolt/pkg/services"
	"github.com/subhashitt/LogPiolt/pkg/slack"
	"github.com/subhashitt/LogPiolt/pkg/version"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	podID := resolvePodID()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting LogPilot",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"pod_id", podID)

	ctx := context.Background()

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal - continue
	}

	// 4. Initialize masker and domain services
	masker := masking.NewMasker(cfg.Masking)
	lineParser := parser.NewParser()

	batchService := services.NewBatchService(dbClient.Client, lineParser, masker)
	analysisService := services.NewAnalysisService(dbClient.Client)
	systemWarnings := services.NewSystemWarningsService()
	slog.Info("Services initialized")

	// 5. Create analyzer client and job executor
	analyzerClient := analyzer.NewClient(cfg.Analyzer)
	executor := queue.NewBatchAnalysisExecutor(dbClient.Client, masker, analyzerClient, systemWarnings)
	slog.Info("Analyzer client initialized", "url", cfg.Analyzer.BaseURL)

	// 6. Start worker pool (before HTTP server)
	notifier := slack.NewService(slack.ServiceConfig{
		Token:        cfg.Slack.Token,
		Channel:      cfg.Slack.Channel,
		DashboardURL: cfg.Slack.DashboardURL,
	})
	if notifier != nil {
		slog.Info("Slack notifications enabled", "channel", cfg.Slack.Channel)
	}

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, notifier)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Start retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, batchService)
	cleanupService.Start(ctx)

	// 8. Create and start HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, batchService, analysisService, workerPool, systemWarnings)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("LogPilot started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: drain HTTP first, then let workers finish their jobs
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}

	cleanupService.Stop()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded, exiting anyway")
	}

	slog.Info("LogPilot shutdown complete")
}
