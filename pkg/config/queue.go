package config

import "time"

// QueueConfig contains worker pool configuration for analysis jobs.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines polling for jobs.
	WorkerCount int

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout is the maximum time a single analysis job may run.
	JobTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              2 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}

func loadQueueConfig() (*QueueConfig, error) {
	cfg := DefaultQueueConfig()

	workers, err := intEnv("QUEUE_WORKER_COUNT", cfg.WorkerCount)
	if err != nil {
		return nil, err
	}
	cfg.WorkerCount = workers

	if cfg.PollInterval, err = durationEnv("QUEUE_POLL_INTERVAL", cfg.PollInterval); err != nil {
		return nil, err
	}
	if cfg.PollIntervalJitter, err = durationEnv("QUEUE_POLL_JITTER", cfg.PollIntervalJitter); err != nil {
		return nil, err
	}
	if cfg.JobTimeout, err = durationEnv("QUEUE_JOB_TIMEOUT", cfg.JobTimeout); err != nil {
		return nil, err
	}
	if cfg.GracefulShutdownTimeout, err = durationEnv("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}
