package config

import "time"

// RetentionConfig controls how long ingested batches are kept. Raw log text
// routinely contains sensitive data, so batches are hard-deleted (analysis
// jobs cascade) once they age out.
type RetentionConfig struct {
	// BatchRetentionDays is the age past which a batch is deleted.
	BatchRetentionDays int

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		BatchRetentionDays: 30,
		CleanupInterval:    time.Hour,
	}
}

func loadRetentionConfig() (*RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	days, err := intEnv("BATCH_RETENTION_DAYS", cfg.BatchRetentionDays)
	if err != nil {
		return nil, err
	}
	cfg.BatchRetentionDays = days

	interval, err := durationEnv("CLEANUP_INTERVAL", cfg.CleanupInterval)
	if err != nil {
		return nil, err
	}
	cfg.CleanupInterval = interval

	return cfg, nil
}
