// Package config holds service configuration loaded from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the resolved service configuration.
type Config struct {
	// HTTPPort is the port the API server listens on.
	HTTPPort string

	// MaxIngestBytes caps the size of a single ingested log batch.
	MaxIngestBytes int

	Analyzer  *AnalyzerConfig
	Queue     *QueueConfig
	Masking   *MaskingConfig
	Retention *RetentionConfig
	Slack     *SlackConfig
}

// AnalyzerConfig holds settings for the external analysis service client.
type AnalyzerConfig struct {
	// BaseURL is the analysis service endpoint.
	BaseURL string

	// APIKey is the bearer credential sent with every request.
	APIKey string

	// Timeout bounds a single analysis call.
	Timeout time.Duration
}

// Load resolves configuration from environment variables, applying defaults
// for everything not set. It never reads files; callers load .env themselves
// (godotenv in main).
func Load() (*Config, error) {
	maxIngest, err := intEnv("MAX_INGEST_BYTES", 10*1024*1024)
	if err != nil {
		return nil, err
	}

	analyzerTimeout, err := durationEnv("ANALYZER_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}

	queue, err := loadQueueConfig()
	if err != nil {
		return nil, err
	}

	masking, err := loadMaskingConfig()
	if err != nil {
		return nil, err
	}

	retention, err := loadRetentionConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:       getEnvOrDefault("HTTP_PORT", "8080"),
		MaxIngestBytes: maxIngest,
		Analyzer: &AnalyzerConfig{
			BaseURL: getEnvOrDefault("ANALYZER_URL", "http://localhost:9090"),
			APIKey:  os.Getenv("ANALYZER_API_KEY"),
			Timeout: analyzerTimeout,
		},
		Queue:     queue,
		Masking:   masking,
		Retention: retention,
		Slack:     loadSlackConfig(),
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
