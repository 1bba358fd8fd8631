package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MaskingPattern is a single operator-supplied rewrite rule applied after
// the built-in masking chain.
type MaskingPattern struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
	Description string `json:"description,omitempty"`
}

// MaskingConfig holds masking settings beyond the built-in rule chain.
type MaskingConfig struct {
	// CustomPatterns are appended after the built-in rules, in order.
	CustomPatterns []MaskingPattern
}

// loadMaskingConfig reads custom masking patterns from the
// MASKING_CUSTOM_PATTERNS environment variable (a JSON array).
func loadMaskingConfig() (*MaskingConfig, error) {
	cfg := &MaskingConfig{}

	raw := os.Getenv("MASKING_CUSTOM_PATTERNS")
	if raw == "" {
		return cfg, nil
	}

	if err := json.Unmarshal([]byte(raw), &cfg.CustomPatterns); err != nil {
		return nil, fmt.Errorf("invalid MASKING_CUSTOM_PATTERNS: %w", err)
	}
	for i, p := range cfg.CustomPatterns {
		if p.Pattern == "" {
			return nil, fmt.Errorf("invalid MASKING_CUSTOM_PATTERNS: entry %d has empty pattern", i)
		}
	}

	return cfg, nil
}
