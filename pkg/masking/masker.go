// Package masking rewrites sensitive substrings in log text, URLs, and
// header maps with fixed sentinel tokens before anything leaves the service.
//
// Masking is an ordered fold of independent substitution rules: order
// matters because later rules must not re-match sentinels left by earlier
// ones. Re-masking already-masked text is a no-op — sentinels are chosen so
// that no rule's pattern can match them.
package masking

import (
	"log/slog"
	"regexp"

	"github.com/subhashitt/LogPiolt/pkg/config"
	"github.com/subhashitt/LogPiolt/pkg/models"
)

// Sentinel tokens substituted for masked spans. Category-specific tokens
// keep masked output readable without revealing the original value.
const (
	MaskedValue = "***MASKED***"
	MaskedIP    = "***IP_MASKED***"
	MaskedIPv6  = "***IPv6_MASKED***"
	MaskedEmail = "***EMAIL_MASKED***"
	MaskedPhone = "***PHONE_MASKED***"
	MaskedCard  = "***CARD_MASKED***"
	MaskedSSN   = "***SSN_MASKED***"
	MaskedPath  = "***PATH_MASKED***"
	MaskedUUID  = "***UUID_MASKED***"
	MaskedHash  = "***HASH_MASKED***"
)

// rule is a single step in the masking chain. Exactly one of replacement or
// replaceFunc is set; replaceFunc receives the whole match.
type rule struct {
	name        string
	re          *regexp.Regexp
	replacement string
	replaceFunc func(match string) string
}

// Masker applies the ordered masking rule chain. Created once at startup;
// thread-safe and stateless aside from compiled patterns.
type Masker struct {
	textRules []*rule
}

// NewMasker compiles the built-in rule chain plus any custom patterns from
// config. Invalid custom patterns are logged and skipped. cfg may be nil.
func NewMasker(cfg *config.MaskingConfig) *Masker {
	m := &Masker{}
	m.textRules = m.builtinRules()

	custom := 0
	if cfg != nil {
		for i, p := range cfg.CustomPatterns {
			re, err := regexp.Compile(p.Pattern)
			if err != nil {
				slog.Error("Failed to compile custom masking pattern, skipping",
					"index", i, "error", err)
				continue
			}
			m.textRules = append(m.textRules, &rule{
				name:        p.Description,
				re:          re,
				replacement: p.Replacement,
			})
			custom++
		}
	}

	slog.Info("Masker initialized",
		"builtin_rules", len(m.textRules)-custom,
		"custom_rules", custom)
	return m
}

// MaskText applies every rule in order over the whole string and returns the
// rewritten text. Pure, deterministic, and total: no input can make it fail,
// and re-masking masked text changes nothing.
func (m *Masker) MaskText(text string) string {
	masked := text
	for _, r := range m.textRules {
		if r.replaceFunc != nil {
			masked = r.re.ReplaceAllStringFunc(masked, r.replaceFunc)
		} else {
			masked = r.re.ReplaceAllString(masked, r.replacement)
		}
	}
	return masked
}

// MaskRecord returns a masked sibling copy of rec. Only message, url, and
// headers are rewritten; id, timestamp, level, and component pass through so
// the raw and masked views stay correlatable.
func (m *Masker) MaskRecord(rec models.LogRecord) models.LogRecord {
	masked := rec
	masked.Message = m.MaskText(rec.Message)
	if rec.URL != "" {
		masked.URL = m.MaskURL(rec.URL)
	}
	masked.Headers = m.MaskHeaders(rec.Headers)
	return masked
}

// MaskRecords masks a batch, preserving order.
func (m *Masker) MaskRecords(records []models.LogRecord) []models.LogRecord {
	masked := make([]models.LogRecord, len(records))
	for i, rec := range records {
		masked[i] = m.MaskRecord(rec)
	}
	return masked
}

// builtinRules returns the built-in chain in its required order. URL-bearing
// categories are masked holistically (delegating to MaskURL) so later
// key=value rules cannot fragment them.
func (m *Masker) builtinRules() []*rule {
	return []*rule{
		{
			name: "credential_kv",
			re:   regexp.MustCompile(`(?i)\b(password|token|api[_-]?key|jwt|session)(\s*[=:]\s*)("[^"]*"|'[^']*'|[^\s,;&"']+)`),

			replacement: "${1}${2}" + MaskedValue,
		},
		{
			name:        "auth_scheme",
			re:          regexp.MustCompile(`\b(Bearer|Basic)\s+([A-Za-z0-9\-._~+/]+=*)`),
			replacement: "${1} " + MaskedValue,
		},
		{
			name:        "absolute_url",
			re:          regexp.MustCompile(`https?://[^\s"']+`),
			replaceFunc: m.MaskURL,
		},
		{
			name:        "path_with_query",
			re:          regexp.MustCompile(`/[A-Za-z0-9_\-./]*\?[^\s"']+`),
			replaceFunc: m.MaskURL,
		},
		{
			name:        "ipv4",
			re:          regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
			replacement: MaskedIP,
		},
		{
			// Full, compressed, and partially-compressed forms. Kept
			// conservative: timestamp-like digit groups must never match.
			name: "ipv6",
			re: regexp.MustCompile(`\b(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}\b` +
				`|\b(?:[0-9a-fA-F]{1,4}:){1,6}:(?:[0-9a-fA-F]{1,4}:)*[0-9a-fA-F]{1,4}\b` +
				`|::(?:[0-9a-fA-F]{1,4}:){0,6}[0-9a-fA-F]{1,4}\b` +
				`|\b(?:[0-9a-fA-F]{1,4}:){1,7}:`),
			replacement: MaskedIPv6,
		},
		{
			name:        "email",
			re:          regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`),
			replacement: MaskedEmail,
		},
		{
			// North-American numbers. The leading guard group keeps the
			// pattern from locking onto the tail of a longer digit run.
			name:        "phone",
			re:          regexp.MustCompile(`(^|[^0-9A-Za-z])((?:\+?1[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4})\b`),
			replacement: "${1}" + MaskedPhone,
		},
		{
			name:        "payment_card",
			re:          regexp.MustCompile(`\b(?:4\d{12}(?:\d{3})?|5[1-5]\d{14}|3[47]\d{13}|6(?:011|5\d{2})\d{12})\b`),
			replacement: MaskedCard,
		},
		{
			name:        "ssn",
			re:          regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
			replacement: MaskedSSN,
		},
		{
			name:        "connection_kv",
			re:          regexp.MustCompile(`(?i)\b(server|database|user|uid|pwd)(\s*[=:]\s*)([^\s;,"']+)`),
			replacement: "${1}${2}" + MaskedValue,
		},
		{
			name:        "windows_path",
			re:          regexp.MustCompile(`\b[A-Za-z]:\\[^\s"']*`),
			replacement: MaskedPath,
		},
		{
			name:        "home_path",
			re:          regexp.MustCompile(`(?:/home|/Users)/[A-Za-z0-9_\-./]+`),
			replacement: MaskedPath,
		},
		{
			name:        "uuid",
			re:          regexp.MustCompile(`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}\b`),
			replacement: MaskedUUID,
		},
		{
			name:        "high_entropy_token",
			re:          regexp.MustCompile(`\b[A-Za-z0-9+/]{32,}={0,2}`),
			replaceFunc: maskIfSecretLike,
		},
	}
}

// maskIfSecretLike replaces a long base64-alphabet run only when it mixes
// upper, lower, and digit characters — the heuristic that separates likely
// secrets and hashes from incidental long alphanumerics.
func maskIfSecretLike(match string) string {
	var upper, lower, digit bool
	for _, r := range match {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if upper && lower && digit {
		return MaskedHash
	}
	return match
}
