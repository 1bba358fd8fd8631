package masking

import (
	"net/url"
	"regexp"
	"strings"
)

// Query parameter names containing any of these substrings (case-insensitive)
// get their values replaced.
var sensitiveParamSubstrings = []string{"token", "key", "password", "secret", "auth"}

// queryParamFallbackRe finds ?/&-separated pairs with a sensitive name for
// input that does not parse as a structured URL. Only the value portion is
// replaced; everything else stays verbatim.
var queryParamFallbackRe = regexp.MustCompile(`(?i)([?&][^=&\s]*(?:token|key|password|secret|auth)[^=&\s]*=)([^&\s]*)`)

// MaskURL masks embedded credentials and sensitive query parameter values.
// Parseable URLs are rewritten structurally and reserialized; malformed or
// relative input falls back to regex-based partial masking. Total: never
// fails, worst case returns the input minimally altered.
func (m *Masker) MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return queryParamFallbackRe.ReplaceAllString(rawURL, "${1}"+MaskedValue)
	}

	if u.User != nil {
		u.User = url.User(MaskedValue)
	}
	if u.RawQuery != "" {
		u.RawQuery = maskRawQuery(u.RawQuery)
	}
	return u.String()
}

// maskRawQuery rewrites name=value pairs in place, preserving pair order and
// the original escaping of untouched values.
func maskRawQuery(rawQuery string) string {
	pairs := strings.Split(rawQuery, "&")
	for i, pair := range pairs {
		name, _, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if isSensitiveParam(name) {
			pairs[i] = name + "=" + MaskedValue
		}
	}
	return strings.Join(pairs, "&")
}

func isSensitiveParam(name string) bool {
	lower := strings.ToLower(name)
	for _, substr := range sensitiveParamSubstrings {
		if strings.Contains(lower, substr) {
			return true
		}
	}
	return false
}
