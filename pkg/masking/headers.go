package masking

import "strings"

// Header names containing any of these substrings (case-insensitive) get
// their values replaced wholesale.
var sensitiveHeaderSubstrings = []string{"authorization", "token", "key"}

// MaskHeaders returns a new map with sensitive header values replaced by the
// fixed sentinel. The input map is never mutated. Nil input yields nil.
func (m *Masker) MaskHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}

	masked := make(map[string]string, len(headers))
	for name, value := range headers {
		if isSensitiveHeader(name) {
			masked[name] = MaskedValue
		} else {
			masked[name] = value
		}
	}
	return masked
}

func isSensitiveHeader(name string) bool {
	lower := strings.ToLower(name)
	for _, substr := range sensitiveHeaderSubstrings {
		if strings.Contains(lower, substr) {
			return true
		}
	}
	return false
}
