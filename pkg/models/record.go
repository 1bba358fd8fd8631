// Package models contains shared domain types used across the service.
package models

// LogLevel is the closed set of severities a parsed record can carry.
// Parsing maps a wider keyword vocabulary (WARNING, FATAL, CRITICAL, TRACE)
// onto these four values.
type LogLevel string

// Log level constants.
const (
	LevelError LogLevel = "ERROR"
	LevelWarn  LogLevel = "WARN"
	LevelInfo  LogLevel = "INFO"
	LevelDebug LogLevel = "DEBUG"
)

// Valid reports whether l is one of the four enumerated levels.
func (l LogLevel) Valid() bool {
	switch l {
	case LevelError, LevelWarn, LevelInfo, LevelDebug:
		return true
	}
	return false
}

// LogRecord is the structured representation of one input log line.
//
// A record is created once at parse time and treated as immutable afterward.
// Masking produces a sibling copy with message/url/headers rewritten — it
// never mutates a record in place, so the raw and masked views can coexist.
type LogRecord struct {
	// ID is assigned by 1-based position within the parsed batch ("log-<n>").
	// Unique and order-preserving within one parse invocation only.
	ID string `json:"id"`

	// Timestamp is the matched timestamp text in ISO-8601 form, or the
	// parse-time instant when no pattern matched. Stored as text; only the
	// millisecond-epoch form is normalized to ISO-8601 during parsing.
	Timestamp string `json:"timestamp"`

	// Level is always one of the four LogLevel values (INFO by default).
	Level LogLevel `json:"level"`

	// Message is the full original line, trimmed of surrounding whitespace.
	Message string `json:"message"`

	// Component is the originating module/service identifier, if detected.
	Component string `json:"component,omitempty"`

	// URL is the first URL or path substring found in the line, if any.
	URL string `json:"url,omitempty"`

	// ResponseCode is a 3-digit HTTP status string (first digit 1-5), if any.
	ResponseCode string `json:"responseCode,omitempty"`

	// Headers holds key/value pairs parsed from an inline "headers: {...}"
	// fragment. Nil when the line carries none.
	Headers map[string]string `json:"headers,omitempty"`
}
