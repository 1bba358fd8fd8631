package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/subhashitt/LogPiolt/pkg/models"
)

// Timestamp pattern families, in fixed priority order. First match anywhere
// in the line wins; matched text is kept verbatim except for the epoch form.
var (
	isoTimestampRe    = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d{3})?(?:Z|[+-]\d{2}:\d{2})?`)
	slashTimestampRe  = regexp.MustCompile(`\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}`)
	syslogTimestampRe = regexp.MustCompile(`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) {1,2}\d{1,2} \d{2}:\d{2}:\d{2}`)
	epochMillisRe     = regexp.MustCompile(`\b\d{13}\b`)
)

// Level keyword detection: case-insensitive, word-bounded. WARNING precedes
// WARN in the alternation so the full keyword is consumed.
var levelRe = regexp.MustCompile(`(?i)\b(TRACE|DEBUG|INFO|WARNING|WARN|ERROR|FATAL|CRITICAL)\b`)

// URL candidate patterns, in priority order.
var (
	absoluteURLRe = regexp.MustCompile(`https?://[^\s,;)}\]]+`)
	pathURLRe     = regexp.MustCompile(`(?:^|[\s"'(\[=])(/[A-Za-z0-9_\-./~%?=&#+:@]+)`)
	schemeURLRe   = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9+.\-]*://[^\s,;)}\]]+`)
)

// Response code candidate patterns, in priority order. The bare-token form
// rejects neighbors that would make the digits part of a timestamp, version
// string, or longer number.
var (
	bareCodeRe   = regexp.MustCompile(`(?:^|[^0-9./:-])([1-5]\d{2})(?:[^0-9./:-]|$)`)
	statusCodeRe = regexp.MustCompile(`(?i)\bstatus[=: ]\s*(\d{3})\b`)
	codeCodeRe   = regexp.MustCompile(`(?i)\bcode[=: ]\s*(\d{3})\b`)
)

// Component candidate patterns, in priority order.
var (
	bracketComponentRe = regexp.MustCompile(`\[([^\[\]]+)\]`)
	suffixComponentRe  = regexp.MustCompile(`\b([A-Za-z_]\w*(?:Service|Controller|Module|Handler|Provider))\b`)
	loggerComponentRe  = regexp.MustCompile(`\blogger[=: ]\s*([\w.$\-]+)`)
	classComponentRe   = regexp.MustCompile(`\bclass[=: ]\s*([\w.$\-]+)`)
	leadingComponentRe = regexp.MustCompile(`^([A-Za-z]\w*):`)
)

// headersRe matches an inline "headers: {...}" (or "header=", pluralization
// and separator optional) fragment. The keyword is case-insensitive.
var headersRe = regexp.MustCompile(`(?i)\bheaders?\s*[=:]\s*\{([^{}]*)\}`)

// isoMillisLayout renders millisecond epochs as ISO-8601 instants.
const isoMillisLayout = "2006-01-02T15:04:05.000Z07:00"

// extractTimestamp returns the first timestamp-like substring of the line in
// priority order, normalizing only the 13-digit millisecond-epoch form.
// When nothing matches it falls back to the current instant so unparseable
// lines sort near "now" rather than at epoch zero.
func (p *Parser) extractTimestamp(line string) string {
	if m := isoTimestampRe.FindString(line); m != "" {
		return m
	}
	if m := slashTimestampRe.FindString(line); m != "" {
		return m
	}
	if m := syslogTimestampRe.FindString(line); m != "" {
		return m
	}
	if m := epochMillisRe.FindString(line); m != "" {
		if ms, err := strconv.ParseInt(m, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC().Format(isoMillisLayout)
		}
	}
	return p.now().UTC().Format(time.RFC3339)
}

// levelAliases maps the detected vocabulary onto the closed LogLevel set.
var levelAliases = map[string]models.LogLevel{
	"TRACE":    models.LevelDebug,
	"DEBUG":    models.LevelDebug,
	"INFO":     models.LevelInfo,
	"WARN":     models.LevelWarn,
	"WARNING":  models.LevelWarn,
	"ERROR":    models.LevelError,
	"FATAL":    models.LevelError,
	"CRITICAL": models.LevelError,
}

func extractLevel(line string) models.LogLevel {
	m := levelRe.FindString(line)
	if m == "" {
		return models.LevelInfo
	}
	if lvl, ok := levelAliases[strings.ToUpper(m)]; ok {
		return lvl
	}
	return models.LevelInfo
}

func extractURL(line string) string {
	if m := absoluteURLRe.FindString(line); m != "" {
		return m
	}
	if m := pathURLRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := schemeURLRe.FindString(line); m != "" {
		return m
	}
	return ""
}

func extractResponseCode(line string) string {
	if m := bareCodeRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := statusCodeRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := codeCodeRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

func extractComponent(line string) string {
	if m := bracketComponentRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := suffixComponentRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := loggerComponentRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := classComponentRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := leadingComponentRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// extractHeaders parses an inline headers fragment into a map. Pairs split
// on commas, keys and values on the first colon; surrounding quotes and
// whitespace are trimmed. Malformed fragments yield nil, never an error.
func extractHeaders(line string) map[string]string {
	m := headersRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	headers := make(map[string]string)
	for _, pair := range strings.Split(m[1], ",") {
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		key = strings.Trim(strings.TrimSpace(key), `"'`)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" || value == "" {
			continue
		}
		headers[key] = value
	}

	if len(headers) == 0 {
		return nil
	}
	return headers
}
