// Package parser converts free-text application log lines into structured
// records using layered heuristic pattern matching. Parsing is deterministic,
// stateless across lines, and never drops a line: malformed input yields a
// minimal fallback record instead of an error.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/subhashitt/LogPiolt/pkg/models"
)

// Parser converts raw log text into structured LogRecords.
// Safe for concurrent use; all pattern state is compiled package-level.
type Parser struct {
	now func() time.Time

	// preExtract is a test seam for forcing per-line extraction faults.
	preExtract func(line string)
}

// NewParser creates a Parser that stamps unmatched timestamps with the
// current time.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// Diagnostics carries advisory counts from one ParseBatch invocation.
// They are informational only and never influence parsing behavior.
type Diagnostics struct {
	// TotalLines is the number of raw lines in the input, blank or not.
	TotalLines int
	// BlankLines is the number of lines discarded as empty after trimming.
	BlankLines int
	// Fallbacks is the number of records produced via panic recovery.
	Fallbacks int
}

// ParseBatch splits text on line breaks and parses every non-blank line into
// exactly one LogRecord, in input order. Record IDs encode the 1-based
// position within the batch ("log-<n>").
func (p *Parser) ParseBatch(text string) ([]models.LogRecord, Diagnostics) {
	var diag Diagnostics

	lines := strings.Split(text, "\n")
	diag.TotalLines = len(lines)

	records := make([]models.LogRecord, 0, len(lines))
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			diag.BlankLines++
			continue
		}

		rec, fellBack := p.parseLine(line, len(records)+1)
		if fellBack {
			diag.Fallbacks++
		}
		records = append(records, rec)
	}

	return records, diag
}

// parseLine extracts all fields from one trimmed, non-empty line. Any panic
// during extraction is downgraded to a fallback record so a single bad line
// can never abort the batch.
func (p *Parser) parseLine(line string, n int) (rec models.LogRecord, fellBack bool) {
	defer func() {
		if r := recover(); r != nil {
			rec = p.fallbackRecord(line, n)
			fellBack = true
		}
	}()

	if p.preExtract != nil {
		p.preExtract(line)
	}

	rec = models.LogRecord{
		ID:           recordID(n),
		Timestamp:    p.extractTimestamp(line),
		Level:        extractLevel(line),
		Message:      line,
		Component:    extractComponent(line),
		URL:          extractURL(line),
		ResponseCode: extractResponseCode(line),
		Headers:      extractHeaders(line),
	}
	return rec, false
}

// fallbackRecord builds the minimal record emitted when extraction fails:
// current timestamp, INFO level, no optional fields.
func (p *Parser) fallbackRecord(line string, n int) models.LogRecord {
	msg := strings.TrimSpace(line)
	if msg == "" {
		msg = fmt.Sprintf("(unparseable line %d)", n)
	}
	return models.LogRecord{
		ID:        recordID(n),
		Timestamp: p.now().UTC().Format(time.RFC3339),
		Level:     models.LevelInfo,
		Message:   msg,
	}
}

func recordID(n int) string {
	return fmt.Sprintf("log-%d", n)
}
