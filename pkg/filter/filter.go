// Package filter narrows parsed log records by time window, level,
// keyword, component, and response code. Predicates combine with AND;
// a zero filter matches everything.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/subhashitt/LogPiolt/pkg/models"
)

// RecordFilter holds the optional predicates applied to a batch of
// records. Zero-valued fields are inactive.
type RecordFilter struct {
	// From and To bound the record timestamp, inclusive on both ends.
	// Timestamps are compared as parsed instants, not as strings.
	From *time.Time
	To   *time.Time

	// Level matches exactly against the normalized record level.
	Level models.LogLevel

	// Keyword is a case-insensitive substring match on the message.
	Keyword string

	// Component is a case-insensitive substring match on the component.
	Component string

	// ResponseCode matches either an exact 3-digit code ("404") or a
	// single category digit ("2".."5") that matches any code with that
	// leading digit.
	ResponseCode string
}

// Validate rejects filter values that can never match anything sensible
// so handlers can return a 400 instead of silently returning no rows.
func (f *RecordFilter) Validate() error {
	if f.Level != "" && !f.Level.Valid() {
		return fmt.Errorf("unknown level %q (want ERROR, WARN, INFO, or DEBUG)", f.Level)
	}
	if f.ResponseCode != "" && !validResponseCodeFilter(f.ResponseCode) {
		return fmt.Errorf("invalid responseCode filter %q (want a 3-digit code or a category digit 2-5)", f.ResponseCode)
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return fmt.Errorf("time window is empty: to %s is before from %s",
			f.To.Format(time.RFC3339), f.From.Format(time.RFC3339))
	}
	return nil
}

func validResponseCodeFilter(s string) bool {
	if len(s) != 1 && len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	// Category digits follow HTTP classes; exact codes just need the
	// same leading digit.
	return s[0] >= '1' && s[0] <= '5'
}

// Matches reports whether a single record satisfies every active
// predicate.
func (f *RecordFilter) Matches(rec models.LogRecord) bool {
	if f.From != nil || f.To != nil {
		ts, err := parseInstant(rec.Timestamp)
		if err != nil {
			// A record whose timestamp cannot be parsed can never be
			// placed inside a time window.
			return false
		}
		if f.From != nil && ts.Before(*f.From) {
			return false
		}
		if f.To != nil && ts.After(*f.To) {
			return false
		}
	}
	if f.Level != "" && rec.Level != f.Level {
		return false
	}
	if f.Keyword != "" && !containsFold(rec.Message, f.Keyword) {
		return false
	}
	if f.Component != "" && !containsFold(rec.Component, f.Component) {
		return false
	}
	if f.ResponseCode != "" && !matchResponseCode(rec.ResponseCode, f.ResponseCode) {
		return false
	}
	return true
}

// Apply returns the records that match, preserving batch order. The
// result is always a fresh slice; the input is never mutated.
func (f *RecordFilter) Apply(records []models.LogRecord) []models.LogRecord {
	out := make([]models.LogRecord, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// instantLayouts covers the timestamp families records actually carry:
// RFC 3339, zone-less ISO with either separator, and the slash date form.
// time.Parse accepts fractional seconds against all of them, so the
// millisecond variants need no layouts of their own. Zone-less forms are
// read as UTC.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
}

func parseInstant(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	// Syslog timestamps carry no year; assume the current one.
	if ts, err := time.Parse(time.Stamp, s); err == nil {
		return ts.AddDate(time.Now().Year(), 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchResponseCode(recCode, want string) bool {
	if recCode == "" {
		return false
	}
	if len(want) == 1 {
		return strings.HasPrefix(recCode, want)
	}
	return recCode == want
}
