package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/pkg/models"
)

func ts(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return &parsed
}

func sampleRecords() []models.LogRecord {
	return []models.LogRecord{
		{
			ID:        "log-1",
			Timestamp: "2026-03-14T09:00:00Z",
			Level:     models.LevelInfo,
			Message:   "user login succeeded",
			Component: "AuthService",
		},
		{
			ID:           "log-2",
			Timestamp:    "2026-03-14T09:05:00Z",
			Level:        models.LevelError,
			Message:      "upstream returned failure",
			Component:    "PaymentService",
			ResponseCode: "502",
		},
		{
			ID:           "log-3",
			Timestamp:    "2026-03-14T09:10:00.500Z",
			Level:        models.LevelWarn,
			Message:      "slow response from cache",
			Component:    "CacheModule",
			ResponseCode: "200",
		},
		{
			ID:        "log-4",
			Timestamp: "not-a-timestamp",
			Level:     models.LevelInfo,
			Message:   "fallback record for a weird line",
		},
	}
}

func ids(records []models.LogRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestApply_EmptyFilterMatchesAll(t *testing.T) {
	f := &RecordFilter{}
	got := f.Apply(sampleRecords())
	assert.Equal(t, []string{"log-1", "log-2", "log-3", "log-4"}, ids(got))
}

func TestApply_TimeWindow(t *testing.T) {
	t.Run("inclusive lower bound", func(t *testing.T) {
		f := &RecordFilter{From: ts(t, "2026-03-14T09:05:00Z")}
		assert.Equal(t, []string{"log-2", "log-3"}, ids(f.Apply(sampleRecords())))
	})

	t.Run("inclusive upper bound", func(t *testing.T) {
		f := &RecordFilter{To: ts(t, "2026-03-14T09:05:00Z")}
		assert.Equal(t, []string{"log-1", "log-2"}, ids(f.Apply(sampleRecords())))
	})

	t.Run("both bounds", func(t *testing.T) {
		f := &RecordFilter{
			From: ts(t, "2026-03-14T09:01:00Z"),
			To:   ts(t, "2026-03-14T09:11:00Z"),
		}
		assert.Equal(t, []string{"log-2", "log-3"}, ids(f.Apply(sampleRecords())))
	})

	t.Run("compared as instants, not strings", func(t *testing.T) {
		// log-3 carries fractional seconds; string comparison against a
		// plain RFC3339 bound would misorder it.
		f := &RecordFilter{
			From: ts(t, "2026-03-14T09:10:00Z"),
			To:   ts(t, "2026-03-14T09:10:01Z"),
		}
		assert.Equal(t, []string{"log-3"}, ids(f.Apply(sampleRecords())))
	})

	t.Run("unparseable timestamp excluded from any window", func(t *testing.T) {
		f := &RecordFilter{From: ts(t, "2000-01-01T00:00:00Z")}
		got := ids(f.Apply(sampleRecords()))
		assert.NotContains(t, got, "log-4")
	})
}

// Records carry timestamps in whichever form the source line used; the
// window must place every recognized family, not just RFC 3339.
func TestApply_TimeWindowAcrossTimestampForms(t *testing.T) {
	records := []models.LogRecord{
		{ID: "log-1", Timestamp: "2024-01-15 10:30:45", Level: models.LevelError, Message: "boom"},
		{ID: "log-2", Timestamp: "2024-01-15T10:30:45", Level: models.LevelInfo, Message: "plain T form"},
		{ID: "log-3", Timestamp: "01/15/2024 10:30:45", Level: models.LevelWarn, Message: "slow"},
		{ID: "log-4", Timestamp: "2024-01-15 10:30:45.123+02:00", Level: models.LevelInfo, Message: "zoned space form"},
		{ID: "log-5", Timestamp: "2024-03-15T10:30:45Z", Level: models.LevelInfo, Message: "outside window"},
	}

	f := &RecordFilter{
		From: ts(t, "2024-01-01T00:00:00Z"),
		To:   ts(t, "2024-02-01T00:00:00Z"),
	}
	assert.Equal(t, []string{"log-1", "log-2", "log-3", "log-4"}, ids(f.Apply(records)))
}

func TestApply_TimeWindowSyslogForm(t *testing.T) {
	// Syslog timestamps carry no year and are pinned to the current one.
	year := time.Now().Year()
	from := time.Date(year, time.March, 14, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.March, 15, 0, 0, 0, 0, time.UTC)

	records := []models.LogRecord{
		{ID: "log-1", Timestamp: "Mar 14 09:00:00", Level: models.LevelInfo, Message: "inside"},
		{ID: "log-2", Timestamp: "Apr  2 09:00:00", Level: models.LevelInfo, Message: "outside"},
	}

	f := &RecordFilter{From: &from, To: &to}
	assert.Equal(t, []string{"log-1"}, ids(f.Apply(records)))
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // RFC 3339 UTC rendering of the expected instant
	}{
		{"rfc3339", "2024-01-15T10:30:45Z", "2024-01-15T10:30:45Z"},
		{"rfc3339 with offset", "2024-01-15T10:30:45+02:00", "2024-01-15T08:30:45Z"},
		{"iso space separator", "2024-01-15 10:30:45", "2024-01-15T10:30:45Z"},
		{"iso zone-less T", "2024-01-15T10:30:45", "2024-01-15T10:30:45Z"},
		{"iso space with millis", "2024-01-15 10:30:45.123", "2024-01-15T10:30:45.123Z"},
		{"iso space with zone", "2024-01-15 10:30:45+02:00", "2024-01-15T08:30:45Z"},
		{"slash date", "01/15/2024 10:30:45", "2024-01-15T10:30:45Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInstant(tt.input)
			require.NoError(t, err)
			want, err := time.Parse(time.RFC3339, tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}

	t.Run("syslog assumes current year", func(t *testing.T) {
		got, err := parseInstant("Mar 14 09:00:00")
		require.NoError(t, err)
		assert.Equal(t, time.Now().Year(), got.Year())
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 14, got.Day())
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := parseInstant("not-a-timestamp")
		require.Error(t, err)
	})
}

func TestApply_Level(t *testing.T) {
	f := &RecordFilter{Level: models.LevelError}
	assert.Equal(t, []string{"log-2"}, ids(f.Apply(sampleRecords())))
}

func TestApply_Keyword(t *testing.T) {
	t.Run("case-insensitive substring", func(t *testing.T) {
		f := &RecordFilter{Keyword: "FAILURE"}
		assert.Equal(t, []string{"log-2"}, ids(f.Apply(sampleRecords())))
	})

	t.Run("substring, not whole word", func(t *testing.T) {
		f := &RecordFilter{Keyword: "respon"}
		assert.Equal(t, []string{"log-3"}, ids(f.Apply(sampleRecords())))
	})

	t.Run("no match", func(t *testing.T) {
		f := &RecordFilter{Keyword: "nonexistent"}
		assert.Empty(t, f.Apply(sampleRecords()))
	})
}

func TestApply_Component(t *testing.T) {
	t.Run("case-insensitive substring", func(t *testing.T) {
		f := &RecordFilter{Component: "service"}
		assert.Equal(t, []string{"log-1", "log-2"}, ids(f.Apply(sampleRecords())))
	})

	t.Run("record without component never matches", func(t *testing.T) {
		f := &RecordFilter{Component: "anything"}
		got := ids(f.Apply(sampleRecords()))
		assert.NotContains(t, got, "log-4")
	})
}

func TestApply_ResponseCode(t *testing.T) {
	t.Run("exact code", func(t *testing.T) {
		f := &RecordFilter{ResponseCode: "502"}
		assert.Equal(t, []string{"log-2"}, ids(f.Apply(sampleRecords())))
	})

	t.Run("category digit", func(t *testing.T) {
		f := &RecordFilter{ResponseCode: "5"}
		assert.Equal(t, []string{"log-2"}, ids(f.Apply(sampleRecords())))

		f = &RecordFilter{ResponseCode: "2"}
		assert.Equal(t, []string{"log-3"}, ids(f.Apply(sampleRecords())))
	})

	t.Run("record without a code never matches", func(t *testing.T) {
		f := &RecordFilter{ResponseCode: "2"}
		got := ids(f.Apply(sampleRecords()))
		assert.NotContains(t, got, "log-1")
	})
}

func TestApply_PredicatesCombineWithAND(t *testing.T) {
	f := &RecordFilter{
		From:      ts(t, "2026-03-14T09:00:00Z"),
		To:        ts(t, "2026-03-14T10:00:00Z"),
		Level:     models.LevelError,
		Keyword:   "upstream",
		Component: "payment",
	}
	assert.Equal(t, []string{"log-2"}, ids(f.Apply(sampleRecords())))

	// Flipping any single predicate empties the result.
	f.Level = models.LevelDebug
	assert.Empty(t, f.Apply(sampleRecords()))
}

func TestApply_PreservesOrderAndInput(t *testing.T) {
	in := sampleRecords()
	f := &RecordFilter{Level: models.LevelInfo}
	got := f.Apply(in)

	assert.Equal(t, []string{"log-1", "log-4"}, ids(got))
	assert.Len(t, in, 4, "input slice must not be mutated")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  RecordFilter
		wantErr string
	}{
		{"zero filter", RecordFilter{}, ""},
		{"valid level", RecordFilter{Level: models.LevelWarn}, ""},
		{"unknown level", RecordFilter{Level: "VERBOSE"}, "unknown level"},
		{"valid exact code", RecordFilter{ResponseCode: "404"}, ""},
		{"valid category", RecordFilter{ResponseCode: "4"}, ""},
		{"two-digit code", RecordFilter{ResponseCode: "40"}, "invalid responseCode"},
		{"non-numeric code", RecordFilter{ResponseCode: "4xx"}, "invalid responseCode"},
		{"out-of-range category", RecordFilter{ResponseCode: "9"}, "invalid responseCode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}

	t.Run("inverted window", func(t *testing.T) {
		f := RecordFilter{
			From: ts(t, "2026-03-14T10:00:00Z"),
			To:   ts(t, "2026-03-14T09:00:00Z"),
		}
		require.Error(t, f.Validate())
	})
}
