package parser

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhashitt/LogPiolt/pkg/models"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestParser() *Parser {
	return &Parser{now: func() time.Time { return testNow }}
}

func TestParseBatch_LineCountInvariant(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		count int
	}{
		{"single line", "ERROR something broke", 1},
		{"three lines", "a\nb\nc", 3},
		{"blank lines discarded", "a\n\n   \nb\n", 2},
		{"windows line endings", "a\r\nb\r\n", 2},
		{"only whitespace", "   \n\t\n", 0},
		{"empty input", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, _ := newTestParser().ParseBatch(tt.text)
			assert.Len(t, records, tt.count)
		})
	}
}

func TestParseBatch_IDsAreOrderedAndUnique(t *testing.T) {
	records, _ := newTestParser().ParseBatch("first\n\nsecond\nthird")
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, fmt.Sprintf("log-%d", i+1), rec.ID)
	}
}

func TestParseBatch_Diagnostics(t *testing.T) {
	_, diag := newTestParser().ParseBatch("a\n\nb\n")
	assert.Equal(t, 4, diag.TotalLines)
	assert.Equal(t, 2, diag.BlankLines)
	assert.Equal(t, 0, diag.Fallbacks)
}

func TestParseBatch_MessageIsTrimmedOriginalLine(t *testing.T) {
	records, _ := newTestParser().ParseBatch("   ERROR disk full   ")
	require.Len(t, records, 1)
	assert.Equal(t, "ERROR disk full", records[0].Message)
}

func TestExtractTimestamp(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name string
		line string
		want string
	}{
		{"iso with T", "2024-01-15T10:30:00 server started", "2024-01-15T10:30:00"},
		{"iso with space", "2024-01-15 10:30:00 server started", "2024-01-15 10:30:00"},
		{"iso with millis and zone", "at 2024-01-15T10:30:00.123+02:00 done", "2024-01-15T10:30:00.123+02:00"},
		{"iso zulu", "2024-01-15T10:30:00Z ok", "2024-01-15T10:30:00Z"},
		{"slash date", "12/25/2023 08:15:30 request handled", "12/25/2023 08:15:30"},
		{"syslog", "Jan  5 04:12:33 host sshd[123]: accepted", "Jan  5 04:12:33"},
		{"iso beats epoch", "2024-01-15T10:30:00 id=1700000000000", "2024-01-15T10:30:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.extractTimestamp(tt.line))
		})
	}
}

func TestExtractTimestamp_EpochMillisConversion(t *testing.T) {
	p := newTestParser()
	got := p.extractTimestamp("request 1700000000000 completed")
	assert.Equal(t, "2023-11-14T22:13:20.000Z", got)
}

func TestExtractTimestamp_FallbackIsCurrentInstant(t *testing.T) {
	p := newTestParser()
	got := p.extractTimestamp("no timestamp in here")
	assert.Equal(t, testNow.Format(time.RFC3339), got)
}

func TestExtractTimestamp_TwelveAndFourteenDigitRunsIgnored(t *testing.T) {
	p := newTestParser()
	assert.Equal(t, testNow.Format(time.RFC3339), p.extractTimestamp("id=170000000000"))
	assert.Equal(t, testNow.Format(time.RFC3339), p.extractTimestamp("id=17000000000000"))
}

func TestExtractLevel_Normalization(t *testing.T) {
	tests := []struct {
		line string
		want models.LogLevel
	}{
		{"ERROR out of memory", models.LevelError},
		{"fatal: connection reset", models.LevelError},
		{"CRITICAL disk failure", models.LevelError},
		{"WARNING low disk space", models.LevelWarn},
		{"warn retrying", models.LevelWarn},
		{"INFO started", models.LevelInfo},
		{"debug cache hit", models.LevelDebug},
		{"TRACE entering handler", models.LevelDebug},
		{"nothing to see here", models.LevelInfo},
		{"smirnoff is not a level", models.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, extractLevel(tt.line))
		})
	}
}

func TestParseBatch_LevelClosure(t *testing.T) {
	text := strings.Join([]string{
		"FATAL kernel panic",
		"WARNING almost full",
		"TRACE fn enter",
		"plain line",
		"CRITICAL meltdown",
	}, "\n")
	records, _ := newTestParser().ParseBatch(text)
	require.Len(t, records, 5)
	for _, rec := range records {
		assert.True(t, rec.Level.Valid(), "level %q not in closed set", rec.Level)
	}
}

func TestExtractURL(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"absolute http", "GET http://example.com/a?b=1 done", "http://example.com/a?b=1"},
		{"absolute https terminated by comma", "fetch https://api.example.com/v1/users, retrying", "https://api.example.com/v1/users"},
		{"absolute beats path", "GET https://example.com/x from /ignored", "https://example.com/x"},
		{"relative path", "GET /api/users/42 returned", "/api/users/42"},
		{"path with query", "hit /search?q=foo&page=2 ok", "/search?q=foo&page=2"},
		{"custom scheme", "dial grpc://10.0.0.1:50051 failed", "grpc://10.0.0.1:50051"},
		{"no url", "nothing here", ""},
		{"slash date is not a path", "12/25/2023 08:15:30 processed", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractURL(tt.line))
		})
	}
}

func TestExtractResponseCode(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"bare token", "GET /api/users 404 not found", "404"},
		{"status equals", "request finished status=503 upstream", "503"},
		{"status colon", "status: 201 created", "201"},
		{"code equals", "handler exited code=302", "302"},
		{"bare wins over keyword", "got 200 with status=500", "200"},
		{"not part of timestamp", "2024-01-15T10:30:00.123Z done", ""},
		{"not part of longer number", "id 123456 assigned", ""},
		{"first digit out of range", "took 999 ms", ""},
		{"none", "all quiet", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractResponseCode(tt.line))
		})
	}
}

func TestExtractComponent(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"bracket", "[auth] login failed", "auth"},
		{"bracket wins over suffix", "[AuthService] UserController handled request", "AuthService"},
		{"service suffix", "UserService rejected token", "UserService"},
		{"handler suffix", "request hit PaymentHandler ok", "PaymentHandler"},
		{"logger key", "logger=http.server listening", "http.server"},
		{"class key", "class: com.example.Worker run", "com.example.Worker"},
		{"leading word colon", "nginx: reload complete", "nginx"},
		{"none", "plain message", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractComponent(tt.line))
		})
	}
}

func TestExtractHeaders(t *testing.T) {
	t.Run("basic fragment", func(t *testing.T) {
		h := extractHeaders(`sent headers: {Content-Type: application/json, X-Request-Id: abc123}`)
		require.NotNil(t, h)
		assert.Equal(t, "application/json", h["Content-Type"])
		assert.Equal(t, "abc123", h["X-Request-Id"])
	})

	t.Run("quoted keys and values", func(t *testing.T) {
		h := extractHeaders(`headers={"Accept": "text/html", 'Host': 'example.com'}`)
		require.NotNil(t, h)
		assert.Equal(t, "text/html", h["Accept"])
		assert.Equal(t, "example.com", h["Host"])
	})

	t.Run("keyword is case-insensitive", func(t *testing.T) {
		h := extractHeaders(`HEADERS: {A: b}`)
		require.NotNil(t, h)
		assert.Equal(t, "b", h["A"])
	})

	t.Run("singular keyword", func(t *testing.T) {
		h := extractHeaders(`header: {A: b}`)
		require.NotNil(t, h)
	})

	t.Run("malformed pairs are skipped silently", func(t *testing.T) {
		h := extractHeaders(`headers: {novalue, : empty, Good: yes}`)
		require.NotNil(t, h)
		assert.Equal(t, map[string]string{"Good": "yes"}, h)
	})

	t.Run("empty braces yield nil", func(t *testing.T) {
		assert.Nil(t, extractHeaders(`headers: {}`))
	})

	t.Run("no fragment yields nil", func(t *testing.T) {
		assert.Nil(t, extractHeaders(`plain line`))
	})
}

func TestParseBatch_FullLine(t *testing.T) {
	line := `2024-01-15T10:30:00Z ERROR [AuthService] POST /api/login 401 headers: {X-Request-Id: r-1} bad credentials`
	records, _ := newTestParser().ParseBatch(line)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "log-1", rec.ID)
	assert.Equal(t, "2024-01-15T10:30:00Z", rec.Timestamp)
	assert.Equal(t, models.LevelError, rec.Level)
	assert.Equal(t, "AuthService", rec.Component)
	assert.Equal(t, "/api/login", rec.URL)
	assert.Equal(t, "401", rec.ResponseCode)
	assert.Equal(t, map[string]string{"X-Request-Id": "r-1"}, rec.Headers)
	assert.Equal(t, line, rec.Message)
}

func TestParseBatch_FallbackRecordGuarantee(t *testing.T) {
	p := newTestParser()
	p.preExtract = func(line string) {
		if strings.Contains(line, "poison") {
			panic("injected extraction fault")
		}
	}

	records, diag := p.ParseBatch("INFO before\npoison line\nINFO after")
	require.Len(t, records, 3, "faulty line must still yield exactly one record")
	assert.Equal(t, 1, diag.Fallbacks)

	fallback := records[1]
	assert.Equal(t, "log-2", fallback.ID)
	assert.Equal(t, models.LevelInfo, fallback.Level)
	assert.Equal(t, "poison line", fallback.Message)
	assert.Equal(t, testNow.Format(time.RFC3339), fallback.Timestamp)
	assert.Empty(t, fallback.Component)
	assert.Empty(t, fallback.URL)
	assert.Empty(t, fallback.ResponseCode)
	assert.Nil(t, fallback.Headers)

	// Surrounding lines parse normally.
	assert.Equal(t, "INFO before", records[0].Message)
	assert.Equal(t, "INFO after", records[2].Message)
}

func TestParseBatch_Deterministic(t *testing.T) {
	text := "ERROR [db] query failed 500\nWARN slow response /api/x\nplain"
	p := newTestParser()
	first, _ := p.ParseBatch(text)
	second, _ := p.ParseBatch(text)
	assert.Equal(t, first, second)
}
