package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestBatchFingerprint(t *testing.T) {
	assert.Equal(t, "batch:abc-123", BatchFingerprint("abc-123"))
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase",
			input:    "Batch INGESTED from gateway",
			expected: "batch ingested from gateway",
		},
		{
			name:     "collapse whitespace",
			input:    "analysis   complete\t\tfor\n\nbatch",
			expected: "analysis complete for batch",
		},
		{
			name:     "trim",
			input:    "  hello  ",
			expected: "hello",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeText(tt.input))
		})
	}
}

func TestCollectMessageText(t *testing.T) {
	tests := []struct {
		name     string
		msg      goslack.Message
		expected string
	}{
		{
			name: "text only",
			msg: goslack.Message{
				Msg: goslack.Msg{Text: "hello world"},
			},
			expected: "hello world",
		},
		{
			name: "section blocks are searched",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Blocks: goslack.Blocks{
						BlockSet: []goslack.Block{
							goslack.NewSectionBlock(
								goslack.NewTextBlockObject(goslack.MarkdownType, "batch:abc-123", false, false),
								nil, nil,
							),
						},
					},
				},
			},
			expected: "batch:abc-123",
		},
		{
			name: "text with attachment text and fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "alert",
					Attachments: []goslack.Attachment{
						{Text: "att text", Fallback: "att fallback"},
					},
				},
			},
			expected: "alert att text att fallback",
		},
		{
			name:     "empty message",
			msg:      goslack.Message{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collectMessageText(tt.msg))
		})
	}
}
