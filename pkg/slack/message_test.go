package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildJobFinishedMessage_Completed(t *testing.T) {
	input := JobFinishedInput{
		JobID:    "job-1",
		BatchID:  "batch-abc",
		Status:   "completed",
		Analysis: "Payment service returned 502 on every charge attempt.",
	}
	blocks := BuildJobFinishedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Analysis Complete")
	assert.Contains(t, header.Text.Text, "batch:batch-abc")

	content := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, content.Text.Text, "Payment service returned 502")

	action := blocks[2].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Full Analysis", btn.Text.Text)
	assert.Equal(t, "https://dash.example.com/batches/batch-abc", btn.URL)
}

func TestBuildJobFinishedMessage_CompletedNoAnalysis(t *testing.T) {
	input := JobFinishedInput{
		JobID:   "job-2",
		BatchID: "batch-abc",
		Status:  "completed",
	}
	blocks := BuildJobFinishedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 2)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "Analysis Complete")
}

func TestBuildJobFinishedMessage_Failed(t *testing.T) {
	input := JobFinishedInput{
		JobID:        "job-3",
		BatchID:      "batch-def",
		Status:       "failed",
		ErrorMessage: "analyzer call failed: connection refused",
	}
	blocks := BuildJobFinishedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Analysis Failed")
	assert.Contains(t, header.Text.Text, "batch:batch-def")

	errBlock := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, errBlock.Text.Text, "connection refused")

	action := blocks[2].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Batch", btn.Text.Text)
}

func TestBuildJobFinishedMessage_NoDashboardURL(t *testing.T) {
	input := JobFinishedInput{
		JobID:    "job-4",
		BatchID:  "batch-ghi",
		Status:   "completed",
		Analysis: "all quiet",
	}
	blocks := BuildJobFinishedMessage(input, "")

	// No action block when there is nowhere to link to.
	require.Len(t, blocks, 2)
	for _, block := range blocks {
		_, isAction := block.(*goslack.ActionBlock)
		assert.False(t, isAction)
	}
}

func TestBuildJobFinishedMessage_UnknownStatus(t *testing.T) {
	input := JobFinishedInput{
		JobID:   "job-5",
		BatchID: "batch-jkl",
		Status:  "in_progress",
	}
	blocks := BuildJobFinishedMessage(input, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":question:")
	assert.Contains(t, header.Text.Text, "Analysis in_progress")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.Less(t, len(result), len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
