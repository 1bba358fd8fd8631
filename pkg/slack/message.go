package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"failed":    ":x:",
}

var statusLabel = map[string]string{
	"completed": "Analysis Complete",
	"failed":    "Analysis Failed",
}

func batchURL(batchID, dashboardURL string) string {
	return fmt.Sprintf("%s/batches/%s", dashboardURL, batchID)
}

// BuildJobFinishedMessage creates Block Kit blocks for a terminal job
// notification. The header always carries the batch fingerprint so follow-up
// jobs for the same batch can thread under it.
func BuildJobFinishedMessage(input JobFinishedInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Analysis " + input.Status
	}

	headerText := fmt.Sprintf("%s *%s* — `%s`", emoji, label, BatchFingerprint(input.BatchID))

	var blocks []goslack.Block
	blocks = append(blocks, goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
		nil, nil,
	))

	switch {
	case input.Status == "completed" && input.Analysis != "":
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(input.Analysis), false, false),
			nil, nil,
		))
	case input.Status != "completed" && input.ErrorMessage != "":
		errText := fmt.Sprintf("*Error:*\n%s", truncateForSlack(input.ErrorMessage))
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, errText, false, false),
			nil, nil,
		))
	}

	if dashboardURL != "" {
		buttonText := "View Full Analysis"
		if input.Status != "completed" {
			buttonText = "View Batch"
		}
		btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, buttonText, false, false))
		btn.URL = batchURL(input.BatchID, dashboardURL)
		blocks = append(blocks, goslack.NewActionBlock("", btn))
	}

	return blocks
}

func truncateForSlack(text string) string {
	runes := []rune(text)
	if len(runes) <= maxBlockTextLength {
		return text
	}
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated)_"
}
