package slack

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	goslack "github.com/slack-go/slack"
)

// threadLookback bounds how far back channel history is searched when
// resolving a thread for a batch fingerprint.
const threadLookback = 24 * time.Hour

// Client is a thin wrapper around the slack-go SDK bound to one channel.
type Client struct {
	api       *goslack.Client
	channelID string
	logger    *slog.Logger
}

// NewClient creates a Slack API client for the given channel.
func NewClient(token, channelID string) *Client {
	return &Client{
		api:       goslack.New(token),
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// NewClientWithAPIURL creates a client that targets a custom API URL.
// Used by tests to point at a mock Slack server.
func NewClientWithAPIURL(token, channelID, apiURL string) *Client {
	return &Client{
		api:       goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// PostMessage sends Block Kit blocks to the configured channel.
// A non-empty threadTS posts the message as a threaded reply.
func (c *Client) PostMessage(ctx context.Context, blocks []goslack.Block, threadTS string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := []goslack.MsgOption{
		goslack.MsgOptionBlocks(blocks...),
	}
	if threadTS != "" {
		opts = append(opts, goslack.MsgOptionTS(threadTS))
	}

	_, _, err := c.api.PostMessageContext(ctx, c.channelID, opts...)
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

// FindMessageByFingerprint scans recent channel history for a message whose
// text contains the fingerprint. Returns the message timestamp (ts) for
// threading, or empty string when no match exists in the lookback window.
func (c *Client) FindMessageByFingerprint(ctx context.Context, fingerprint string) (string, error) {
	params := &goslack.GetConversationHistoryParameters{
		ChannelID: c.channelID,
		Oldest:    strconv.FormatInt(time.Now().Add(-threadLookback).Unix(), 10),
		Limit:     50,
	}
	history, err := c.api.GetConversationHistoryContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("conversations.history failed: %w", err)
	}

	want := normalizeText(fingerprint)
	for _, msg := range history.Messages {
		if strings.Contains(normalizeText(collectMessageText(msg)), want) {
			return msg.Timestamp, nil
		}
	}
	return "", nil
}
