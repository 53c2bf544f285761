// Package notify posts workflow and approval notifications to Slack. It is
// best effort: delivery failures are logged, never surfaced to the pipeline.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

// postTimeout bounds one chat.postMessage call.
const postTimeout = 10 * time.Second

// Client is a thin wrapper around the slack-go SDK.
type Client struct {
	api       *goslack.Client
	channelID string
	logger    *slog.Logger
}

// NewClient creates a new Slack API client.
func NewClient(token, channelID string) *Client {
	return &Client{
		api:       goslack.New(token),
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// NewClientWithAPIURL creates a Slack API client that targets a custom API URL.
// Useful for testing with a mock server.
func NewClientWithAPIURL(token, channelID, apiURL string) *Client {
	return &Client{
		api:       goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// PostMessage sends a Block Kit message to the configured channel.
func (c *Client) PostMessage(ctx context.Context, blocks []goslack.Block) error {
	ctx, cancel := context.WithTimeout(ctx, postTimeout)
	defer cancel()

	_, _, err := c.api.PostMessageContext(ctx, c.channelID, goslack.MsgOptionBlocks(blocks...))
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}
