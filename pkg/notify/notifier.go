package notify

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// Notifier posts terminal-workflow and approval notifications. It satisfies
// both the queue's and the approval gate's notifier interfaces.
type Notifier struct {
	client    *Client
	approvals bool
}

// NewFromConfig builds the notifier from configuration. Returns nil when
// Slack is disabled or the token is missing; callers treat nil as "no
// notifications".
func NewFromConfig(cfg *config.NotifierConfig, features *config.FeatureFlags) *Notifier {
	if cfg == nil || !cfg.Slack.Enabled {
		return nil
	}
	token := os.Getenv(cfg.Slack.TokenEnv)
	if token == "" {
		slog.Warn("Slack notifications enabled but token env is empty", "token_env", cfg.Slack.TokenEnv)
		return nil
	}
	approvals := features != nil && features.ApprovalNotifications
	return &Notifier{
		client:    NewClient(token, cfg.Slack.Channel),
		approvals: approvals,
	}
}

// NewWithClient builds a notifier around an existing client. Used by tests.
func NewWithClient(client *Client, approvals bool) *Notifier {
	return &Notifier{client: client, approvals: approvals}
}

// WorkflowCompleted posts a terminal workflow notification.
func (n *Notifier) WorkflowCompleted(ctx context.Context, workflowID string, status models.WorkflowStatus, response string) {
	blocks := BuildWorkflowTerminalMessage(workflowID, string(status), response)
	if err := n.client.PostMessage(ctx, blocks); err != nil {
		slog.Warn("Failed to post workflow notification", "workflow_id", workflowID, "error", err)
	}
}

// ApprovalRequested posts a pending-approval notification.
func (n *Notifier) ApprovalRequested(ctx context.Context, req *ent.ApprovalRequest, goal string) {
	if !n.approvals {
		return
	}
	blocks := BuildApprovalMessage(
		req.ID,
		req.ArtifactRef,
		goal,
		req.Recommendation,
		req.DecisionDeadline.Format(time.RFC3339),
	)
	if err := n.client.PostMessage(ctx, blocks); err != nil {
		slog.Warn("Failed to post approval notification", "request_id", req.ID, "error", err)
	}
}
