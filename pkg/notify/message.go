package notify

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"failed":    ":x:",
	"cancelled": ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"completed": "Workflow Complete",
	"failed":    "Workflow Failed",
	"cancelled": "Workflow Cancelled",
}

// BuildWorkflowTerminalMessage creates Block Kit blocks for a terminal
// workflow notification.
func BuildWorkflowTerminalMessage(workflowID, status, response string) []goslack.Block {
	emoji := statusEmoji[status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[status]
	if label == "" {
		label = "Workflow " + status
	}

	headerText := fmt.Sprintf("%s *%s*\nWorkflow `%s`", emoji, label, workflowID)
	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	if status == "completed" && response != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(response), false, false),
			nil, nil,
		))
	}
	return blocks
}

// BuildApprovalMessage creates Block Kit blocks for a pending approval
// request.
func BuildApprovalMessage(requestID, artifactRef, goal, recommendation, deadline string) []goslack.Block {
	text := fmt.Sprintf(":raised_hand: *Approval needed* for `%s`\n*Request:* `%s`", artifactRef, requestID)
	if goal != "" {
		text += fmt.Sprintf("\n*Goal:* %s", truncateForSlack(goal))
	}
	if recommendation != "" {
		text += fmt.Sprintf("\n*Assessment:* %s", truncateForSlack(recommendation))
	}
	if deadline != "" {
		text += fmt.Sprintf("\n*Decide by:* %s", deadline)
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
