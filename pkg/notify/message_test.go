package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goslack "github.com/slack-go/slack"
)

func sectionText(t *testing.T, block goslack.Block) string {
	t.Helper()
	section, ok := block.(*goslack.SectionBlock)
	require.True(t, ok, "expected a section block")
	return section.Text.Text
}

func TestBuildWorkflowTerminalMessage(t *testing.T) {
	t.Run("completed includes the response", func(t *testing.T) {
		blocks := BuildWorkflowTerminalMessage("wf-1", "completed", "the answer")
		require.Len(t, blocks, 2)
		assert.Contains(t, sectionText(t, blocks[0]), "Workflow Complete")
		assert.Contains(t, sectionText(t, blocks[0]), "wf-1")
		assert.Equal(t, "the answer", sectionText(t, blocks[1]))
	})

	t.Run("failed has no response block", func(t *testing.T) {
		blocks := BuildWorkflowTerminalMessage("wf-2", "failed", "")
		require.Len(t, blocks, 1)
		assert.Contains(t, sectionText(t, blocks[0]), ":x:")
	})

	t.Run("unknown status falls back", func(t *testing.T) {
		blocks := BuildWorkflowTerminalMessage("wf-3", "paused", "")
		require.Len(t, blocks, 1)
		assert.Contains(t, sectionText(t, blocks[0]), "Workflow paused")
	})
}

func TestBuildApprovalMessage(t *testing.T) {
	blocks := BuildApprovalMessage("req-1", "plan:p-1", "ship it", "risk 0.7", "2026-01-01T00:00:00Z")
	require.Len(t, blocks, 1)
	text := sectionText(t, blocks[0])
	assert.Contains(t, text, "req-1")
	assert.Contains(t, text, "plan:p-1")
	assert.Contains(t, text, "ship it")
	assert.Contains(t, text, "risk 0.7")
}

func TestTruncateForSlack(t *testing.T) {
	long := strings.Repeat("x", maxBlockTextLength+100)
	got := truncateForSlack(long)
	assert.Contains(t, got, "truncated")
	assert.Less(t, len(got), len(long))

	assert.Equal(t, "short", truncateForSlack("short"))
}
