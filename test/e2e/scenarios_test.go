package e2e

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entplan "github.com/codeready-toolchain/maestro/ent/plan"
	entstep "github.com/codeready-toolchain/maestro/ent/step"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
)

const awaitTimeout = 45 * time.Second

// A provided task type skips interpretation, so the pipeline is exactly two
// model calls: semantic validation and the direct answer.
func TestSimpleQuestionShortcut(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("semantic_validator", LLMScriptEntry{Text: `{"valid": true}`})
	llm.AddRouted("execution", LLMScriptEntry{Text: "Paris"})

	app := NewTestApp(t, WithLLMClient(llm))

	wf := app.Submit(t, models.CreateWorkflowRequest{
		RequestType: models.RequestTypeSimpleQuestion,
		Message:     "What is the capital of France?",
	})

	result := app.AwaitTerminal(t, wf.ID, awaitTimeout)
	assert.Equal(t, models.WorkflowCompleted, result.Status)
	assert.Equal(t, "Paris", result.Response)
	assert.Equal(t, models.RequestTypeSimpleQuestion, result.TaskType)
	assert.Equal(t, 2, llm.CallCount())

	// No plan is ever drafted on the direct path.
	assert.Empty(t, app.PlansOf(t, wf.ID))

	events := app.EventsOf(t, wf.ID)
	require.NotEmpty(t, events)
	assert.Equal(t, models.EventWorkflowStart, events[0].EventType)
	assert.Equal(t, models.EventWorkflowComplete, events[len(events)-1].EventType)

	routed := 0
	for _, ev := range events {
		if ev.Stage == models.StageRouting && ev.EventType == models.EventStageCompleted {
			routed++
		}
	}
	assert.Equal(t, 1, routed, "routing stage should complete exactly once")
}

// Three low-risk inline steps land exactly on the auto-approval boundary for
// code generation, so the plan executes without a human in the loop.
func TestCodeGenerationAutoApproved(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("semantic_validator", LLMScriptEntry{Text: `{"valid": true}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `{
		"approach": "scaffold, implement, verify",
		"assumptions": ["standard library only"],
		"constraints": ["single file"],
		"success_criteria": ["parses", "passes review"]
	}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `[
		{"name": "scaffold", "description": "write the skeleton", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 10000, "risk_level": "low"},
		{"name": "implement", "description": "fill in the logic", "type": "action",
		 "executor_kind": "inline_llm", "depends_on": ["scaffold"], "timeout_ms": 10000, "risk_level": "low"},
		{"name": "review", "description": "self-review the result", "type": "validation",
		 "executor_kind": "inline_llm", "depends_on": ["implement"], "timeout_ms": 10000, "risk_level": "low"}
	]`})
	llm.AddRouted("execution", LLMScriptEntry{Text: "package main"})
	llm.AddRouted("execution", LLMScriptEntry{Text: "func main() {}"})
	llm.AddRouted("execution", LLMScriptEntry{Text: "looks good: package main / func main() {}"})

	app := NewTestApp(t, WithLLMClient(llm))

	wf := app.Submit(t, models.CreateWorkflowRequest{
		RequestType: models.RequestTypeCodeGeneration,
		Message:     "Write a hello world program",
	})

	result := app.AwaitTerminal(t, wf.ID, awaitTimeout)
	assert.Equal(t, models.WorkflowCompleted, result.Status)
	assert.Equal(t, "looks good: package main / func main() {}", result.Response)

	plans := app.PlansOf(t, wf.ID)
	require.Len(t, plans, 1)
	assert.Equal(t, entplan.StatusCompleted, plans[0].Status)
	assert.True(t, plans[0].Primary)
	assert.InDelta(t, 0.3, plans[0].RiskScore, 0.001)

	steps := app.StepsOf(t, plans[0].ID)
	require.Len(t, steps, 3)
	for _, step := range steps {
		assert.Equal(t, entstep.StateSucceeded, step.State)
	}

	// Auto-approval leaves a decided event but never a pending request.
	pending, err := app.Gate.Pending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)

	var decided *models.EventRecord
	for _, ev := range app.EventsOf(t, wf.ID) {
		if ev.EventType == models.EventApprovalDecided {
			decided = ev
		}
	}
	require.NotNil(t, decided)
	assert.Equal(t, true, decided.EventMetadata["auto"])
}

// A complex task above the risk threshold waits on a human decision; a
// rejection fails the workflow and the plan.
func TestComplexTaskRejection(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("semantic_validator", LLMScriptEntry{Text: `{"valid": true}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `{
		"approach": "migrate the cluster in place",
		"assumptions": [],
		"constraints": [],
		"success_criteria": ["no downtime"]
	}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `[
		{"name": "drain", "description": "drain traffic from the primary", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 30000, "risk_level": "medium"},
		{"name": "migrate", "description": "run the migration", "type": "action",
		 "executor_kind": "inline_llm", "depends_on": ["drain"], "timeout_ms": 30000, "risk_level": "medium"}
	]`})

	app := NewTestApp(t, WithLLMClient(llm))

	wf := app.Submit(t, models.CreateWorkflowRequest{
		RequestType: models.RequestTypeComplexTask,
		Message:     "Migrate the production database cluster",
	})

	req := app.PendingApproval(t, wf.ID, 30*time.Second)
	_, err := app.Gate.Reject(context.Background(), req.ID, "reviewer", "too risky for this window")
	require.NoError(t, err)

	result := app.AwaitTerminal(t, wf.ID, awaitTimeout)
	assert.Equal(t, models.WorkflowFailed, result.Status)
	assert.Equal(t, "ApprovalRejected", result.ErrorKind)
	assert.Equal(t, "approval_rejected", result.ReasonCode)

	plans := app.PlansOf(t, wf.ID)
	require.Len(t, plans, 1)
	assert.Equal(t, entplan.StatusFailed, plans[0].Status)
	require.NotNil(t, plans[0].ReasonCode)
	assert.Equal(t, "human_reject", *plans[0].ReasonCode)
}

// A "modify" decision carries the reviewer's feedback back into planning: the
// second plan version is drafted with that feedback in the prompt and runs to
// completion once approved.
func TestPlanModifiedWithFeedback(t *testing.T) {
	const feedback = "switch to a rolling migration, one shard at a time"

	llm := NewScriptedLLMClient()
	llm.AddRouted("semantic_validator", LLMScriptEntry{Text: `{"valid": true}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `{
		"approach": "migrate the cluster in place",
		"assumptions": [], "constraints": [], "success_criteria": ["no downtime"]
	}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `[
		{"name": "migrate", "description": "run the migration", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 30000, "risk_level": "medium"}
	]`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `{
		"approach": "roll the migration shard by shard",
		"assumptions": [], "constraints": [], "success_criteria": ["no downtime"]
	}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `[
		{"name": "migrate_shards", "description": "migrate one shard at a time", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 30000, "risk_level": "medium"}
	]`})
	llm.AddRouted("execution", LLMScriptEntry{Text: "all shards migrated"})

	app := NewTestApp(t, WithLLMClient(llm))
	ctx := context.Background()

	wf := app.Submit(t, models.CreateWorkflowRequest{
		RequestType: models.RequestTypeComplexTask,
		Message:     "Migrate the production database cluster",
	})

	first := app.PendingApproval(t, wf.ID, 30*time.Second)
	_, err := app.Gate.Modify(ctx, first.ID, "reviewer", feedback)
	require.NoError(t, err)

	second := app.PendingApproval(t, wf.ID, 30*time.Second)
	require.NotEqual(t, first.ID, second.ID)
	_, err = app.Gate.Approve(ctx, second.ID, "reviewer", "")
	require.NoError(t, err)

	result := app.AwaitTerminal(t, wf.ID, awaitTimeout)
	assert.Equal(t, models.WorkflowCompleted, result.Status)
	assert.Equal(t, "all shards migrated", result.Response)

	plans := app.PlansOf(t, wf.ID)
	require.Len(t, plans, 2)
	assert.Equal(t, entplan.StatusSuperseded, plans[0].Status)
	assert.Equal(t, entplan.StatusCompleted, plans[1].Status)

	// The reviewer's feedback must reach the second planning round.
	seen := false
	for _, req := range llm.CapturedRequests() {
		for _, msg := range req.Messages {
			if req.ComponentRole == "planning" && strings.Contains(msg.Content, feedback) {
				seen = true
			}
		}
	}
	assert.True(t, seen, "modification feedback should appear in the re-planning prompt")
}

// A step that exhausts its retry budget triggers a replan: the first plan is
// superseded and the second version runs to completion.
func TestStepRetryThenReplan(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("semantic_validator", LLMScriptEntry{Text: `{"valid": true}`})

	// v1 strategy and steps, then the replanned v2 pair.
	llm.AddRouted("planning", LLMScriptEntry{Text: `{
		"approach": "fetch then transform",
		"assumptions": [], "constraints": [], "success_criteria": ["output produced"]
	}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `[
		{"name": "fetch", "description": "fetch the source data", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 10000, "risk_level": "low",
		 "retry_policy": {"max_attempts": 2, "backoff_base_ms": 10}},
		{"name": "transform", "description": "transform the payload", "type": "action",
		 "executor_kind": "inline_llm", "depends_on": ["fetch"], "timeout_ms": 10000, "risk_level": "low",
		 "retry_policy": {"max_attempts": 2, "backoff_base_ms": 10}}
	]`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `{
		"approach": "fetch then transform with a smaller batch",
		"assumptions": ["previous transform overloaded the backend"],
		"constraints": [], "success_criteria": ["output produced"]
	}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `[
		{"name": "fetch", "description": "fetch the source data", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 10000, "risk_level": "low",
		 "retry_policy": {"max_attempts": 2, "backoff_base_ms": 10}},
		{"name": "transform_small", "description": "transform in small batches", "type": "action",
		 "executor_kind": "inline_llm", "depends_on": ["fetch"], "timeout_ms": 10000, "risk_level": "low",
		 "retry_policy": {"max_attempts": 2, "backoff_base_ms": 10}}
	]`})

	llm.AddRouted("execution", LLMScriptEntry{Text: "raw records"})
	llm.AddRouted("execution", LLMScriptEntry{Error: errors.New("backend hiccup")})
	llm.AddRouted("execution", LLMScriptEntry{Error: errors.New("backend hiccup again")})
	llm.AddRouted("execution", LLMScriptEntry{Text: "raw records"})
	llm.AddRouted("execution", LLMScriptEntry{Text: "final transformed output"})

	app := NewTestApp(t, WithLLMClient(llm))

	wf := app.Submit(t, models.CreateWorkflowRequest{
		RequestType: models.RequestTypeCodeGeneration,
		Message:     "Transform the export into the new format",
	})

	result := app.AwaitTerminal(t, wf.ID, awaitTimeout)
	assert.Equal(t, models.WorkflowCompleted, result.Status)
	assert.Equal(t, "final transformed output", result.Response)

	plans := app.PlansOf(t, wf.ID)
	require.Len(t, plans, 2)
	assert.Equal(t, 1, plans[0].Version)
	assert.Equal(t, entplan.StatusSuperseded, plans[0].Status)
	assert.Equal(t, 2, plans[1].Version)
	assert.Equal(t, entplan.StatusCompleted, plans[1].Status)
	assert.True(t, plans[1].Primary)

	// First failure retries, second exhausts the budget.
	var retryFlags []bool
	superseded := false
	for _, ev := range app.EventsOf(t, wf.ID) {
		switch ev.EventType {
		case models.EventStepFailed:
			if flag, ok := ev.EventMetadata["retrying"].(bool); ok {
				retryFlags = append(retryFlags, flag)
			}
		case models.EventPlanSuperseded:
			superseded = true
		}
	}
	assert.Equal(t, []bool{true, false}, retryFlags)
	assert.True(t, superseded)
}

// A registered in-process tool that overruns its wall-clock budget surfaces a
// sandbox violation, and the workflow fails without replanning because the
// step was human-gated.
func TestSandboxWallClockViolation(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("semantic_validator", LLMScriptEntry{Text: `{"valid": true}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `{
		"approach": "probe the endpoint",
		"assumptions": [], "constraints": [], "success_criteria": ["probe returns"]
	}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `[
		{"name": "probe", "description": "probe the slow endpoint", "type": "action",
		 "executor_kind": "tool", "executor_ref": "slow_probe", "timeout_ms": 300,
		 "risk_level": "medium", "approval_required": true,
		 "retry_policy": {"max_attempts": 1, "backoff_base_ms": 10},
		 "function_call": {"name": "slow_probe", "arguments": {}}}
	]`})

	app := NewTestApp(t, WithLLMClient(llm))
	ctx := context.Background()

	created, err := app.Registry.CreateTool(ctx, registry.CreateToolRequest{
		Name:         "slow_probe",
		Capabilities: []string{"network"},
		InputSchema:  map[string]any{"type": "object"},
		Handler:      "slow_probe",
	})
	require.NoError(t, err)
	_, err = app.Registry.TransitionTool(ctx, "slow_probe", models.RegistryActive, created.Version)
	require.NoError(t, err)

	app.Sandbox.RegisterHandler("slow_probe", func(ctx context.Context, args map[string]any) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	wf := app.Submit(t, models.CreateWorkflowRequest{
		RequestType: models.RequestTypeInformationQuery,
		Message:     "Probe the upstream endpoint for its status",
	})

	result := app.AwaitTerminal(t, wf.ID, awaitTimeout)
	assert.Equal(t, models.WorkflowFailed, result.Status)
	assert.Equal(t, "ExecutionError", result.ErrorKind)
	assert.Equal(t, "sandbox_timeout", result.ReasonCode)

	plans := app.PlansOf(t, wf.ID)
	require.Len(t, plans, 1)
	assert.Equal(t, entplan.StatusFailed, plans[0].Status)

	steps := app.StepsOf(t, plans[0].ID)
	require.Len(t, steps, 1)
	assert.Equal(t, entstep.StateFailed, steps[0].State)
	require.NotNil(t, steps[0].ReasonCode)
	assert.Equal(t, "sandbox_timeout", *steps[0].ReasonCode)
}

// When a human-gated step exhausts its attempts, its dependents cannot run:
// they are skipped as dependency_failed and the plan settles as failed
// instead of waiting on steps that will never become ready.
func TestDependentSkippedAfterStepFailure(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("semantic_validator", LLMScriptEntry{Text: `{"valid": true}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `{
		"approach": "fetch the dataset, then summarize it",
		"assumptions": [], "constraints": [], "success_criteria": ["summary produced"]
	}`})
	llm.AddRouted("planning", LLMScriptEntry{Text: `[
		{"name": "fetch", "description": "fetch the dataset", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 10000, "risk_level": "medium",
		 "approval_required": true,
		 "retry_policy": {"max_attempts": 1, "backoff_base_ms": 10}},
		{"name": "summarize", "description": "summarize the dataset", "type": "action",
		 "executor_kind": "inline_llm", "depends_on": ["fetch"], "timeout_ms": 10000, "risk_level": "low",
		 "retry_policy": {"max_attempts": 1, "backoff_base_ms": 10}}
	]`})
	llm.AddRouted("execution", LLMScriptEntry{Error: errors.New("upstream gone")})

	app := NewTestApp(t, WithLLMClient(llm))

	wf := app.Submit(t, models.CreateWorkflowRequest{
		RequestType: models.RequestTypeInformationQuery,
		Message:     "Summarize the quarterly dataset",
	})

	result := app.AwaitTerminal(t, wf.ID, awaitTimeout)
	assert.Equal(t, models.WorkflowFailed, result.Status)
	assert.Equal(t, "step_error", result.ReasonCode)

	plans := app.PlansOf(t, wf.ID)
	require.Len(t, plans, 1)
	assert.Equal(t, entplan.StatusFailed, plans[0].Status)

	steps := app.StepsOf(t, plans[0].ID)
	require.Len(t, steps, 2)
	assert.Equal(t, entstep.StateFailed, steps[0].State)
	assert.Equal(t, entstep.StateSkipped, steps[1].State)
	require.NotNil(t, steps[1].ReasonCode)
	assert.Equal(t, "dependency_failed", *steps[1].ReasonCode)

	skippedEvents := 0
	for _, ev := range app.EventsOf(t, wf.ID) {
		if ev.EventType == models.EventStepSkipped && ev.ReasonCode == "dependency_failed" {
			skippedEvents++
		}
	}
	assert.Equal(t, 1, skippedEvents)
}

// Three alternative strategies are generated in parallel and scored; the
// balanced draft wins on the weighted evaluation and becomes the primary plan.
func TestAlternativePlanSelection(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("semantic_validator", LLMScriptEntry{Text: `{"valid": true}`})

	llm.AddRouted("planning/conservative", LLMScriptEntry{Text: `{
		"approach": "one careful operation at a time",
		"assumptions": [], "constraints": [], "success_criteria": ["plan reviewed"]
	}`})
	llm.AddRouted("planning/conservative", LLMScriptEntry{Text: `[
		{"name": "audit", "description": "audit current state", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 60000, "risk_level": "low"},
		{"name": "backup", "description": "snapshot everything", "type": "action",
		 "executor_kind": "inline_llm", "depends_on": ["audit"], "timeout_ms": 60000, "risk_level": "low"},
		{"name": "apply", "description": "apply the change", "type": "action",
		 "executor_kind": "inline_llm", "depends_on": ["backup"], "timeout_ms": 60000, "risk_level": "low"},
		{"name": "verify", "description": "verify the change", "type": "validation",
		 "executor_kind": "inline_llm", "depends_on": ["apply"], "timeout_ms": 60000, "risk_level": "low"}
	]`})

	llm.AddRouted("planning/balanced", LLMScriptEntry{Text: `{
		"approach": "apply with a verification pass",
		"assumptions": [], "constraints": [], "success_criteria": ["plan reviewed"]
	}`})
	llm.AddRouted("planning/balanced", LLMScriptEntry{Text: `[
		{"name": "apply", "description": "apply the change", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 10000, "risk_level": "low"},
		{"name": "verify", "description": "verify the change", "type": "validation",
		 "executor_kind": "inline_llm", "depends_on": ["apply"], "timeout_ms": 10000, "risk_level": "low"}
	]`})

	llm.AddRouted("planning/aggressive", LLMScriptEntry{Text: `{
		"approach": "fan out everything at once",
		"assumptions": [], "constraints": [], "success_criteria": ["plan reviewed"]
	}`})
	llm.AddRouted("planning/aggressive", LLMScriptEntry{Text: `[
		{"name": "apply_a", "description": "apply shard a", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 5000, "risk_level": "high", "approval_required": true},
		{"name": "apply_b", "description": "apply shard b", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 5000, "risk_level": "high", "approval_required": true},
		{"name": "apply_c", "description": "apply shard c", "type": "action",
		 "executor_kind": "inline_llm", "timeout_ms": 5000, "risk_level": "high", "approval_required": true}
	]`})

	app := NewTestApp(t, WithLLMClient(llm))

	wf := app.Submit(t, models.CreateWorkflowRequest{
		RequestType: models.RequestTypePlanningOnly,
		Message:     "Plan the configuration rollout",
		Metadata:    map[string]any{"num_alternatives": 3},
	})

	result := app.AwaitTerminal(t, wf.ID, awaitTimeout)
	assert.Equal(t, models.WorkflowCompleted, result.Status)
	assert.Contains(t, result.Response, "balanced")

	plans := app.PlansOf(t, wf.ID)
	require.Len(t, plans, 3)

	var primaries []string
	for _, p := range plans {
		if p.Primary {
			primaries = append(primaries, p.StrategyName)
			assert.Equal(t, entplan.StatusApproved, p.Status)
		} else {
			assert.Equal(t, entplan.StatusDraft, p.Status)
		}
	}
	assert.Equal(t, []string{"balanced"}, primaries)

	// Planning-only never reaches execution: six planning calls plus the
	// validator.
	assert.Equal(t, 7, llm.CallCount())
}
