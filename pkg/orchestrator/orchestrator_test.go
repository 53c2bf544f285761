package orchestrator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/approval"
	"github.com/codeready-toolchain/maestro/pkg/executor"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/planner"
	"github.com/codeready-toolchain/maestro/pkg/registry"
)

func TestTransitionTable(t *testing.T) {
	t.Run("canonical path is legal", func(t *testing.T) {
		path := []models.Stage{
			models.StageInterpretation,
			models.StageValidatorA,
			models.StageRouting,
			models.StagePlanning,
			models.StageValidatorB,
			models.StageExecution,
			models.StageReflection,
			models.StageRegistryUpdate,
		}
		for i := 0; i < len(path)-1; i++ {
			assert.True(t, canTransition(path[i], path[i+1]), "%s -> %s", path[i], path[i+1])
		}
	})

	t.Run("loops and shortcuts", func(t *testing.T) {
		assert.True(t, canTransition(models.StageValidatorA, models.StageInterpretation), "clarification loop")
		assert.True(t, canTransition(models.StageValidatorB, models.StagePlanning), "modification loop")
		assert.True(t, canTransition(models.StageExecution, models.StagePlanning), "re-plan loop")
		assert.True(t, canTransition(models.StageRouting, models.StageExecution), "simple question shortcut")
		assert.True(t, canTransition(models.StageValidatorB, models.StageReflection), "planning-only stop")
	})

	t.Run("illegal jumps rejected", func(t *testing.T) {
		assert.False(t, canTransition(models.StageInterpretation, models.StageExecution))
		assert.False(t, canTransition(models.StageReflection, models.StagePlanning))
		assert.False(t, canTransition(models.StageRegistryUpdate, models.StageInterpretation))
		assert.False(t, canTransition(models.StageExecution, models.StageValidatorA))
	})

	t.Run("every stage has a role", func(t *testing.T) {
		for stage := range transitions {
			assert.NotEmpty(t, stageRoles[stage], "stage %s", stage)
		}
	})
}

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   string
		reason string
	}{
		{
			name:   "interpretation",
			err:    fmt.Errorf("stage: %w", &InterpretationError{Detail: "gibberish"}),
			kind:   "InterpretationError",
			reason: "interpretation_failed",
		},
		{
			name:   "illegal transition",
			err:    &TransitionError{From: "routing", To: "reflection"},
			kind:   "TransitionError",
			reason: "illegal_transition",
		},
		{
			name:   "planner parse",
			err:    &planner.ParseError{Phase: planner.PhaseDecomposition, Detail: "no steps"},
			kind:   "PlannerParseError",
			reason: "planner_parse_decomposition",
		},
		{
			name:   "approval rejected",
			err:    fmt.Errorf("await: %w", approval.ErrApprovalRejected),
			kind:   "ApprovalRejected",
			reason: "approval_rejected",
		},
		{
			name:   "approval expired",
			err:    approval.ErrApprovalExpired,
			kind:   "ApprovalExpired",
			reason: "approval_expired",
		},
		{
			name:   "prompt unresolved",
			err:    fmt.Errorf("resolve: %w", registry.ErrPromptUnresolved),
			kind:   "PromptUnresolved",
			reason: "prompt_unresolved",
		},
		{
			name:   "classified step error",
			err:    &executor.StepError{Kind: executor.ErrValidation, ReasonCode: "validation_failed", Err: errors.New("checks")},
			kind:   "ExecutionError",
			reason: "validation_failed",
		},
		{
			name:   "anything else",
			err:    errors.New("boom"),
			kind:   "ExecutionError",
			reason: "stage_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, reason := classifyFailure(tt.err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestParseInterpretation(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		parsed, err := parseInterpretation(`{"request_type": "CODE_GENERATION", "goal": "write factorial"}`)
		require.NoError(t, err)
		assert.Equal(t, models.RequestTypeCodeGeneration, parsed.RequestType)
		assert.Equal(t, "write factorial", parsed.Goal)
	})

	t.Run("prose around the object", func(t *testing.T) {
		text := "Looking at this request.\n{\"request_type\": \"SIMPLE_QUESTION\", \"goal\": \"name the capital of France\"}"
		parsed, err := parseInterpretation(text)
		require.NoError(t, err)
		assert.Equal(t, models.RequestTypeSimpleQuestion, parsed.RequestType)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := parseInterpretation(`{"request_type": "RIDDLE", "goal": "x"}`)
		var interp *InterpretationError
		require.ErrorAs(t, err, &interp)
		assert.Contains(t, interp.Detail, "RIDDLE")
	})

	t.Run("missing goal", func(t *testing.T) {
		_, err := parseInterpretation(`{"request_type": "COMPLEX_TASK"}`)
		var interp *InterpretationError
		assert.ErrorAs(t, err, &interp)
	})

	t.Run("no object", func(t *testing.T) {
		_, err := parseInterpretation("this is clearly a complex task")
		var interp *InterpretationError
		assert.ErrorAs(t, err, &interp)
	})
}

func TestParseVerdict(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v := parseVerdict(`{"valid": true, "objection": ""}`)
		assert.True(t, v.Valid)
	})

	t.Run("rejection keeps the objection", func(t *testing.T) {
		v := parseVerdict(`{"valid": false, "objection": "goal dropped the deadline constraint"}`)
		assert.False(t, v.Valid)
		assert.Equal(t, "goal dropped the deadline constraint", v.Objection)
	})

	t.Run("rejection without detail gets a placeholder", func(t *testing.T) {
		v := parseVerdict(`{"valid": false}`)
		assert.False(t, v.Valid)
		assert.NotEmpty(t, v.Objection)
	})

	t.Run("chatty validator counts as valid", func(t *testing.T) {
		assert.True(t, parseVerdict("looks fine to me").Valid)
		assert.True(t, parseVerdict(`{"valid": maybe}`).Valid)
	})
}

func TestGoalOf(t *testing.T) {
	wf := &ent.Workflow{Message: "raw message"}
	assert.Equal(t, "raw message", goalOf(wf))

	wf.Metadata = map[string]any{"interpreted_goal": "restated goal"}
	assert.Equal(t, "restated goal", goalOf(wf))
}

func TestPlanSummary(t *testing.T) {
	plan := &ent.Plan{Version: 2, StrategyName: "balanced", RiskScore: 0.35}
	steps := []*ent.Step{
		{Index: 0, Name: "analyze", Description: "Understand the request."},
		{Index: 1, Name: "generate"},
	}

	summary := planSummary(plan, steps)
	assert.Contains(t, summary, "Plan v2 (balanced, risk 0.35): 2 steps.")
	assert.Contains(t, summary, "1. analyze: Understand the request.")
	assert.Contains(t, summary, "2. generate")
}
