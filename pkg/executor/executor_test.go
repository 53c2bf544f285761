package executor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/gateway"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/sandbox"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		kind       ErrorKind
		reasonCode string
		retryable  bool
	}{
		{
			name:       "existing step error passes through",
			err:        fmt.Errorf("wrapped: %w", &StepError{Kind: ErrValidation, ReasonCode: "validation_failed", Err: errors.New("checks failed")}),
			kind:       ErrValidation,
			reasonCode: "validation_failed",
			retryable:  false,
		},
		{
			name:       "sandbox timeout violation",
			err:        fmt.Errorf("execute: %w", &sandbox.Violation{Kind: sandbox.ViolationTimeout, Detail: "wall clock exceeded"}),
			kind:       ErrTimeout,
			reasonCode: "sandbox_timeout",
			retryable:  true,
		},
		{
			name:       "sandbox memory violation",
			err:        &sandbox.Violation{Kind: sandbox.ViolationMemory, Detail: "rss over limit"},
			kind:       ErrResource,
			reasonCode: "sandbox_memory",
			retryable:  false,
		},
		{
			name:       "sandbox forbidden violation",
			err:        &sandbox.Violation{Kind: sandbox.ViolationForbidden, Detail: "network egress"},
			kind:       ErrResource,
			reasonCode: "sandbox_forbidden",
			retryable:  false,
		},
		{
			name:       "deadline exceeded",
			err:        fmt.Errorf("step: %w", context.DeadlineExceeded),
			kind:       ErrTimeout,
			reasonCode: "step_timeout",
			retryable:  true,
		},
		{
			name:       "gateway exhausted",
			err:        fmt.Errorf("%w: all endpoints down", gateway.ErrLLMUnavailable),
			kind:       ErrEnvironment,
			reasonCode: "llm_unavailable",
			retryable:  true,
		},
		{
			name:       "no model for class",
			err:        fmt.Errorf("%w: class reasoning", registry.ErrNoModelAvailable),
			kind:       ErrEnvironment,
			reasonCode: "llm_unavailable",
			retryable:  true,
		},
		{
			name:       "prompt unresolved",
			err:        fmt.Errorf("%w: execution/decision", registry.ErrPromptUnresolved),
			kind:       ErrStructure,
			reasonCode: "prompt_unresolved",
			retryable:  false,
		},
		{
			name:       "event log down",
			err:        fmt.Errorf("%w: insert", eventlog.ErrEventLogUnavailable),
			kind:       ErrEnvironment,
			reasonCode: "eventlog_unavailable",
			retryable:  true,
		},
		{
			name:       "anything else",
			err:        errors.New("boom"),
			kind:       ErrUnknown,
			reasonCode: "step_error",
			retryable:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stepErr := classify(tt.err)
			assert.Equal(t, tt.kind, stepErr.Kind)
			assert.Equal(t, tt.reasonCode, stepErr.ReasonCode)
			assert.Equal(t, tt.retryable, stepErr.Retryable())
		})
	}
}

func TestStepErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	stepErr := &StepError{Kind: ErrAgent, ReasonCode: "agent_call_failed", Err: inner}
	assert.ErrorIs(t, stepErr, inner)
}

func TestParseDecision(t *testing.T) {
	branches := []string{"fast_path", "thorough_path"}

	t.Run("plain object", func(t *testing.T) {
		outcome, err := parseDecision(`{"selected_branch": "fast_path", "rationale": "low risk"}`, branches)
		require.NoError(t, err)
		assert.Equal(t, "fast_path", outcome.SelectedBranch)
		assert.Equal(t, "low risk", outcome.Rationale)
	})

	t.Run("prose around the object", func(t *testing.T) {
		text := "Considering the options.\n{\"selected_branch\": \"thorough_path\", \"rationale\": \"novel input\"}\nDone."
		outcome, err := parseDecision(text, branches)
		require.NoError(t, err)
		assert.Equal(t, "thorough_path", outcome.SelectedBranch)
	})

	t.Run("undeclared branch rejected", func(t *testing.T) {
		_, err := parseDecision(`{"selected_branch": "shortcut", "rationale": "nope"}`, branches)
		assert.ErrorContains(t, err, "not one of the declared branches")
	})

	t.Run("no object", func(t *testing.T) {
		_, err := parseDecision("I would take the fast path.", branches)
		assert.ErrorContains(t, err, "no decision object")
	})
}

// dagSteps builds a plan shape used by the branching tests:
//
//	decision -> a -> c
//	decision -> b -> c
//	decision -> b -> d
func dagSteps() (*ent.Step, []*ent.Step) {
	decision := &ent.Step{ID: "s-dec", Name: "choose", Type: "decision"}
	a := &ent.Step{ID: "s-a", Name: "a", Dependencies: []string{"s-dec"}}
	b := &ent.Step{ID: "s-b", Name: "b", Dependencies: []string{"s-dec"}}
	c := &ent.Step{ID: "s-c", Name: "c", Dependencies: []string{"s-a", "s-b"}}
	d := &ent.Step{ID: "s-d", Name: "d", Dependencies: []string{"s-b"}}
	return decision, []*ent.Step{decision, a, b, c, d}
}

func TestBranchesOf(t *testing.T) {
	decision, all := dagSteps()
	assert.Equal(t, []string{"a", "b"}, branchesOf(decision, all))
}

func TestSkippedByDecision(t *testing.T) {
	decision, all := dagSteps()

	t.Run("select a", func(t *testing.T) {
		// b is skipped; d depends only on b so it cascades; c still has a
		// live path through a and survives.
		skipped := skippedByDecision(decision, "a", all)
		assert.ElementsMatch(t, []string{"s-b", "s-d"}, skipped)
	})

	t.Run("select b", func(t *testing.T) {
		skipped := skippedByDecision(decision, "b", all)
		assert.ElementsMatch(t, []string{"s-a"}, skipped)
	})
}

func TestEvaluateChecks(t *testing.T) {
	checks := &models.StepChecks{
		MustContain:    []string{"result"},
		MustNotContain: []string{"password"},
		MinLength:      10,
	}

	t.Run("all pass", func(t *testing.T) {
		tally := evaluateChecks(checks, nil, "the result is forty-two")
		outcome := tally.outcome()
		assert.Equal(t, models.ValidationPass, outcome.Outcome)
		assert.Equal(t, 1.0, outcome.Quality)
		assert.Empty(t, outcome.Details)
	})

	t.Run("partial", func(t *testing.T) {
		tally := evaluateChecks(checks, nil, "nothing useful here")
		outcome := tally.outcome()
		assert.Equal(t, models.ValidationPartial, outcome.Outcome)
		assert.InDelta(t, 2.0/3.0, outcome.Quality, 1e-9)
		assert.Len(t, outcome.Details, 1)
	})

	t.Run("total failure", func(t *testing.T) {
		tally := evaluateChecks(checks, nil, "password")
		outcome := tally.outcome()
		assert.Equal(t, models.ValidationFail, outcome.Outcome)
		assert.Equal(t, 0.0, outcome.Quality)
	})

	t.Run("no checks is a pass", func(t *testing.T) {
		tally := evaluateChecks(&models.StepChecks{}, nil, "anything")
		outcome := tally.outcome()
		assert.Equal(t, models.ValidationPass, outcome.Outcome)
		assert.Equal(t, 1.0, outcome.Quality)
	})
}

func TestValidateAgainstSchema(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"count"},
		"properties": map[string]any{
			"count": map[string]any{"type": "number"},
		},
	}

	assert.NoError(t, validateAgainstSchema(schema, map[string]any{"count": 3.0}))
	assert.Error(t, validateAgainstSchema(schema, map[string]any{"name": "x"}))
}

func TestValidationTarget(t *testing.T) {
	in := StepInput{
		Step: &ent.Step{Name: "validate"},
		PriorOutputs: map[string]map[string]any{
			"generate": {"text": "hello world"},
			"fetch":    {"rows": 3.0},
		},
	}

	t.Run("named target uses its text output", func(t *testing.T) {
		_, text, err := validationTarget(in, &models.StepChecks{TargetStep: "generate"})
		require.NoError(t, err)
		assert.Equal(t, "hello world", text)
	})

	t.Run("missing target is a dependency error", func(t *testing.T) {
		_, _, err := validationTarget(in, &models.StepChecks{TargetStep: "absent"})
		var stepErr *StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, ErrDependency, stepErr.Kind)
		assert.Equal(t, "validation_target_missing", stepErr.ReasonCode)
	})

	t.Run("unnamed target merges prior outputs", func(t *testing.T) {
		target, text, err := validationTarget(in, &models.StepChecks{})
		require.NoError(t, err)
		assert.Contains(t, text, "hello world")
		assert.Contains(t, text, "rows")
		m, ok := target.(map[string]any)
		require.True(t, ok)
		assert.Len(t, m, 2)
	})
}

func TestChecksOf(t *testing.T) {
	checks, err := checksOf(map[string]any{
		"must_contain": []any{"ok"},
		"min_length":   5.0,
		"semantic":     true,
		"target_step":  "generate",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, checks.MustContain)
	assert.Equal(t, 5, checks.MinLength)
	assert.True(t, checks.Semantic)
	assert.Equal(t, "generate", checks.TargetStep)

	empty, err := checksOf(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.MustContain)
}

func TestFunctionCallOf(t *testing.T) {
	t.Run("decodes stored call", func(t *testing.T) {
		step := &ent.Step{
			Name:        "fetch",
			ExecutorRef: "http_get",
			FunctionCall: map[string]any{
				"name":      "http_get",
				"arguments": map[string]any{"url": "https://example.com"},
			},
		}
		call, err := functionCallOf(step)
		require.NoError(t, err)
		assert.Equal(t, "http_get", call.Name)
		assert.Equal(t, "https://example.com", call.Arguments["url"])
	})

	t.Run("name defaults to executor ref", func(t *testing.T) {
		step := &ent.Step{
			Name:         "fetch",
			ExecutorRef:  "http_get",
			FunctionCall: map[string]any{"arguments": map[string]any{}},
		}
		call, err := functionCallOf(step)
		require.NoError(t, err)
		assert.Equal(t, "http_get", call.Name)
	})

	t.Run("missing call is an error", func(t *testing.T) {
		_, err := functionCallOf(&ent.Step{Name: "fetch"})
		assert.Error(t, err)
	})
}

func TestPlanDrained(t *testing.T) {
	t.Run("waiting step keeps draining", func(t *testing.T) {
		done, failed := planDrained([]*ent.Step{
			{ID: "1", State: "succeeded"},
			{ID: "2", State: "waiting"},
		})
		assert.False(t, done)
		assert.Nil(t, failed)
	})

	t.Run("all positive", func(t *testing.T) {
		done, failed := planDrained([]*ent.Step{
			{ID: "1", State: "succeeded"},
			{ID: "2", State: "skipped"},
		})
		assert.True(t, done)
		assert.Nil(t, failed)
	})

	t.Run("failure surfaces the first failed step", func(t *testing.T) {
		done, failed := planDrained([]*ent.Step{
			{ID: "1", State: "succeeded"},
			{ID: "2", State: "failed"},
			{ID: "3", State: "skipped"},
		})
		assert.True(t, done)
		require.NotNil(t, failed)
		assert.Equal(t, "2", failed.ID)
	})
}

func TestForeclosed(t *testing.T) {
	branch := "branch_not_taken"
	depFailed := "dependency_failed"

	assert.False(t, foreclosed(&ent.Step{State: "succeeded"}))
	assert.False(t, foreclosed(&ent.Step{State: "waiting"}))
	assert.False(t, foreclosed(&ent.Step{State: "running"}))
	assert.True(t, foreclosed(&ent.Step{State: "failed"}))
	assert.True(t, foreclosed(&ent.Step{State: "cancelled"}))

	// A branch skip is a positive settlement; a dependency skip propagates.
	assert.False(t, foreclosed(&ent.Step{State: "skipped", ReasonCode: &branch}))
	assert.True(t, foreclosed(&ent.Step{State: "skipped", ReasonCode: &depFailed}))
}

func TestComponentNameOf(t *testing.T) {
	assert.Equal(t, "agent_researcher", componentNameOf(&ent.Step{ExecutorKind: "agent", ExecutorRef: "researcher"}))
	assert.Equal(t, "tool_http_get", componentNameOf(&ent.Step{ExecutorKind: "tool", ExecutorRef: "http_get"}))
	assert.Equal(t, "team_review", componentNameOf(&ent.Step{ExecutorKind: "team", Name: "review"}))
	assert.Equal(t, "inline_llm", componentNameOf(&ent.Step{ExecutorKind: "inline_llm"}))
}

func TestStepPrompt(t *testing.T) {
	in := StepInput{
		Plan: &ent.Plan{Goal: "summarize the report"},
		Step: &ent.Step{
			Name:        "summarize",
			Description: "Write a three sentence summary.",
			Inputs:      map[string]any{"tone": "neutral"},
		},
		PriorOutputs: map[string]map[string]any{
			"fetch": {"text": "the report body"},
		},
	}

	prompt := stepPrompt(in)
	assert.Contains(t, prompt, "summarize the report")
	assert.Contains(t, prompt, "Write a three sentence summary.")
	assert.Contains(t, prompt, `"tone":"neutral"`)
	assert.Contains(t, prompt, "the report body")
}
