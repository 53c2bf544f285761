package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/codeready-toolchain/maestro/pkg/gateway"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/workflow"
)

// runValidation executes a validation step's declared checks against the
// target step's output. Quality is the fraction of checks passed; outcome
// is pass (all), fail (none or schema breach), or partial.
func (e *Executor) runValidation(ctx context.Context, rctx *workflow.RuntimeContext, in StepInput) (*StepOutput, error) {
	checks, err := checksOf(in.Step.Checks)
	if err != nil {
		return nil, &StepError{Kind: ErrStructure, ReasonCode: "invalid_checks", Err: err}
	}

	target, text, err := validationTarget(in, checks)
	if err != nil {
		return nil, err
	}

	result := evaluateChecks(checks, target, text)

	if checks.Semantic {
		ok, detail, err := e.semanticCheck(ctx, rctx, in, text)
		if err != nil {
			return nil, err
		}
		result.total++
		if ok {
			result.passed++
		} else {
			result.details = append(result.details, "semantic: "+detail)
		}
	}

	outcome := result.outcome()
	out := &StepOutput{
		Outputs: map[string]any{
			"outcome": string(outcome.Outcome),
			"quality": outcome.Quality,
			"details": outcome.Details,
		},
		Summary: fmt.Sprintf("validation %s (quality %.2f)", outcome.Outcome, outcome.Quality),
		Quality: outcome.Quality,
	}
	if outcome.Outcome == models.ValidationFail {
		return out, &StepError{
			Kind:       ErrValidation,
			ReasonCode: "validation_failed",
			Err:        fmt.Errorf("checks failed: %s", strings.Join(outcome.Details, "; ")),
		}
	}
	return out, nil
}

type checkTally struct {
	passed, total int
	details       []string
}

func (t *checkTally) outcome() models.ValidationResult {
	quality := 1.0
	if t.total > 0 {
		quality = float64(t.passed) / float64(t.total)
	}
	result := models.ValidationResult{Quality: quality, Details: t.details}
	switch {
	case t.total == 0 || t.passed == t.total:
		result.Outcome = models.ValidationPass
	case t.passed == 0:
		result.Outcome = models.ValidationFail
	default:
		result.Outcome = models.ValidationPartial
	}
	return result
}

// evaluateChecks runs the declarative checks: schema, containment, length.
func evaluateChecks(checks *models.StepChecks, target any, text string) *checkTally {
	t := &checkTally{}

	if checks.Schema != nil {
		t.total++
		if err := validateAgainstSchema(checks.Schema, target); err != nil {
			t.details = append(t.details, "schema: "+err.Error())
		} else {
			t.passed++
		}
	}
	for _, needle := range checks.MustContain {
		t.total++
		if strings.Contains(text, needle) {
			t.passed++
		} else {
			t.details = append(t.details, fmt.Sprintf("missing required content %q", needle))
		}
	}
	for _, needle := range checks.MustNotContain {
		t.total++
		if !strings.Contains(text, needle) {
			t.passed++
		} else {
			t.details = append(t.details, fmt.Sprintf("contains forbidden content %q", needle))
		}
	}
	if checks.MinLength > 0 {
		t.total++
		if len(text) >= checks.MinLength {
			t.passed++
		} else {
			t.details = append(t.details, fmt.Sprintf("length %d below minimum %d", len(text), checks.MinLength))
		}
	}
	if checks.MaxLength > 0 {
		t.total++
		if len(text) <= checks.MaxLength {
			t.passed++
		} else {
			t.details = append(t.details, fmt.Sprintf("length %d above maximum %d", len(text), checks.MaxLength))
		}
	}
	return t
}

func validateAgainstSchema(schemaDoc map[string]any, target any) error {
	raw, err := json.Marshal(schemaDoc)
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("maestro://checks/schema.json", doc); err != nil {
		return err
	}
	schema, err := compiler.Compile("maestro://checks/schema.json")
	if err != nil {
		return err
	}
	return schema.Validate(target)
}

// semanticCheck asks the model whether the output satisfies the step's
// success criteria. Cheap heuristics first; this is the expensive path.
func (e *Executor) semanticCheck(ctx context.Context, rctx *workflow.RuntimeContext, in StepInput, text string) (bool, string, error) {
	res, err := rctx.Registry.ResolvePrompt(ctx, models.StageExecution, "validation", registry.ResolveHints{})
	if err != nil {
		return false, "", err
	}

	prompt := "Goal: " + in.Plan.Goal +
		"\n\nOutput under validation:\n" + text +
		"\n\nDoes this output satisfy the goal? Answer as JSON: {\"pass\": true|false, \"reason\": \"<why>\"}"
	result, err := rctx.LLM.Generate(ctx, gateway.Request{
		WorkflowID:    rctx.WorkflowID,
		SessionID:     rctx.SessionID,
		Stage:         models.StageExecution,
		ComponentRole: "validation",
		ComponentName: rctx.ComponentName,
		TaskClass:     models.TaskClassReasoning,
		System:        res.Body,
		Messages:      []gateway.Message{{Role: "user", Content: prompt}},
		PromptID:      &res.PromptID,
		PromptVersion: &res.PromptVersion,
	})
	if err != nil {
		return false, "", err
	}

	var verdict struct {
		Pass   bool   `json:"pass"`
		Reason string `json:"reason"`
	}
	start := strings.IndexByte(result.Text, '{')
	end := strings.LastIndexByte(result.Text, '}')
	if start < 0 || end <= start {
		return false, "no verdict in output", nil
	}
	if err := json.Unmarshal([]byte(result.Text[start:end+1]), &verdict); err != nil {
		return false, "unparseable verdict", nil
	}
	return verdict.Pass, verdict.Reason, nil
}

// validationTarget picks what the checks run against: the named target
// step's outputs, or the merged prior outputs when none is named.
func validationTarget(in StepInput, checks *models.StepChecks) (any, string, error) {
	var target any
	if checks.TargetStep != "" {
		outputs, ok := in.PriorOutputs[checks.TargetStep]
		if !ok {
			return nil, "", &StepError{Kind: ErrDependency, ReasonCode: "validation_target_missing",
				Err: fmt.Errorf("validation target %q is not among the step's dependencies", checks.TargetStep)}
		}
		target = outputs
	} else {
		target = in.PriorOutputs
	}

	raw, err := json.Marshal(target)
	if err != nil {
		return nil, "", err
	}
	// Normalized JSON so schema validation sees plain maps/slices.
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, "", err
	}

	text := string(raw)
	if m, ok := normalized.(map[string]any); ok {
		if s, ok := m["text"].(string); ok {
			text = s
		}
	}
	return normalized, text, nil
}

func checksOf(stored map[string]any) (*models.StepChecks, error) {
	if len(stored) == 0 {
		return &models.StepChecks{}, nil
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	var checks models.StepChecks
	if err := json.Unmarshal(raw, &checks); err != nil {
		return nil, err
	}
	return &checks, nil
}
