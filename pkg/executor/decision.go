package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/gateway"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/workflow"
)

// runDecision asks the model for a structured branch choice. The selected
// branch is the only dependency path that proceeds; the others are skipped
// by the scheduler.
func (e *Executor) runDecision(ctx context.Context, rctx *workflow.RuntimeContext, in StepInput, branches []string) (*StepOutput, *models.DecisionOutcome, error) {
	if len(branches) == 0 {
		return nil, nil, &StepError{Kind: ErrStructure, ReasonCode: "decision_without_branches",
			Err: fmt.Errorf("decision step %s has no dependent branches", in.Step.Name)}
	}

	res, err := rctx.Registry.ResolvePrompt(ctx, models.StageExecution, "decision", registry.ResolveHints{})
	if err != nil {
		return nil, nil, err
	}

	prompt := stepPrompt(in) +
		"\n\nChoose exactly one branch from: " + strings.Join(branches, ", ") +
		"\nAnswer as JSON: {\"selected_branch\": \"<name>\", \"rationale\": \"<why>\"}"

	result, err := rctx.LLM.Generate(ctx, gateway.Request{
		WorkflowID:    rctx.WorkflowID,
		SessionID:     rctx.SessionID,
		Stage:         models.StageExecution,
		ComponentRole: "decision",
		ComponentName: rctx.ComponentName,
		TaskClass:     models.TaskClassReasoning,
		System:        res.Body,
		Messages:      []gateway.Message{{Role: "user", Content: prompt}},
		PromptID:      &res.PromptID,
		PromptVersion: &res.PromptVersion,
	})
	if err != nil {
		return nil, nil, err
	}

	outcome, err := parseDecision(result.Text, branches)
	if err != nil {
		return nil, nil, &StepError{Kind: ErrStructure, ReasonCode: "decision_unparseable", Err: err}
	}

	out := &StepOutput{
		Outputs: map[string]any{
			"selected_branch": outcome.SelectedBranch,
			"rationale":       outcome.Rationale,
		},
		Summary: fmt.Sprintf("selected %s: %s", outcome.SelectedBranch, outcome.Rationale),
		Quality: 1,
	}
	return out, outcome, nil
}

// parseDecision accepts the structured choice, tolerating prose around the
// JSON but not a branch outside the declared set.
func parseDecision(text string, branches []string) (*models.DecisionOutcome, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no decision object in output")
	}

	var outcome models.DecisionOutcome
	if err := json.Unmarshal([]byte(text[start:end+1]), &outcome); err != nil {
		return nil, fmt.Errorf("decision object: %w", err)
	}
	for _, b := range branches {
		if outcome.SelectedBranch == b {
			return &outcome, nil
		}
	}
	return nil, fmt.Errorf("selected branch %q is not one of the declared branches", outcome.SelectedBranch)
}

// branchesOf lists the steps that depend directly on the decision step.
func branchesOf(decision *ent.Step, all []*ent.Step) []string {
	var branches []string
	for _, s := range all {
		for _, dep := range s.Dependencies {
			if dep == decision.ID {
				branches = append(branches, s.Name)
				break
			}
		}
	}
	return branches
}

// skippedByDecision returns the step ids to skip: the not-taken branches
// and every descendant reachable only through them.
func skippedByDecision(decision *ent.Step, selected string, all []*ent.Step) []string {
	byID := make(map[string]*ent.Step, len(all))
	for _, s := range all {
		byID[s.ID] = s
	}

	skipped := make(map[string]bool)
	for _, s := range all {
		if s.Name == selected {
			continue
		}
		for _, dep := range s.Dependencies {
			if dep == decision.ID {
				skipped[s.ID] = true
				break
			}
		}
	}

	// A descendant is skipped when every path to it runs through a skipped
	// step. Iterate to a fixed point; plans are small.
	for changed := true; changed; {
		changed = false
		for _, s := range all {
			if skipped[s.ID] || len(s.Dependencies) == 0 {
				continue
			}
			allSkipped := true
			for _, dep := range s.Dependencies {
				if !skipped[dep] {
					allSkipped = false
					break
				}
			}
			if allSkipped {
				skipped[s.ID] = true
				changed = true
			}
		}
	}

	ids := make([]string, 0, len(skipped))
	for _, s := range all {
		if skipped[s.ID] {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
