package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/maestro/ent"
	entworkflow "github.com/codeready-toolchain/maestro/ent/workflow"
	"github.com/codeready-toolchain/maestro/pkg/gateway"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/workflow"
)

// interpret classifies the free-text request into a RequestType and a
// restated goal. Callers that supplied task_type skip the model call; the
// stage still runs so the event trail is uniform.
func (o *Orchestrator) interpret(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, f *flow) (models.Stage, error) {
	if provided, _ := wf.Metadata["task_type_provided"].(bool); provided && !f.clarified {
		_, err := rctx.Emit(ctx, models.AppendEventRequest{
			EventType:     models.EventStageCompleted,
			Status:        "classified",
			OutputSummary: "request type supplied by caller: " + string(wf.RequestType),
			Metadata:      map[string]any{"request_type": string(wf.RequestType), "caller_supplied": true},
		})
		if err != nil {
			return "", err
		}
		return models.StageValidatorA, nil
	}

	res, err := rctx.Registry.ResolvePrompt(ctx, models.StageInterpretation, "interpretation", registry.ResolveHints{})
	if err != nil {
		return "", err
	}

	prompt := "User request:\n" + wf.Message +
		"\n\nClassify it as one of: SIMPLE_QUESTION, INFORMATION_QUERY, CODE_GENERATION, COMPLEX_TASK, PLANNING_ONLY." +
		"\nAnswer as JSON: {\"request_type\": \"<TYPE>\", \"goal\": \"<the request restated as a concrete goal>\"}"
	if f.clarifyFeedback != "" {
		prompt += "\n\nA previous classification was rejected: " + f.clarifyFeedback
	}

	result, err := rctx.LLM.Generate(ctx, gateway.Request{
		WorkflowID:    rctx.WorkflowID,
		SessionID:     rctx.SessionID,
		Stage:         models.StageInterpretation,
		ComponentRole: "interpretation",
		ComponentName: "stage_machine",
		TaskClass:     models.TaskClassReasoning,
		System:        res.Body,
		Messages:      []gateway.Message{{Role: "user", Content: prompt}},
		PromptID:      &res.PromptID,
		PromptVersion: &res.PromptVersion,
	})
	if err != nil {
		return "", err
	}

	parsed, err := parseInterpretation(result.Text)
	if err != nil {
		return "", err
	}

	metadata := wf.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["interpreted_goal"] = parsed.Goal
	if err := o.client.Workflow.UpdateOneID(wf.ID).
		SetRequestType(entworkflow.RequestType(parsed.RequestType)).
		SetMetadata(metadata).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to record interpretation: %w", err)
	}
	wf.RequestType = entworkflow.RequestType(parsed.RequestType)
	wf.Metadata = metadata

	return models.StageValidatorA, nil
}

type interpretation struct {
	RequestType models.RequestType `json:"request_type"`
	Goal        string             `json:"goal"`
}

// parseInterpretation tolerates prose around the JSON object but nothing
// outside the closed RequestType set.
func parseInterpretation(text string) (*interpretation, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return nil, &InterpretationError{Detail: "no classification object in model output"}
	}

	var parsed interpretation
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, &InterpretationError{Detail: "unparseable classification: " + err.Error()}
	}
	if !parsed.RequestType.IsValid() {
		return nil, &InterpretationError{Detail: fmt.Sprintf("unknown request type %q", parsed.RequestType)}
	}
	if parsed.Goal == "" {
		return nil, &InterpretationError{Detail: "classification produced no goal"}
	}
	return &parsed, nil
}

// validateInterpretation is the validator_a stage: a semantic check that
// the classification and goal actually fit the user's message. One
// rejection loops back to interpretation with the objection; a second is
// fatal.
func (o *Orchestrator) validateInterpretation(ctx context.Context, rctx *workflow.RuntimeContext, wf *ent.Workflow, f *flow) (models.Stage, error) {
	res, err := rctx.Registry.ResolvePrompt(ctx, models.StageValidatorA, "semantic_validator", registry.ResolveHints{})
	if err != nil {
		return "", err
	}

	prompt := "Original request:\n" + wf.Message +
		"\n\nClassification: " + string(wf.RequestType) +
		"\nInterpreted goal: " + goalOf(wf) +
		"\n\nDoes the classification and goal faithfully capture the request?" +
		"\nAnswer as JSON: {\"valid\": true|false, \"objection\": \"<what is wrong, if anything>\"}"

	result, err := rctx.LLM.Generate(ctx, gateway.Request{
		WorkflowID:    rctx.WorkflowID,
		SessionID:     rctx.SessionID,
		Stage:         models.StageValidatorA,
		ComponentRole: "semantic_validator",
		ComponentName: "stage_machine",
		TaskClass:     models.TaskClassReasoning,
		System:        res.Body,
		Messages:      []gateway.Message{{Role: "user", Content: prompt}},
		PromptID:      &res.PromptID,
		PromptVersion: &res.PromptVersion,
	})
	if err != nil {
		return "", err
	}

	verdict := parseVerdict(result.Text)
	if verdict.Valid {
		return models.StageRouting, nil
	}
	if f.clarified {
		return "", &InterpretationError{Detail: verdict.Objection}
	}

	f.clarified = true
	f.clarifyFeedback = verdict.Objection
	_, err = rctx.Emit(ctx, models.AppendEventRequest{
		EventType:     models.EventStageCompleted,
		Status:        "clarification",
		OutputSummary: verdict.Objection,
		ReasonCode:    "clarification_requested",
	})
	if err != nil {
		return "", err
	}
	return models.StageInterpretation, nil
}

type validatorVerdict struct {
	Valid     bool   `json:"valid"`
	Objection string `json:"objection"`
}

// parseVerdict degrades softly: an unparseable verdict counts as valid,
// since blocking every workflow on a chatty validator is worse than an
// occasional unchecked classification.
func parseVerdict(text string) validatorVerdict {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return validatorVerdict{Valid: true}
	}
	var verdict validatorVerdict
	if err := json.Unmarshal([]byte(text[start:end+1]), &verdict); err != nil {
		return validatorVerdict{Valid: true}
	}
	if !verdict.Valid && verdict.Objection == "" {
		verdict.Objection = "validator rejected the interpretation without detail"
	}
	return verdict
}
