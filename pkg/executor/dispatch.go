package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/gateway"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/sandbox"
	"github.com/codeready-toolchain/maestro/pkg/workflow"
)

// StepInput is everything a runner sees for one step.
type StepInput struct {
	Plan *ent.Plan
	Step *ent.Step

	// PriorOutputs are the outputs of the step's dependencies, keyed by
	// step name.
	PriorOutputs map[string]map[string]any
}

// StepOutput is a runner's result.
type StepOutput struct {
	Outputs map[string]any
	Summary string
	Quality float64
}

// stepRunner executes one executor-kind variant.
type stepRunner interface {
	Run(ctx context.Context, rctx *workflow.RuntimeContext, in StepInput) (*StepOutput, error)
}

// runners is the closed dispatch table over executor kinds.
func (e *Executor) runners() map[models.ExecutorKind]stepRunner {
	return map[models.ExecutorKind]stepRunner{
		models.ExecutorAgent:     &agentRunner{exec: e},
		models.ExecutorTool:      &toolRunner{exec: e},
		models.ExecutorTeam:      &teamRunner{exec: e},
		models.ExecutorInlineLLM: &inlineRunner{},
	}
}

// inlineRunner is the default variant: a direct LLM call under the
// execution-stage prompt.
type inlineRunner struct{}

func (r *inlineRunner) Run(ctx context.Context, rctx *workflow.RuntimeContext, in StepInput) (*StepOutput, error) {
	res, err := rctx.Registry.ResolvePrompt(ctx, models.StageExecution, "execution", registry.ResolveHints{})
	if err != nil {
		return nil, err
	}

	result, err := rctx.LLM.Generate(ctx, gateway.Request{
		WorkflowID:    rctx.WorkflowID,
		SessionID:     rctx.SessionID,
		Stage:         models.StageExecution,
		ComponentRole: "execution",
		ComponentName: rctx.ComponentName,
		TaskClass:     models.TaskClassGeneralChat,
		System:        res.Body,
		Messages:      []gateway.Message{{Role: "user", Content: stepPrompt(in)}},
		PromptID:      &res.PromptID,
		PromptVersion: &res.PromptVersion,
	})
	if err != nil {
		return nil, err
	}
	return &StepOutput{
		Outputs: map[string]any{"text": result.Text},
		Summary: result.Text,
		Quality: 1,
	}, nil
}

// agentRunner resolves the agent's prompt (agent-scoped assignment wins)
// and calls the model class the agent declares. Outcomes feed the agent's
// trust metrics.
type agentRunner struct {
	exec *Executor
}

func (r *agentRunner) Run(ctx context.Context, rctx *workflow.RuntimeContext, in StepInput) (*StepOutput, error) {
	agent, err := rctx.Registry.GetActiveAgent(ctx, in.Step.ExecutorRef)
	if err != nil {
		return nil, &StepError{Kind: ErrDependency, ReasonCode: "agent_unavailable", Err: err}
	}

	res, err := rctx.Registry.ResolvePrompt(ctx, models.StageExecution, "execution",
		registry.ResolveHints{AgentName: agent.Name})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := rctx.LLM.Generate(ctx, gateway.Request{
		WorkflowID:    rctx.WorkflowID,
		SessionID:     rctx.SessionID,
		Stage:         models.StageExecution,
		ComponentRole: "execution",
		ComponentName: rctx.ComponentName,
		TaskClass:     models.TaskClass(agent.ModelClass),
		System:        res.Body,
		Messages:      []gateway.Message{{Role: "user", Content: stepPrompt(in)}},
		PromptID:      &res.PromptID,
		PromptVersion: &res.PromptVersion,
	})
	if recErr := rctx.Registry.RecordAgentResult(context.WithoutCancel(ctx), agent.Name, err == nil, time.Since(start)); recErr != nil {
		return nil, recErr
	}
	if err != nil {
		return nil, &StepError{Kind: ErrAgent, ReasonCode: "agent_call_failed", Err: err}
	}
	return &StepOutput{
		Outputs: map[string]any{"text": result.Text, "agent": agent.Name},
		Summary: result.Text,
		Quality: 1,
	}, nil
}

// toolRunner pushes a schema-validated function call through the sandbox.
type toolRunner struct {
	exec *Executor
}

func (r *toolRunner) Run(ctx context.Context, rctx *workflow.RuntimeContext, in StepInput) (*StepOutput, error) {
	spec, err := rctx.Registry.GetActiveTool(ctx, in.Step.ExecutorRef)
	if err != nil {
		return nil, &StepError{Kind: ErrDependency, ReasonCode: "tool_unavailable", Err: err}
	}

	call, err := functionCallOf(in.Step)
	if err != nil {
		return nil, &StepError{Kind: ErrStructure, ReasonCode: "missing_function_call", Err: err}
	}

	limits := sandbox.Limits{WallMS: in.Step.TimeoutMs}
	start := time.Now()
	result, err := rctx.Sandbox.Execute(ctx, call, spec, limits)
	if recErr := rctx.Registry.RecordToolResult(context.WithoutCancel(ctx), spec.Name, err == nil && result != nil && result.Status == "ok", time.Since(start)); recErr != nil {
		return nil, recErr
	}
	if err != nil {
		return nil, err // violations classify downstream
	}
	if result.Status != "ok" {
		return nil, &StepError{
			Kind:       ErrEnvironment,
			ReasonCode: "tool_failed",
			Err:        fmt.Errorf("tool %s failed: %s", spec.Name, firstLine(result.Stderr)),
		}
	}
	return &StepOutput{
		Outputs: map[string]any{"result": result.ResultValue, "stdout": result.Stdout},
		Summary: result.Stdout,
		Quality: 1,
	}, nil
}

// teamRunner fans subtasks out to the member agents in parallel and
// aggregates their outputs. One member failing fails the step; partial
// teamwork is not a success.
type teamRunner struct {
	exec *Executor
}

func (r *teamRunner) Run(ctx context.Context, rctx *workflow.RuntimeContext, in StepInput) (*StepOutput, error) {
	members := in.Step.TeamMembers
	if len(members) == 0 {
		return nil, &StepError{Kind: ErrStructure, ReasonCode: "empty_team", Err: fmt.Errorf("team step %s has no members", in.Step.Name)}
	}

	outputs := make([]*StepOutput, len(members))
	g, gctx := errgroup.WithContext(ctx)
	for i, member := range members {
		g.Go(func() error {
			memberStep := *in.Step
			memberStep.ExecutorRef = member
			memberIn := in
			memberIn.Step = &memberStep

			runner := &agentRunner{exec: r.exec}
			out, err := runner.Run(gctx, rctx.WithStage(rctx.Stage, rctx.ComponentRole, "agent_"+member), memberIn)
			if err != nil {
				return fmt.Errorf("team member %s: %w", member, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]any, len(members))
	summary := ""
	for i, member := range members {
		merged[member] = outputs[i].Outputs
		if summary != "" {
			summary += "\n"
		}
		summary += member + ": " + outputs[i].Summary
	}
	return &StepOutput{Outputs: merged, Summary: summary, Quality: 1}, nil
}

// stepPrompt renders the user message for LLM-backed runners.
func stepPrompt(in StepInput) string {
	prompt := "Goal: " + in.Plan.Goal + "\n\nStep: " + in.Step.Name
	if in.Step.Description != "" {
		prompt += "\n" + in.Step.Description
	}
	if len(in.Step.Inputs) > 0 {
		raw, _ := json.Marshal(in.Step.Inputs)
		prompt += "\n\nInputs:\n" + string(raw)
	}
	if len(in.PriorOutputs) > 0 {
		raw, _ := json.Marshal(in.PriorOutputs)
		prompt += "\n\nOutputs of completed prerequisite steps:\n" + string(raw)
	}
	return prompt
}

// functionCallOf decodes the step's stored function call.
func functionCallOf(step *ent.Step) (models.FunctionCall, error) {
	if len(step.FunctionCall) == 0 {
		return models.FunctionCall{}, fmt.Errorf("step %s has no function_call", step.Name)
	}
	raw, err := json.Marshal(step.FunctionCall)
	if err != nil {
		return models.FunctionCall{}, err
	}
	var call models.FunctionCall
	if err := json.Unmarshal(raw, &call); err != nil {
		return models.FunctionCall{}, err
	}
	if call.Name == "" {
		call.Name = step.ExecutorRef
	}
	return call, nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
