// Package planner turns a classified request into an executable plan:
// procedural recall, task analysis, decomposition into a step DAG, risk
// scoring, and alternative generation with weighted selection.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/maestro/ent"
	entplan "github.com/codeready-toolchain/maestro/ent/plan"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/gateway"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/workflow"
)

const (
	defaultPhaseTimeout = 300 * time.Second

	// Recall thresholds: a pattern steers planning only once it has proven
	// itself.
	recallMinSuccessRate = 0.7
	recallMinSamples     = 5
)

// Request asks for a plan.
type Request struct {
	WorkflowID  string
	SessionID   string
	Goal        string
	RequestType models.RequestType

	// Version of the plan to create; 1 for the first plan of a workflow.
	Version int

	// Feedback carries human modification feedback on re-planning.
	Feedback string
	// FailureContext carries the executor's failure summary on re-planning.
	FailureContext string

	GenerateAlternatives bool
	NumAlternatives      int
}

// Result is a generated plan with its persisted steps and siblings.
type Result struct {
	Plan         *ent.Plan
	Steps        []*ent.Step
	Alternatives []*ent.Plan
	Recalled     *ent.LearningPattern
}

// Planner generates and persists plans.
type Planner struct {
	client *ent.Client
	cfg    config.PlannerConfig
}

// New creates a planner.
func New(client *ent.Client, cfg config.PlannerConfig) *Planner {
	return &Planner{client: client, cfg: cfg}
}

// candidate is one fully analyzed plan before persistence.
type candidate struct {
	strategyName string
	strategy     models.Strategy
	steps        []models.StepDraft
	risk         float64
}

// GeneratePlan runs the full pipeline and persists the outcome. With
// alternatives enabled, all siblings are persisted and the weighted winner
// is marked primary.
func (p *Planner) GeneratePlan(ctx context.Context, rctx *workflow.RuntimeContext, req Request) (*Result, error) {
	if req.Version <= 0 {
		req.Version = 1
	}

	recalled, err := p.recall(ctx, rctx, req)
	if err != nil {
		return nil, err
	}

	resolution, err := rctx.Registry.ResolvePrompt(ctx, models.StagePlanning, "planning", registry.ResolveHints{})
	if err != nil {
		return nil, fmt.Errorf("planning prompt: %w", err)
	}

	var candidates []*candidate
	if req.GenerateAlternatives {
		candidates, err = p.generateAlternatives(ctx, rctx, req, resolution, recalled)
	} else {
		var single *candidate
		single, err = p.generateCandidate(ctx, rctx, req, resolution, recalled, "")
		if single != nil {
			candidates = []*candidate{single}
		}
	}
	if err != nil {
		return nil, err
	}

	winner := 0
	if len(candidates) > 1 {
		winner = p.selectWinner(candidates)
	}

	result, err := p.persist(ctx, req, candidates, winner)
	if err != nil {
		return nil, err
	}
	result.Recalled = recalled

	for i, plan := range append([]*ent.Plan{result.Plan}, result.Alternatives...) {
		_, err := rctx.Emit(ctx, models.AppendEventRequest{
			EventType:     models.EventPlanCreated,
			Status:        "created",
			OutputSummary: fmt.Sprintf("plan v%d %q: %d steps, risk %.2f", plan.Version, plan.StrategyName, len(candidates[planIndex(i, winner)].steps), plan.RiskScore),
			PromptID:      &resolution.PromptID,
			PromptVersion: &resolution.PromptVersion,
			Metadata: map[string]any{
				"plan_id":  plan.ID,
				"version":  plan.Version,
				"strategy": plan.StrategyName,
				"primary":  plan.Primary,
				"recalled": recalled != nil,
			},
		})
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// planIndex maps the emit loop position (winner first, then the remaining
// candidates in order) back to the candidate slice.
func planIndex(pos, winner int) int {
	if pos == 0 {
		return winner
	}
	if pos-1 < winner {
		return pos - 1
	}
	return pos
}

// Replan supersedes a failed or modified plan with a new version that folds
// the failure context and any human feedback into analysis.
func (p *Planner) Replan(ctx context.Context, rctx *workflow.RuntimeContext, predecessor *ent.Plan, failureContext, feedback string) (*Result, error) {
	if models.PlanStatus(predecessor.Status) != models.PlanSuperseded {
		err := p.client.Plan.UpdateOneID(predecessor.ID).
			SetStatus(entplan.StatusSuperseded).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to supersede plan %s: %w", predecessor.ID, err)
		}
	}
	_, err := rctx.Emit(ctx, models.AppendEventRequest{
		EventType:     models.EventPlanSuperseded,
		Status:        "superseded",
		OutputSummary: failureContext,
		Metadata:      map[string]any{"plan_id": predecessor.ID, "version": predecessor.Version},
	})
	if err != nil {
		return nil, err
	}

	wf, err := p.client.Workflow.Get(ctx, predecessor.WorkflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}
	return p.GeneratePlan(ctx, rctx, Request{
		WorkflowID:     predecessor.WorkflowID,
		SessionID:      wf.SessionID,
		Goal:           predecessor.Goal,
		RequestType:    models.RequestType(wf.RequestType),
		Version:        predecessor.Version + 1,
		Feedback:       feedback,
		FailureContext: failureContext,
	})
}

// recall looks for a proven strategy pattern matching the request.
func (p *Planner) recall(ctx context.Context, rctx *workflow.RuntimeContext, req Request) (*ent.LearningPattern, error) {
	signature := models.RequestSignature(req.RequestType, req.Goal)
	pattern, err := rctx.Registry.FindPattern(ctx, models.PatternStrategy, signature)
	if err != nil {
		return nil, err
	}
	if pattern == nil {
		prefix := "req:" + string(req.RequestType) + ":"
		matches, err := rctx.Registry.MatchPatterns(ctx, models.PatternStrategy, prefix, 5)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if m.ObservedSuccessRate > recallMinSuccessRate && m.SampleCount >= recallMinSamples {
				pattern = m
				break
			}
		}
	}
	if pattern == nil {
		return nil, nil
	}
	if pattern.ObservedSuccessRate <= recallMinSuccessRate || pattern.SampleCount < recallMinSamples {
		return nil, nil
	}
	slog.Info("Recalled planning pattern",
		"workflow_id", req.WorkflowID,
		"signature", pattern.Signature,
		"success_rate", pattern.ObservedSuccessRate,
		"samples", pattern.SampleCount)
	return pattern, nil
}

// generateCandidate runs analysis and decomposition for one strategy bias.
func (p *Planner) generateCandidate(ctx context.Context, rctx *workflow.RuntimeContext, req Request, res *registry.Resolution, recalled *ent.LearningPattern, bias string) (*candidate, error) {
	strategy, err := p.analyze(ctx, rctx, req, res, recalled, bias)
	if err != nil {
		return nil, err
	}

	steps, err := p.decompose(ctx, rctx, req, res, strategy, bias)
	if err != nil {
		return nil, err
	}
	ordered, err := orderSteps(steps)
	if err != nil {
		return nil, err
	}

	ratio := knownToolRatio(ctx, rctx.Registry, ordered)
	name := bias
	if name == "" {
		name = "balanced"
	}
	return &candidate{
		strategyName: name,
		strategy:     strategy,
		steps:        ordered,
		risk:         riskScore(ordered, ratio, recalled != nil),
	}, nil
}

// analyze is the task-analysis LLM call: one strategy object out.
func (p *Planner) analyze(ctx context.Context, rctx *workflow.RuntimeContext, req Request, res *registry.Resolution, recalled *ent.LearningPattern, bias string) (models.Strategy, error) {
	timeout := p.cfg.AnalysisTimeout
	if timeout <= 0 {
		timeout = defaultPhaseTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt := analysisPrompt(req, recalled, bias)
	raw, err := p.generate(callCtx, rctx, req, res, prompt)
	if err != nil {
		return models.Strategy{}, err
	}

	strategy, perr := parseStrategy(raw)
	if perr == nil {
		return strategy, nil
	}

	// One retry with an explicit JSON-only instruction.
	raw, err = p.generate(callCtx, rctx, req, res, prompt+strictJSONSuffix)
	if err != nil {
		return models.Strategy{}, err
	}
	strategy, perr = parseStrategy(raw)
	if perr != nil {
		return models.Strategy{}, &ParseError{Phase: PhaseAnalysis, Detail: perr.Error()}
	}
	return strategy, nil
}

// decompose is the decomposition LLM call: typed step drafts out.
func (p *Planner) decompose(ctx context.Context, rctx *workflow.RuntimeContext, req Request, res *registry.Resolution, strategy models.Strategy, bias string) ([]models.StepDraft, error) {
	timeout := p.cfg.DecompositionTimeout
	if timeout <= 0 {
		timeout = defaultPhaseTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt := decompositionPrompt(req, strategy, bias)
	raw, err := p.generate(callCtx, rctx, req, res, prompt)
	if err != nil {
		return nil, err
	}

	steps, perr := parseSteps(raw, req.WorkflowID)
	if perr == nil {
		return steps, nil
	}

	raw, err = p.generate(callCtx, rctx, req, res, prompt+strictJSONSuffix)
	if err != nil {
		return nil, err
	}
	steps, perr = parseSteps(raw, req.WorkflowID)
	if perr != nil {
		return nil, &ParseError{Phase: PhaseDecomposition, Detail: perr.Error()}
	}
	return steps, nil
}

// generate issues one planning LLM call. Planning never reads the
// fingerprint cache: alternatives need independent samples.
func (p *Planner) generate(ctx context.Context, rctx *workflow.RuntimeContext, req Request, res *registry.Resolution, userPrompt string) (string, error) {
	result, err := rctx.LLM.Generate(ctx, gateway.Request{
		WorkflowID:    req.WorkflowID,
		SessionID:     req.SessionID,
		Stage:         models.StagePlanning,
		ComponentRole: "planning",
		ComponentName: "planner",
		TaskClass:     models.TaskClassPlanning,
		System:        res.Body,
		Messages:      []gateway.Message{{Role: "user", Content: userPrompt}},
		PromptID:      &res.PromptID,
		PromptVersion: &res.PromptVersion,
		NoCache:       true,
	})
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// parseStrategy decodes a strategy object, filling absent keys with
// defaults.
func parseStrategy(raw string) (models.Strategy, error) {
	doc, err := extractJSON(raw)
	if err != nil {
		return models.Strategy{}, err
	}
	var strategy models.Strategy
	if err := json.Unmarshal(doc, &strategy); err != nil {
		return models.Strategy{}, fmt.Errorf("strategy object: %w", err)
	}

	filled := false
	if strategy.Approach == "" {
		strategy.Approach = "direct"
		filled = true
	}
	if strategy.Assumptions == nil {
		strategy.Assumptions = []string{}
		filled = true
	}
	if strategy.Constraints == nil {
		strategy.Constraints = []string{}
		filled = true
	}
	if strategy.SuccessCriteria == nil {
		strategy.SuccessCriteria = []string{"request satisfied"}
		filled = true
	}
	if filled {
		slog.Warn("Filled absent strategy keys with defaults", "reason_code", "planner_default_fill")
	}
	return strategy, nil
}

// parseSteps decodes the decomposition output, filling per-step defaults.
func parseSteps(raw, workflowID string) ([]models.StepDraft, error) {
	doc, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var drafts []models.StepDraft
	if err := json.Unmarshal(doc, &drafts); err != nil {
		// Some models wrap the list: {"steps": [...]}.
		var wrapped struct {
			Steps []models.StepDraft `json:"steps"`
		}
		if werr := json.Unmarshal(doc, &wrapped); werr != nil || wrapped.Steps == nil {
			return nil, fmt.Errorf("step list: %w", err)
		}
		drafts = wrapped.Steps
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("decomposition produced no steps")
	}

	filled := false
	for i := range drafts {
		d := &drafts[i]
		if !d.Type.IsValid() {
			d.Type = models.StepAction
			filled = true
		}
		if !d.ExecutorKind.IsValid() {
			d.ExecutorKind = models.ExecutorInlineLLM
			filled = true
		}
		if d.TimeoutMS <= 0 {
			d.TimeoutMS = defaultPhaseTimeout.Milliseconds()
			filled = true
		}
		if !d.RiskLevel.IsValid() {
			d.RiskLevel = models.RiskMedium
			filled = true
		}
		if d.Retry == nil {
			d.Retry = &models.RetryPolicy{MaxAttempts: 3, BackoffBaseMS: 1_000, Jitter: true}
		}
	}
	if filled {
		slog.Warn("Filled absent step keys with defaults",
			"workflow_id", workflowID, "reason_code", "planner_default_fill")
	}
	return drafts, nil
}

const strictJSONSuffix = "\n\nReturn ONLY the JSON document. No prose, no markdown, no code fences."

func analysisPrompt(req Request, recalled *ent.LearningPattern, bias string) string {
	prompt := "Analyze this task and produce a strategy object with keys " +
		`"approach", "assumptions", "constraints", "success_criteria".` +
		"\n\nTask (" + string(req.RequestType) + "): " + req.Goal
	if recalled != nil && len(recalled.Body) > 0 {
		body, _ := json.Marshal(recalled.Body)
		prompt += "\n\nA previously successful strategy for similar requests (success rate " +
			fmt.Sprintf("%.0f%%", recalled.ObservedSuccessRate*100) + "), adapt as appropriate:\n" + string(body)
	}
	if req.FailureContext != "" {
		prompt += "\n\nThe previous plan failed; avoid repeating it:\n" + req.FailureContext
	}
	if req.Feedback != "" {
		prompt += "\n\nHuman feedback to incorporate:\n" + req.Feedback
	}
	if bias != "" {
		prompt += "\n\nPlan with a " + bias + " bias: " + strategyBiasHint(bias)
	}
	return prompt
}

func decompositionPrompt(req Request, strategy models.Strategy, bias string) string {
	strategyJSON, _ := json.Marshal(strategy)
	prompt := "Decompose the task into an ordered JSON array of steps. Each step has keys " +
		`"name", "description", "type" (action|decision|validation), ` +
		`"executor_kind" (agent|tool|team|inline_llm), "executor_ref", "depends_on" ` +
		`(names of prerequisite steps), "timeout_ms", "approval_required", "risk_level" (low|medium|high).` +
		"\n\nTask: " + req.Goal +
		"\nStrategy: " + string(strategyJSON)
	if bias != "" {
		prompt += "\nBias: " + strategyBiasHint(bias)
	}
	return prompt
}

func strategyBiasHint(bias string) string {
	switch bias {
	case "conservative":
		return "prefer fewer, well-understood operations; accept longer duration for lower risk"
	case "aggressive":
		return "prefer speed and parallelism; accept higher risk and more approval points"
	default:
		return "balance duration against risk"
	}
}
