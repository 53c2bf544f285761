package models

// Strategy is the planner's approach object produced by task analysis.
type Strategy struct {
	Approach        string   `json:"approach"`
	Assumptions     []string `json:"assumptions"`
	Constraints     []string `json:"constraints"`
	SuccessCriteria []string `json:"success_criteria"`
}

// RetryPolicy governs step retries. Jitter adds a uniform [0, base) spread on
// top of the capped exponential backoff.
type RetryPolicy struct {
	MaxAttempts   int   `json:"max_attempts"`
	BackoffBaseMS int64 `json:"backoff_base_ms"`
	Jitter        bool  `json:"jitter"`
}

// FunctionCall is a structured tool invocation. Only schema-validated calls
// ever reach the sandbox; free-form LLM text does not execute.
type FunctionCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// StepChecks declares the checks a validation step runs against its target
// step's outputs.
type StepChecks struct {
	Schema         map[string]any `json:"schema,omitempty"`
	MustContain    []string       `json:"must_contain,omitempty"`
	MustNotContain []string       `json:"must_not_contain,omitempty"`
	MinLength      int            `json:"min_length,omitempty"`
	MaxLength      int            `json:"max_length,omitempty"`
	Semantic       bool           `json:"semantic,omitempty"`
	TargetStep     string         `json:"target_step,omitempty"`
}

// StepDraft is one step as decomposition produces it, before ids and indices
// are assigned. DependsOn references sibling drafts by name.
type StepDraft struct {
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Type             StepType       `json:"type"`
	ExecutorKind     ExecutorKind   `json:"executor_kind"`
	ExecutorRef      string         `json:"executor_ref,omitempty"`
	TeamMembers      []string       `json:"team_members,omitempty"`
	Inputs           map[string]any `json:"inputs,omitempty"`
	Outputs          map[string]any `json:"outputs,omitempty"`
	DependsOn        []string       `json:"depends_on,omitempty"`
	TimeoutMS        int64          `json:"timeout_ms,omitempty"`
	Retry            *RetryPolicy   `json:"retry_policy,omitempty"`
	ApprovalRequired bool           `json:"approval_required,omitempty"`
	RiskLevel        RiskLevel      `json:"risk_level,omitempty"`
	FunctionCall     *FunctionCall  `json:"function_call,omitempty"`
	Checks           *StepChecks    `json:"checks,omitempty"`
}

// CreatePlanRequest contains fields for persisting a plan.
type CreatePlanRequest struct {
	WorkflowID         string   `json:"workflow_id"`
	Version            int      `json:"version"`
	Goal               string   `json:"goal"`
	Strategy           Strategy `json:"strategy"`
	StrategyName       string   `json:"strategy_name,omitempty"`
	RiskScore          float64  `json:"risk_score"`
	Alternatives       []string `json:"alternatives,omitempty"`
	Primary            bool     `json:"primary"`
	ExpectedDurationMS int64    `json:"expected_duration_ms"`
}

// CreateStepRequest contains fields for persisting a step under a plan.
// Dependencies are step ids, already resolved from draft names.
type CreateStepRequest struct {
	PlanID           string         `json:"plan_id"`
	WorkflowID       string         `json:"workflow_id"`
	Index            int            `json:"index"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Type             StepType       `json:"type"`
	ExecutorKind     ExecutorKind   `json:"executor_kind"`
	ExecutorRef      string         `json:"executor_ref,omitempty"`
	TeamMembers      []string       `json:"team_members,omitempty"`
	Inputs           map[string]any `json:"inputs,omitempty"`
	Outputs          map[string]any `json:"outputs,omitempty"`
	Dependencies     []string       `json:"dependencies,omitempty"`
	TimeoutMS        int64          `json:"timeout_ms"`
	MaxAttempts      int            `json:"max_attempts"`
	BackoffBaseMS    int64          `json:"backoff_base_ms"`
	ApprovalRequired bool           `json:"approval_required"`
	RiskLevel        RiskLevel      `json:"risk_level"`
	FunctionCall     *FunctionCall  `json:"function_call,omitempty"`
	Checks           *StepChecks    `json:"checks,omitempty"`
}

// DecisionOutcome is the structured choice a decision step produces. The
// selected branch is the only dependency path that becomes ready.
type DecisionOutcome struct {
	SelectedBranch string `json:"selected_branch"`
	Rationale      string `json:"rationale"`
}

// ValidationResult is the outcome of a validation step.
type ValidationResult struct {
	Outcome ValidationOutcome `json:"outcome"`
	Quality float64           `json:"quality"`
	Details []string          `json:"details,omitempty"`
}

// PlanScores holds the four evaluation criteria for alternative selection.
// Lower time, fewer approval points, and lower risk win; higher efficiency
// wins.
type PlanScores struct {
	Time           float64 `json:"time"`
	ApprovalPoints float64 `json:"approval_points"`
	Risk           float64 `json:"risk"`
	Efficiency     float64 `json:"efficiency"`
}
