package models

// RequestType classifies an incoming user request. Routing, planning depth,
// and the approval policy matrix all key off this value.
type RequestType string

const (
	RequestTypeSimpleQuestion   RequestType = "SIMPLE_QUESTION"
	RequestTypeInformationQuery RequestType = "INFORMATION_QUERY"
	RequestTypeCodeGeneration   RequestType = "CODE_GENERATION"
	RequestTypeComplexTask      RequestType = "COMPLEX_TASK"
	RequestTypePlanningOnly     RequestType = "PLANNING_ONLY"
)

// IsValid checks if the request type is one of the canonical five.
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeSimpleQuestion, RequestTypeInformationQuery,
		RequestTypeCodeGeneration, RequestTypeComplexTask, RequestTypePlanningOnly:
		return true
	default:
		return false
	}
}

// Stage is a canonical pipeline position. Every persisted event carries one.
type Stage string

const (
	StageInterpretation Stage = "interpretation"
	StageValidatorA     Stage = "validator_a"
	StageRouting        Stage = "routing"
	StagePlanning       Stage = "planning"
	StageValidatorB     Stage = "validator_b"
	StageExecution      Stage = "execution"
	StageReflection     Stage = "reflection"
	StageRegistryUpdate Stage = "registry_update"
)

// Stages lists the canonical stages in pipeline order.
var Stages = []Stage{
	StageInterpretation,
	StageValidatorA,
	StageRouting,
	StagePlanning,
	StageValidatorB,
	StageExecution,
	StageReflection,
	StageRegistryUpdate,
}

// IsValid checks membership in the canonical stage set.
func (s Stage) IsValid() bool {
	for _, known := range Stages {
		if s == known {
			return true
		}
	}
	return false
}

// ComponentRole returns the canonical component role for the stage.
// Consumers (prompt resolution, audit, UIs) must rely on this mapping.
func (s Stage) ComponentRole() string {
	switch s {
	case StageInterpretation:
		return "interpretation"
	case StageValidatorA:
		return "semantic_validator"
	case StageRouting:
		return "routing"
	case StagePlanning:
		return "planning"
	case StageValidatorB:
		return "execution_validator"
	case StageExecution:
		return "execution"
	case StageReflection:
		return "reflection"
	case StageRegistryUpdate:
		return "registry_update"
	default:
		return ""
	}
}

// WorkflowStatus is the lifecycle state of a workflow.
type WorkflowStatus string

const (
	WorkflowPending   WorkflowStatus = "pending"
	WorkflowRunning   WorkflowStatus = "running"
	WorkflowPaused    WorkflowStatus = "paused"
	WorkflowCompleted WorkflowStatus = "completed"
	WorkflowFailed    WorkflowStatus = "failed"
	WorkflowCancelled WorkflowStatus = "cancelled"
)

// IsTerminal reports whether the status is immutable.
func (s WorkflowStatus) IsTerminal() bool {
	return s == WorkflowCompleted || s == WorkflowFailed || s == WorkflowCancelled
}

// IsValid reports whether the status is a known lifecycle state.
func (s WorkflowStatus) IsValid() bool {
	switch s {
	case WorkflowPending, WorkflowRunning, WorkflowPaused,
		WorkflowCompleted, WorkflowFailed, WorkflowCancelled:
		return true
	}
	return false
}

// PlanStatus is the lifecycle state of a plan.
type PlanStatus string

const (
	PlanDraft           PlanStatus = "draft"
	PlanPendingApproval PlanStatus = "pending_approval"
	PlanApproved        PlanStatus = "approved"
	PlanExecuting       PlanStatus = "executing"
	PlanPaused          PlanStatus = "paused"
	PlanCompleted       PlanStatus = "completed"
	PlanFailed          PlanStatus = "failed"
	PlanSuperseded      PlanStatus = "superseded"
)

// IsTerminal reports whether the plan can no longer change state.
func (s PlanStatus) IsTerminal() bool {
	return s == PlanCompleted || s == PlanFailed || s == PlanSuperseded
}

// StepType distinguishes what a step does.
type StepType string

const (
	StepAction     StepType = "action"
	StepDecision   StepType = "decision"
	StepValidation StepType = "validation"
)

// IsValid checks if the step type is known.
func (t StepType) IsValid() bool {
	return t == StepAction || t == StepDecision || t == StepValidation
}

// StepState is the execution state of a step.
type StepState string

const (
	StepWaiting   StepState = "waiting"
	StepReady     StepState = "ready"
	StepRunning   StepState = "running"
	StepSucceeded StepState = "succeeded"
	StepFailed    StepState = "failed"
	StepSkipped   StepState = "skipped"
	StepCancelled StepState = "cancelled"
)

// IsTerminal reports whether the step has concluded.
func (s StepState) IsTerminal() bool {
	switch s {
	case StepSucceeded, StepFailed, StepSkipped, StepCancelled:
		return true
	default:
		return false
	}
}

// ExecutorKind is the closed set of step executor variants.
type ExecutorKind string

const (
	ExecutorAgent     ExecutorKind = "agent"
	ExecutorTool      ExecutorKind = "tool"
	ExecutorTeam      ExecutorKind = "team"
	ExecutorInlineLLM ExecutorKind = "inline_llm"
)

// IsValid checks if the executor kind is one of the closed set.
func (k ExecutorKind) IsValid() bool {
	switch k {
	case ExecutorAgent, ExecutorTool, ExecutorTeam, ExecutorInlineLLM:
		return true
	default:
		return false
	}
}

// RiskLevel grades a step's blast radius.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// IsValid checks if the risk level is known.
func (r RiskLevel) IsValid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// DecisionSource records where a runtime decision originated.
type DecisionSource string

const (
	SourceComponent DecisionSource = "component"
	SourceRegistry  DecisionSource = "registry"
	SourceHuman     DecisionSource = "human"
)

// IsValid checks if the decision source is known.
func (d DecisionSource) IsValid() bool {
	return d == SourceComponent || d == SourceRegistry || d == SourceHuman
}

// RegistryStatus is the lifecycle of registry entries (agents, tools, models).
type RegistryStatus string

const (
	RegistryDraft           RegistryStatus = "draft"
	RegistryWaitingApproval RegistryStatus = "waiting_approval"
	RegistryActive          RegistryStatus = "active"
	RegistryPaused          RegistryStatus = "paused"
	RegistryDeprecated      RegistryStatus = "deprecated"
)

// CanTransitionTo enforces the registry lifecycle lattice. Deprecated is
// terminal; everything else may deprecate, pause/resume, or advance.
func (s RegistryStatus) CanTransitionTo(next RegistryStatus) bool {
	if s == RegistryDeprecated {
		return false
	}
	switch s {
	case RegistryDraft:
		return next == RegistryWaitingApproval || next == RegistryActive || next == RegistryDeprecated
	case RegistryWaitingApproval:
		return next == RegistryActive || next == RegistryDraft || next == RegistryDeprecated
	case RegistryActive:
		return next == RegistryPaused || next == RegistryDeprecated
	case RegistryPaused:
		return next == RegistryActive || next == RegistryDeprecated
	default:
		return false
	}
}

// ApprovalStatus is the state of an approval request.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
	ApprovalModified ApprovalStatus = "modified"
	ApprovalExpired  ApprovalStatus = "expired"
)

// IsDecided reports whether the request has left the pending state.
func (s ApprovalStatus) IsDecided() bool {
	return s != ApprovalPending
}

// TaskState is the queue task lifecycle.
type TaskState string

const (
	TaskQueued    TaskState = "queued"
	TaskLeased    TaskState = "leased"
	TaskSucceeded TaskState = "succeeded"
	TaskFailed    TaskState = "failed"
	TaskDead      TaskState = "dead"
)

// PatternKind categorizes a learning pattern.
type PatternKind string

const (
	PatternStrategy      PatternKind = "strategy"
	PatternPrompt        PatternKind = "prompt"
	PatternToolSelection PatternKind = "tool_selection"
	PatternCodePattern   PatternKind = "code_pattern"
	PatternErrorRecovery PatternKind = "error_recovery"
)

// PatternLevel is the reflection granularity a pattern was extracted at.
type PatternLevel string

const (
	PatternMicro PatternLevel = "micro"
	PatternMeso  PatternLevel = "meso"
	PatternMacro PatternLevel = "macro"
)

// TaskClass groups LLM workloads for model selection.
type TaskClass string

const (
	TaskClassReasoning      TaskClass = "reasoning"
	TaskClassPlanning       TaskClass = "planning"
	TaskClassGeneralChat    TaskClass = "general_chat"
	TaskClassCodeGeneration TaskClass = "code_generation"
	TaskClassCodeAnalysis   TaskClass = "code_analysis"
)

// ModelCapability returns the endpoint capability that serves this class:
// reasoning-class work runs on reasoning models, code-class work on coding
// models.
func (c TaskClass) ModelCapability() string {
	switch c {
	case TaskClassCodeGeneration, TaskClassCodeAnalysis:
		return "coding"
	default:
		return "reasoning"
	}
}

// TaskClassFor maps a request type to the task class used for its main
// execution calls.
func TaskClassFor(t RequestType) TaskClass {
	switch t {
	case RequestTypeCodeGeneration:
		return TaskClassCodeGeneration
	case RequestTypeSimpleQuestion, RequestTypeInformationQuery:
		return TaskClassGeneralChat
	default:
		return TaskClassReasoning
	}
}

// ValidationOutcome is the result grade of a validation step.
type ValidationOutcome string

const (
	ValidationPass    ValidationOutcome = "pass"
	ValidationFail    ValidationOutcome = "fail"
	ValidationPartial ValidationOutcome = "partial"
)
