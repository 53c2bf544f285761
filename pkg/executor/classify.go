package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/gateway"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/sandbox"
)

// ErrorKind classifies a step failure. Retry policy and re-planning key off
// the kind, not the error text.
type ErrorKind string

const (
	ErrStructure   ErrorKind = "structure"
	ErrDependency  ErrorKind = "dependency"
	ErrEnvironment ErrorKind = "environment"
	ErrAgent       ErrorKind = "agent"
	ErrValidation  ErrorKind = "validation"
	ErrTimeout     ErrorKind = "timeout"
	ErrResource    ErrorKind = "resource"
	ErrUnknown     ErrorKind = "unknown"
)

// StepError is a classified step failure. ReasonCode is the stable code
// surfaced in events and, on escalation, to the user.
type StepError struct {
	Kind       ErrorKind
	ReasonCode string
	Err        error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Kind, e.ReasonCode, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Retryable reports whether the step's retry policy applies. Structural and
// validation failures repeat deterministically; retrying them burns
// attempts for nothing.
func (e *StepError) Retryable() bool {
	switch e.Kind {
	case ErrEnvironment, ErrAgent, ErrTimeout, ErrUnknown:
		return true
	default:
		return false
	}
}

// classify maps an arbitrary step failure onto the taxonomy.
func classify(err error) *StepError {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr
	}

	if v := sandbox.AsViolation(err); v != nil {
		kind := ErrResource
		if v.Kind == sandbox.ViolationTimeout {
			kind = ErrTimeout
		}
		return &StepError{Kind: kind, ReasonCode: "sandbox_" + string(v.Kind), Err: err}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &StepError{Kind: ErrTimeout, ReasonCode: "step_timeout", Err: err}
	case errors.Is(err, gateway.ErrLLMUnavailable), errors.Is(err, registry.ErrNoModelAvailable):
		return &StepError{Kind: ErrEnvironment, ReasonCode: "llm_unavailable", Err: err}
	case errors.Is(err, registry.ErrPromptUnresolved):
		return &StepError{Kind: ErrStructure, ReasonCode: "prompt_unresolved", Err: err}
	case errors.Is(err, eventlog.ErrEventLogUnavailable):
		// Not retryable at step level; the caller aborts the workflow.
		return &StepError{Kind: ErrEnvironment, ReasonCode: "eventlog_unavailable", Err: err}
	default:
		return &StepError{Kind: ErrUnknown, ReasonCode: "step_error", Err: err}
	}
}
