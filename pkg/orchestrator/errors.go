package orchestrator

import "fmt"

// InterpretationError means the request could not be turned into a usable
// goal, even after the clarification loop. It surfaces to the caller with
// the validator's last objection.
type InterpretationError struct {
	Detail string
}

func (e *InterpretationError) Error() string {
	return "interpretation failed: " + e.Detail
}

// TransitionError is a stage machine bug: a handler asked for a successor
// the transition table does not allow. Always fatal, never retried.
type TransitionError struct {
	From, To string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal stage transition %s -> %s", e.From, e.To)
}
