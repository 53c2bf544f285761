package sandbox

import (
	"errors"
	"fmt"
)

// ViolationKind classifies why the sandbox refused or killed a call.
type ViolationKind string

const (
	ViolationTimeout   ViolationKind = "timeout"
	ViolationMemory    ViolationKind = "memory"
	ViolationCPU       ViolationKind = "cpu"
	ViolationForbidden ViolationKind = "forbidden"
)

// Violation is a sandbox policy or limit breach. It is an error distinct
// from ordinary tool failure: the tool did not merely fail, it was stopped.
type Violation struct {
	Kind   ViolationKind
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("sandbox violation (%s): %s", v.Kind, v.Detail)
}

// AsViolation extracts a *Violation from an error chain, or nil.
func AsViolation(err error) *Violation {
	var v *Violation
	if errors.As(err, &v) {
		return v
	}
	return nil
}
