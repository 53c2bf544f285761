package planner

import "fmt"

// Parse phases, used as ParseError.Phase and in reason codes.
const (
	PhaseAnalysis      = "analysis"
	PhaseDecomposition = "decomposition"
	PhaseStructure     = "structure"
)

// ParseError means the model's output could not be turned into a usable
// plan even after the extraction ladder and one stricter retry.
type ParseError struct {
	Phase  string
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("planner parse failure in %s: %s", e.Phase, e.Detail)
}
