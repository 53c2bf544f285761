// Package sandbox executes tool calls under resource limits. Nothing the
// LLM writes is ever executed directly: only schema-validated function
// calls against registered tool specs reach this package, and every
// subprocess runs with a wall clock, memory, and CPU budget.
package sandbox

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// Limits bounds one execution. Zero fields fall back to the deployment
// defaults the sandbox was constructed with.
type Limits struct {
	WallMS int64
	MemMB  int64
	CPUMS  int64
}

// Usage is the resource accounting of one execution. Subprocess tools get
// real rusage numbers; in-process handlers only wall time.
type Usage struct {
	WallMS   int64 `json:"wall_ms"`
	CPUMS    int64 `json:"cpu_ms"`
	MaxRSSKB int64 `json:"max_rss_kb"`
}

// Result is one completed execution.
type Result struct {
	Status      string `json:"status"` // "ok" or "error"
	Stdout      string `json:"stdout,omitempty"`
	Stderr      string `json:"stderr,omitempty"`
	ResultValue any    `json:"result_value,omitempty"`
	Usage       Usage  `json:"usage"`
}

// Handler is an in-process tool implementation registered by name.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Sandbox validates and runs tool calls.
type Sandbox struct {
	defaults Limits
	handlers map[string]Handler
	schemas  *schemaCache
}

// New creates a sandbox with deployment-default limits.
func New(defaults Limits) *Sandbox {
	return &Sandbox{
		defaults: defaults,
		handlers: make(map[string]Handler),
		schemas:  newSchemaCache(),
	}
}

// RegisterHandler installs an in-process tool implementation. Must be
// called before any spec referencing the name executes.
func (s *Sandbox) RegisterHandler(name string, h Handler) {
	s.handlers[name] = h
}

// Execute runs one validated call against a tool spec. Schema violations
// and forbidden signatures never spawn anything; limit breaches surface as
// SandboxViolation even when the process exited cleanly.
func (s *Sandbox) Execute(ctx context.Context, call models.FunctionCall, spec *ent.ToolSpec, limits Limits) (*Result, error) {
	limits = s.effective(limits, spec)

	if err := s.validateArguments(call, spec); err != nil {
		return nil, err
	}
	if err := screen(call, spec); err != nil {
		return nil, err
	}

	start := time.Now()
	var result *Result
	var err error
	switch {
	case spec.Handler != "":
		result, err = s.runHandler(ctx, call, spec, limits)
	case len(spec.Command) > 0:
		result, err = s.runSubprocess(ctx, call, spec, limits)
	default:
		return nil, fmt.Errorf("tool %s declares neither command nor handler", spec.Name)
	}
	if err != nil {
		return nil, err
	}

	result.Usage.WallMS = time.Since(start).Milliseconds()
	if err := checkUsage(result.Usage, limits); err != nil {
		return nil, err
	}
	return result, nil
}

// effective resolves the limits for one call: explicit limits win, then the
// tool's default timeout, then deployment defaults.
func (s *Sandbox) effective(limits Limits, spec *ent.ToolSpec) Limits {
	if limits.WallMS <= 0 {
		limits.WallMS = spec.DefaultTimeoutMs
	}
	if limits.WallMS <= 0 || (s.defaults.WallMS > 0 && limits.WallMS > s.defaults.WallMS) {
		limits.WallMS = s.defaults.WallMS
	}
	if limits.MemMB <= 0 {
		limits.MemMB = s.defaults.MemMB
	}
	if limits.CPUMS <= 0 {
		limits.CPUMS = s.defaults.CPUMS
	}
	return limits
}

// checkUsage enforces post-hoc resource limits. A process that exited 0
// but blew its memory budget still fails.
func checkUsage(usage Usage, limits Limits) error {
	if limits.MemMB > 0 && usage.MaxRSSKB > limits.MemMB*1024 {
		return &Violation{
			Kind:   ViolationMemory,
			Detail: fmt.Sprintf("max rss %d KB exceeds limit %d MB", usage.MaxRSSKB, limits.MemMB),
		}
	}
	if limits.CPUMS > 0 && usage.CPUMS > limits.CPUMS {
		return &Violation{
			Kind:   ViolationCPU,
			Detail: fmt.Sprintf("cpu time %d ms exceeds limit %d ms", usage.CPUMS, limits.CPUMS),
		}
	}
	return nil
}
