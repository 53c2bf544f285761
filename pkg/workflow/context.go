// Package workflow carries the runtime context handed to every component
// that acts on behalf of a workflow: identity, shared dependencies, and the
// event emission helper that keeps causality chains intact.
package workflow

import (
	"context"
	"time"

	"github.com/codeready-toolchain/maestro/pkg/checkpoint"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/gateway"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/sandbox"
)

// Generator is the LLM surface components depend on. Implemented by
// gateway.Gateway; an interface here so planner and executor tests can
// substitute a scripted model.
type Generator interface {
	Generate(ctx context.Context, req gateway.Request) (*gateway.Result, error)
	GenerateStream(ctx context.Context, req gateway.Request) (<-chan gateway.Chunk, error)
}

// RuntimeContext carries all dependencies and identity needed by a
// component during one workflow run. Created by the orchestrator per
// workflow; derived per stage and per step so parent event ids chain.
type RuntimeContext struct {
	// Identity
	WorkflowID    string
	SessionID     string
	Stage         models.Stage
	ComponentRole string
	ComponentName string
	ParentEventID string

	// Dependencies (injected by the orchestrator)
	Events      *eventlog.Log
	Registry    *registry.Registry
	LLM         Generator
	Sandbox     *sandbox.Sandbox
	Checkpoints *checkpoint.Store

	// Now is the clock; tests pin it. Defaults to time.Now.
	Now func() time.Time
}

// WithStage derives a context for one stage, resetting the component
// identity to the stage's canonical role.
func (r *RuntimeContext) WithStage(stage models.Stage, role, name string) *RuntimeContext {
	derived := *r
	derived.Stage = stage
	derived.ComponentRole = role
	derived.ComponentName = name
	return &derived
}

// WithParent derives a context whose emitted events chain under the given
// event id.
func (r *RuntimeContext) WithParent(parentEventID string) *RuntimeContext {
	derived := *r
	derived.ParentEventID = parentEventID
	return &derived
}

// Clock returns the current time via the injected clock.
func (r *RuntimeContext) Clock() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Emit appends one event with the context's identity fields filled in.
// Callers set only what varies: type, status, summary, reason, metadata.
func (r *RuntimeContext) Emit(ctx context.Context, e models.AppendEventRequest) (*models.EventRecord, error) {
	if e.WorkflowID == "" {
		e.WorkflowID = r.WorkflowID
	}
	if e.SessionID == "" {
		e.SessionID = r.SessionID
	}
	if e.Stage == "" {
		e.Stage = r.Stage
	}
	if e.ComponentRole == "" {
		e.ComponentRole = r.ComponentRole
	}
	if e.ComponentName == "" {
		e.ComponentName = r.ComponentName
	}
	if e.ParentEventID == nil && r.ParentEventID != "" {
		parent := r.ParentEventID
		e.ParentEventID = &parent
	}
	if e.DecisionSource == "" {
		e.DecisionSource = models.SourceComponent
	}
	return r.Events.Append(ctx, e)
}
