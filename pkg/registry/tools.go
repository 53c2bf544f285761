package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/toolspec"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// CreateToolRequest declares a new tool spec. Exactly one of Command and
// Handler must be set: subprocess tools carry an argv template, in-process
// tools name a registered handler.
type CreateToolRequest struct {
	Name             string
	Capabilities     []string
	InputSchema      map[string]any
	OutputSchema     map[string]any
	Command          []string
	Handler          string
	DefaultTimeoutMS int64
}

// CreateTool registers a new tool spec in draft state.
func (r *Registry) CreateTool(ctx context.Context, req CreateToolRequest) (*ent.ToolSpec, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("tool name is required")
	}
	if (len(req.Command) == 0) == (req.Handler == "") {
		return nil, fmt.Errorf("tool %s must declare exactly one of command and handler", req.Name)
	}
	if req.InputSchema == nil {
		return nil, fmt.Errorf("tool %s requires an input schema", req.Name)
	}

	create := r.client.ToolSpec.Create().
		SetID(uuid.NewString()).
		SetName(req.Name).
		SetCapabilities(req.Capabilities).
		SetInputSchema(req.InputSchema).
		SetCommand(req.Command).
		SetHandler(req.Handler)
	if req.OutputSchema != nil {
		create.SetOutputSchema(req.OutputSchema)
	}
	if req.DefaultTimeoutMS > 0 {
		create.SetDefaultTimeoutMs(req.DefaultTimeoutMS)
	}
	return create.Save(ctx)
}

// GetTool returns a tool spec by name.
func (r *Registry) GetTool(ctx context.Context, name string) (*ent.ToolSpec, error) {
	return r.client.ToolSpec.Query().Where(toolspec.Name(name)).Only(ctx)
}

// GetActiveTool returns a tool spec by name only if it is active.
func (r *Registry) GetActiveTool(ctx context.Context, name string) (*ent.ToolSpec, error) {
	return r.client.ToolSpec.Query().
		Where(toolspec.Name(name), toolspec.StatusEQ(toolspec.StatusActive)).
		Only(ctx)
}

// ListTools returns tool specs, optionally filtered by status.
func (r *Registry) ListTools(ctx context.Context, status models.RegistryStatus) ([]*ent.ToolSpec, error) {
	q := r.client.ToolSpec.Query().Order(ent.Asc(toolspec.FieldName))
	if status != "" {
		q = q.Where(toolspec.StatusEQ(toolspec.Status(status)))
	}
	return q.All(ctx)
}

// TransitionTool moves a tool through the lifecycle lattice under
// optimistic concurrency.
func (r *Registry) TransitionTool(ctx context.Context, name string, next models.RegistryStatus, expectedVersion int) (*ent.ToolSpec, error) {
	current, err := r.GetTool(ctx, name)
	if err != nil {
		return nil, err
	}
	if !models.RegistryStatus(current.Status).CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: tool %s cannot go %s → %s",
			ErrInvalidTransition, name, current.Status, next)
	}

	n, err := r.client.ToolSpec.Update().
		Where(toolspec.ID(current.ID), toolspec.Version(expectedVersion)).
		SetStatus(toolspec.Status(next)).
		SetVersion(expectedVersion + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition tool %s: %w", name, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: tool %s version %d is stale", ErrConcurrentModification, name, expectedVersion)
	}
	return r.GetTool(ctx, name)
}

// RecordToolResult folds one invocation outcome into the tool's counters
// and latency average.
func (r *Registry) RecordToolResult(ctx context.Context, name string, success bool, latency time.Duration) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	spec, err := tx.ToolSpec.Query().
		Where(toolspec.Name(name)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tool %q: %w", name, err)
	}

	update := tx.ToolSpec.UpdateOne(spec).
		AddTotalRuns(1).
		SetAvgLatencyMs(movingAverage(spec.AvgLatencyMs, float64(latency.Milliseconds())))
	if success {
		update.AddSuccesses(1)
	} else {
		update.AddFailures(1)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record tool result: %w", err)
	}
	return tx.Commit()
}
