package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/agentspec"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// CreateAgentRequest declares a new agent spec. Agents start in draft.
type CreateAgentRequest struct {
	Name         string
	Description  string
	Capabilities []string
	ModelClass   models.TaskClass
}

// CreateAgent registers a new agent spec in draft state.
func (r *Registry) CreateAgent(ctx context.Context, req CreateAgentRequest) (*ent.AgentSpec, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("agent name is required")
	}
	modelClass := req.ModelClass
	if modelClass == "" {
		modelClass = models.TaskClassReasoning
	}
	return r.client.AgentSpec.Create().
		SetID(uuid.NewString()).
		SetName(req.Name).
		SetDescription(req.Description).
		SetCapabilities(req.Capabilities).
		SetModelClass(string(modelClass)).
		Save(ctx)
}

// GetAgent returns an agent spec by name.
func (r *Registry) GetAgent(ctx context.Context, name string) (*ent.AgentSpec, error) {
	return r.client.AgentSpec.Query().Where(agentspec.Name(name)).Only(ctx)
}

// GetActiveAgent returns an agent spec by name only if it is active.
// Executors call this: paused or deprecated agents must not run.
func (r *Registry) GetActiveAgent(ctx context.Context, name string) (*ent.AgentSpec, error) {
	return r.client.AgentSpec.Query().
		Where(agentspec.Name(name), agentspec.StatusEQ(agentspec.StatusActive)).
		Only(ctx)
}

// ListAgents returns agent specs, optionally filtered by status.
func (r *Registry) ListAgents(ctx context.Context, status models.RegistryStatus) ([]*ent.AgentSpec, error) {
	q := r.client.AgentSpec.Query().Order(ent.Asc(agentspec.FieldName))
	if status != "" {
		q = q.Where(agentspec.StatusEQ(agentspec.Status(status)))
	}
	return q.All(ctx)
}

// TransitionAgent moves an agent through the lifecycle lattice. The write
// is guarded by the version the caller read; a stale version returns
// ErrConcurrentModification.
func (r *Registry) TransitionAgent(ctx context.Context, name string, next models.RegistryStatus, expectedVersion int) (*ent.AgentSpec, error) {
	current, err := r.GetAgent(ctx, name)
	if err != nil {
		return nil, err
	}
	if !models.RegistryStatus(current.Status).CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: agent %s cannot go %s → %s",
			ErrInvalidTransition, name, current.Status, next)
	}

	n, err := r.client.AgentSpec.Update().
		Where(agentspec.ID(current.ID), agentspec.Version(expectedVersion)).
		SetStatus(agentspec.Status(next)).
		SetVersion(expectedVersion + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition agent %s: %w", name, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: agent %s version %d is stale", ErrConcurrentModification, name, expectedVersion)
	}
	return r.GetAgent(ctx, name)
}

// UpdateAgentSpec replaces the mutable declaration fields under optimistic
// concurrency.
func (r *Registry) UpdateAgentSpec(ctx context.Context, name string, req CreateAgentRequest, expectedVersion int) (*ent.AgentSpec, error) {
	current, err := r.GetAgent(ctx, name)
	if err != nil {
		return nil, err
	}

	update := r.client.AgentSpec.Update().
		Where(agentspec.ID(current.ID), agentspec.Version(expectedVersion)).
		SetDescription(req.Description).
		SetCapabilities(req.Capabilities).
		SetVersion(expectedVersion + 1)
	if req.ModelClass != "" {
		update.SetModelClass(string(req.ModelClass))
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent %s: %w", name, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: agent %s version %d is stale", ErrConcurrentModification, name, expectedVersion)
	}
	return r.GetAgent(ctx, name)
}

// RecordAgentResult folds one run outcome into the agent's counters and
// latency average. Metric writes bypass the version token: they lose no
// information under interleaving and must not fail concurrent runs.
func (r *Registry) RecordAgentResult(ctx context.Context, name string, success bool, latency time.Duration) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	spec, err := tx.AgentSpec.Query().
		Where(agentspec.Name(name)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load agent %q: %w", name, err)
	}

	update := tx.AgentSpec.UpdateOne(spec).
		AddTotalRuns(1).
		SetAvgLatencyMs(movingAverage(spec.AvgLatencyMs, float64(latency.Milliseconds())))
	if success {
		update.AddSuccesses(1)
	} else {
		update.AddFailures(1)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record agent result: %w", err)
	}
	return tx.Commit()
}

// AgentTrust returns the Laplace-smoothed trust for one agent.
func (r *Registry) AgentTrust(ctx context.Context, name string) (float64, error) {
	spec, err := r.GetAgent(ctx, name)
	if err != nil {
		return 0, err
	}
	return Trust(spec.Successes, spec.Failures), nil
}
