package registry

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/ent/modelendpoint"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// SelectModel picks the endpoint for a task class: healthy active endpoints
// with the class's capability, lowest priority number first, most recent
// health check breaking ties. When no endpoint has the capability, any
// healthy active endpoint serves as fallback.
func (r *Registry) SelectModel(ctx context.Context, taskClass models.TaskClass) (*ent.ModelEndpoint, error) {
	candidates, err := r.client.ModelEndpoint.Query().
		Where(
			modelendpoint.StatusEQ(modelendpoint.StatusActive),
			modelendpoint.Healthy(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query model endpoints: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no healthy active endpoints", ErrNoModelAvailable)
	}

	capability := taskClass.ModelCapability()
	capable := make([]*ent.ModelEndpoint, 0, len(candidates))
	for _, ep := range candidates {
		if slices.Contains(ep.Capabilities, capability) {
			capable = append(capable, ep)
		}
	}
	if len(capable) == 0 {
		capable = candidates // capability fallback
	}

	slices.SortFunc(capable, func(a, b *ent.ModelEndpoint) int {
		if a.Priority != b.Priority {
			return a.Priority - b.Priority
		}
		return healthCheckTime(b).Compare(healthCheckTime(a))
	})
	return capable[0], nil
}

func healthCheckTime(ep *ent.ModelEndpoint) time.Time {
	if ep.LastHealthCheck == nil {
		return time.Time{}
	}
	return *ep.LastHealthCheck
}

// SetEndpointHealth records a prober verdict for one endpoint by name.
func (r *Registry) SetEndpointHealth(ctx context.Context, name string, healthy bool) error {
	n, err := r.client.ModelEndpoint.Update().
		Where(modelendpoint.Name(name)).
		SetHealthy(healthy).
		SetLastHealthCheck(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update endpoint health: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("model endpoint %q not found", name)
	}
	return nil
}

// RecordModelResult folds one request outcome into the endpoint's counters
// and latency average.
func (r *Registry) RecordModelResult(ctx context.Context, name string, success bool, latency time.Duration) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ep, err := tx.ModelEndpoint.Query().
		Where(modelendpoint.Name(name)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load endpoint %q: %w", name, err)
	}

	update := tx.ModelEndpoint.UpdateOne(ep).
		AddTotalRequests(1).
		SetAvgLatencyMs(movingAverage(ep.AvgLatencyMs, float64(latency.Milliseconds())))
	if success {
		update.AddSuccesses(1)
	} else {
		update.AddFailures(1)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record model result: %w", err)
	}
	return tx.Commit()
}

// ListEndpoints returns all model endpoints.
func (r *Registry) ListEndpoints(ctx context.Context) ([]*ent.ModelEndpoint, error) {
	return r.client.ModelEndpoint.Query().
		Order(ent.Asc(modelendpoint.FieldPriority), ent.Asc(modelendpoint.FieldName)).
		All(ctx)
}

// GetEndpoint returns one endpoint by name.
func (r *Registry) GetEndpoint(ctx context.Context, name string) (*ent.ModelEndpoint, error) {
	return r.client.ModelEndpoint.Query().Where(modelendpoint.Name(name)).Only(ctx)
}

// SeedEndpoints upserts the config-declared endpoints by name. Existing
// rows keep their counters and health; declaration fields are overwritten.
// Endpoints present only in the database are left alone.
func (r *Registry) SeedEndpoints(ctx context.Context, endpoints []config.EndpointConfig) error {
	for _, ep := range endpoints {
		existing, err := r.client.ModelEndpoint.Query().
			Where(modelendpoint.Name(ep.Name)).
			Only(ctx)
		if err == nil {
			err = r.client.ModelEndpoint.UpdateOne(existing).
				SetURL(ep.URL).
				SetModel(ep.Model).
				SetCapabilities(ep.Capabilities).
				SetMaxConcurrent(ep.MaxConcurrent).
				SetPriority(ep.Priority).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to update endpoint %q: %w", ep.Name, err)
			}
			continue
		}
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query endpoint %q: %w", ep.Name, err)
		}

		err = r.client.ModelEndpoint.Create().
			SetID(uuid.NewString()).
			SetName(ep.Name).
			SetURL(ep.URL).
			SetModel(ep.Model).
			SetCapabilities(ep.Capabilities).
			SetMaxConcurrent(ep.MaxConcurrent).
			SetPriority(ep.Priority).
			SetStatus(modelendpoint.StatusActive).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create endpoint %q: %w", ep.Name, err)
		}
	}
	return nil
}
