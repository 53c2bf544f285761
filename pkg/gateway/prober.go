package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/maestro/pkg/registry"
	llmv1 "github.com/codeready-toolchain/maestro/proto"
)

const probeTimeout = 10 * time.Second

// Prober checks every registered endpoint on a ticker and records the
// verdict in the registry. Start runs one synchronous pass first, so by the
// time it returns SelectModel has real health data instead of the
// all-unhealthy default.
type Prober struct {
	registry *registry.Registry
	pool     *connPool
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewProber creates a prober over the gateway's connection pool.
func NewProber(reg *registry.Registry, g *Gateway, interval time.Duration) *Prober {
	return &Prober{
		registry: reg,
		pool:     g.pool,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start probes all endpoints once, then keeps probing on the interval until
// Stop is called.
func (p *Prober) Start(ctx context.Context) {
	p.probeAll(ctx)

	go func() {
		defer close(p.doneCh)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.probeAll(ctx)
			}
		}
	}()
}

// Stop halts the probe loop and waits for it to finish.
func (p *Prober) Stop() {
	close(p.stopCh)
	<-p.doneCh
}

func (p *Prober) probeAll(ctx context.Context) {
	endpoints, err := p.registry.ListEndpoints(ctx)
	if err != nil {
		slog.Error("Prober failed to list endpoints", "error", err)
		return
	}

	for _, ep := range endpoints {
		healthy := p.probe(ctx, ep.Name)
		if err := p.registry.SetEndpointHealth(ctx, ep.Name, healthy); err != nil {
			slog.Error("Failed to record endpoint health", "endpoint", ep.Name, "error", err)
		}
		if healthy != ep.Healthy {
			slog.Info("Endpoint health changed", "endpoint", ep.Name, "healthy", healthy)
		}
	}
}

func (p *Prober) probe(ctx context.Context, name string) bool {
	ep, err := p.registry.GetEndpoint(ctx, name)
	if err != nil {
		return false
	}
	ec, err := p.pool.get(ep)
	if err != nil {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	resp, err := ec.client.Check(probeCtx, &llmv1.HealthCheckRequest{Model: ec.model})
	if err != nil {
		return false
	}
	return resp.Healthy
}
