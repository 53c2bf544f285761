package gateway

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/config"
	llmv1 "github.com/codeready-toolchain/maestro/proto"
)

// endpointConn bundles everything the gateway holds per serving endpoint:
// one pooled gRPC connection, the concurrency semaphore sized to the
// endpoint's max_concurrent, and its circuit breaker.
type endpointConn struct {
	name    string
	url     string
	model   string
	conn    *grpc.ClientConn
	client  llmv1.LLMServiceClient
	sem     *semaphore.Weighted
	breaker *gobreaker.CircuitBreaker
}

// connPool lazily dials endpoints and reuses connections across calls.
// A changed URL (registry edit) drops the old connection and redials.
type connPool struct {
	mu        sync.Mutex
	conns     map[string]*endpointConn
	breaker   config.BreakerConfig
	onTripped func(endpoint string, open bool)
}

func newConnPool(breaker config.BreakerConfig, onTripped func(endpoint string, open bool)) *connPool {
	return &connPool{
		conns:     make(map[string]*endpointConn),
		breaker:   breaker,
		onTripped: onTripped,
	}
}

// get returns the pooled connection for an endpoint, dialing if needed.
func (p *connPool) get(ep *ent.ModelEndpoint) (*endpointConn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.conns[ep.Name]; ok {
		if existing.url == ep.URL {
			existing.model = ep.Model
			return existing, nil
		}
		_ = existing.conn.Close()
		delete(p.conns, ep.Name)
	}

	conn, err := grpc.NewClient(ep.URL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", ep.URL, err)
	}

	ec := &endpointConn{
		name:   ep.Name,
		url:    ep.URL,
		model:  ep.Model,
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
		sem:    semaphore.NewWeighted(int64(ep.MaxConcurrent)),
	}
	ec.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    ep.Name,
		Timeout: p.breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(p.breaker.MaxFailures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Endpoint breaker state change", "endpoint", name, "from", from.String(), "to", to.String())
			if p.onTripped != nil {
				p.onTripped(name, to == gobreaker.StateOpen)
			}
		},
	})

	p.conns[ep.Name] = ec
	return ec, nil
}

// Close releases every pooled connection.
func (p *connPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for name, ec := range p.conns {
		_ = ec.conn.Close()
		delete(p.conns, name)
	}
}
