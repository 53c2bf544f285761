// Package gateway is the single door to LLM serving endpoints: model
// selection via the registry, per-endpoint concurrency limits, circuit
// breaking, fingerprint caching, health probing, and the
// model_request/model_response event pair around every real call.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/events"
	"github.com/codeready-toolchain/maestro/pkg/models"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	llmv1 "github.com/codeready-toolchain/maestro/proto"
)

// chunkBuffer bounds the streaming channel handed to callers.
const chunkBuffer = 64

// Gateway routes generation calls to serving endpoints.
type Gateway struct {
	registry  *registry.Registry
	log       *eventlog.Log
	publisher *events.Publisher // transient stream chunks; may be nil
	pool      *connPool
	cache     *resultCache
	cfg       config.GatewayConfig
}

// New creates a gateway. publisher may be nil when live chunk delivery is
// not wanted (tests, CLI tools).
func New(reg *registry.Registry, log *eventlog.Log, publisher *events.Publisher, cfg config.GatewayConfig) *Gateway {
	g := &Gateway{
		registry:  reg,
		log:       log,
		publisher: publisher,
		cache:     newResultCache(cfg.CacheTTL),
		cfg:       cfg,
	}
	g.pool = newConnPool(cfg.Breaker, g.onBreakerChange)
	return g
}

// Close releases pooled connections.
func (g *Gateway) Close() {
	g.pool.Close()
}

// onBreakerChange mirrors breaker state into endpoint health so SelectModel
// skips open endpoints; the prober restores health after recovery.
func (g *Gateway) onBreakerChange(endpoint string, open bool) {
	if !open {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.registry.SetEndpointHealth(ctx, endpoint, false); err != nil {
		slog.Error("Failed to mark tripped endpoint unhealthy", "endpoint", endpoint, "error", err)
	}
}

// Generate performs one call and folds the stream into a Result. On
// transport failure the endpoint is marked unhealthy and one substitute
// from the same capability class is tried before giving up.
func (g *Gateway) Generate(ctx context.Context, req Request) (*Result, error) {
	ep, err := g.selectEndpoint(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := g.generateOn(ctx, ep, req)
	if err == nil {
		return result, nil
	}
	if errors.Is(err, eventlog.ErrEventLogUnavailable) || errors.Is(err, eventlog.ErrProtocolViolation) || ctx.Err() != nil {
		return nil, err
	}

	// Substitution: one retry on the best remaining endpoint.
	slog.Warn("Endpoint failed, trying substitute", "endpoint", ep.Name, "error", err)
	if healthErr := g.registry.SetEndpointHealth(ctx, ep.Name, false); healthErr != nil {
		slog.Error("Failed to mark endpoint unhealthy", "endpoint", ep.Name, "error", healthErr)
	}
	substitute, selErr := g.selectEndpoint(ctx, req)
	if selErr != nil || substitute.Name == ep.Name {
		return nil, fmt.Errorf("%w: %v", ErrLLMUnavailable, err)
	}
	result, err = g.generateOn(ctx, substitute, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMUnavailable, err)
	}
	return result, nil
}

// GenerateStream performs one call and hands the caller the raw typed
// chunks. The channel closes when the stream ends; a Chunk with Kind
// ChunkError terminates it early. No substitution is attempted mid-stream.
func (g *Gateway) GenerateStream(ctx context.Context, req Request) (<-chan Chunk, error) {
	req.NoCache = true // a replayed stream is indistinguishable from a hang
	ep, err := g.selectEndpoint(ctx, req)
	if err != nil {
		return nil, err
	}
	ec, err := g.pool.get(ep)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMUnavailable, err)
	}

	requestID := uuid.NewString()
	if _, err := g.appendRequestEvent(ctx, req, ep.Name, requestID); err != nil {
		return nil, err
	}

	if err := ec.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: endpoint %s saturated: %v", ErrLLMUnavailable, ep.Name, err)
	}

	out := make(chan Chunk, chunkBuffer)
	go func() {
		defer close(out)
		defer ec.sem.Release(1)
		metricInFlight.WithLabelValues(ec.name).Inc()
		defer metricInFlight.WithLabelValues(ec.name).Dec()

		_, err := ec.breaker.Execute(func() (any, error) {
			return nil, g.recvStream(ctx, ec, req, requestID, func(c Chunk) { out <- c })
		})
		if err != nil {
			out <- Chunk{Kind: ChunkError, Err: err}
		}
	}()
	return out, nil
}

// selectEndpoint resolves the endpoint: pinned override or registry
// selection by task class.
func (g *Gateway) selectEndpoint(ctx context.Context, req Request) (*ent.ModelEndpoint, error) {
	if req.ModelOverride != "" {
		ep, err := g.registry.GetEndpoint(ctx, req.ModelOverride)
		if err != nil {
			return nil, fmt.Errorf("%w: pinned endpoint %q: %v", registry.ErrNoModelAvailable, req.ModelOverride, err)
		}
		return ep, nil
	}
	return g.registry.SelectModel(ctx, req.TaskClass)
}

// generateOn runs one attempt against a specific endpoint, including cache
// lookup, events, semaphore, breaker, and metric recording.
func (g *Gateway) generateOn(ctx context.Context, ep *ent.ModelEndpoint, req Request) (*Result, error) {
	fingerprint := Fingerprint(ep.Name, req)
	if !req.NoCache {
		if cached, ok := g.cache.get(fingerprint); ok {
			metricCache.WithLabelValues("hit").Inc()
			cached.Cached = true
			if err := g.appendCacheHitEvent(ctx, req, ep.Name, cached); err != nil {
				return nil, err
			}
			return &cached, nil
		}
		metricCache.WithLabelValues("miss").Inc()
	}

	ec, err := g.pool.get(ep)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	requestEventID, err := g.appendRequestEvent(ctx, req, ep.Name, requestID)
	if err != nil {
		return nil, err
	}

	if err := ec.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("endpoint %s saturated: %w", ep.Name, err)
	}
	defer ec.sem.Release(1)

	metricInFlight.WithLabelValues(ec.name).Inc()
	defer metricInFlight.WithLabelValues(ec.name).Dec()
	metricRequests.WithLabelValues(ec.name).Inc()

	start := time.Now()
	folded, err := ec.breaker.Execute(func() (any, error) {
		result := &Result{ServerID: ec.name}
		err := g.recvStream(ctx, ec, req, requestID, func(c Chunk) {
			switch c.Kind {
			case ChunkText:
				result.Text += c.Delta
				g.publishChunk(ctx, req, requestID, "text", c.Delta)
			case ChunkReasoning:
				result.Reasoning += c.Delta
				g.publishChunk(ctx, req, requestID, "reasoning", c.Delta)
			case ChunkUsage:
				result.Usage = *c.Usage
			}
		})
		return result, err
	})
	latency := time.Since(start)
	metricLatency.WithLabelValues(ec.name).Observe(latency.Seconds())

	success := err == nil
	if recErr := g.registry.RecordModelResult(ctx, ec.name, success, latency); recErr != nil {
		slog.Error("Failed to record model result", "endpoint", ec.name, "error", recErr)
	}
	if err != nil {
		metricErrors.WithLabelValues(ec.name).Inc()
		if _, evErr := g.appendResponseEvent(ctx, req, ep.Name, requestEventID, nil, latency, "error", err.Error()); evErr != nil {
			return nil, evErr
		}
		return nil, err
	}

	result := folded.(*Result)
	result.LatencyMS = latency.Milliseconds()
	g.cache.put(fingerprint, *result)

	if _, err := g.appendResponseEvent(ctx, req, ep.Name, requestEventID, result, latency, "ok", ""); err != nil {
		return nil, err
	}
	return result, nil
}

// recvStream drives one gRPC stream, invoking emit for every chunk.
func (g *Gateway) recvStream(ctx context.Context, ec *endpointConn, req Request, requestID string, emit func(Chunk)) error {
	callCtx := ctx
	if g.cfg.RequestTimeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, g.cfg.RequestTimeout)
			defer cancel()
		}
	}

	stream, err := ec.client.Generate(callCtx, buildGenerateRequest(ec.model, req, requestID))
	if err != nil {
		return fmt.Errorf("generate call failed: %w", err)
	}

	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("stream recv failed: %w", err)
		}

		switch content := resp.Content.(type) {
		case *llmv1.GenerateResponse_Text:
			emit(Chunk{Kind: ChunkText, Delta: content.Text.Content})
		case *llmv1.GenerateResponse_Reasoning:
			emit(Chunk{Kind: ChunkReasoning, Delta: content.Reasoning.Content})
		case *llmv1.GenerateResponse_Usage:
			emit(Chunk{Kind: ChunkUsage, Usage: &Usage{
				InputTokens:  int(content.Usage.InputTokens),
				OutputTokens: int(content.Usage.OutputTokens),
				TotalTokens:  int(content.Usage.TotalTokens),
			}})
		case *llmv1.GenerateResponse_Error:
			return fmt.Errorf("endpoint error %s: %s", content.Error.Code, content.Error.Message)
		}
	}
}

func buildGenerateRequest(model string, req Request, requestID string) *llmv1.GenerateRequest {
	messages := make([]*llmv1.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = &llmv1.Message{Role: m.Role, Content: m.Content}
	}
	options := &llmv1.GenerateOptions{}
	if req.Temperature != nil {
		options.Temperature = *req.Temperature
	}
	if req.MaxTokens > 0 {
		options.MaxTokens = int32(req.MaxTokens)
	}
	return &llmv1.GenerateRequest{
		WorkflowId: req.WorkflowID,
		RequestId:  requestID,
		Model:      model,
		System:     req.System,
		Messages:   messages,
		Options:    options,
	}
}

func (g *Gateway) publishChunk(ctx context.Context, req Request, requestID, kind, delta string) {
	if g.publisher == nil || delta == "" {
		return
	}
	err := g.publisher.PublishStreamChunk(ctx, events.StreamChunkPayload{
		WorkflowID: req.WorkflowID,
		RequestID:  requestID,
		Kind:       kind,
		Delta:      delta,
	})
	if err != nil {
		slog.Debug("Failed to publish stream chunk", "workflow_id", req.WorkflowID, "error", err)
	}
}

func lastUserMessage(req Request) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			return req.Messages[i].Content
		}
	}
	return ""
}

func (g *Gateway) appendRequestEvent(ctx context.Context, req Request, endpoint, requestID string) (*string, error) {
	record, err := g.log.Append(ctx, models.AppendEventRequest{
		WorkflowID:     req.WorkflowID,
		SessionID:      req.SessionID,
		EventType:      models.EventModelRequest,
		Stage:          req.Stage,
		ComponentRole:  req.ComponentRole,
		ComponentName:  req.ComponentName,
		DecisionSource: models.SourceComponent,
		Status:         "started",
		InputSummary:   lastUserMessage(req),
		ParentEventID:  req.ParentEventID,
		PromptID:       req.PromptID,
		PromptVersion:  req.PromptVersion,
		Metadata: map[string]any{
			"endpoint":   endpoint,
			"request_id": requestID,
			"task_class": string(req.TaskClass),
		},
	})
	if err != nil {
		return nil, err
	}
	return &record.EventID, nil
}

func (g *Gateway) appendResponseEvent(ctx context.Context, req Request, endpoint string, parentEventID *string, result *Result, latency time.Duration, status, reasonCode string) (*string, error) {
	metadata := map[string]any{
		"endpoint":   endpoint,
		"latency_ms": latency.Milliseconds(),
	}
	summary := ""
	if result != nil {
		summary = result.Text
		metadata["input_tokens"] = result.Usage.InputTokens
		metadata["output_tokens"] = result.Usage.OutputTokens
	}
	record, err := g.log.Append(ctx, models.AppendEventRequest{
		WorkflowID:     req.WorkflowID,
		SessionID:      req.SessionID,
		EventType:      models.EventModelResponse,
		Stage:          req.Stage,
		ComponentRole:  req.ComponentRole,
		ComponentName:  req.ComponentName,
		DecisionSource: models.SourceComponent,
		Status:         status,
		OutputSummary:  summary,
		ReasonCode:     reasonCode,
		ParentEventID:  parentEventID,
		PromptID:       req.PromptID,
		PromptVersion:  req.PromptVersion,
		Metadata:       metadata,
	})
	if err != nil {
		return nil, err
	}
	return &record.EventID, nil
}

// appendCacheHitEvent records a served-from-cache response. No
// model_request is written: the model never saw this call.
func (g *Gateway) appendCacheHitEvent(ctx context.Context, req Request, endpoint string, result Result) error {
	_, err := g.log.Append(ctx, models.AppendEventRequest{
		WorkflowID:     req.WorkflowID,
		SessionID:      req.SessionID,
		EventType:      models.EventModelResponse,
		Stage:          req.Stage,
		ComponentRole:  req.ComponentRole,
		ComponentName:  req.ComponentName,
		DecisionSource: models.SourceComponent,
		Status:         "ok",
		OutputSummary:  result.Text,
		ReasonCode:     "cache_hit",
		ParentEventID:  req.ParentEventID,
		PromptID:       req.PromptID,
		PromptVersion:  req.PromptVersion,
		Metadata:       map[string]any{"endpoint": endpoint},
	})
	return err
}
