package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/codeready-toolchain/maestro/pkg/gateway"
)

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	// Response content (exactly one of Text and Error should be set)
	Text      string
	Reasoning string
	Error     error

	// Test control
	BlockUntilCancelled bool            // Block Generate() until ctx is cancelled
	WaitCh              <-chan struct{} // Block Generate() until closed, then return the normal response
	OnBlock             chan<- struct{} // Notified when Generate() enters its blocking path
}

// ScriptedLLMClient implements workflow.Generator with a dual-dispatch mock:
// per-route scripts keyed by component role (with a bias sub-key for parallel
// alternative planning, where call order is non-deterministic), plus a
// sequential fallback.
type ScriptedLLMClient struct {
	mu         sync.Mutex
	sequential []LLMScriptEntry
	seqIndex   int
	routes     map[string][]LLMScriptEntry
	routeIndex map[string]int
	captured   []gateway.Request
}

// NewScriptedLLMClient creates a new ScriptedLLMClient.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		routes:     make(map[string][]LLMScriptEntry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential adds an entry consumed in order when no route matches.
func (c *ScriptedLLMClient) AddSequential(entry LLMScriptEntry) {
	c.sequential = append(c.sequential, entry)
}

// AddRouted adds an entry for a route key. Keys are component roles
// ("semantic_validator", "planning", "execution", ...); alternative planning
// calls match the more specific "planning/<bias>" key first.
func (c *ScriptedLLMClient) AddRouted(key string, entry LLMScriptEntry) {
	c.routes[key] = append(c.routes[key], entry)
}

// Generate implements workflow.Generator.
func (c *ScriptedLLMClient) Generate(ctx context.Context, req gateway.Request) (*gateway.Result, error) {
	c.mu.Lock()
	c.captured = append(c.captured, req)
	entry, err := c.nextEntry(req)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if entry.Error != nil {
		return nil, entry.Error
	}
	return &gateway.Result{
		Text:      entry.Text,
		Reasoning: entry.Reasoning,
		Usage:     gateway.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		LatencyMS: 1,
		ServerID:  "scripted",
	}, nil
}

// GenerateStream implements workflow.Generator. The scripted response is
// delivered as one text delta plus a usage chunk.
func (c *ScriptedLLMClient) GenerateStream(ctx context.Context, req gateway.Request) (<-chan gateway.Chunk, error) {
	result, err := c.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	ch := make(chan gateway.Chunk, 3)
	if result.Reasoning != "" {
		ch <- gateway.Chunk{Kind: "reasoning", Delta: result.Reasoning}
	}
	ch <- gateway.Chunk{Kind: "text", Delta: result.Text}
	ch <- gateway.Chunk{Kind: "usage", Usage: &result.Usage}
	close(ch)
	return ch, nil
}

// CallCount returns the total number of Generate() calls made.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.captured)
}

// CapturedRequests returns a copy of every request seen so far.
func (c *ScriptedLLMClient) CapturedRequests() []gateway.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]gateway.Request(nil), c.captured...)
}

// nextEntry selects the next script entry using dual dispatch: the most
// specific route key first, then the component role, then sequential.
// Must be called with c.mu held.
func (c *ScriptedLLMClient) nextEntry(req gateway.Request) (*LLMScriptEntry, error) {
	for _, key := range routeKeysOf(req) {
		entries, ok := c.routes[key]
		if !ok {
			continue
		}
		idx := c.routeIndex[key]
		if idx >= len(entries) {
			continue
		}
		c.routeIndex[key] = idx + 1
		return &entries[idx], nil
	}

	if c.seqIndex < len(c.sequential) {
		entry := &c.sequential[c.seqIndex]
		c.seqIndex++
		return entry, nil
	}
	return nil, fmt.Errorf("ScriptedLLMClient: no more entries (role=%q, sequential=%d/%d)",
		req.ComponentRole, c.seqIndex, len(c.sequential))
}

// routeKeysOf lists the route keys a request may match, most specific first.
// Planning calls carry their strategy bias in the user prompt; matching on it
// keeps parallel alternative generation deterministic.
func routeKeysOf(req gateway.Request) []string {
	role := req.ComponentRole
	if role != "planning" {
		return []string{role}
	}
	message := ""
	for _, m := range req.Messages {
		if m.Role == "user" {
			message = m.Content
		}
	}
	if bias := biasOf(message); bias != "" {
		return []string{role + "/" + bias, role}
	}
	return []string{role}
}

func biasOf(message string) string {
	switch {
	case strings.Contains(message, "conservative") || strings.Contains(message, "well-understood"):
		return "conservative"
	case strings.Contains(message, "aggressive") || strings.Contains(message, "speed and parallelism"):
		return "aggressive"
	case strings.Contains(message, "balanced") || strings.Contains(message, "balance duration"):
		return "balanced"
	default:
		return ""
	}
}
