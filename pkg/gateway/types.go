package gateway

import (
	"errors"

	"github.com/codeready-toolchain/maestro/pkg/models"
)

// ErrLLMUnavailable means every eligible endpoint was exhausted: breakers
// open, probes failing, or transport errors with no substitute left. The
// request may succeed later; ErrNoModelAvailable from selection means there
// was nothing to try at all.
var ErrLLMUnavailable = errors.New("llm unavailable")

// Message is one turn of conversation history.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Request is one generation call. The event fields (WorkflowID through
// ParentEventID) attribute the model_request/model_response pair in the
// event log; PromptID/PromptVersion record which prompt produced the text.
type Request struct {
	WorkflowID    string
	SessionID     string
	Stage         models.Stage
	ComponentRole string
	ComponentName string
	ParentEventID *string

	TaskClass     models.TaskClass
	ModelOverride string // pinned endpoint name; bypasses SelectModel

	System      string
	Messages    []Message
	Temperature *float64
	MaxTokens   int

	PromptID      *string
	PromptVersion *int

	// NoCache bypasses the fingerprint cache. Planning calls set this:
	// alternative generation needs fresh samples, not replays.
	NoCache bool
}

// Usage is the token accounting reported by the serving endpoint.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Result is a folded generation outcome.
type Result struct {
	Text      string
	Reasoning string
	Usage     Usage
	LatencyMS int64
	ServerID  string // endpoint name that served the call
	Cached    bool
}

// ChunkKind discriminates streaming chunks.
type ChunkKind string

const (
	ChunkText      ChunkKind = "text"
	ChunkReasoning ChunkKind = "reasoning"
	ChunkUsage     ChunkKind = "usage"
	ChunkError     ChunkKind = "error"
)

// Chunk is one streaming delta. Exactly one of Delta, Usage, Err is
// meaningful depending on Kind.
type Chunk struct {
	Kind  ChunkKind
	Delta string
	Usage *Usage
	Err   error
}
