// Package events delivers execution events to WebSocket subscribers in
// real time, using PostgreSQL NOTIFY/LISTEN for cross-replica distribution.
//
// All persistent events travel on a single NOTIFY channel; subscribers are
// routed locally by the workflow_id inside each payload. Two payload shapes
// arrive on the channel:
//
//   - full event records appended by the event log (persisted, replayable
//     via catchup by sequence number)
//   - transient stream.chunk payloads from in-flight LLM calls (NOTIFY
//     only — lost on disconnect; the final content always arrives as a
//     persisted model_response event)
//
// Payloads that would exceed PostgreSQL's NOTIFY size limit are replaced
// with a minimal truncation envelope; clients fetch the full record from
// the event API using the envelope's routing fields.
package events

// NotificationChannel is the single NOTIFY channel all event payloads
// travel on. Per-workflow fan-out happens in the ConnectionManager.
const NotificationChannel = "maestro_events"

// Transient payload types (NOTIFY only, never persisted).
const (
	// TypeStreamChunk carries one LLM streaming delta.
	TypeStreamChunk = "stream.chunk"
)

// Server → client control message types.
const (
	TypeCatchupComplete = "catchup.complete"
	TypeSubscriberLag   = "subscriber.lag"
	TypePong            = "pong"
	TypeError           = "error"
)

// StreamChunkPayload is one LLM streaming delta. Kind distinguishes
// assistant text from reasoning traces.
type StreamChunkPayload struct {
	Type       string `json:"type"` // always TypeStreamChunk
	WorkflowID string `json:"workflow_id"`
	RequestID  string `json:"request_id"`
	Kind       string `json:"kind"` // "text" or "reasoning"
	Delta      string `json:"delta"`
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action       string `json:"action"` // "subscribe", "unsubscribe", "catchup", "ping"
	WorkflowID   string `json:"workflow_id,omitempty"`
	LastSequence *int64 `json:"last_sequence,omitempty"` // For catchup
}

// ControlMessage is a server → client control frame (catchup markers,
// lag notices, pongs, errors).
type ControlMessage struct {
	Type       string `json:"type"`
	WorkflowID string `json:"workflow_id,omitempty"`
	Sequence   int64  `json:"sequence,omitempty"`
	Dropped    int    `json:"dropped,omitempty"`
	Message    string `json:"message,omitempty"`
}
