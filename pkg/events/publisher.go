package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// notifyPayloadLimit mirrors the event log's headroom under PostgreSQL's
// 8000-byte NOTIFY limit. Oversized chunk deltas are trimmed rather than
// enveloped: chunks are ephemeral and the full text always arrives in the
// persisted model_response event.
const notifyPayloadLimit = 7900

// Publisher broadcasts transient payloads over NOTIFY without persisting
// them. Persistent events go through the event log, which notifies inside
// its append transaction; this type exists only for high-frequency stream
// chunks.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a transient-event publisher over the shared pool.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishStreamChunk broadcasts one LLM streaming delta. Best-effort: a
// lost chunk costs a client some typing effect, nothing else.
func (p *Publisher) PublishStreamChunk(ctx context.Context, payload StreamChunkPayload) error {
	payload.Type = TypeStreamChunk

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal stream chunk: %w", err)
	}
	if len(data) > notifyPayloadLimit {
		payload.Delta = trimToFit(payload.Delta, len(data))
		data, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal trimmed stream chunk: %w", err)
		}
	}

	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", NotificationChannel, string(data)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// trimToFit shortens an oversized delta so the whole payload fits under the
// NOTIFY limit. overshoot is the marshaled size before trimming.
func trimToFit(delta string, overshoot int) string {
	excess := overshoot - notifyPayloadLimit
	if excess >= len(delta) {
		return ""
	}
	cut := len(delta) - excess
	for cut > 0 && !utf8.RuneStart(delta[cut]) {
		cut--
	}
	return delta[:cut]
}
