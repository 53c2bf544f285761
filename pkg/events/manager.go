package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/codeready-toolchain/maestro/pkg/models"
)

// catchupLimit caps the number of events returned per catchup request.
// Clients that missed more page by re-requesting with the last sequence
// they received.
const catchupLimit = 200

// sendBuffer is the per-connection outbound queue depth. A subscriber that
// cannot drain this many payloads is lagging; further payloads are dropped
// and counted, and the client is told how many it lost.
const sendBuffer = 256

// CatchupSource replays persisted events by sequence. Implemented by the
// event log.
type CatchupSource interface {
	ByWorkflow(ctx context.Context, workflowID string, f models.EventFilters) ([]*models.EventRecord, error)
}

// ConnectionManager owns the WebSocket connections of one process and their
// per-workflow subscriptions. All NOTIFY payloads arrive through Dispatch,
// which routes by the workflow_id embedded in the payload.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	// workflow_id → set of connection ids
	workflows  map[string]map[string]bool
	workflowMu sync.RWMutex

	// workflow_id → tap id → channel; in-process subscribers (HTTP
	// streaming) that want the same payloads as WebSocket clients
	taps  map[string]map[string]chan []byte
	tapMu sync.RWMutex

	catchup      CatchupSource
	writeTimeout time.Duration
}

// Connection is a single WebSocket client. Writes go through a bounded
// buffer drained by a dedicated writer goroutine, so one slow client never
// stalls the NOTIFY receive loop or other subscribers.
//
// subscriptions is only touched by the goroutine that owns the connection
// (HandleConnection's read loop and its deferred cleanup), so it needs no
// lock.
type Connection struct {
	ID            string
	conn          *websocket.Conn
	subscriptions map[string]bool
	sendCh        chan []byte
	dropped       atomic.Int64
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a manager; catchup may be nil in tests.
func NewConnectionManager(catchup CatchupSource, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		workflows:    make(map[string]map[string]bool),
		taps:         make(map[string]map[string]chan []byte),
		catchup:      catchup,
		writeTimeout: writeTimeout,
	}
}

// HandleConnection manages the lifecycle of one WebSocket connection.
// Called by the HTTP handler after upgrade; blocks until the connection
// closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            uuid.NewString(),
		conn:          conn,
		subscriptions: make(map[string]bool),
		sendCh:        make(chan []byte, sendBuffer),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	go m.writeLoop(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.ID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.ID, "error", err)
			continue
		}
		m.handleClientMessage(ctx, c, &msg)
	}
}

// Dispatch routes one NOTIFY payload to the local subscribers of its
// workflow. Payloads without a workflow_id are dropped.
func (m *ConnectionManager) Dispatch(payload []byte) {
	var routing struct {
		WorkflowID string `json:"workflow_id"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil || routing.WorkflowID == "" {
		slog.Warn("Unroutable NOTIFY payload", "error", err)
		return
	}
	m.broadcast(routing.WorkflowID, payload)
}

// Tap subscribes an in-process consumer to one workflow's payloads. The
// returned cancel func must be called when done; payloads the consumer does
// not drain in time are dropped, same as a lagging WebSocket client.
func (m *ConnectionManager) Tap(workflowID string) (<-chan []byte, func()) {
	ch := make(chan []byte, sendBuffer)
	id := uuid.NewString()

	m.tapMu.Lock()
	if _, ok := m.taps[workflowID]; !ok {
		m.taps[workflowID] = make(map[string]chan []byte)
	}
	m.taps[workflowID][id] = ch
	m.tapMu.Unlock()

	cancel := func() {
		m.tapMu.Lock()
		if taps, ok := m.taps[workflowID]; ok {
			delete(taps, id)
			if len(taps) == 0 {
				delete(m.taps, workflowID)
			}
		}
		m.tapMu.Unlock()
	}
	return ch, cancel
}

func (m *ConnectionManager) broadcast(workflowID string, payload []byte) {
	m.tapMu.RLock()
	for _, ch := range m.taps[workflowID] {
		select {
		case ch <- payload:
		default:
		}
	}
	m.tapMu.RUnlock()

	m.workflowMu.RLock()
	ids := make([]string, 0, len(m.workflows[workflowID]))
	for id := range m.workflows[workflowID] {
		ids = append(ids, id)
	}
	m.workflowMu.RUnlock()

	if len(ids) == 0 {
		return
	}

	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range conns {
		m.enqueue(c, payload)
	}
}

// enqueue offers a payload to the connection's buffer without blocking.
// Overflow increments the drop counter; the writer reports the loss to the
// client once it drains.
func (m *ConnectionManager) enqueue(c *Connection, payload []byte) {
	select {
	case c.sendCh <- payload:
	default:
		c.dropped.Add(1)
	}
}

// writeLoop drains the connection's buffer onto the socket. After any drop
// burst it tells the client how many payloads were lost so it can catch up
// by sequence instead of trusting the live stream.
func (m *ConnectionManager) writeLoop(c *Connection) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case data := <-c.sendCh:
			if err := m.write(c, data); err != nil {
				slog.Warn("WebSocket write failed", "connection_id", c.ID, "error", err)
				c.cancel()
				return
			}
			if n := c.dropped.Swap(0); n > 0 {
				lag, err := json.Marshal(ControlMessage{
					Type:    TypeSubscriberLag,
					Dropped: int(n),
				})
				if err == nil {
					if err := m.write(c, lag); err != nil {
						c.cancel()
						return
					}
				}
			}
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

func (m *ConnectionManager) subscriberCount(workflowID string) int {
	m.workflowMu.RLock()
	defer m.workflowMu.RUnlock()
	return len(m.workflows[workflowID])
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.WorkflowID == "" {
			m.sendJSON(c, ControlMessage{Type: TypeError, Message: "workflow_id is required for subscribe"})
			return
		}
		m.subscribe(c, msg.WorkflowID)
		m.sendJSON(c, map[string]string{
			"type":        "subscription.confirmed",
			"workflow_id": msg.WorkflowID,
		})
		// Late subscribers replay from the start unless they name a position.
		var since int64
		if msg.LastSequence != nil {
			since = *msg.LastSequence
		}
		m.handleCatchup(ctx, c, msg.WorkflowID, since)

	case "unsubscribe":
		if msg.WorkflowID == "" {
			m.sendJSON(c, ControlMessage{Type: TypeError, Message: "workflow_id is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.WorkflowID)

	case "catchup":
		if msg.WorkflowID == "" || msg.LastSequence == nil {
			m.sendJSON(c, ControlMessage{Type: TypeError, Message: "workflow_id and last_sequence are required for catchup"})
			return
		}
		m.handleCatchup(ctx, c, msg.WorkflowID, *msg.LastSequence)

	case "ping":
		m.sendJSON(c, ControlMessage{Type: TypePong})
	}
}

func (m *ConnectionManager) subscribe(c *Connection, workflowID string) {
	m.workflowMu.Lock()
	if _, ok := m.workflows[workflowID]; !ok {
		m.workflows[workflowID] = make(map[string]bool)
	}
	m.workflows[workflowID][c.ID] = true
	m.workflowMu.Unlock()

	c.subscriptions[workflowID] = true
}

func (m *ConnectionManager) unsubscribe(c *Connection, workflowID string) {
	m.workflowMu.Lock()
	if subs, ok := m.workflows[workflowID]; ok {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.workflows, workflowID)
		}
	}
	m.workflowMu.Unlock()

	delete(c.subscriptions, workflowID)
}

// handleCatchup replays persisted events after the given sequence, then
// marks the end of replay so the client knows live payloads follow.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, workflowID string, afterSequence int64) {
	if m.catchup == nil {
		return
	}

	records, err := m.catchup.ByWorkflow(ctx, workflowID, models.EventFilters{
		AfterSequence: afterSequence,
		Limit:         catchupLimit,
	})
	if err != nil {
		slog.Error("Catchup query failed", "workflow_id", workflowID, "error", err)
		return
	}

	lastSeq := afterSequence
	for _, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			continue
		}
		if err := m.write(c, payload); err != nil {
			slog.Warn("Failed to send catchup event", "connection_id", c.ID, "error", err)
			return
		}
		lastSeq = record.Sequence
	}

	m.sendJSON(c, ControlMessage{
		Type:       TypeCatchupComplete,
		WorkflowID: workflowID,
		Sequence:   lastSeq,
	})
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for wf := range c.subscriptions {
		m.unsubscribe(c, wf)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	m.enqueue(c, data)
}

// write sends raw bytes on the socket with the manager's write timeout.
// Only the writer goroutine and catchup (which runs on the read goroutine
// before live delivery matters) call this.
func (m *ConnectionManager) write(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
