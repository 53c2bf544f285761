package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConnection builds a Connection without a real socket. Broadcast only
// enqueues onto sendCh; the writer goroutine (which needs the socket) is
// simply never started.
func testConnection(id string) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		ID:            id,
		subscriptions: make(map[string]bool),
		sendCh:        make(chan []byte, sendBuffer),
		ctx:           ctx,
		cancel:        cancel,
	}
}

func drain(t *testing.T, c *Connection) [][]byte {
	t.Helper()
	var out [][]byte
	for {
		select {
		case data := <-c.sendCh:
			out = append(out, data)
		default:
			return out
		}
	}
}

func TestSubscribeUnsubscribeBookkeeping(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)
	c := testConnection("conn-1")
	m.registerConnection(c)

	m.subscribe(c, "wf-1")
	m.subscribe(c, "wf-2")
	assert.Equal(t, 1, m.subscriberCount("wf-1"))
	assert.Equal(t, 1, m.subscriberCount("wf-2"))
	assert.True(t, c.subscriptions["wf-1"])

	m.unsubscribe(c, "wf-1")
	assert.Equal(t, 0, m.subscriberCount("wf-1"))
	assert.Equal(t, 1, m.subscriberCount("wf-2"))
	assert.False(t, c.subscriptions["wf-1"])
}

func TestDispatchRoutesByWorkflowID(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)
	sub := testConnection("subscriber")
	other := testConnection("other")
	m.registerConnection(sub)
	m.registerConnection(other)
	m.subscribe(sub, "wf-1")
	m.subscribe(other, "wf-2")

	payload := []byte(`{"workflow_id":"wf-1","event_type":"step.completed","sequence":3}`)
	m.Dispatch(payload)

	got := drain(t, sub)
	require.Len(t, got, 1)
	assert.JSONEq(t, string(payload), string(got[0]))
	assert.Empty(t, drain(t, other))
}

func TestDispatchDropsUnroutablePayloads(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)
	c := testConnection("conn-1")
	m.registerConnection(c)
	m.subscribe(c, "wf-1")

	m.Dispatch([]byte(`not json`))
	m.Dispatch([]byte(`{"event_type":"step.completed"}`)) // no workflow_id

	assert.Empty(t, drain(t, c))
}

func TestEnqueueOverflowCountsDrops(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)
	c := testConnection("slow")
	m.registerConnection(c)
	m.subscribe(c, "wf-1")

	payload := []byte(`{"workflow_id":"wf-1","sequence":1}`)
	for i := 0; i < sendBuffer+5; i++ {
		m.broadcast("wf-1", payload)
	}

	assert.Equal(t, int64(5), c.dropped.Load())
	assert.Len(t, drain(t, c), sendBuffer)
}

func TestUnregisterConnectionRemovesSubscriptions(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)
	c := testConnection("conn-1")
	m.registerConnection(c)
	m.subscribe(c, "wf-1")

	// unregisterConnection closes the socket, which testConnection lacks;
	// exercise the subscription half directly.
	for wf := range c.subscriptions {
		m.unsubscribe(c, wf)
	}
	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	assert.Equal(t, 0, m.subscriberCount("wf-1"))
	assert.Equal(t, 0, m.ActiveConnections())
}

func TestTrimToFit(t *testing.T) {
	t.Run("keeps valid utf8", func(t *testing.T) {
		delta := ""
		for i := 0; i < 3000; i++ {
			delta += "é"
		}
		got := trimToFit(delta, notifyPayloadLimit+100)
		assert.True(t, utf8.ValidString(got))
		assert.Less(t, len(got), len(delta))
	})

	t.Run("excess beyond delta empties it", func(t *testing.T) {
		assert.Equal(t, "", trimToFit("tiny", notifyPayloadLimit+100))
	})
}

func TestControlMessageShape(t *testing.T) {
	data, err := json.Marshal(ControlMessage{
		Type:       TypeCatchupComplete,
		WorkflowID: "wf-1",
		Sequence:   12,
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "catchup.complete", m["type"])
	assert.Equal(t, "wf-1", m["workflow_id"])
	assert.Equal(t, float64(12), m["sequence"])
	assert.NotContains(t, m, "dropped")
}
