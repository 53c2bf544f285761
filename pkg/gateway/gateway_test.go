package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func baseRequest() Request {
	return Request{
		System:   "You classify requests.",
		Messages: []Message{{Role: "user", Content: "deploy the staging stack"}},
	}
}

func TestFingerprint(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Fingerprint("ep-1", baseRequest()), Fingerprint("ep-1", baseRequest()))
	})

	t.Run("varies by endpoint", func(t *testing.T) {
		assert.NotEqual(t, Fingerprint("ep-1", baseRequest()), Fingerprint("ep-2", baseRequest()))
	})

	t.Run("varies by system prompt", func(t *testing.T) {
		req := baseRequest()
		req.System = "You plan requests."
		assert.NotEqual(t, Fingerprint("ep-1", baseRequest()), Fingerprint("ep-1", req))
	})

	t.Run("varies by history", func(t *testing.T) {
		req := baseRequest()
		req.Messages = append(req.Messages, Message{Role: "assistant", Content: "done"})
		assert.NotEqual(t, Fingerprint("ep-1", baseRequest()), Fingerprint("ep-1", req))
	})

	t.Run("varies by options", func(t *testing.T) {
		temp := 0.3
		req := baseRequest()
		req.Temperature = &temp
		assert.NotEqual(t, Fingerprint("ep-1", baseRequest()), Fingerprint("ep-1", req))

		capped := baseRequest()
		capped.MaxTokens = 512
		assert.NotEqual(t, Fingerprint("ep-1", baseRequest()), Fingerprint("ep-1", capped))
	})

	t.Run("role swap changes key", func(t *testing.T) {
		a := baseRequest()
		a.Messages = []Message{{Role: "user", Content: "x"}, {Role: "assistant", Content: "y"}}
		b := baseRequest()
		b.Messages = []Message{{Role: "assistant", Content: "x"}, {Role: "user", Content: "y"}}
		assert.NotEqual(t, Fingerprint("ep-1", a), Fingerprint("ep-1", b))
	})
}

func TestResultCache(t *testing.T) {
	t.Run("hit within ttl", func(t *testing.T) {
		c := newResultCache(time.Minute)
		c.put("key", Result{Text: "answer", ServerID: "ep-1"})

		got, ok := c.get("key")
		assert.True(t, ok)
		assert.Equal(t, "answer", got.Text)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		c := newResultCache(time.Minute)
		_, ok := c.get("nope")
		assert.False(t, ok)
	})

	t.Run("lazy expiry drops stale entries", func(t *testing.T) {
		c := newResultCache(10 * time.Millisecond)
		c.put("key", Result{Text: "answer"})
		time.Sleep(20 * time.Millisecond)

		_, ok := c.get("key")
		assert.False(t, ok)
		assert.NotContains(t, c.entries, "key")
	})

	t.Run("zero ttl disables caching", func(t *testing.T) {
		c := newResultCache(0)
		c.put("key", Result{Text: "answer"})
		_, ok := c.get("key")
		assert.False(t, ok)
	})
}

func TestLastUserMessage(t *testing.T) {
	req := baseRequest()
	req.Messages = []Message{
		{Role: "user", Content: "first"},
		{Role: "assistant", Content: "reply"},
		{Role: "user", Content: "second"},
	}
	assert.Equal(t, "second", lastUserMessage(req))

	req.Messages = []Message{{Role: "assistant", Content: "only"}}
	assert.Equal(t, "", lastUserMessage(req))
}
