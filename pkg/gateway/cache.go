package gateway

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Fingerprint derives the cache key for a request served by modelRef. Two
// requests collide only when the model, system prompt, full history, and
// sampling options all match.
func Fingerprint(modelRef string, req Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "model:%s\x00system:%s\x00", modelRef, req.System)
	for _, m := range req.Messages {
		fmt.Fprintf(h, "%s:%s\x00", m.Role, m.Content)
	}
	temp := "default"
	if req.Temperature != nil {
		temp = strconv.FormatFloat(*req.Temperature, 'f', -1, 64)
	}
	fmt.Fprintf(h, "temp:%s\x00max:%d", temp, req.MaxTokens)
	return hex.EncodeToString(h.Sum(nil))
}

type cacheEntry struct {
	result    Result
	expiresAt time.Time
}

// resultCache is a TTL map with lazy expiry: stale entries are dropped on
// read, never by a background sweeper.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *resultCache) get(key string) (Result, bool) {
	if c.ttl <= 0 {
		return Result{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return Result{}, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return Result{}, false
	}
	return entry.result, true
}

func (c *resultCache) put(key string, result Result) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: result, expiresAt: time.Now().Add(c.ttl)}
}
