package ollama

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheMaxTemperature is the highest sampling temperature considered
// deterministic enough to cache. Higher-temperature calls bypass the cache
// entirely since repeat answers are not expected to match.
const CacheMaxTemperature = 0.2

// CachedClient decorates an IOllama client with a TTL response cache keyed by
// (model, exact prompt text). A hit short-circuits the network call. The
// underlying LRU locks internally, so concurrent readers and writers on the
// same key are safe; last-write-wins on expiry races is acceptable.
type CachedClient struct {
	inner IOllama
	cache *expirable.LRU[string, string]
}

var _ IOllama = (*CachedClient)(nil)

// NewCachedClient wraps inner with a response cache of the given size and TTL.
func NewCachedClient(inner IOllama, size int, ttl time.Duration) *CachedClient {
	return &CachedClient{
		inner: inner,
		cache: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Chat serves cacheable requests from the cache, delegating misses to the
// wrapped client.
func (c *CachedClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if !cacheable(req) {
		return c.inner.Chat(ctx, req)
	}

	key := cacheKey(req)
	if content, ok := c.cache.Get(key); ok {
		return &ChatResponse{
			Model:   req.Model,
			Message: Message{Role: "assistant", Content: content},
			Done:    true,
		}, nil
	}

	resp, err := c.inner.Chat(ctx, req)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, resp.Message.Content)
	return resp, nil
}

// Purge drops all cached entries.
func (c *CachedClient) Purge() {
	c.cache.Purge()
}

func cacheable(req *ChatRequest) bool {
	return req.Options != nil && req.Options.Temperature <= CacheMaxTemperature
}

func cacheKey(req *ChatRequest) string {
	var sb strings.Builder
	sb.WriteString(req.Model)
	for _, m := range req.Messages {
		sb.WriteString("\x00")
		sb.WriteString(m.Role)
		sb.WriteString("\x01")
		sb.WriteString(m.Content)
	}
	sum := md5.Sum([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}
