package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/metrics"
)

// DefaultCapacity bounds the cache when no capacity is configured.
const DefaultCapacity = 1000

// DefaultTTL is applied to entries stored without an explicit TTL.
const DefaultTTL = time.Hour

// Config configures a ResponseCache.
type Config struct {
	// Capacity is the maximum entry count. <= 0 uses DefaultCapacity.
	Capacity int `yaml:"capacity"`

	// TTL is the default entry lifetime. <= 0 uses DefaultTTL.
	TTL time.Duration `yaml:"ttl"`

	// Salt is mixed into every key. Two deployments with different salts
	// never collide on keys even for identical prompts, which keeps one
	// tenant's cached responses unreachable from another installation.
	Salt string `yaml:"salt"`
}

// Stats is a point-in-time view of cache observability counters.
type Stats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

type entry struct {
	resp      *llm.Response
	expiresAt time.Time
}

// ResponseCache is a bounded, time-expiring response cache. Eviction is
// strictly least-recently-used over all entries, expired or not; expired
// entries are purged lazily when read. One mutex guards the whole
// read-reorder and put-evict sequence, which keeps each operation atomic
// with respect to concurrent callers.
type ResponseCache struct {
	mu     sync.Mutex
	lru    *simplelru.LRU[string, *entry]
	ttl    time.Duration
	salt   string
	hits   uint64
	misses uint64

	// now is swappable for expiry tests.
	now func() time.Time
}

// New creates a ResponseCache from cfg.
func New(cfg Config) (*ResponseCache, error) {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	l, err := simplelru.NewLRU[string, *entry](capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("new lru: %w", err)
	}

	return &ResponseCache{
		lru:  l,
		ttl:  ttl,
		salt: cfg.Salt,
		now:  time.Now,
	}, nil
}

// Key derives the deterministic cache key for one generation request:
// a SHA-256 digest over the salt, model ID, generation parameters, the
// system prompt and the current (final) turn. Earlier turns are excluded
// so a prompt repeated within a session still hits even though the
// conversation has grown around it. Handlers whose answers depend on
// history carry it in the system prompt, which keeps their keys distinct.
func (c *ResponseCache) Key(req llm.Request, modelID string) string {
	var b strings.Builder
	b.WriteString(c.salt)
	b.WriteByte(0)
	b.WriteString(modelID)
	b.WriteByte(0)
	fmt.Fprintf(&b, "%.4f|%d", req.Temperature, req.MaxTokens)
	b.WriteByte(0)
	b.WriteString(req.System)
	if n := len(req.Messages); n > 0 {
		last := req.Messages[n-1]
		b.WriteByte(0)
		b.WriteString(string(last.Role))
		b.WriteByte(':')
		b.WriteString(last.Content)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached response for key. An expired entry is purged and
// reported as a miss.
func (c *ResponseCache) Get(key string) (*llm.Response, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Get(key)
	if !ok {
		c.misses++
		metrics.CacheMisses.Inc()
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.lru.Remove(key)
		c.misses++
		metrics.CacheMisses.Inc()
		metrics.CacheSize.Set(float64(c.lru.Len()))
		return nil, false
	}

	c.hits++
	metrics.CacheHits.Inc()
	return e.resp, true
}

// Put stores resp under key with the default TTL.
func (c *ResponseCache) Put(key string, resp *llm.Response) {
	c.PutTTL(key, resp, c.ttl)
}

// PutTTL stores resp with an explicit lifetime. Insertion past capacity
// evicts the least-recently-accessed entry regardless of its expiry.
func (c *ResponseCache) PutTTL(key string, resp *llm.Response, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Add(key, &entry{
		resp:      resp,
		expiresAt: c.now().Add(ttl),
	})
	metrics.CacheSize.Set(float64(c.lru.Len()))
}

// Stats returns cumulative hit/miss counts and the current entry count.
func (c *ResponseCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:   c.hits,
		Misses: c.misses,
		Size:   c.lru.Len(),
	}
}
