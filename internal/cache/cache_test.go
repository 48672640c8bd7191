package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/praxislabs/praxis/internal/llm"
)

func newTestCache(t *testing.T, cfg Config) *ResponseCache {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	return c
}

func TestKey_Deterministic(t *testing.T) {
	c := newTestCache(t, Config{Salt: "s1"})

	req := llm.Request{
		System:      "tutor",
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: "why a circular buffer?"}},
		Temperature: 0.7,
		MaxTokens:   512,
	}

	k1 := c.Key(req, "model-a")
	k2 := c.Key(req, "model-a")
	if k1 != k2 {
		t.Fatal("identical requests must produce identical keys")
	}
	if k1 == c.Key(req, "model-b") {
		t.Fatal("model must be part of the key")
	}

	req2 := req
	req2.Temperature = 0.8
	if k1 == c.Key(req2, "model-a") {
		t.Fatal("temperature must be part of the key")
	}
}

func TestKey_IgnoresEarlierTurns(t *testing.T) {
	c := newTestCache(t, Config{Salt: "s1"})

	first := llm.Request{
		System:   "tutor",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "why a circular buffer?"}},
	}
	repeat := llm.Request{
		System: "tutor",
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "why a circular buffer?"},
			{Role: llm.RoleAssistant, Content: "what happens at the end of a flat array?"},
			{Role: llm.RoleUser, Content: "why a circular buffer?"},
		},
	}
	if c.Key(first, "m") != c.Key(repeat, "m") {
		t.Fatal("a repeated prompt must key identically regardless of accumulated history")
	}

	other := repeat
	other.Messages = []llm.Message{
		repeat.Messages[0], repeat.Messages[1],
		{Role: llm.RoleUser, Content: "why a linked list?"},
	}
	if c.Key(repeat, "m") == c.Key(other, "m") {
		t.Fatal("the current turn must be part of the key")
	}
}

func TestKey_SaltSeparatesDeployments(t *testing.T) {
	c1 := newTestCache(t, Config{Salt: "tenant-a"})
	c2 := newTestCache(t, Config{Salt: "tenant-b"})

	req := llm.Request{Messages: []llm.Message{{Role: llm.RoleUser, Content: "same prompt"}}}
	if c1.Key(req, "m") == c2.Key(req, "m") {
		t.Fatal("different salts must never collide on keys")
	}
}

func TestGetPut_HitAndExpiry(t *testing.T) {
	c := newTestCache(t, Config{TTL: time.Hour})
	now := time.Now()
	c.now = func() time.Time { return now }

	resp := &llm.Response{Content: json.RawMessage(`"cached"`)}
	c.Put("k", resp)

	got, ok := c.Get("k")
	if !ok || string(got.Content) != `"cached"` {
		t.Fatal("expected hit within TTL")
	}

	// Past TTL the entry is a miss and is purged.
	now = now.Add(time.Hour + time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after TTL")
	}
	if c.Stats().Size != 0 {
		t.Fatal("expired entry should be purged on read")
	}
}

func TestEviction_LeastRecentlyUsed(t *testing.T) {
	c := newTestCache(t, Config{Capacity: 3})

	for i := range 3 {
		c.Put(fmt.Sprintf("k%d", i), &llm.Response{})
	}

	// Touch k0 so k1 becomes least recently used.
	if _, ok := c.Get("k0"); !ok {
		t.Fatal("expected k0 present")
	}

	// Insertion past capacity evicts exactly the LRU entry.
	c.Put("k3", &llm.Response{})

	if _, ok := c.Get("k1"); ok {
		t.Fatal("expected k1 evicted")
	}
	for _, k := range []string{"k0", "k2", "k3"} {
		if _, ok := c.Get(k); !ok {
			t.Fatalf("expected %s present", k)
		}
	}
	if size := c.Stats().Size; size != 3 {
		t.Fatalf("size = %d, want 3", size)
	}
}

func TestStats_Counters(t *testing.T) {
	c := newTestCache(t, Config{})

	c.Get("missing")
	c.Put("k", &llm.Response{})
	c.Get("k")
	c.Get("k")

	s := c.Stats()
	if s.Hits != 2 {
		t.Errorf("hits = %d, want 2", s.Hits)
	}
	if s.Misses != 1 {
		t.Errorf("misses = %d, want 1", s.Misses)
	}
	if s.Size != 1 {
		t.Errorf("size = %d, want 1", s.Size)
	}
}

func TestCachedProvider_SecondCallSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"generated"`)},
	)
	c := newTestCache(t, Config{TTL: time.Hour})
	p := WithCache(mock, c)

	req := llm.Request{Messages: []llm.Message{{Role: llm.RoleUser, Content: "same"}}}

	r1, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	r2, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("provider invoked %d times, want 1", mock.CallCount())
	}
	if string(r1.Content) != string(r2.Content) {
		t.Fatal("cached response must match the generated one")
	}
}

func TestCachedProvider_ExpiredEntryRegenerates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"first"`)},
		llm.MockResponse{Content: json.RawMessage(`"second"`)},
	)
	c := newTestCache(t, Config{TTL: time.Minute})
	now := time.Now()
	c.now = func() time.Time { return now }
	p := WithCache(mock, c)

	req := llm.Request{Messages: []llm.Message{{Role: llm.RoleUser, Content: "same"}}}

	if _, err := p.Generate(context.Background(), req); err != nil {
		t.Fatalf("first call: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := p.Generate(context.Background(), req); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if mock.CallCount() != 2 {
		t.Fatalf("provider invoked %d times, want 2 after expiry", mock.CallCount())
	}
}

func TestCachedProvider_ErrorNotCached(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: json.RawMessage(`"recovered"`)},
	)
	c := newTestCache(t, Config{})
	p := WithCache(mock, c)

	req := llm.Request{Messages: []llm.Message{{Role: llm.RoleUser, Content: "x"}}}

	if _, err := p.Generate(context.Background(), req); err == nil {
		t.Fatal("expected provider error")
	}
	if c.Stats().Size != 0 {
		t.Fatal("errors must not populate the cache")
	}

	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if string(resp.Content) != `"recovered"` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}
