package cache

import (
	"context"

	"github.com/praxislabs/praxis/internal/llm"
)

// CachedProvider is a decorator that consults the ResponseCache before
// delegating to the inner provider, in the same middleware style as the
// retry and logging wrappers.
type CachedProvider struct {
	inner llm.Provider
	cache *ResponseCache
}

// WithCache wraps a Provider with response caching.
func WithCache(p llm.Provider, c *ResponseCache) *CachedProvider {
	return &CachedProvider{inner: p, cache: c}
}

func (p *CachedProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	key := p.cache.Key(req, p.inner.ModelID())

	if resp, ok := p.cache.Get(key); ok {
		return resp, nil
	}

	resp, err := p.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	p.cache.Put(key, resp)
	return resp, nil
}

func (p *CachedProvider) ModelID() string {
	return p.inner.ModelID()
}
