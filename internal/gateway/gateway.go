// Package gateway orchestrates one student interaction end to end:
// classify, govern, dispatch, trace, generate, trace again, then hand the
// session to the background risk scanner. It owns no policy logic and no
// generation logic; it sequences the packages that do.
package gateway

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/praxislabs/praxis/internal/agents"
	"github.com/praxislabs/praxis/internal/cache"
	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/logging"
	"github.com/praxislabs/praxis/internal/risk"
	"github.com/praxislabs/praxis/internal/store"
)

// ProviderSource yields the process-wide generation provider. Satisfied by
// llm.Registry; tests substitute a stub.
type ProviderSource interface {
	GetProvider(ctx context.Context) (llm.Provider, error)
}

// Options tunes the gateway. Zero values take defaults.
type Options struct {
	// Temperature and MaxTokens are passed to every generation call.
	Temperature float64
	MaxTokens   int

	// ProviderTimeout bounds one generation, retries included.
	ProviderTimeout time.Duration

	// HistoryLimit caps how many prior turns handlers see.
	HistoryLimit int

	// ScanQueueSize bounds the pending risk-scan queue. When full, new
	// scans are dropped and counted rather than blocking interactions.
	ScanQueueSize int

	// Cache configures the response cache.
	Cache cache.Config
}

func (o *Options) fill() {
	if o.Temperature == 0 {
		o.Temperature = 0.7
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = 1024
	}
	if o.ProviderTimeout == 0 {
		o.ProviderTimeout = 30 * time.Second
	}
	if o.HistoryLimit == 0 {
		o.HistoryLimit = 20
	}
	if o.ScanQueueSize == 0 {
		o.ScanQueueSize = 32
	}
}

// Gateway is the interaction orchestrator. Safe for concurrent use.
type Gateway struct {
	store      *store.Store
	providers  ProviderSource
	cache      *cache.ResponseCache
	dispatcher *agents.Dispatcher
	scanner    *risk.Scanner
	opts       Options
	log        *slog.Logger

	scans     chan scanJob
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New builds a Gateway and starts its scan worker. Callers must Close it
// to drain pending scans.
func New(st *store.Store, providers ProviderSource, opts Options) (*Gateway, error) {
	opts.fill()

	rc, err := cache.New(opts.Cache)
	if err != nil {
		return nil, err
	}

	g := &Gateway{
		store:      st,
		providers:  providers,
		cache:      rc,
		dispatcher: agents.NewDispatcher(),
		scanner:    risk.NewScanner(),
		opts:       opts,
		log:        logging.WithComponent("gateway"),
		scans:      make(chan scanJob, opts.ScanQueueSize),
	}

	g.wg.Add(1)
	go g.runScanner()

	return g, nil
}

// Close stops accepting scans, drains the queue and waits for the worker.
func (g *Gateway) Close() {
	g.closeOnce.Do(func() { close(g.scans) })
	g.wg.Wait()
}

// CacheStats exposes response-cache counters for the stats surface.
func (g *Gateway) CacheStats() cache.Stats {
	return g.cache.Stats()
}

// provider resolves the generation handle with the response cache layered
// on top.
func (g *Gateway) provider(ctx context.Context) (llm.Provider, error) {
	p, err := g.providers.GetProvider(ctx)
	if err != nil {
		return nil, err
	}
	return cache.WithCache(p, g.cache), nil
}
