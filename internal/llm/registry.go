package llm

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/praxislabs/praxis/internal/store"
)

// ErrProviderInit wraps a failed provider construction. The failure is not
// sticky: the registry stays empty and a later GetProvider call retries.
type ErrProviderInit struct {
	Err error
}

func (e *ErrProviderInit) Error() string {
	return fmt.Sprintf("provider initialization failed: %v", e.Err)
}

func (e *ErrProviderInit) Unwrap() error { return e.Err }

// Registry lazily constructs and caches a single Provider per process.
// The first caller pays the construction cost (which may include network
// credential validation); every later caller, including concurrent ones,
// receives the same handle through an uncontended atomic read.
type Registry struct {
	mu      sync.Mutex
	handle  atomic.Pointer[providerHandle]
	cfg     Config
	repo    store.EventRepo
	factory func(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error)
}

type providerHandle struct {
	provider Provider
}

// NewRegistry creates a registry for the given configuration. Construction
// is deferred until the first GetProvider call.
func NewRegistry(cfg Config, repo store.EventRepo) *Registry {
	return &Registry{
		cfg:     cfg,
		repo:    repo,
		factory: NewProvider,
	}
}

// GetProvider returns the process-wide provider, constructing it on first
// use. Double-checked: the fast path is a lock-free load; only an
// uninitialized registry takes the mutex, and only one goroutine constructs.
// A construction failure returns *ErrProviderInit and leaves the registry
// uninitialized so a subsequent call may retry.
func (r *Registry) GetProvider(ctx context.Context) (Provider, error) {
	if h := r.handle.Load(); h != nil {
		return h.provider, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the lock: another goroutine may have won the race.
	if h := r.handle.Load(); h != nil {
		return h.provider, nil
	}

	p, err := r.factory(ctx, r.cfg, r.repo)
	if err != nil {
		return nil, &ErrProviderInit{Err: err}
	}

	r.handle.Store(&providerHandle{provider: p})
	return p, nil
}

// Initialized reports whether the provider has been constructed.
func (r *Registry) Initialized() bool {
	return r.handle.Load() != nil
}
