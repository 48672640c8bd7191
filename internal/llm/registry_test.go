package llm

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/praxislabs/praxis/internal/store"
)

func TestRegistry_SingleConstruction(t *testing.T) {
	var constructions atomic.Int32
	r := NewRegistry(Config{Provider: "mock"}, nil)
	r.factory = func(_ context.Context, _ Config, _ store.EventRepo) (Provider, error) {
		constructions.Add(1)
		return NewMockProvider(), nil
	}

	const n = 16
	providers := make([]Provider, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			p, err := r.GetProvider(context.Background())
			if err != nil {
				t.Errorf("get provider: %v", err)
				return
			}
			providers[i] = p
		}(i)
	}
	close(start)
	wg.Wait()

	if got := constructions.Load(); got != 1 {
		t.Fatalf("expected exactly 1 construction, got %d", got)
	}
	for i := 1; i < n; i++ {
		if providers[i] != providers[0] {
			t.Fatalf("goroutine %d got a different handle", i)
		}
	}
}

func TestRegistry_FailureDoesNotPoison(t *testing.T) {
	calls := 0
	r := NewRegistry(Config{Provider: "mock"}, nil)
	r.factory = func(_ context.Context, _ Config, _ store.EventRepo) (Provider, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("bad credentials")
		}
		return NewMockProvider(), nil
	}

	_, err := r.GetProvider(context.Background())
	var initErr *ErrProviderInit
	if !errors.As(err, &initErr) {
		t.Fatalf("expected ErrProviderInit, got %v", err)
	}
	if r.Initialized() {
		t.Fatal("failed construction must not initialize the registry")
	}

	p, err := r.GetProvider(context.Background())
	if err != nil {
		t.Fatalf("retry should succeed: %v", err)
	}
	if p == nil {
		t.Fatal("expected provider after retry")
	}
	if calls != 2 {
		t.Fatalf("expected 2 factory calls, got %d", calls)
	}
}

func TestRegistry_UnknownProvider(t *testing.T) {
	r := NewRegistry(Config{Provider: "nope"}, nil)
	_, err := r.GetProvider(context.Background())
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
