package gateway

import "fmt"

// ProviderError wraps a generation failure. The input trace has already
// been written when this is returned; the failed output trace too.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed durable write. Op names the write that
// failed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
