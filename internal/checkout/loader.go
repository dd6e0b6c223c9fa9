package checkout

import (
	"context"
	"sync"

	"github.com/golasco/golasco/internal/errors"
)

// LoadFunc prepares a Checkout implementation, typically by reaching the
// provider's servers. It is injected so tests and offline builds can
// substitute their own.
type LoadFunc func(ctx context.Context) (Checkout, error)

// Loader makes the provider's widget available, loading it at most once
// per process. A successful load is cached for every later booking; a
// failed load is reported as a typed error and retried on the next call.
type Loader struct {
	load LoadFunc

	mu     sync.Mutex
	cached Checkout
}

// NewLoader creates a widget loader around the given load function.
func NewLoader(load LoadFunc) *Loader {
	return &Loader{load: load}
}

// Get returns the widget, loading it on first use.
func (l *Loader) Get(ctx context.Context) (Checkout, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cached != nil {
		return l.cached, nil
	}

	widget, err := l.load(ctx)
	if err != nil {
		return nil, errors.NewSDKUnavailableError(err)
	}

	l.cached = widget
	return widget, nil
}
