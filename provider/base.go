package provider

import (
	"errors"
	"log/slog"
	"sync/atomic"
)

// ErrUninitialized is returned by Close on a Base not created with NewBase.
var ErrUninitialized = errors.New("provider base not initialized")

// Base carries the name and lifecycle shared by provider implementations.
// Embed it by value in a provider struct and initialize it with NewBase.
type Base struct {
	name   Name
	closed *atomic.Bool
}

// NewBase validates name and returns a Base for it.
func NewBase(name string) (Base, error) {
	n, err := NewName(name)
	if err != nil {
		return Base{}, err
	}
	return Base{name: n, closed: new(atomic.Bool)}, nil
}

// Name returns the provider name.
func (b *Base) Name() string {
	return b.name.String()
}

// Close marks the provider as gone. Capabilities that resolve the provider
// afterwards observe it as destroyed. Close is idempotent.
func (b *Base) Close() error {
	if b.closed == nil {
		return ErrUninitialized
	}
	if b.closed.CompareAndSwap(false, true) {
		slog.Debug("provider closed", "provider", b.name.String())
	}
	return nil
}

// Closed reports whether Close has been called.
func (b *Base) Closed() bool {
	return b.closed != nil && b.closed.Load()
}
