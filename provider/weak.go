package provider

import "weak"

// Weak is a non-owning reference to a provider. It never extends the
// provider's lifetime, so a capability can hold one without creating a cycle
// with the provider that owns it. Whoever owns the provider must keep it
// reachable for as long as it should be considered alive.
type Weak[T any] struct {
	ptr weak.Pointer[T]
}

// NewWeak returns a non-owning reference to p. A nil p yields a reference that
// never resolves.
func NewWeak[T any](p *T) Weak[T] {
	if p == nil {
		return Weak[T]{}
	}
	return Weak[T]{ptr: weak.Make(p)}
}

// Resolve returns the provider if it is still alive. A provider is gone once
// it has been garbage collected or, if it implements Closer, once it reports
// itself closed.
func (w Weak[T]) Resolve() (*T, bool) {
	p := w.ptr.Value()
	if p == nil {
		return nil, false
	}
	if c, ok := any(p).(Closer); ok && c.Closed() {
		return nil, false
	}
	return p, true
}

// Alive reports whether Resolve would succeed.
func (w Weak[T]) Alive() bool {
	_, ok := w.Resolve()
	return ok
}
