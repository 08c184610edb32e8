// Package builder assembles a provider's capability list. A Builder refers to
// its provider through a non-owning reference, so provider constructors can
// build the list they are about to own.
package builder

import (
	"fmt"
	"log/slog"

	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/reglet-dev/reglet-capability-sdk/capability/apikey"
	"github.com/reglet-dev/reglet-capability-sdk/provider"
)

// Builder accumulates capabilities for one provider of type T.
//
// Each chain call appends at most one capability. A capability whose ID is
// empty or already present is skipped. Finish can be called any number of times and
// returns an independent copy of the list built so far.
type Builder[T any] struct {
	provider provider.Weak[T]
	caps     capability.List
}

// NewFrom returns a Builder bound to p.
func NewFrom[T any](p *T) *Builder[T] {
	return &Builder[T]{provider: provider.NewWeak(p)}
}

// APIKey appends an API-key capability bound to the builder's provider.
func (b *Builder[T]) APIKey(opts ...apikey.Option) *Builder[T] {
	return b.With(apikey.FromWeak(b.provider, opts...))
}

// Declare appends a declared capability wrapping value.
func (b *Builder[T]) Declare(id string, value any) *Builder[T] {
	return b.With(capability.Declare(id, value))
}

// Marker appends a stateless marker capability.
func (b *Builder[T]) Marker(id string) *Builder[T] {
	return b.With(capability.Marker(id))
}

// With appends c. Nil capabilities, empty IDs and duplicate IDs are ignored.
func (b *Builder[T]) With(c capability.Capability) *Builder[T] {
	if c == nil {
		return b
	}
	if c.ID() == "" {
		slog.Warn("skipping capability without an ID", "type", fmt.Sprintf("%T", c.Concrete()))
		return b
	}
	if b.caps.Has(c.ID()) {
		slog.Debug("skipping duplicate capability", "id", c.ID())
		return b
	}
	b.caps = append(b.caps, c)
	return b
}

// Len returns the number of capabilities added so far.
func (b *Builder[T]) Len() int {
	return len(b.caps)
}

// Finish returns the assembled capability list.
func (b *Builder[T]) Finish() capability.List {
	return b.caps.Clone()
}
