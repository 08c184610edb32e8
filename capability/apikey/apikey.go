// Package apikey implements the capability of a provider that needs a secret
// key from the end user. The capability refers back to its provider without
// owning it: data operations report a gone provider as ErrProvider, while
// Render treats it as a caller bug and panics.
package apikey

import (
	"unicode/utf8"

	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/reglet-dev/reglet-capability-sdk/capability/ids"
	"github.com/reglet-dev/reglet-capability-sdk/provider"
)

// DefaultMinLength is the minimum key length used unless WithMinLength says
// otherwise.
const DefaultMinLength = 16

// Requirement is the behavior of an API-key capability independent of its
// provider type. Hosts that do not know the provider type downcast to it.
type Requirement interface {
	capability.Capability
	Alive() bool
	MinLength() int
	NeedsPrompt(current *string) bool
	OnProvided(candidate string) (KeyAction, error)
	Render() string
}

// Ensure implementations satisfy the interface.
var _ Requirement = (*APIKey[struct{}])(nil)

// APIKey is the capability of a provider of type T that requires an API key.
type APIKey[T any] struct {
	provider provider.Weak[T]
	minLen   int
	title    string
}

// Option configures an APIKey.
type Option func(*options)

type options struct {
	minLen int
	title  string
}

// WithMinLength sets the minimum accepted key length in characters. Values
// below one are ignored.
func WithMinLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.minLen = n
		}
	}
}

// WithTitle overrides the heading shown by Render.
func WithTitle(title string) Option {
	return func(o *options) {
		if title != "" {
			o.title = title
		}
	}
}

// New creates an API-key capability bound to p without taking ownership of it.
func New[T any](p *T, opts ...Option) *APIKey[T] {
	return FromWeak(provider.NewWeak(p), opts...)
}

// FromWeak creates an API-key capability from an existing non-owning reference.
func FromWeak[T any](ref provider.Weak[T], opts ...Option) *APIKey[T] {
	o := options{
		minLen: DefaultMinLength,
		title:  "API key required",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &APIKey[T]{
		provider: ref,
		minLen:   o.minLen,
		title:    o.title,
	}
}

// ID returns ids.RequiresAPIKey.
func (k *APIKey[T]) ID() string { return ids.RequiresAPIKey }

// Concrete returns k.
func (k *APIKey[T]) Concrete() any { return k }

// MinLength returns the configured minimum key length.
func (k *APIKey[T]) MinLength() int { return k.minLen }

// Alive reports whether the owning provider is still usable.
func (k *APIKey[T]) Alive() bool { return k.provider.Alive() }

// Provider resolves the owning provider.
func (k *APIKey[T]) Provider() (*T, bool) {
	return k.provider.Resolve()
}

// NeedsPrompt reports whether the host should ask the user for a key.
// It is false once the provider is gone. With a live provider it is true when
// current is nil, or when current no longer satisfies the format policy.
func (k *APIKey[T]) NeedsPrompt(current *string) bool {
	if !k.provider.Alive() {
		return false
	}
	if current == nil {
		return true
	}
	return k.checkFormat(*current) != nil
}

// OnProvided validates a candidate key. Format is checked before provider
// liveness, so an empty candidate always yields ErrEmpty.
func (k *APIKey[T]) OnProvided(candidate string) (KeyAction, error) {
	if err := k.checkFormat(candidate); err != nil {
		return ActionNone, err
	}
	if !k.provider.Alive() {
		return ActionNone, ErrProvider
	}
	return ActionStore, nil
}

func (k *APIKey[T]) checkFormat(candidate string) error {
	if candidate == "" {
		return ErrEmpty
	}
	if utf8.RuneCountInString(candidate) < k.minLen {
		return &TooShortError{MinLen: k.minLen}
	}
	return nil
}

// Render returns the prompt text for this capability. It must only be called
// while the provider is alive; otherwise it panics with ProviderPanicMessage.
func (k *APIKey[T]) Render() string {
	p, ok := k.provider.Resolve()
	if !ok {
		panic(ProviderPanicMessage)
	}
	return render(k.title, displayName(p), k.minLen)
}
