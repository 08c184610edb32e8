// Package providertest provides a provider implementation for tests.
package providertest

import (
	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/reglet-dev/reglet-capability-sdk/capability/builder"
	"github.com/reglet-dev/reglet-capability-sdk/provider"
)

// Ensure implementations satisfy the interface.
var _ provider.NamedProvider = (*Provider)(nil)

// Provider is a named provider whose only capability is an API-key
// requirement, unless built with Bare or WithCapabilities.
type Provider struct {
	provider.Base
	caps capability.List
}

// Option configures a test Provider.
type Option func(*builder.Builder[Provider])

// WithCapabilities appends extra capabilities after the API-key requirement.
func WithCapabilities(caps ...capability.Capability) Option {
	return func(b *builder.Builder[Provider]) {
		for _, c := range caps {
			b.With(c)
		}
	}
}

// New creates a provider named name with an API-key capability. It panics if
// name is not a valid provider name.
func New(name string, opts ...Option) *Provider {
	p := Bare(name)
	b := builder.NewFrom(p).APIKey()
	for _, opt := range opts {
		opt(b)
	}
	p.caps = b.Finish()
	return p
}

// Bare creates a provider named name without capabilities.
func Bare(name string) *Provider {
	base, err := provider.NewBase(name)
	if err != nil {
		panic(err)
	}
	return &Provider{Base: base, caps: capability.List{}}
}

// Capabilities returns a copy of the provider's capability list.
func (p *Provider) Capabilities() capability.List {
	return p.caps.Clone()
}
