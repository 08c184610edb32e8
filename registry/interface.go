package registry

import (
	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/reglet-dev/reglet-capability-sdk/provider"
)

// ProviderRegistry tracks the providers loaded into a host.
type ProviderRegistry interface {
	// Register adds a provider under its validated name.
	Register(p provider.NamedProvider) error

	// Get returns the provider registered under name.
	Get(name string) (provider.NamedProvider, bool)

	// Names returns all registered provider names, sorted.
	Names() []string

	// Providers returns all providers in registration order.
	Providers() []provider.NamedProvider

	// Lookup returns every registered capability with the given ID.
	Lookup(id string) []Match

	// Match returns providers whose names match any include pattern and no
	// exclude pattern.
	Match(include, exclude []string) ([]provider.NamedProvider, error)
}

// Match pairs a capability with the provider that declared it.
type Match struct {
	Capability capability.Capability
	Provider   string
}
