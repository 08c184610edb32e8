// Package provider defines what a plugin or module implements to expose its
// capabilities to a host, and the non-owning reference capabilities use to
// call back into their provider.
package provider

import "github.com/reglet-dev/reglet-capability-sdk/capability"

// Provider exposes an ordered list of capabilities. The order is stable for a
// given instance; a provider without capabilities returns an empty list.
type Provider interface {
	Capabilities() capability.List
}

// Named is implemented by anything that carries a display name.
type Named interface {
	Name() string
}

// NamedProvider is a provider a host can key by name.
type NamedProvider interface {
	Provider
	Named
}

// Closer is implemented by providers with an explicit end of life. A closed
// provider is treated as gone by Weak.Resolve even while memory still
// references it.
type Closer interface {
	Closed() bool
}
