// Package ids is the catalogue of well-known capability identifiers. Capability
// implementations and lookup call sites both reference these constants so the
// literals are defined once.
package ids

import "slices"

const (
	// RequiresAPIKey marks a provider that needs a secret key from the end user.
	RequiresAPIKey = "requires_api_key"

	// Configurable marks a provider that accepts user configuration.
	Configurable = "configurable"

	// Networked marks a provider that talks to remote services.
	Networked = "networked"
)

var catalogue = []string{
	RequiresAPIKey,
	Configurable,
	Networked,
}

// All returns the catalogued identifiers in declaration order.
func All() []string {
	return slices.Clone(catalogue)
}

// Known reports whether id is part of the catalogue.
func Known(id string) bool {
	return slices.Contains(catalogue, id)
}
