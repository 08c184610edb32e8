// Package registry implements an in-memory registry of capability providers.
package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/reglet-dev/reglet-capability-sdk/provider"
)

// Registry implements ProviderRegistry using in-memory storage.
type Registry struct {
	providers map[string]provider.NamedProvider
	order     []string
	logger    *slog.Logger
	mu        sync.RWMutex
	strict    bool
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// WithStrictMode rejects providers whose capability lists repeat an ID.
func WithStrictMode(strict bool) RegistryOption {
	return func(r *Registry) {
		r.strict = strict
	}
}

// WithLogger sets the logger. It defaults to slog.Default().
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry creates a new provider registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		providers: make(map[string]provider.NamedProvider),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Register adds a provider under its name.
func (r *Registry) Register(p provider.NamedProvider) error {
	if p == nil {
		return fmt.Errorf("provider is nil")
	}
	name, err := provider.NewName(p.Name())
	if err != nil {
		return fmt.Errorf("invalid provider: %w", err)
	}

	caps := p.Capabilities()
	for i, c := range caps {
		if c == nil || c.ID() == "" {
			return fmt.Errorf("provider %s declares a capability without an ID at position %d", name, i)
		}
	}
	if r.strict {
		if dup, ok := duplicateID(caps); ok {
			return fmt.Errorf("provider %s declares capability %q more than once", name, dup)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name.String()]; exists {
		return fmt.Errorf("provider already registered: %s", name)
	}
	r.providers[name.String()] = p
	r.order = append(r.order, name.String())

	r.logger.Debug("registered provider", "provider", name.String(), "capabilities", caps.IDs())
	return nil
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (provider.NamedProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	return p, ok
}

// Names returns all registered provider names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Providers returns all providers in registration order.
func (r *Registry) Providers() []provider.NamedProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]provider.NamedProvider, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.providers[name])
	}
	return out
}

// Lookup returns every registered capability with the given ID, ordered by
// provider registration and then by position in the provider's list.
func (r *Registry) Lookup(id string) []Match {
	var matches []Match
	for _, p := range r.Providers() {
		for _, c := range p.Capabilities() {
			if c != nil && c.ID() == id {
				matches = append(matches, Match{Capability: c, Provider: p.Name()})
			}
		}
	}
	return matches
}

// Match returns providers, in registration order, whose names match any
// include pattern and no exclude pattern. An empty include list matches every
// provider. Patterns use doublestar syntax.
func (r *Registry) Match(include, exclude []string) ([]provider.NamedProvider, error) {
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid provider pattern %q", pattern)
		}
	}

	var out []provider.NamedProvider
	for _, p := range r.Providers() {
		name := p.Name()
		if len(include) > 0 && !matchAny(include, name) {
			continue
		}
		if matchAny(exclude, name) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func duplicateID(caps capability.List) (string, bool) {
	seen := make(map[string]struct{}, len(caps))
	for _, id := range caps.IDs() {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}
