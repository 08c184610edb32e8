// Package host wires configuration, the provider registry, the key store and
// the gatekeeper into one object a host application drives.
package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/reglet-dev/reglet-capability-sdk/capability/apikey"
	"github.com/reglet-dev/reglet-capability-sdk/capability/gatekeeper"
	"github.com/reglet-dev/reglet-capability-sdk/capability/keystore"
	"github.com/reglet-dev/reglet-capability-sdk/config"
	"github.com/reglet-dev/reglet-capability-sdk/provider"
	"github.com/reglet-dev/reglet-capability-sdk/registry"
)

// Host manages the providers loaded into an application.
type Host struct {
	config     *config.Config
	registry   *registry.Registry
	store      capability.KeyStore
	prompter   capability.Prompter
	gatekeeper *gatekeeper.Gatekeeper
	logOutput  io.Writer
	logger     *slog.Logger
}

// New creates a Host from cfg. A nil cfg uses config.Default.
func New(cfg *config.Config, opts ...Option) *Host {
	if cfg == nil {
		cfg = config.Default()
	}
	h := &Host{config: cfg}
	for _, opt := range opts {
		opt(h)
	}

	h.logger = slog.Default()
	if h.logOutput != nil {
		h.logger = slog.New(slog.NewTextHandler(h.logOutput, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		}))
	}
	if h.registry == nil {
		h.registry = registry.NewRegistry(registry.WithLogger(h.logger))
	}
	if h.store == nil {
		h.store = keystore.NewFileStore(
			keystore.WithPath(cfg.KeyStore.Path),
			keystore.WithFilePermissions(cfg.KeyStore.FileMode()),
		)
	}

	gkOpts := []gatekeeper.Option{
		gatekeeper.WithStore(h.store),
		gatekeeper.WithNonInteractive(cfg.NonInteractive),
		gatekeeper.WithLogger(h.logger),
	}
	if h.prompter != nil {
		gkOpts = append(gkOpts, gatekeeper.WithPrompter(h.prompter))
	}
	h.gatekeeper = gatekeeper.NewGatekeeper(gkOpts...)

	return h
}

// Config returns the host configuration.
func (h *Host) Config() *config.Config {
	return h.config
}

// Logger returns the logger the host and its components write to.
func (h *Host) Logger() *slog.Logger {
	return h.logger
}

// Registry returns the provider registry.
func (h *Host) Registry() *registry.Registry {
	return h.registry
}

// Register adds providers to the registry.
func (h *Host) Register(providers ...provider.NamedProvider) error {
	for _, p := range providers {
		if err := h.registry.Register(p); err != nil {
			return err
		}
	}
	return nil
}

// KeyOptions returns the API-key options derived from configuration, for
// providers that build their capabilities with the host's policy.
func (h *Host) KeyOptions() []apikey.Option {
	return []apikey.Option{apikey.WithMinLength(h.config.APIKey.MinLength)}
}

// Selected returns the registered providers matched by the configured
// include and exclude patterns.
func (h *Host) Selected() ([]provider.NamedProvider, error) {
	providers, err := h.registry.Match(h.config.Providers.Include, h.config.Providers.Exclude)
	if err != nil {
		return nil, fmt.Errorf("selecting providers: %w", err)
	}
	return providers, nil
}

// CollectKeys gathers API keys for the selected providers.
func (h *Host) CollectKeys(ctx context.Context) (map[string]string, error) {
	providers, err := h.Selected()
	if err != nil {
		return nil, err
	}
	h.logger.Debug("collecting API keys", "providers", len(providers))
	return h.gatekeeper.Collect(ctx, providers...)
}

// SubmitKey validates and stores key for the named provider.
func (h *Host) SubmitKey(name, key string) error {
	p, ok := h.registry.Get(name)
	if !ok {
		return fmt.Errorf("provider not registered: %s", name)
	}
	return h.gatekeeper.Submit(p, key)
}
