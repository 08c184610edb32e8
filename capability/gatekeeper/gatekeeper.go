// Package gatekeeper drives the API-key capability of providers: loads stored
// keys, asks each capability whether to prompt, prompts for missing keys and
// persists accepted ones.
package gatekeeper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/reglet-dev/reglet-capability-sdk/capability/apikey"
	"github.com/reglet-dev/reglet-capability-sdk/capability/ids"
	"github.com/reglet-dev/reglet-capability-sdk/capability/keystore"
	"github.com/reglet-dev/reglet-capability-sdk/provider"
)

// Gatekeeper collects API keys for providers that require one.
type Gatekeeper struct {
	store          capability.KeyStore
	prompter       capability.Prompter
	logger         *slog.Logger
	nonInteractive bool
}

// Option configures a Gatekeeper.
type Option func(*Gatekeeper)

// WithStore sets the key store.
func WithStore(s capability.KeyStore) Option {
	return func(g *Gatekeeper) { g.store = s }
}

// WithPrompter sets the prompter.
func WithPrompter(p capability.Prompter) Option {
	return func(g *Gatekeeper) { g.prompter = p }
}

// WithNonInteractive disables prompting even when the prompter is interactive.
func WithNonInteractive(nonInteractive bool) Option {
	return func(g *Gatekeeper) { g.nonInteractive = nonInteractive }
}

// WithLogger sets the logger. It defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Gatekeeper) { g.logger = l }
}

// NewGatekeeper creates a gatekeeper with pluggable store and prompter.
func NewGatekeeper(opts ...Option) *Gatekeeper {
	g := &Gatekeeper{}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = keystore.NewFileStore()
	}
	if g.prompter == nil {
		g.prompter = NewTerminalPrompter()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Collect returns the API key of every provider whose capabilities include
// ids.RequiresAPIKey, prompting for keys that are missing or no longer valid.
// Providers without the capability, and providers that are already gone, are
// skipped. In non-interactive mode it fails listing every provider that needs
// a key.
func (g *Gatekeeper) Collect(ctx context.Context, providers ...provider.NamedProvider) (map[string]string, error) {
	keys := make(map[string]string)
	var missing []string

	interactive := !g.nonInteractive && g.prompter.IsInteractive()

	for _, p := range providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := p.Name()
		req, ok := capability.FindAs[apikey.Requirement](p.Capabilities(), ids.RequiresAPIKey)
		if !ok {
			continue
		}
		if !req.Alive() {
			g.logger.Warn("skipping API key for unavailable provider", "provider", name)
			continue
		}

		stored, found, err := g.store.Get(name)
		if err != nil {
			return nil, fmt.Errorf("loading key for provider %s: %w", name, err)
		}
		var current *string
		if found {
			current = &stored
		}

		if !req.NeedsPrompt(current) {
			// NeedsPrompt is also false for a provider gone since the check above.
			if found && req.Alive() {
				keys[name] = stored
			}
			continue
		}

		if !interactive {
			missing = append(missing, name)
			continue
		}

		key, err := g.promptForKey(name, req)
		if err != nil {
			return nil, err
		}
		keys[name] = key
	}

	if len(missing) > 0 {
		return nil, g.prompter.FormatNonInteractiveError(missing, g.store.ConfigPath())
	}
	return keys, nil
}

// Submit validates key against the provider's API-key capability and applies
// the resulting action without prompting.
func (g *Gatekeeper) Submit(p provider.NamedProvider, key string) error {
	req, ok := capability.FindAs[apikey.Requirement](p.Capabilities(), ids.RequiresAPIKey)
	if !ok {
		return fmt.Errorf("provider %s does not accept an API key", p.Name())
	}
	return g.apply(p.Name(), req, key)
}

func (g *Gatekeeper) promptForKey(name string, req apikey.Requirement) (string, error) {
	// Render panics once the provider is gone; NeedsPrompt has just confirmed
	// it is alive.
	key, err := g.prompter.PromptForKey(capability.KeyRequest{
		Provider:    name,
		Title:       fmt.Sprintf("API key for %s", name),
		Description: req.Render(),
		Validate: func(candidate string) error {
			_, err := req.OnProvided(candidate)
			return err
		},
	})
	if err != nil {
		return "", fmt.Errorf("prompting for provider %s: %w", name, err)
	}

	if err := g.apply(name, req, key); err != nil {
		return "", err
	}
	return key, nil
}

func (g *Gatekeeper) apply(name string, req apikey.Requirement, key string) error {
	action, err := req.OnProvided(key)
	if err != nil {
		return fmt.Errorf("API key rejected for provider %s: %w", name, err)
	}

	switch action {
	case apikey.ActionStore:
		if err := g.store.Put(name, key); err != nil {
			return fmt.Errorf("storing key for provider %s: %w", name, err)
		}
		g.logger.Debug("stored API key", "provider", name, "path", g.store.ConfigPath())
	case apikey.ActionNone:
	default:
		g.logger.Warn("unknown key action", "provider", name, "action", action.String())
	}
	return nil
}
