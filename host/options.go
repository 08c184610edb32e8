package host

import (
	"io"

	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/reglet-dev/reglet-capability-sdk/registry"
)

// Option defines a functional option for configuring the Host.
type Option func(*Host)

// WithRegistry replaces the provider registry. Its logger is not replaced.
func WithRegistry(r *registry.Registry) Option {
	return func(h *Host) {
		h.registry = r
	}
}

// WithKeyStore replaces the key store built from configuration.
func WithKeyStore(s capability.KeyStore) Option {
	return func(h *Host) {
		h.store = s
	}
}

// WithPrompter replaces the terminal prompter.
func WithPrompter(p capability.Prompter) Option {
	return func(h *Host) {
		h.prompter = p
	}
}

// WithLogOutput makes the host log through a text slog handler writing to w
// at the configured level. The process-wide default logger is left untouched.
func WithLogOutput(w io.Writer) Option {
	return func(h *Host) {
		h.logOutput = w
	}
}
