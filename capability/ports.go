package capability

// KeyRequest describes one interactive request for a provider's API key.
type KeyRequest struct {
	// Validate is called on every candidate before the prompt accepts it.
	Validate    func(string) error
	Provider    string
	Title       string
	Description string
}

// KeyStore persists and retrieves API keys accepted for providers.
type KeyStore interface {
	Get(provider string) (key string, ok bool, err error)
	Put(provider, key string) error
	Delete(provider string) error
	ConfigPath() string
}

// Prompter handles interactive API key collection.
type Prompter interface {
	IsInteractive() bool
	PromptForKey(req KeyRequest) (string, error)
	// FormatNonInteractiveError reports the providers still missing keys.
	// storePath is the key store's ConfigPath and may be empty.
	FormatNonInteractiveError(missing []string, storePath string) error
}
