package host_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/reglet-dev/reglet-capability-sdk/capability/apikey"
	"github.com/reglet-dev/reglet-capability-sdk/capability/builder"
	"github.com/reglet-dev/reglet-capability-sdk/capability/keystore"
	"github.com/reglet-dev/reglet-capability-sdk/config"
	"github.com/reglet-dev/reglet-capability-sdk/host"
	"github.com/reglet-dev/reglet-capability-sdk/provider"
	"github.com/reglet-dev/reglet-capability-sdk/provider/providertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchProvider builds its capabilities with the host's key policy.
type searchProvider struct {
	provider.Base
	caps capability.List
}

func newSearchProvider(t *testing.T, name string, opts ...apikey.Option) *searchProvider {
	t.Helper()
	base, err := provider.NewBase(name)
	require.NoError(t, err)
	p := &searchProvider{Base: base}
	p.caps = builder.NewFrom(p).APIKey(opts...).Finish()
	return p
}

func (s *searchProvider) Capabilities() capability.List { return s.caps.Clone() }

type fixedPrompter struct {
	answer string
	asked  []string
}

func (f *fixedPrompter) IsInteractive() bool { return true }

func (f *fixedPrompter) PromptForKey(req capability.KeyRequest) (string, error) {
	f.asked = append(f.asked, req.Provider)
	return f.answer, req.Validate(f.answer)
}

func (f *fixedPrompter) FormatNonInteractiveError(missing []string, storePath string) error {
	return assert.AnError
}

func TestHost_CollectKeys(t *testing.T) {
	cfg := config.Default()
	cfg.KeyStore.Path = filepath.Join(t.TempDir(), "keys.yaml")
	cfg.Providers.Exclude = []string{"internal.*"}

	prompter := &fixedPrompter{answer: strings.Repeat("k", 16)}
	h := host.New(cfg, host.WithPrompter(prompter))

	public := providertest.New("acme.search")
	internal := providertest.New("internal.audit")
	defer runtime.KeepAlive([]any{public, internal})
	require.NoError(t, h.Register(public, internal))

	keys, err := h.CollectKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"acme.search": strings.Repeat("k", 16)}, keys)
	assert.Equal(t, []string{"acme.search"}, prompter.asked)

	stored, ok, err := keystore.NewFileStore(keystore.WithPath(cfg.KeyStore.Path)).Get("acme.search")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, strings.Repeat("k", 16), stored)
}

func TestHost_KeyPolicyFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.APIKey.MinLength = 24
	store := keystore.NewMemoryStore()
	h := host.New(cfg, host.WithKeyStore(store), host.WithPrompter(&fixedPrompter{}))

	p := newSearchProvider(t, "search", h.KeyOptions()...)
	defer runtime.KeepAlive(p)
	require.NoError(t, h.Register(p))

	err := h.SubmitKey("search", strings.Repeat("k", 16))
	var tooShort *apikey.TooShortError
	require.ErrorAs(t, err, &tooShort)
	assert.Equal(t, 24, tooShort.MinLen)

	require.NoError(t, h.SubmitKey("search", strings.Repeat("k", 24)))
	_, ok, _ := store.Get("search")
	assert.True(t, ok)

	assert.Error(t, h.SubmitKey("missing", strings.Repeat("k", 24)))
}

func TestHost_NonInteractiveFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.NonInteractive = true
	prompter := &fixedPrompter{answer: strings.Repeat("k", 16)}
	h := host.New(cfg, host.WithKeyStore(keystore.NewMemoryStore()), host.WithPrompter(prompter))

	p := providertest.New("openai")
	defer runtime.KeepAlive(p)
	require.NoError(t, h.Register(p))

	_, err := h.CollectKeys(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, prompter.asked)
}

func TestHost_InvalidPattern(t *testing.T) {
	cfg := config.Default()
	cfg.Providers.Include = []string{"[bad"}
	h := host.New(cfg, host.WithKeyStore(keystore.NewMemoryStore()))

	_, err := h.CollectKeys(context.Background())
	assert.Error(t, err)
}

func TestHost_LogOutput(t *testing.T) {
	before := slog.Default()

	var logs bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = "debug"
	h := host.New(cfg, host.WithKeyStore(keystore.NewMemoryStore()), host.WithLogOutput(&logs))

	assert.Same(t, before, slog.Default())
	assert.NotSame(t, before, h.Logger())

	p := providertest.New("logged")
	defer runtime.KeepAlive(p)
	require.NoError(t, h.Register(p))
	assert.Contains(t, logs.String(), "registered provider")
	assert.Contains(t, logs.String(), "provider=logged")
}

func TestHost_Defaults(t *testing.T) {
	var logs bytes.Buffer
	h := host.New(nil, host.WithKeyStore(keystore.NewMemoryStore()), host.WithLogOutput(&logs))

	assert.Equal(t, config.Default(), h.Config())
	assert.NotNil(t, h.Registry())
	assert.Len(t, h.KeyOptions(), 1)
}
