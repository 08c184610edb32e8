// Package keystore provides persistence for API keys accepted through the
// requires_api_key capability.
package keystore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"gopkg.in/yaml.v3"
)

// Ensure implementations satisfy the interface.
var (
	_ capability.KeyStore = (*FileStore)(nil)
	_ capability.KeyStore = (*MemoryStore)(nil)
)

// ErrEmptyProvider is returned when a key is stored without a provider name.
var ErrEmptyProvider = errors.New("provider name is required")

// fileStoreConfig holds configuration for the FileStore.
type fileStoreConfig struct {
	path     string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

func defaultFileStoreConfig() fileStoreConfig {
	return fileStoreConfig{
		path:     filepath.Join(os.Getenv("HOME"), ".reglet", "keys.yaml"),
		dirPerm:  0o700,
		filePerm: 0o600,
	}
}

// FileStoreOption configures a FileStore instance.
type FileStoreOption func(*fileStoreConfig)

// WithPath sets the path to the keys file.
func WithPath(path string) FileStoreOption {
	return func(c *fileStoreConfig) {
		if path != "" {
			c.path = path
		}
	}
}

// WithFilePermissions sets the file permissions for the keys file.
func WithFilePermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		if perm != 0 {
			c.filePerm = perm
		}
	}
}

// WithDirPermissions sets the directory permissions for the keys directory.
func WithDirPermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		if perm != 0 {
			c.dirPerm = perm
		}
	}
}

// keyFile is the on-disk layout.
type keyFile struct {
	Keys map[string]string `yaml:"keys"`
}

// FileStore keeps API keys in a YAML file, one entry per provider name.
type FileStore struct {
	config fileStoreConfig
	mu     sync.Mutex
}

// NewFileStore creates a new FileStore with the given options.
func NewFileStore(opts ...FileStoreOption) *FileStore {
	cfg := defaultFileStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileStore{config: cfg}
}

// Get returns the key stored for provider.
func (s *FileStore) Get(provider string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return "", false, err
	}
	key, ok := keys[provider]
	return key, ok, nil
}

// Put stores key for provider, replacing any previous value.
func (s *FileStore) Put(provider, key string) error {
	if provider == "" {
		return ErrEmptyProvider
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return err
	}
	keys[provider] = key
	return s.save(keys)
}

// Delete removes the key stored for provider. Deleting a missing key is not an
// error.
func (s *FileStore) Delete(provider string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := keys[provider]; !ok {
		return nil
	}
	delete(keys, provider)
	return s.save(keys)
}

// Providers returns the names of providers with a stored key, sorted.
func (s *FileStore) Providers() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ConfigPath returns the path to the backing store.
func (s *FileStore) ConfigPath() string {
	return s.config.path
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.config.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key store: %w", err)
	}

	var f keyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse key store: %w", err)
	}
	if f.Keys == nil {
		f.Keys = map[string]string{}
	}
	return f.Keys, nil
}

func (s *FileStore) save(keys map[string]string) error {
	data, err := yaml.Marshal(keyFile{Keys: keys})
	if err != nil {
		return fmt.Errorf("failed to marshal keys: %w", err)
	}

	dir := filepath.Dir(s.config.path)
	if err := os.MkdirAll(dir, s.config.dirPerm); err != nil {
		return fmt.Errorf("failed to create key store directory: %w", err)
	}

	if err := os.WriteFile(s.config.path, data, s.config.filePerm); err != nil {
		return fmt.Errorf("failed to write key store: %w", err)
	}
	return nil
}
