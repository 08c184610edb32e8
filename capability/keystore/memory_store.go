package keystore

import "sync"

// MemoryStore keeps API keys in process memory.
type MemoryStore struct {
	keys map[string]string
	mu   sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{keys: make(map[string]string)}
}

// Get returns the key stored for provider.
func (s *MemoryStore) Get(provider string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.keys[provider]
	return key, ok, nil
}

// Put stores key for provider.
func (s *MemoryStore) Put(provider, key string) error {
	if provider == "" {
		return ErrEmptyProvider
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[provider] = key
	return nil
}

// Delete removes the key stored for provider.
func (s *MemoryStore) Delete(provider string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, provider)
	return nil
}

// ConfigPath returns an empty string; nothing is persisted.
func (s *MemoryStore) ConfigPath() string {
	return ""
}
