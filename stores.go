package authstate

import (
	"strings"
	"sync"
)

// StaticTokenStore serves a fixed token. An empty token reads as absent.
type StaticTokenStore struct {
	Token string
}

// GetToken implements TokenStore.
func (s StaticTokenStore) GetToken() (string, bool) {
	token := strings.TrimSpace(s.Token)
	return token, token != ""
}

// MemoryTokenStore is a mutable in-process token store, mostly useful for
// tests and embedding callers that manage persistence themselves.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemoryTokenStore returns an empty store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// GetToken implements TokenStore.
func (s *MemoryTokenStore) GetToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set && s.token != ""
}

// SetToken stores token for subsequent reads.
func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
}

// ClearToken removes the stored token.
func (s *MemoryTokenStore) ClearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
}

var (
	_ TokenStore = StaticTokenStore{}
	_ TokenStore = (*MemoryTokenStore)(nil)
)
