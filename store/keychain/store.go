// Package keychain implements the token store collaborator on top of the OS
// keychain/credential manager.
package keychain

import (
	stderrors "errors"
	"strings"

	"github.com/99designs/keyring"
	authstate "github.com/goliatone/go-authstate"
)

const (
	// DefaultService is the keychain namespace used when none is configured.
	DefaultService = "go-authstate"

	// DefaultKey is the entry holding the credential token.
	DefaultKey = "auth_access_token"
)

// Config holds the keychain store configuration.
type Config struct {
	// Service is the keychain/credential store namespace.
	Service string

	// Key is the entry name holding the token.
	Key string

	// AllowedBackends restricts the keyring backends considered when
	// opening the OS ring.
	AllowedBackends []keyring.BackendType

	// Ring overrides opening the OS keyring, mainly for tests.
	Ring keyring.Keyring
}

// Store reads and writes the credential token in the OS keychain.
type Store struct {
	ring keyring.Keyring
	key  string
}

// New opens the keychain-backed token store.
func New(cfg Config) (*Store, error) {
	if cfg.Service == "" {
		cfg.Service = DefaultService
	}
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}

	ring := cfg.Ring
	if ring == nil {
		var err error
		ring, err = keyring.Open(keyring.Config{
			ServiceName:     cfg.Service,
			AllowedBackends: cfg.AllowedBackends,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Store{
		ring: ring,
		key:  cfg.Key,
	}, nil
}

// GetToken implements authstate.TokenStore. Missing entries and backend
// failures both read as absent; resolution treats an unreadable credential
// the same as no credential.
func (s *Store) GetToken() (string, bool) {
	item, err := s.ring.Get(s.key)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(item.Data))
	return token, token != ""
}

// SetToken persists the credential token.
func (s *Store) SetToken(token string) error {
	return s.ring.Set(keyring.Item{
		Key:   s.key,
		Data:  []byte(token),
		Label: s.key,
	})
}

// ClearToken removes the credential token. Clearing an absent token is not
// an error.
func (s *Store) ClearToken() error {
	err := s.ring.Remove(s.key)
	if stderrors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return err
}

var _ authstate.TokenStore = (*Store)(nil)
