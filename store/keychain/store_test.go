package keychain

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, items ...keyring.Item) *Store {
	t.Helper()

	store, err := New(Config{
		Ring: keyring.NewArrayKeyring(items),
	})
	require.NoError(t, err)
	return store
}

func TestGetTokenAbsent(t *testing.T) {
	store := newTestStore(t)

	token, ok := store.GetToken()
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestGetTokenPresent(t *testing.T) {
	store := newTestStore(t, keyring.Item{
		Key:  DefaultKey,
		Data: []byte("abc123"),
	})

	token, ok := store.GetToken()
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)
}

func TestGetTokenBlankReadsAsAbsent(t *testing.T) {
	store := newTestStore(t, keyring.Item{
		Key:  DefaultKey,
		Data: []byte("   "),
	})

	_, ok := store.GetToken()
	assert.False(t, ok)
}

func TestSetAndClearToken(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetToken("abc123"))

	token, ok := store.GetToken()
	require.True(t, ok)
	assert.Equal(t, "abc123", token)

	require.NoError(t, store.ClearToken())

	_, ok = store.GetToken()
	assert.False(t, ok)
}

func TestClearTokenWhenAbsent(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.ClearToken())
}

func TestCustomKey(t *testing.T) {
	store, err := New(Config{
		Key:  "session_token",
		Ring: keyring.NewArrayKeyring([]keyring.Item{{Key: "session_token", Data: []byte("xyz")}}),
	})
	require.NoError(t, err)

	token, ok := store.GetToken()
	assert.True(t, ok)
	assert.Equal(t, "xyz", token)
}
