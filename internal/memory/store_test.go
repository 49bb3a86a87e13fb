package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/backtrail/pkg/types"
)

func attachedStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	require.NoError(t, store.Attach(types.Config{Backend: types.BackendMemory}))
	t.Cleanup(func() { _ = store.Detach() })
	return store
}

func TestStoreAttachLifecycle(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.Attach(types.Config{Backend: types.BackendMemory}))
	assert.ErrorIs(t, store.Attach(types.Config{Backend: types.BackendMemory}), types.ErrAlreadyAttached)

	require.NoError(t, store.Detach())
	require.NoError(t, store.Detach(), "detach is idempotent")

	_, err := store.Get("s1", "k1")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.ErrorIs(t, store.Set("s1", "k1", []byte("v")), types.ErrStoreDetached)
	assert.ErrorIs(t, store.Delete("s1", "k1"), types.ErrStoreDetached)
	_, err = store.Sessions()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestStoreAttachValidatesConfig(t *testing.T) {
	store := NewStore()

	assert.ErrorIs(t, store.Attach(types.Config{}), types.ErrBackendEmpty)
	assert.ErrorIs(t, store.Attach(types.Config{Backend: "redis"}), types.ErrBackendUnknown)
}

func TestStoreSetGetRoundTrip(t *testing.T) {
	store := attachedStore(t)

	require.NoError(t, store.Set("s1", "k1", []byte(`["/a"]`)))

	got, err := store.Get("s1", "k1")
	require.NoError(t, err)
	assert.Equal(t, `["/a"]`, string(got))

	// Overwrite replaces the value.
	require.NoError(t, store.Set("s1", "k1", []byte(`["/a","/b"]`)))
	got, err = store.Get("s1", "k1")
	require.NoError(t, err)
	assert.Equal(t, `["/a","/b"]`, string(got))
}

func TestStoreGetMissingKey(t *testing.T) {
	store := attachedStore(t)

	_, err := store.Get("s1", "missing")
	assert.ErrorIs(t, err, types.ErrKeyNotFound)
}

func TestStoreValuesAreIsolated(t *testing.T) {
	store := attachedStore(t)

	value := []byte("original")
	require.NoError(t, store.Set("s1", "k1", value))
	value[0] = 'X'

	got, err := store.Get("s1", "k1")
	require.NoError(t, err)
	assert.Equal(t, "original", string(got), "stored value must not alias the caller's slice")

	got[0] = 'Y'
	again, err := store.Get("s1", "k1")
	require.NoError(t, err)
	assert.Equal(t, "original", string(again), "returned value must not alias stored state")
}

func TestStoreDelete(t *testing.T) {
	store := attachedStore(t)

	require.NoError(t, store.Set("s1", "k1", []byte("v")))
	require.NoError(t, store.Delete("s1", "k1"))

	_, err := store.Get("s1", "k1")
	assert.ErrorIs(t, err, types.ErrKeyNotFound)

	// Deleting an absent key succeeds.
	require.NoError(t, store.Delete("s1", "k1"))
	require.NoError(t, store.Delete("other", "k1"))
}

func TestStoreValidatesSessionAndKey(t *testing.T) {
	store := attachedStore(t)

	_, err := store.Get("", "k1")
	assert.ErrorIs(t, err, types.ErrInvalidSession)
	assert.ErrorIs(t, store.Set("s1", "", []byte("v")), types.ErrInvalidKey)
	assert.ErrorIs(t, store.Delete("", ""), types.ErrInvalidSession)
}

func TestStoreSessions(t *testing.T) {
	store := attachedStore(t)

	sessions, err := store.Sessions()
	require.NoError(t, err)
	assert.Empty(t, sessions)

	require.NoError(t, store.Set("s-b", "k1", []byte("v")))
	require.NoError(t, store.Set("s-a", "k1", []byte("v")))
	require.NoError(t, store.Set("s-a", "k2", []byte("v")))

	sessions, err = store.Sessions()
	require.NoError(t, err)
	assert.Equal(t, []string{"s-a", "s-b"}, sessions)

	// Removing a session's last key removes the session.
	require.NoError(t, store.Delete("s-b", "k1"))
	sessions, err = store.Sessions()
	require.NoError(t, err)
	assert.Equal(t, []string{"s-a"}, sessions)
}
