package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	store, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	t.Run("missing key", func(t *testing.T) {
		value, ok, err := store.Get("missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.Set("entries", `[{"verb":"falar"}]`))
		value, ok, err := store.Get("entries")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"verb":"falar"}]`, value)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set("entries", "[]"))
		value, ok, err := store.Get("entries")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "[]", value)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Set("doomed", "1"))
		require.NoError(t, store.Remove("doomed"))
		_, ok, err := store.Get("doomed")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("remove missing key is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Remove("never-there"))
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("entries", "persisted"))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	value, ok, err := reopened.Get("entries")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", value)
}
