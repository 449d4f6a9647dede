package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"vx/internal/hashing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	store, err := NewStore(filepath.Join(t.TempDir(), "commits"))
	require.NoError(t, err)
	return store
}

func TestStore(t *testing.T) {
	t.Run("WriteCreatesVerbatimCopies", func(t *testing.T) {
		store := setupTestStore(t)

		err := store.Write("abc123", []hashing.File{
			{Name: "a.txt", Content: []byte("hello")},
			{Name: "b.txt", Content: []byte("world")},
		})
		require.NoError(t, err)

		assert.True(t, store.Exists("abc123"))

		got, err := os.ReadFile(filepath.Join(store.Dir("abc123"), "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), got)

		got, err = os.ReadFile(filepath.Join(store.Dir("abc123"), "b.txt"))
		require.NoError(t, err)
		assert.Equal(t, []byte("world"), got)
	})

	t.Run("WriteSkipsExistingDirectory", func(t *testing.T) {
		store := setupTestStore(t)

		require.NoError(t, store.Write("abc123", []hashing.File{
			{Name: "a.txt", Content: []byte("hello")},
		}))

		// A second write for the same identifier must not touch the
		// stored bytes.
		require.NoError(t, store.Write("abc123", []hashing.File{
			{Name: "a.txt", Content: []byte("clobbered")},
		}))

		got, err := os.ReadFile(filepath.Join(store.Dir("abc123"), "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), got)
	})

	t.Run("ExistsIsFalseForUnknownOrEmpty", func(t *testing.T) {
		store := setupTestStore(t)

		assert.False(t, store.Exists("doesnotexist"))
		assert.False(t, store.Exists(""))
	})

	t.Run("NestedTrackedNameStoresBaseName", func(t *testing.T) {
		store := setupTestStore(t)

		require.NoError(t, store.Write("def456", []hashing.File{
			{Name: filepath.Join("sub", "a.txt"), Content: []byte("nested")},
		}))

		got, err := os.ReadFile(filepath.Join(store.Dir("def456"), "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, []byte("nested"), got)
	})
}
