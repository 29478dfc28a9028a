package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/royalbee/storefront/internal/storage"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetDelete(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "kv.db"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart", []byte(`[{"quantity":2}]`)))

	got, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"quantity":2}]`), got)

	require.NoError(t, store.Delete(ctx, "cart"))

	_, err = store.Get(ctx, "cart")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestGet_MissingKey(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "kv.db"))

	_, err := store.Get(context.Background(), "never-written")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestSet_OverwritesExistingValue(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "kv.db"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token", []byte(`"old"`)))
	require.NoError(t, store.Set(ctx, "token", []byte(`"new"`)))

	got, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"new"`), got)
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	first, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "user", []byte(`{"id":"7"}`)))
	require.NoError(t, first.Close())

	second := openTestStore(t, path)
	got, err := second.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"7"}`), got)
}
