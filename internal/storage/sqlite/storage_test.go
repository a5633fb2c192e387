package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophdiary/internal/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), filepath.Join(t.TempDir(), "diary.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNew_RunsMigrations(t *testing.T) {
	s := setupTestStorage(t)

	var name string
	err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv", name)
}

func TestNew_InMemory(t *testing.T) {
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "k", []byte("v")))

	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(value))
}

func TestSetGet_Upsert(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.Set(ctx, "diary_entries", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "diary_entries", []byte(`[{"id":"2"}]`)))

	value, err := s.Get(ctx, "diary_entries")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"2"}]`, string(value))

	var count int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestGet_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestDeleteKeys(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.Set(ctx, "diary_entries", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "app_settings", []byte(`{}`)))
	require.NoError(t, s.Set(ctx, "other", []byte(`x`)))

	require.NoError(t, s.DeleteKeys(ctx, "diary_entries", "app_settings"))

	_, err := s.Get(ctx, "diary_entries")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	_, err = s.Get(ctx, "app_settings")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	_, err = s.Get(ctx, "other")
	assert.NoError(t, err)
}

func TestClosedStorage(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, s.Set(ctx, "k", nil), storage.ErrStorageClosed)
	assert.ErrorIs(t, s.DeleteKeys(ctx, "k"), storage.ErrStorageClosed)
}

var _ storage.Storage = (*Storage)(nil)
var _ storage.BatchDeleter = (*Storage)(nil)
