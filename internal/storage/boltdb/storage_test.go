package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gophdiary/internal/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "diary.db")

	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "diary.db")

	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, s)
	defer func() {
		require.NoError(t, s.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакет существует
	err = s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketDiary) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Путь с нулевым символом невалиден
	s, err := New(context.Background(), string([]byte{0}))
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.Set(ctx, "diary_entries", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "diary_entries", []byte(`[{"id":"1"}]`)))

	value, err := s.Get(ctx, "diary_entries")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(value))
}

func TestGet_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	value, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	assert.Nil(t, value)
}

func TestDeleteKeys(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))
	require.NoError(t, s.Set(ctx, "c", []byte("3")))

	require.NoError(t, s.DeleteKeys(ctx, "a", "b", "never-existed"))

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	_, err = s.Get(ctx, "b")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	value, err := s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "3", string(value))

	// Удаление отсутствующего ключа не ошибка
	assert.NoError(t, s.Delete(ctx, "a"))
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "diary.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "app_settings", []byte(`{"theme":"dark"}`)))
	require.NoError(t, s.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, err := reopened.Get(ctx, "app_settings")
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, string(value))
}

func TestClosedStorage(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	require.NoError(t, s.Close())

	// Повторное закрытие безопасно
	assert.NoError(t, s.Close())

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v")), storage.ErrStorageClosed)
	assert.ErrorIs(t, s.Delete(ctx, "k"), storage.ErrStorageClosed)
}

func TestCanceledContext(t *testing.T) {
	s := setupTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v")), context.Canceled)
}

var _ storage.Storage = (*Storage)(nil)
var _ storage.BatchDeleter = (*Storage)(nil)
