package filestore_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophdiary/internal/storage"
	"github.com/iudanet/gophdiary/internal/storage/filestore"
)

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()

	s, err := filestore.New(base)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "diary_entries", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "diary_entries", []byte(`[{"id":"1"}]`)))

	value, err := s.Get(ctx, "diary_entries")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(value))

	// Temp файлы не остаются после переименования
	tmps, err := filepath.Glob(filepath.Join(base, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, tmps)
}

func TestSet_ConcurrentWritersSameKey(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()

	// Два независимых экземпляра над одним каталогом, как два процесса
	first, err := filestore.New(base)
	require.NoError(t, err)
	second, err := filestore.New(base)
	require.NoError(t, err)

	values := map[string]bool{`["first"]`: true, `["second"]`: true}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, first.Set(ctx, "diary_entries", []byte(`["first"]`)))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, second.Set(ctx, "diary_entries", []byte(`["second"]`)))
		}()
	}
	wg.Wait()

	value, err := first.Get(ctx, "diary_entries")
	require.NoError(t, err)
	assert.True(t, values[string(value)], "got torn value %q", value)

	tmps, err := filepath.Glob(filepath.Join(base, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, tmps)
}

func TestGetMissing(t *testing.T) {
	s, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "app_settings")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"), "deleting twice is fine")

	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestInvalidKey(t *testing.T) {
	s, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	err = s.Set(context.Background(), "../escape", []byte("x"))
	assert.Error(t, err)
}

func TestClosed(t *testing.T) {
	s, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
