package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophdiary/internal/storage"
)

func TestStorage(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, storage.ErrKeyNotFound)

	value := []byte("v1")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x' // хранилище держит свою копию

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))

	require.NoError(t, s.DeleteKeys(ctx, "k", "other"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Set(ctx, "k", nil), storage.ErrStorageClosed)
}
