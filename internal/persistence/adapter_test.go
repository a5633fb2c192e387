package persistence

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophdiary/internal/models"
	"github.com/iudanet/gophdiary/internal/storage"
	"github.com/iudanet/gophdiary/internal/storage/filestore"
	"github.com/iudanet/gophdiary/internal/storage/memory"
)

func sampleEntries() []models.DiaryEntry {
	return []models.DiaryEntry{
		{
			ID:        "b",
			Title:     "Second",
			Content:   "",
			Date:      "2024-02-01T09:30:00Z",
			Photos:    []string{"file:///tmp/1.jpg", "data:image/png;base64,AAAA"},
			CreatedAt: 1706779800000,
			UpdatedAt: 1706779900000,
			Mood:      models.MoodExcited,
			Weather:   "sunny",
			Location:  "Seoul",
		},
		{
			ID:        "a",
			Title:     "First",
			Content:   "hello",
			Date:      "2024-01-01T00:00:00Z",
			Photos:    []string{},
			CreatedAt: 1704067200000,
			UpdatedAt: 1704067200000,
		},
	}
}

func TestRoundTrip_Entries(t *testing.T) {
	ctx := context.Background()
	a := New(memory.New())

	want := sampleEntries()
	require.NoError(t, a.SaveEntries(ctx, want))

	got := a.LoadEntries(ctx)
	assert.Equal(t, want, got, "order and field values must survive a round trip")
}

func TestRoundTrip_Settings(t *testing.T) {
	ctx := context.Background()
	a := New(memory.New())

	want := models.AppSettings{
		Theme:        models.ThemeDark,
		Password:     "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		IsLocked:     true,
		ExportFormat: models.ExportFormatPDF,
		Language:     "en",
	}
	require.NoError(t, a.SaveSettings(ctx, want))
	assert.Equal(t, want, a.LoadSettings(ctx))
}

func TestLoad_MissingKeys(t *testing.T) {
	ctx := context.Background()
	a := New(memory.New())

	entries := a.LoadEntries(ctx)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	assert.Equal(t, models.DefaultSettings(), a.LoadSettings(ctx))
}

func TestLoad_CorruptDataFailsSoft(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, KeyEntries, []byte(`{not json`)))
	require.NoError(t, store.Set(ctx, KeySettings, []byte(`[1,2,3]`)))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	a := New(store, WithLogger(logger))

	assert.Empty(t, a.LoadEntries(ctx))
	assert.Equal(t, models.DefaultSettings(), a.LoadSettings(ctx))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "key="+KeyEntries)
	assert.Contains(t, out, "key="+KeySettings)
}

func TestLoad_NullEntries(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, KeyEntries, []byte(`null`)))

	entries := New(store).LoadEntries(ctx)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestLoadSettings_PartialRecordOverlaysDefaults(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	// Так хранила настройки веб-версия: password: null, без части полей
	require.NoError(t, store.Set(ctx, KeySettings, []byte(`{"theme":"light","password":null}`)))

	got := New(store).LoadSettings(ctx)
	assert.Equal(t, models.ThemeLight, got.Theme)
	assert.Empty(t, got.Password)
	assert.Equal(t, models.ExportFormatText, got.ExportFormat)
	assert.Equal(t, models.DefaultLanguage, got.Language)
}

func TestLoadSettings_LockWithoutPasswordIsCleared(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		record string
	}{
		{name: "null password", record: `{"theme":"dark","password":null,"isLocked":true,"exportFormat":"txt","language":"ko"}`},
		{name: "empty password", record: `{"theme":"dark","password":"","isLocked":true}`},
		{name: "missing password", record: `{"isLocked":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			require.NoError(t, store.Set(ctx, KeySettings, []byte(tt.record)))

			got := New(store).LoadSettings(ctx)
			assert.False(t, got.IsLocked)
			assert.False(t, got.HasPassword())
		})
	}
}

func TestLoad_ReadErrorFailsSoft(t *testing.T) {
	mock := &storage.StorageMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("disk on fire")
		},
	}
	a := New(mock)

	assert.Empty(t, a.LoadEntries(context.Background()))
	assert.Equal(t, models.DefaultSettings(), a.LoadSettings(context.Background()))
	assert.Len(t, mock.GetCalls(), 2)
}

func TestSave_WriteError(t *testing.T) {
	mock := &storage.StorageMock{
		SetFunc: func(ctx context.Context, key string, value []byte) error {
			return errors.New("read-only file system")
		},
	}
	a := New(mock)

	err := a.SaveEntries(context.Background(), sampleEntries())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.Contains(t, err.Error(), "read-only file system")

	err = a.SaveSettings(context.Background(), models.DefaultSettings())
	assert.ErrorIs(t, err, ErrWriteFailed)
}

func TestSaveEntries_NilWritesEmptyArray(t *testing.T) {
	var written []byte
	mock := &storage.StorageMock{
		SetFunc: func(ctx context.Context, key string, value []byte) error {
			written = value
			return nil
		},
	}

	require.NoError(t, New(mock).SaveEntries(context.Background(), nil))
	assert.Equal(t, "[]", string(written))
}

func TestWithTimeout(t *testing.T) {
	mock := &storage.StorageMock{
		SetFunc: func(ctx context.Context, key string, value []byte) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		},
	}

	a := New(mock, WithTimeout(time.Second))
	require.NoError(t, a.SaveSettings(context.Background(), models.DefaultSettings()))
}

func TestDeleteAll_Batch(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	a := New(store)

	require.NoError(t, a.SaveEntries(ctx, sampleEntries()))
	require.NoError(t, a.SaveSettings(ctx, models.AppSettings{Theme: models.ThemeDark}))

	require.NoError(t, a.DeleteAll(ctx))

	assert.Empty(t, a.LoadEntries(ctx))
	assert.Equal(t, models.DefaultSettings(), a.LoadSettings(ctx))
}

func TestDeleteAll_Sequential(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	a := New(store)

	require.NoError(t, a.SaveEntries(ctx, sampleEntries()))
	require.NoError(t, a.SaveSettings(ctx, models.AppSettings{Theme: models.ThemeDark}))

	require.NoError(t, a.DeleteAll(ctx))

	_, err = store.Get(ctx, KeyEntries)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	_, err = store.Get(ctx, KeySettings)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestDeleteAll_SequentialErrorsKeepGoing(t *testing.T) {
	mock := &storage.StorageMock{
		DeleteFunc: func(ctx context.Context, key string) error {
			if key == KeyEntries {
				return errors.New("locked")
			}
			return nil
		},
	}

	err := New(mock).DeleteAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)
	// Второй ключ все равно удаляется
	assert.Len(t, mock.DeleteCalls(), 2)
}

func TestClose(t *testing.T) {
	mock := &storage.StorageMock{
		CloseFunc: func() error { return nil },
	}
	require.NoError(t, New(mock).Close())
	assert.Len(t, mock.CloseCalls(), 1)
}
