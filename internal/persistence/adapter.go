// Package persistence maps the diary collection and settings onto a
// key-value substrate. Reads fail soft: a missing or corrupt value is
// reported as "no data" and logged, never returned as an error.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/gophdiary/internal/models"
	"github.com/iudanet/gophdiary/internal/storage"
)

// Storage keys. They match the keys the mobile client has always used.
const (
	KeyEntries  = "diary_entries"
	KeySettings = "app_settings"
)

// Adapter reads and writes the whole entry collection and the settings
// object, one key each.
type Adapter struct {
	store   storage.Storage
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures an Adapter
type Option func(*Adapter)

// WithLogger sets the logger used for fail-soft read faults
func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// WithTimeout bounds every storage call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) { a.timeout = d }
}

// New creates an adapter over store
func New(store storage.Storage, opts ...Option) *Adapter {
	a := &Adapter{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.timeout)
}

// LoadEntries returns the stored collection in stored order.
// On a missing key or any read/decode failure it returns an empty slice.
func (a *Adapter) LoadEntries(ctx context.Context) []models.DiaryEntry {
	data, ok := a.read(ctx, KeyEntries)
	if !ok {
		return []models.DiaryEntry{}
	}

	var entries []models.DiaryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		a.logger.WarnContext(ctx, "stored entries are corrupt, starting empty",
			slog.String("key", KeyEntries), slog.Any("error", err))
		return []models.DiaryEntry{}
	}
	if entries == nil {
		// JSON null
		entries = []models.DiaryEntry{}
	}

	return entries
}

// LoadSettings returns the stored settings overlaid on the defaults, so a
// record missing fields still yields a complete value. On a missing key or
// any read/decode failure it returns models.DefaultSettings().
func (a *Adapter) LoadSettings(ctx context.Context) models.AppSettings {
	settings := models.DefaultSettings()

	data, ok := a.read(ctx, KeySettings)
	if !ok {
		return settings
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		a.logger.WarnContext(ctx, "stored settings are corrupt, using defaults",
			slog.String("key", KeySettings), slog.Any("error", err))
		return models.DefaultSettings()
	}

	// Веб-версия могла сохранить isLocked без пароля
	if !settings.HasPassword() {
		settings.IsLocked = false
	}

	return settings
}

// read возвращает значение ключа, подавляя и логируя ошибки чтения
func (a *Adapter) read(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	data, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			a.logger.WarnContext(ctx, "failed to read from storage, using defaults",
				slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}
	return data, true
}

// SaveEntries overwrites the whole stored collection.
func (a *Adapter) SaveEntries(ctx context.Context, entries []models.DiaryEntry) error {
	if entries == nil {
		entries = []models.DiaryEntry{}
	}
	return a.write(ctx, KeyEntries, entries)
}

// SaveSettings overwrites the stored settings object.
func (a *Adapter) SaveSettings(ctx context.Context, settings models.AppSettings) error {
	return a.write(ctx, KeySettings, settings)
}

func (a *Adapter) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal %s: %v", ErrWriteFailed, key, err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: failed to save %s: %w", ErrWriteFailed, key, err)
	}
	return nil
}

// DeleteAll removes both the collection and the settings. Substrates that
// implement storage.BatchDeleter remove them in one operation; otherwise
// the keys are removed one by one and the first failure is returned.
func (a *Adapter) DeleteAll(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if bd, ok := a.store.(storage.BatchDeleter); ok {
		if err := bd.DeleteKeys(ctx, KeyEntries, KeySettings); err != nil {
			return fmt.Errorf("%w: failed to delete all data: %w", ErrWriteFailed, err)
		}
		return nil
	}

	// Best-effort: пытаемся удалить оба ключа даже если первый не удалился
	var errs []error
	for _, key := range []string{KeyEntries, KeySettings} {
		if err := a.store.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrWriteFailed, errors.Join(errs...))
	}
	return nil
}

// Close closes the underlying substrate
func (a *Adapter) Close() error {
	return a.store.Close()
}
