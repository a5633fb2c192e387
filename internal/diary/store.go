// Package diary holds the authoritative in-memory diary: the entry
// collection, the settings, and the search and sort inputs of the derived
// view. Every mutation updates memory first and then writes the whole
// collection (or settings object) back through a Persister.
package diary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophdiary/internal/crypto"
	"github.com/iudanet/gophdiary/internal/models"
)

//go:generate moq -out persister_mock.go . Persister

// Persister is the durable side of the store.
// Loads fail soft and never return errors.
type Persister interface {
	LoadEntries(ctx context.Context) []models.DiaryEntry
	LoadSettings(ctx context.Context) models.AppSettings
	SaveEntries(ctx context.Context, entries []models.DiaryEntry) error
	SaveSettings(ctx context.Context, settings models.AppSettings) error
	DeleteAll(ctx context.Context) error
	Close() error
}

// Store is the diary state manager. It is driven from a single caller and
// is not safe for concurrent use.
type Store struct {
	persister Persister
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
	location  *time.Location
	params    crypto.Params

	entries     []models.DiaryEntry
	settings    models.AppSettings
	searchQuery string
	sortMode    models.SortMode
	viewMode    models.ViewMode
	isLoading   bool
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock replaces time.Now, used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid based id generator
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLocation sets the time zone used to localize dates
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.location = loc }
}

// WithPasswordParams sets the Argon2id cost used for the lock password
func WithPasswordParams(p crypto.Params) Option {
	return func(s *Store) { s.params = p }
}

// New creates a store over p. Call Load before anything else.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
		location:  time.Local,
		params:    crypto.DefaultParams(),
		entries:   []models.DiaryEntry{},
		settings:  models.DefaultSettings(),
		sortMode:  models.SortByDate,
		viewMode:  models.ViewList,
		isLoading: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load pulls entries and settings from persistence. It never fails: broken
// or missing data yields an empty collection and default settings.
func (s *Store) Load(ctx context.Context) {
	s.entries = s.persister.LoadEntries(ctx)
	s.settings = s.persister.LoadSettings(ctx)
	// блокировка без пароля не снимается никогда
	if !s.settings.HasPassword() {
		s.settings.IsLocked = false
	}
	s.isLoading = false

	s.logger.DebugContext(ctx, "diary loaded", slog.Int("entries", len(s.entries)))
}

// Close tears the store down and releases the persistence substrate.
func (s *Store) Close() error {
	return s.persister.Close()
}

// IsLoading is true until Load has completed
func (s *Store) IsLoading() bool { return s.isLoading }

// Entries returns a copy of the collection in collection order
func (s *Store) Entries() []models.DiaryEntry { return models.CloneEntries(s.entries) }

// Settings returns the current settings
func (s *Store) Settings() models.AppSettings { return s.settings }

// SearchQuery returns the current search query
func (s *Store) SearchQuery() string { return s.searchQuery }

// SortMode returns the current sort mode
func (s *Store) SortMode() models.SortMode { return s.sortMode }

// ViewMode returns the current view mode
func (s *Store) ViewMode() models.ViewMode { return s.viewMode }

// SetSearchQuery sets the query used by FilteredEntries
func (s *Store) SetSearchQuery(q string) { s.searchQuery = q }

// SetSortMode sets the sort mode used by FilteredEntries
func (s *Store) SetSortMode(m models.SortMode) { s.sortMode = m }

// SetViewMode sets the view mode
func (s *Store) SetViewMode(m models.ViewMode) { s.viewMode = m }

// FilteredEntries recomputes the derived view from the current collection,
// search query and sort mode.
func (s *Store) FilteredEntries() []models.DiaryEntry {
	return Query(s.entries, s.searchQuery, s.sortMode)
}

// Location returns the time zone used to localize dates
func (s *Store) Location() *time.Location { return s.location }

// Get returns the entry with the given id
func (s *Store) Get(id string) (models.DiaryEntry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.DiaryEntry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.entries[i].Clone(), nil
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Add materializes draft with a fresh id and timestamps, puts it at the
// front of the collection and persists the collection.
//
// If the write fails the entry stays in memory and is returned together
// with an error wrapping persistence.ErrWriteFailed.
func (s *Store) Add(ctx context.Context, draft models.EntryDraft) (models.DiaryEntry, error) {
	if s.isLoading {
		return models.DiaryEntry{}, ErrNotLoaded
	}

	now := s.now().UnixMilli()
	entry := models.DiaryEntry{
		ID:        s.uniqueID(),
		Title:     draft.Title,
		Content:   draft.Content,
		Date:      draft.Date,
		Mood:      draft.Mood,
		Weather:   draft.Weather,
		Location:  draft.Location,
		Photos:    clonePhotos(draft.Photos),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.entries = append([]models.DiaryEntry{entry}, s.entries...)

	if err := s.saveEntries(ctx, "add", entry.ID); err != nil {
		return entry.Clone(), err
	}
	return entry.Clone(), nil
}

// uniqueID вызывает генератор, пока не получит неиспользованный id
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}

// Update replaces the stored entry with the same id, keeping its position,
// id and createdAt, and refreshing updatedAt. Unknown ids return
// ErrNotFound and nothing is inserted.
func (s *Store) Update(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	if s.isLoading {
		return models.DiaryEntry{}, ErrNotLoaded
	}

	i := s.indexOf(entry.ID)
	if i < 0 {
		return models.DiaryEntry{}, fmt.Errorf("%w: %s", ErrNotFound, entry.ID)
	}

	prev := s.entries[i]
	updated := entry.Clone()
	if updated.Photos == nil {
		updated.Photos = []string{}
	}
	updated.CreatedAt = prev.CreatedAt

	// updatedAt строго растет, даже если часы не сдвинулись
	updated.UpdatedAt = s.now().UnixMilli()
	if updated.UpdatedAt <= prev.UpdatedAt {
		updated.UpdatedAt = prev.UpdatedAt + 1
	}

	s.entries[i] = updated

	if err := s.saveEntries(ctx, "update", updated.ID); err != nil {
		return updated.Clone(), err
	}
	return updated.Clone(), nil
}

// Remove deletes the entry with the given id and persists the collection.
// Unknown ids return ErrNotFound without touching storage.
func (s *Store) Remove(ctx context.Context, id string) error {
	if s.isLoading {
		return ErrNotLoaded
	}

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)

	return s.saveEntries(ctx, "remove", id)
}

func (s *Store) saveEntries(ctx context.Context, op, id string) error {
	if err := s.persister.SaveEntries(ctx, s.entries); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist entries, keeping in-memory copy",
			slog.String("op", op), slog.String("id", id), slog.Any("error", err))
		return fmt.Errorf("failed to %s entry %s: %w", op, id, err)
	}
	return nil
}

// UpdateSettings merges patch over the current settings and persists the
// result. A non-empty Password is stored as an Argon2id hash and enables
// the lock; an empty one removes the password and the lock. IsLocked, when
// given, overrides that, but the lock is never on without a password.
//
// If the write fails the merged settings stay in memory and are returned
// together with an error wrapping persistence.ErrWriteFailed.
func (s *Store) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.AppSettings, error) {
	if s.isLoading {
		return s.settings, ErrNotLoaded
	}

	merged := s.settings

	if patch.Theme != nil {
		merged.Theme = *patch.Theme
	}
	if patch.ExportFormat != nil {
		merged.ExportFormat = *patch.ExportFormat
	}
	if patch.Language != nil {
		merged.Language = *patch.Language
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			merged.Password = ""
			merged.IsLocked = false
		} else {
			hash, err := crypto.HashPassword(*patch.Password, s.params)
			if err != nil {
				return s.settings, fmt.Errorf("failed to hash password: %w", err)
			}
			merged.Password = hash
			merged.IsLocked = true
		}
	}
	if patch.IsLocked != nil {
		merged.IsLocked = *patch.IsLocked
	}
	if !merged.HasPassword() {
		merged.IsLocked = false
	}

	s.settings = merged

	if err := s.persister.SaveSettings(ctx, merged); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist settings, keeping in-memory copy", slog.Any("error", err))
		return merged, fmt.Errorf("failed to update settings: %w", err)
	}
	return merged, nil
}

// VerifyPassword reports whether password unlocks the diary. It is false
// when no password is set.
func (s *Store) VerifyPassword(password string) bool {
	ok, err := crypto.VerifyPassword(password, s.settings.Password)
	if err != nil {
		s.logger.Warn("stored lock password is unreadable", slog.Any("error", err))
		return false
	}
	return ok
}

// ExportEntries renders the whole collection, in collection order, as plain
// text localized for the settings language. The pdf format produces the
// same text; turning it into a document is up to the caller.
func (s *Store) ExportEntries() string {
	return ExportText(s.entries, s.settings.Language, s.location)
}

// RefreshEntries re-reads the collection from persistence. Before the first
// Load it does nothing: settings are not read yet and must stay guarded.
func (s *Store) RefreshEntries(ctx context.Context) {
	if s.isLoading {
		return
	}
	s.entries = s.persister.LoadEntries(ctx)
}

// Reset deletes all stored entries and settings. Memory is cleared only when
// storage confirms the deletion.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.persister.DeleteAll(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete all data", slog.Any("error", err))
		return fmt.Errorf("failed to reset diary: %w", err)
	}

	s.entries = []models.DiaryEntry{}
	s.settings = models.DefaultSettings()
	s.searchQuery = ""
	s.sortMode = models.SortByDate
	s.viewMode = models.ViewList
	s.logger.InfoContext(ctx, "diary reset")
	return nil
}

func clonePhotos(photos []string) []string {
	out := make([]string, len(photos))
	copy(out, photos)
	return out
}
