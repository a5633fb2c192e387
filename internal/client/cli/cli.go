package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophdiary/internal/client/iocli"
	"github.com/iudanet/gophdiary/internal/config"
	"github.com/iudanet/gophdiary/internal/diary"
	"github.com/iudanet/gophdiary/internal/logging"
	"github.com/iudanet/gophdiary/internal/persistence"
	"github.com/iudanet/gophdiary/internal/storage"
	"github.com/iudanet/gophdiary/internal/storage/boltdb"
	"github.com/iudanet/gophdiary/internal/storage/filestore"
	"github.com/iudanet/gophdiary/internal/storage/memory"
	"github.com/iudanet/gophdiary/internal/storage/sqlite"
)

var (
	// ErrWrongPassword indicates that the lock password did not match
	ErrWrongPassword = errors.New("wrong password")
	// ErrAborted indicates that the user declined a confirmation
	ErrAborted = errors.New("aborted")
)

// annotation команд, которым не нужно открытое хранилище
const skipStore = "skip-store"

// Opener открывает хранилище дневника по конфигурации
type Opener func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*diary.Store, error)

// BuildInfo информация о сборке, выводится командой version
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Passwords источники пароля блокировки
type Passwords struct {
	FromEnv  string
	FromFile string
}

type Cli struct {
	io        iocli.IO
	cfg       *config.Config
	logger    *slog.Logger
	open      Opener
	now       func() time.Time
	build     BuildInfo
	store     *diary.Store
	passwords Passwords
}

// Option configures a Cli
type Option func(*Cli)

// WithLogger fixes the logger instead of building one from the log flags
func WithLogger(l *slog.Logger) Option {
	return func(c *Cli) { c.logger = l }
}

// WithOpener replaces OpenStore
func WithOpener(open Opener) Option {
	return func(c *Cli) { c.open = open }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Cli) { c.now = now }
}

// WithBuildInfo sets what the version command prints
func WithBuildInfo(info BuildInfo) Option {
	return func(c *Cli) { c.build = info }
}

func New(cfg *config.Config, io iocli.IO, opts ...Option) *Cli {
	c := &Cli{
		io:    io,
		cfg:   cfg,
		open:  OpenStore,
		now:   time.Now,
		build: BuildInfo{Version: "dev", BuildDate: "unknown", GitCommit: "unknown"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Command builds the cobra command tree. Persistent flags are bound to the
// configuration, so a flag given on the command line overrides the
// environment.
func (c *Cli) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "diary",
		Short: "Personal diary on the command line",
		Long: `diary keeps dated journal entries with optional photos, mood and weather
in a local database. Entries can be searched, grouped by day and exported
as plain text. The diary can be locked with a password.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.preRun,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.closeStore()
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfg.Backend, "backend", c.cfg.Backend, "storage backend: bolt, sqlite, file, memory")
	flags.StringVar(&c.cfg.DBPath, "db", c.cfg.DBPath, "path to the database (directory for the file backend)")
	flags.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&c.cfg.LogFormat, "log-format", c.cfg.LogFormat, "log format: text or json")
	flags.DurationVar(&c.cfg.Timeout, "timeout", c.cfg.Timeout, "timeout for every storage call")
	flags.StringVar(&c.passwords.FromFile, "password-file", "", "file containing the lock password")

	root.AddCommand(
		c.addCommand(),
		c.editCommand(),
		c.showCommand(),
		c.deleteCommand(),
		c.listCommand(),
		c.calendarCommand(),
		c.dayCommand(),
		c.exportCommand(),
		c.settingsCommand(),
		c.lockCommand(),
		c.unlockCommand(),
		c.resetCommand(),
		c.versionCommand(),
	)

	return root
}

func (c *Cli) preRun(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipStore] != "" || cmd.Name() == "help" {
		return nil
	}

	if cmd.Flags().Changed("backend") && !cmd.Flags().Changed("db") && os.Getenv(config.EnvPrefix+"_DB_PATH") == "" {
		path, err := config.DefaultDBPath(c.cfg.Backend)
		if err != nil {
			return err
		}
		c.cfg.DBPath = path
	}

	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.logger == nil {
		logger, err := logging.New(c.cfg.LogLevel, c.cfg.LogFormat, os.Stderr)
		if err != nil {
			return err
		}
		c.logger = logger
	}

	// команда могла оставить хранилище открытым после ошибки
	if err := c.closeStore(); err != nil {
		return err
	}

	ctx := cmd.Context()
	c.logger.DebugContext(ctx, "opening diary", slog.String("config", c.cfg.String()))

	store, err := c.open(ctx, c.cfg, c.logger)
	if err != nil {
		return fmt.Errorf("failed to open diary: %w", err)
	}
	store.Load(ctx)
	c.store = store

	c.passwords.FromEnv = c.cfg.Password
	return c.unlockSession()
}

// unlockSession требует пароль, если дневник заблокирован
func (c *Cli) unlockSession() error {
	if !c.store.Settings().IsLocked {
		return nil
	}

	password, err := c.getPassword(c.passwords)
	if err != nil {
		return fmt.Errorf("diary is locked: %w", err)
	}
	if !c.store.VerifyPassword(password) {
		return ErrWrongPassword
	}
	return nil
}

// Close releases the store if a command left it open
func (c *Cli) Close() error {
	return c.closeStore()
}

func (c *Cli) closeStore() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	if err != nil {
		return fmt.Errorf("failed to close diary: %w", err)
	}
	return nil
}

// getPassword retrieves the lock password with priority:
// 1. DIARY_PASSWORD environment variable
// 2. File given by --password-file
// 3. Interactive prompt (fallback)
func (c *Cli) getPassword(passwords Passwords) (string, error) {
	// Priority 1: Environment variable
	if passwords.FromEnv != "" {
		return passwords.FromEnv, nil
	}

	// Priority 2: File
	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: Interactive prompt (fallback)
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

// confirm спрашивает подтверждение, если не передан --yes
func (c *Cli) confirm(yes bool, prompt string) error {
	if yes {
		return nil
	}
	answer, err := c.io.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return nil
	}
	return ErrAborted
}

// OpenStorage opens the key-value substrate selected by cfg.Backend.
func OpenStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Backend {
	case config.BackendBolt:
		return boltdb.New(ctx, cfg.DBPath)
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		return sqlite.New(ctx, cfg.DBPath)
	case config.BackendFile:
		return filestore.New(cfg.DBPath)
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}

// OpenStore opens the configured substrate and wraps it into a diary store.
// The store is not loaded yet.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*diary.Store, error) {
	st, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	adapter := persistence.New(st,
		persistence.WithLogger(logger),
		persistence.WithTimeout(cfg.Timeout),
	)
	return diary.New(adapter, diary.WithLogger(logger)), nil
}

// warnIfUnsaved печатает предупреждение, если изменение осталось только в памяти
func (c *Cli) warnIfUnsaved(err error) {
	if errors.Is(err, persistence.ErrWriteFailed) {
		c.io.Println("Warning: the change could not be saved to disk.")
	}
}
