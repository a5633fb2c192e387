// Package config собирает настройки запуска: значения по умолчанию,
// переменные окружения DIARY_* и флаги командной строки (в таком порядке).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "DIARY"

// Поддерживаемые хранилища
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds the runtime configuration of the diary binary.
type Config struct {
	Backend   string        `envconfig:"BACKEND" default:"bolt"`
	DBPath    string        `envconfig:"DB_PATH"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string        `envconfig:"LOG_FORMAT" default:"text"`
	Password  string        `envconfig:"PASSWORD"` // Password пароль блокировки для неинтерактивного запуска
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"5s"`
}

// Load reads the configuration from the environment and fills in the
// default database path. Flags are applied by the caller afterwards,
// followed by Validate.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.DBPath == "" {
		path, err := DefaultDBPath(cfg.Backend)
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}

	return &cfg, nil
}

// DefaultDBPath returns the default location under ~/.gophdiary for backend.
// The file backend uses a directory instead of a database file.
func DefaultDBPath(backend string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	base := filepath.Join(home, ".gophdiary")
	switch backend {
	case BackendSQLite:
		return filepath.Join(base, "diary.sqlite"), nil
	case BackendFile:
		return filepath.Join(base, "data"), nil
	default:
		return filepath.Join(base, "diary.db"), nil
	}
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendBolt, BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("invalid backend: %s (must be one of: bolt, sqlite, file, memory)", c.Backend)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.LogFormat)
	}

	if c.Backend != BackendMemory && c.DBPath == "" {
		return fmt.Errorf("database path is required for backend %s", c.Backend)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}

	return nil
}

// String не выводит пароль
func (c *Config) String() string {
	return fmt.Sprintf("Config{Backend=%s, DBPath=%s, LogLevel=%s, LogFormat=%s, Timeout=%s, Password=%t}",
		c.Backend, c.DBPath, c.LogLevel, c.LogFormat, c.Timeout, c.Password != "")
}
