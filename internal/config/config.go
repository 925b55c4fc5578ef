// Package config loads the creator's settings from the environment
package config

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/op-character-creator/internal/errors"
	"github.com/KirkDiggler/op-character-creator/internal/kvstore"
	"github.com/KirkDiggler/op-character-creator/internal/pkg/idgen"
)

// Log levels accepted by CREATOR_LOG_LEVEL
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the runtime configuration
type Config struct {
	// DataSource is a file path or an http(s) URL of the data document
	DataSource    string `env:"CREATOR_DATA_SOURCE" envDefault:"out/data.json"`
	Store         string `env:"CREATOR_STORE" envDefault:"sqlite"`
	SQLitePath    string `env:"CREATOR_SQLITE_PATH"`
	RedisAddr     string `env:"CREATOR_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPrefix   string `env:"CREATOR_REDIS_PREFIX" envDefault:"op-character-creator:"`
	// RedisPassword is empty for servers without AUTH
	RedisPassword string `env:"CREATOR_REDIS_PASSWORD"`
	RedisDB       int    `env:"CREATOR_REDIS_DB" envDefault:"0"`
	RedisTLS      bool   `env:"CREATOR_REDIS_TLS" envDefault:"false"`
	HTTPAddr      string `env:"CREATOR_HTTP_ADDR" envDefault:":3000"`
	LogLevel      string `env:"CREATOR_LOG_LEVEL" envDefault:"info"`
	IDStyle       string `env:"CREATOR_ID_STYLE" envDefault:"timestamp"`
}

// Load reads the configuration like Read and validates it
func Load(files ...string) (*Config, error) {
	cfg, err := Read(files...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Read reads the given dotenv files, then the environment, without
// validating so callers can apply overrides first. Missing dotenv files
// are ignored; with no files ".env" is tried.
func Read(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to read env file")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath()
	}
	return &cfg, nil
}

// DefaultSQLitePath returns the per-user store location
func DefaultSQLitePath() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "op-character-creator", "store.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "store.db"
	}
	return filepath.Join(home, ".local", "share", "op-character-creator", "store.db")
}

// Validate checks every field
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("DataSource", c.DataSource, vb)
	errors.ValidateRequired("HTTPAddr", c.HTTPAddr, vb)
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.Fieldf("LogLevel", "must be one of: %s", strings.Join(LogLevels, ", "))
	}
	errors.ValidateEnum("IDStyle", c.IDStyle, []string{idgen.StyleTimestamp, idgen.StyleUUID}, vb)

	store := c.StoreConfig()
	if err := store.Validate(); err != nil {
		fields, _ := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		for field, msgs := range fields {
			for _, msg := range msgs {
				vb.Field("Store."+field, msg)
			}
		}
	}

	return vb.Build()
}

// StoreConfig returns the key-value store settings
func (c *Config) StoreConfig() *kvstore.OpenConfig {
	return &kvstore.OpenConfig{
		Backend:       c.Store,
		SQLitePath:    c.SQLitePath,
		RedisAddr:     c.RedisAddr,
		RedisPrefix:   c.RedisPrefix,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		RedisTLS:      c.RedisTLS,
	}
}

// SlogLevel returns the configured log level, info when unrecognised
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel maps a level name to its slog level
// Returns errors.InvalidArgument for unknown names
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", name)
	}
}

// NewLogger builds a text logger writing to stderr at the configured level
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.SlogLevel()}))
}
