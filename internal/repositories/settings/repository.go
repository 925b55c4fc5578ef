// Package settings persists the user's trait visibility preferences
package settings

//go:generate mockgen -destination=mock/mock_repository.go -package=settingsmock github.com/KirkDiggler/op-character-creator/internal/repositories/settings Repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
	"github.com/KirkDiggler/op-character-creator/internal/kvstore"
)

// StorageKey is the fixed key settings are stored under
const StorageKey = "op-character-creator-settings"

// Repository defines the interface for settings persistence
type Repository interface {
	// Load returns the stored settings merged over the defaults.
	// Keys missing from the stored record keep their default value, and a
	// missing or undecodable record yields the defaults.
	// Returns errors.Internal for storage failures
	Load(ctx context.Context) (entities.Settings, error)

	// Save replaces the stored settings
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, settings entities.Settings) error
}

// Config holds the dependencies for the store-backed repository
type Config struct {
	Store  kvstore.Store
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Store == nil {
		return errors.InvalidArgument("store is required")
	}
	return nil
}

type storeRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewRepository creates a repository backed by a key-value store
func NewRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &storeRepository{
		store:  cfg.Store,
		logger: logger,
	}, nil
}

// Ensure storeRepository implements Repository
var _ Repository = (*storeRepository)(nil)

func (r *storeRepository) Load(ctx context.Context) (entities.Settings, error) {
	settings := entities.DefaultSettings()

	raw, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.IsNotFound(err) {
			return settings, nil
		}
		return settings, errors.Wrap(err, "failed to load settings")
	}

	// Unmarshal over the defaults so absent keys keep their default value.
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		r.logger.Warn("discarding unreadable stored settings",
			slog.String("key", StorageKey),
			slog.Any("error", err))
		return entities.DefaultSettings(), nil
	}

	return settings, nil
}

func (r *storeRepository) Save(ctx context.Context, settings entities.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}

	if err := r.store.Set(ctx, StorageKey, string(data)); err != nil {
		return errors.Wrap(err, "failed to save settings")
	}
	return nil
}
