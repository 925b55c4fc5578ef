package character

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
	"github.com/KirkDiggler/op-character-creator/internal/kvstore"
)

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

func (r *storeRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}

	char := input.Character
	if char.GetID() == "" {
		return nil, errors.WrapWithCode(core.NewEntityError("save", char.GetType(), "", core.ErrEmptyID),
			errors.CodeInvalidArgument, "character id is required")
	}

	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrap(core.NewEntityError("save", char.GetType(), char.GetID(), err),
			"failed to marshal character")
	}

	if err := r.store.Set(ctx, StorageKey, string(data)); err != nil {
		return nil, errors.Wrap(core.NewEntityError("save", char.GetType(), char.GetID(), err),
			"failed to save character")
	}

	return &SaveOutput{Character: input.Character}, nil
}

func (r *storeRepository) Load(ctx context.Context) (*LoadOutput, error) {
	raw, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.IsNotFound(err) {
			return &LoadOutput{}, nil
		}
		return nil, errors.Wrap(err, "failed to load character")
	}

	char, err := decodeCharacter(raw)
	if err != nil {
		r.logger.Warn("discarding unreadable stored character",
			slog.String("key", StorageKey),
			slog.Any("error", err))
		return &LoadOutput{}, nil
	}

	return &LoadOutput{Character: char}, nil
}

// decodeCharacter rejects records that do not describe an identified character,
// including a stored JSON null
func decodeCharacter(raw string) (*entities.Character, error) {
	var char *entities.Character
	if err := json.Unmarshal([]byte(raw), &char); err != nil {
		return nil, core.NewEntityError("load", entities.EntityTypeCharacter, "", err)
	}
	if char == nil {
		return nil, core.NewEntityError("load", entities.EntityTypeCharacter, "", core.ErrNilEntity)
	}
	if char.GetID() == "" {
		return nil, core.NewEntityError("load", char.GetType(), "", core.ErrEmptyID)
	}
	if char.Traits == nil {
		char.Traits = make(map[string]*entities.TraitValue)
	}
	return char, nil
}

func (r *storeRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, StorageKey); err != nil {
		return errors.Wrap(err, "failed to clear character")
	}
	return nil
}
