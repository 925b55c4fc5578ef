// Package character persists the single "current character" record
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/op-character-creator/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
)

// StorageKey is the fixed key the current character is stored under
const StorageKey = "op-character-creator-current-character"

// Repository defines the interface for current-character persistence.
// Exactly one character is stored at a time; saving replaces it.
type Repository interface {
	// Save replaces the stored character
	// Returns errors.InvalidArgument for a nil character
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load returns the stored character
	// A missing or undecodable record yields a nil Character and no error
	// Returns errors.Internal for storage failures
	Load(ctx context.Context) (*LoadOutput, error)

	// Clear removes the stored character
	// Returns errors.Internal for storage failures
	Clear(ctx context.Context) error
}

// SaveInput defines the input for saving the character
type SaveInput struct {
	Character *entities.Character
}

// SaveOutput defines the output for saving the character
type SaveOutput struct {
	Character *entities.Character
}

// LoadOutput defines the output for loading the character
type LoadOutput struct {
	// Character is nil when nothing usable is stored
	Character *entities.Character
}
