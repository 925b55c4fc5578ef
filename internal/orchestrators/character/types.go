package character

import (
	"context"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/op-character-creator/internal/orchestrators/character Service

// Service defines the character orchestrator interface
type Service interface {
	// Construction
	GenerateRandom(ctx context.Context) (*GenerateRandomOutput, error)
	FromUserInput(ctx context.Context, input *FromUserInputInput) (*FromUserInputOutput, error)

	// Evaluation against the catalog and current settings
	IsComplete(char *entities.Character) bool
	MissingTraits(char *entities.Character) []*entities.Trait
	GenerateDescription(char *entities.Character) string

	// Persistence of the current character
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	Load(ctx context.Context) (*LoadOutput, error)
	Clear(ctx context.Context) (*ClearOutput, error)
}

// Catalog is the part of the trait catalog the orchestrator reads
type Catalog interface {
	IsLoaded() bool
	Traits() []*entities.Trait
	TraitValue(code string, id int) *entities.TraitValue
	RandomTraitValue(code string) (*entities.TraitValue, error)
}

// Visibility decides which traits are currently required
type Visibility interface {
	ShouldShowTrait(code string) bool
	FilterTraits(traits []*entities.Trait) []*entities.Trait
}

// GenerateRandomOutput defines the response for random generation
type GenerateRandomOutput struct {
	Character *entities.Character
}

// FromUserInputInput defines the request for building a character from a form
type FromUserInputInput struct {
	// Selections maps trait code to the chosen value id as entered
	Selections map[string]string
}

// FromUserInputOutput defines the response for building a character from a form
type FromUserInputOutput struct {
	Character *entities.Character
	// Skipped lists the trait codes whose selection did not match a value
	Skipped []string
}

// SaveInput defines the request for saving the current character
type SaveInput struct {
	Character *entities.Character
}

// SaveOutput defines the response for saving the current character
type SaveOutput struct {
	Character *entities.Character
	// Persisted is false when the write failed; the failure is only logged
	Persisted bool
}

// LoadOutput defines the response for loading the current character
type LoadOutput struct {
	// Character is nil when nothing usable is stored
	Character *entities.Character
}

// ClearOutput defines the response for clearing the current character
type ClearOutput struct {
	Cleared bool
}
