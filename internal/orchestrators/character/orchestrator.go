// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
	"github.com/KirkDiggler/op-character-creator/internal/pkg/clock"
	"github.com/KirkDiggler/op-character-creator/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/op-character-creator/internal/repositories/character"
)

// IDPrefix prefixes every generated character id
const IDPrefix = "char"

// Fixed descriptions returned instead of a rendered paragraph
const (
	DescriptionNotLoaded = "Character data is not loaded."
	DescriptionNoTraits  = "This character has no defined traits."
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	Catalog       Catalog
	Settings      Visibility
	CharacterRepo characterrepo.Repository
	// Clock defaults to the system clock
	Clock clock.Clock
	// IDGenerator defaults to prefixed timestamp ids
	IDGenerator idgen.Generator
	Logger      *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	catalog       Catalog
	settings      Visibility
	characterRepo characterrepo.Repository
	clock         clock.Clock
	idGenerator   idgen.Generator
	logger        *slog.Logger
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewPrefixed(IDPrefix)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		catalog:       cfg.Catalog,
		settings:      cfg.Settings,
		characterRepo: cfg.CharacterRepo,
		clock:         clk,
		idGenerator:   gen,
		logger:        logger,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

func (o *Orchestrator) newCharacter() *entities.Character {
	return entities.NewCharacter(o.idGenerator.Generate(), o.clock.Now())
}

// requiredTraits returns the catalog traits the settings currently show
func (o *Orchestrator) requiredTraits() []*entities.Trait {
	return o.settings.FilterTraits(o.catalog.Traits())
}

// GenerateRandom draws one random value for every visible trait
// Returns errors.FailedPrecondition when the catalog is not loaded
func (o *Orchestrator) GenerateRandom(ctx context.Context) (*GenerateRandomOutput, error) {
	if !o.catalog.IsLoaded() {
		return nil, errors.FailedPrecondition("character data is not loaded")
	}

	char := o.newCharacter()
	for _, trait := range o.requiredTraits() {
		value, err := o.catalog.RandomTraitValue(trait.Code)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate character").
				WithMeta("trait_code", trait.Code)
		}
		if value != nil {
			char.SetTrait(trait.Code, value)
		}
	}

	o.logger.DebugContext(ctx, "generated random character",
		slog.String("character_id", char.ID),
		slog.Int("traits", len(char.Traits)))

	return &GenerateRandomOutput{Character: char}, nil
}

// FromUserInput builds a character from trait code to value id selections.
// Empty, non-numeric and unknown ids are treated as no selection.
func (o *Orchestrator) FromUserInput(ctx context.Context, input *FromUserInputInput) (*FromUserInputOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char := o.newCharacter()
	var skipped []string

	for code, raw := range input.Selections {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		id, err := strconv.Atoi(raw)
		if err != nil {
			skipped = append(skipped, code)
			continue
		}

		value := o.catalog.TraitValue(code, id)
		if value == nil {
			skipped = append(skipped, code)
			continue
		}
		char.SetTrait(code, value)
	}
	sort.Strings(skipped)

	if len(skipped) > 0 {
		o.logger.DebugContext(ctx, "ignored unmatched selections",
			slog.Any("trait_codes", skipped))
	}

	return &FromUserInputOutput{
		Character: char,
		Skipped:   skipped,
	}, nil
}

// IsComplete reports whether char holds a value for every visible trait.
// Always false while the catalog is not loaded.
func (o *Orchestrator) IsComplete(char *entities.Character) bool {
	if char == nil || !o.catalog.IsLoaded() {
		return false
	}

	for _, trait := range o.requiredTraits() {
		if !char.HasValue(trait.Code) {
			return false
		}
	}
	return true
}

// MissingTraits returns the visible traits char has no value for, in
// catalog order
func (o *Orchestrator) MissingTraits(char *entities.Character) []*entities.Trait {
	if !o.catalog.IsLoaded() {
		return nil
	}

	var missing []*entities.Trait
	for _, trait := range o.requiredTraits() {
		if char == nil || !char.HasValue(trait.Code) {
			missing = append(missing, trait)
		}
	}
	return missing
}

// GenerateDescription renders one sentence per visible trait that has a
// value, in catalog order, joined by single spaces
func (o *Orchestrator) GenerateDescription(char *entities.Character) string {
	if !o.catalog.IsLoaded() {
		return DescriptionNotLoaded
	}
	if char == nil {
		return DescriptionNoTraits
	}

	var sentences []string
	for _, trait := range o.requiredTraits() {
		if !char.HasValue(trait.Code) {
			continue
		}
		value := char.GetTrait(trait.Code).Value
		sentences = append(sentences, strings.Replace(trait.Sentence, entities.SentenceMarker, value, 1))
	}

	if len(sentences) == 0 {
		return DescriptionNoTraits
	}
	return strings.Join(sentences, " ")
}

// Save stores char as the current character. A storage failure is logged
// and reported through Persisted only.
// Returns errors.InvalidArgument when no character is given
func (o *Orchestrator) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	_, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{Character: input.Character})
	if err != nil {
		o.logger.WarnContext(ctx, "failed to save character",
			slog.String("key", characterrepo.StorageKey),
			slog.String("character_id", input.Character.ID),
			slog.Any("error", err))
		return &SaveOutput{Character: input.Character}, nil
	}

	return &SaveOutput{
		Character: input.Character,
		Persisted: true,
	}, nil
}

// Load returns the current character. Missing, unreadable and
// inaccessible records all yield a nil character.
func (o *Orchestrator) Load(ctx context.Context) (*LoadOutput, error) {
	out, err := o.characterRepo.Load(ctx)
	if err != nil {
		o.logger.WarnContext(ctx, "failed to load character",
			slog.String("key", characterrepo.StorageKey),
			slog.Any("error", err))
		return &LoadOutput{}, nil
	}

	return &LoadOutput{Character: out.Character}, nil
}

// Clear removes the current character. A storage failure is logged.
func (o *Orchestrator) Clear(ctx context.Context) (*ClearOutput, error) {
	if err := o.characterRepo.Clear(ctx); err != nil {
		o.logger.WarnContext(ctx, "failed to clear character",
			slog.String("key", characterrepo.StorageKey),
			slog.Any("error", err))
		return &ClearOutput{}, nil
	}
	return &ClearOutput{Cleared: true}, nil
}
