// Package catalog holds the trait definitions and their possible values,
// loaded once from the static data document.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
)

const errLoadFailed = "failed to load character data"

// Config holds the dependencies for the catalog service
type Config struct {
	Source Source
	// Roller picks random values; dice.DefaultRoller when nil
	Roller dice.Roller
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Source == nil {
		vb.RequiredField("Source")
	}

	return vb.Build()
}

// Service is the trait catalog and value store. It is filled by Load and
// read-only afterwards.
type Service struct {
	source Source
	roller dice.Roller
	logger *slog.Logger

	doc    *entities.Document
	traits []*entities.Trait
	values map[string][]*entities.TraitValue
}

// NewService creates an unloaded catalog
func NewService(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		source: cfg.Source,
		roller: roller,
		logger: logger,
		values: make(map[string][]*entities.TraitValue),
	}, nil
}

// Load fetches and parses the data document. A failure leaves any
// previously loaded data in place.
// Returns errors.Unavailable when the fetch fails
// Returns errors.DataLoss when the document cannot be parsed
func (s *Service) Load(ctx context.Context) (*entities.Document, error) {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("error loading character data",
			slog.String("source", s.source.Location()),
			slog.Any("error", err))
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, errLoadFailed).
			WithMeta("source", s.source.Location())
	}

	doc, err := s.Parse(raw)
	if err != nil {
		s.logger.Error("error loading character data",
			slog.String("source", s.source.Location()),
			slog.Any("error", err))
		return nil, errors.Wrap(err, errLoadFailed).
			WithMeta("source", s.source.Location())
	}

	s.index(doc)
	s.logger.Debug("character data loaded",
		slog.String("source", s.source.Location()),
		slog.String("schema_version", doc.Meta.DataSchemaVersion),
		slog.Int("traits", len(doc.Traits)),
		slog.Int("trait_values", len(doc.TraitValues)))

	return doc, nil
}

// Parse decodes a data document without touching the loaded state
// Returns errors.DataLoss for malformed JSON
func (s *Service) Parse(raw []byte) (*entities.Document, error) {
	var doc entities.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "malformed data document")
	}
	return &doc, nil
}

// index groups the values by trait code once so lookups are O(1)
func (s *Service) index(doc *entities.Document) {
	traits := make([]*entities.Trait, 0, len(doc.Traits))
	for _, t := range doc.Traits {
		if t != nil {
			traits = append(traits, t)
		}
	}

	values := make(map[string][]*entities.TraitValue)
	for _, tv := range doc.TraitValues {
		if tv == nil {
			continue
		}
		values[tv.TraitCode] = append(values[tv.TraitCode], tv)
	}

	s.doc = doc
	s.traits = traits
	s.values = values
}

// IsLoaded reports whether Load has succeeded at least once
func (s *Service) IsLoaded() bool {
	return s.doc != nil
}

// Meta returns the loaded document's metadata
func (s *Service) Meta() entities.DocumentMeta {
	if s.doc == nil {
		return entities.DocumentMeta{}
	}
	return s.doc.Meta
}

// Traits returns every trait in document order
func (s *Service) Traits() []*entities.Trait {
	return s.traits
}

// Trait returns the trait with the given code, or nil
func (s *Service) Trait(code string) *entities.Trait {
	for _, t := range s.traits {
		if t.Code == code {
			return t
		}
	}
	return nil
}

// TraitCodes returns every trait code in document order
func (s *Service) TraitCodes() []string {
	codes := make([]string, len(s.traits))
	for i, t := range s.traits {
		codes[i] = t.Code
	}
	return codes
}

// TraitValues returns the values for code; empty for unknown codes
func (s *Service) TraitValues(code string) []*entities.TraitValue {
	return s.values[code]
}

// TraitValue returns the value of code with the given id, or nil
func (s *Service) TraitValue(code string, id int) *entities.TraitValue {
	for _, tv := range s.values[code] {
		if tv.ID == id {
			return tv
		}
	}
	return nil
}

// RandomTraitValue returns a uniformly chosen value for code, or nil when
// the trait has no values
func (s *Service) RandomTraitValue(code string) (*entities.TraitValue, error) {
	values := s.values[code]
	if len(values) == 0 {
		return nil, nil
	}

	roll, err := s.roller.Roll(len(values))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll for %s", code)
	}

	// dice faces are 1-based
	idx := roll - 1
	if idx < 0 || idx >= len(values) {
		return nil, errors.Internalf("roll %d out of range for %d values", roll, len(values))
	}

	return values[idx], nil
}
