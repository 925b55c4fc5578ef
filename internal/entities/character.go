package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCharacter identifies characters to rpg-toolkit
const EntityTypeCharacter = "character"

// Character is a selection of at most one value per trait
type Character struct {
	ID        string                 `json:"id"`
	Traits    map[string]*TraitValue `json:"traits"`
	CreatedAt time.Time              `json:"createdAt"`
}

// CharacterSummary is a compact view used by listings
type CharacterSummary struct {
	ID         string
	TraitCount int
	CreatedAt  time.Time
	HasTraits  bool
}

// NewCharacter creates an empty character
func NewCharacter(id string, createdAt time.Time) *Character {
	return &Character{
		ID:        id,
		Traits:    make(map[string]*TraitValue),
		CreatedAt: createdAt,
	}
}

// Ensure Character can be handed to rpg-toolkit as an entity
var _ core.Entity = (*Character)(nil)

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// SetTrait assigns value under traitCode, replacing any previous value
func (c *Character) SetTrait(traitCode string, value *TraitValue) {
	if c.Traits == nil {
		c.Traits = make(map[string]*TraitValue)
	}
	c.Traits[traitCode] = value
}

// GetTrait returns the value held for traitCode, or nil
func (c *Character) GetTrait(traitCode string) *TraitValue {
	return c.Traits[traitCode]
}

// HasValue reports whether the character holds a non-empty value for traitCode
func (c *Character) HasValue(traitCode string) bool {
	tv := c.Traits[traitCode]
	return tv != nil && tv.Value != ""
}

// AllTraits returns a shallow copy of the trait map
func (c *Character) AllTraits() map[string]*TraitValue {
	out := make(map[string]*TraitValue, len(c.Traits))
	for code, tv := range c.Traits {
		out[code] = tv
	}
	return out
}

// Summary returns the character's summary
func (c *Character) Summary() CharacterSummary {
	return CharacterSummary{
		ID:         c.ID,
		TraitCount: len(c.Traits),
		CreatedAt:  c.CreatedAt,
		HasTraits:  len(c.Traits) > 0,
	}
}
