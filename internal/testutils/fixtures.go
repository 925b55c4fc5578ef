package testutils

import (
	"encoding/json"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
)

// Fixture values referenced directly by tests
const (
	ScarValueID   = 1
	ScarValue     = "a scar across one eye"
	RaspValueID   = 4
	RaspValue     = "a gravelly rasp"
	SchemaVersion = "0.0.1"
)

// CreateTestDocument returns a small catalog document covering all five traits
func CreateTestDocument() *entities.Document {
	return &entities.Document{
		Meta: entities.DocumentMeta{DataSchemaVersion: SchemaVersion},
		Traits: []*entities.Trait{
			{ID: 1, Code: entities.TraitFacial, Title: "Hair & Facial Features", Sentence: "They have %XXX%."},
			{ID: 2, Code: entities.TraitBody, Title: "Body, Clothes, or Accessories", Sentence: "They don %XXX%."},
			{ID: 3, Code: entities.TraitPersonality, Title: "Personality Quirk", Sentence: "They are %XXX%."},
			{ID: 4, Code: entities.TraitVoice, Title: "Voice or Vocal Quirk", Sentence: "Their voice is %XXX%."},
			{ID: 5, Code: entities.TraitWeapon, Title: "Weaponry", Sentence: "They attack using %XXX%."},
		},
		TraitValues: []*entities.TraitValue{
			{ID: ScarValueID, TraitCode: entities.TraitFacial, Value: ScarValue},
			{ID: 2, TraitCode: entities.TraitBody, Value: "a patched straw hat"},
			{ID: 3, TraitCode: entities.TraitPersonality, Value: "endlessly optimistic"},
			{ID: RaspValueID, TraitCode: entities.TraitVoice, Value: RaspValue},
			{ID: 5, TraitCode: entities.TraitWeapon, Value: "a rusty cutlass"},
			{ID: 6, TraitCode: entities.TraitFacial, Value: "braided red hair"},
			{ID: 7, TraitCode: entities.TraitBody, Value: "a long captain's coat"},
			{ID: 8, TraitCode: entities.TraitWeapon, Value: "a pair of flintlock pistols"},
		},
	}
}

// CreateTestDocumentJSON returns CreateTestDocument encoded as the published JSON
func CreateTestDocumentJSON() []byte {
	data, err := json.Marshal(CreateTestDocument())
	if err != nil {
		panic(err)
	}
	return data
}
