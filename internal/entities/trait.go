// Package entities holds the plain data types shared by the catalog, settings
// and character packages.
package entities

// Trait codes present in the published data document
const (
	TraitFacial      = "facial_trait"
	TraitBody        = "body_trait"
	TraitPersonality = "personality_trait"
	TraitVoice       = "voice_trait"
	TraitWeapon      = "weapon_trait"
)

// SentenceMarker is replaced by the chosen value when a trait sentence is rendered
const SentenceMarker = "%XXX%"

// Trait is a character attribute category with its description template
type Trait struct {
	ID       int    `json:"id"`
	Code     string `json:"code"`
	Title    string `json:"title"`
	Sentence string `json:"sentence"`
}

// TraitValue is one concrete option for a trait
type TraitValue struct {
	ID        int    `json:"id"`
	TraitCode string `json:"trait_code"`
	Value     string `json:"value"`
}

// DocumentMeta describes the data document itself
type DocumentMeta struct {
	DataSchemaVersion string `json:"data_schema_version"`
}

// Document is the static data resource the catalog is loaded from
type Document struct {
	Meta        DocumentMeta  `json:"meta"`
	Traits      []*Trait      `json:"traits"`
	TraitValues []*TraitValue `json:"trait_values"`
}
