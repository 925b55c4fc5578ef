package entities

// Settings holds the visibility flags for the togglable traits.
// Facial and body traits are always shown.
type Settings struct {
	ShowVoiceTrait       bool `json:"showVoiceTrait"`
	ShowPersonalityTrait bool `json:"showPersonalityTrait"`
	ShowWeaponTrait      bool `json:"showWeaponTrait"`
}

// DefaultSettings shows every trait
func DefaultSettings() Settings {
	return Settings{
		ShowVoiceTrait:       true,
		ShowPersonalityTrait: true,
		ShowWeaponTrait:      true,
	}
}
