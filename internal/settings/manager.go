// Package settings holds the user's trait visibility preferences. Voice,
// personality and weapon traits can be hidden; every other trait is always
// shown and required.
package settings

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
	settingsrepo "github.com/KirkDiggler/op-character-creator/internal/repositories/settings"
)

// TogglableTraits lists the trait codes whose visibility can be changed
var TogglableTraits = []string{
	entities.TraitVoice,
	entities.TraitPersonality,
	entities.TraitWeapon,
}

// Config holds the dependencies for the settings manager
type Config struct {
	Repository settingsrepo.Repository
	Logger     *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}

	return vb.Build()
}

// Manager owns the current settings. Every mutation is written through to
// the repository before it returns; write failures are logged and the
// in-memory value still changes.
type Manager struct {
	repo     settingsrepo.Repository
	logger   *slog.Logger
	settings entities.Settings
}

// NewManager creates a manager and loads the stored settings. A failed
// read is logged and the defaults are used.
func NewManager(ctx context.Context, cfg *Config) (*Manager, error) {
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

	m := &Manager{
		repo:     cfg.Repository,
		logger:   logger,
		settings: entities.DefaultSettings(),
	}

	loaded, err := m.repo.Load(ctx)
	if err != nil {
		m.logger.Warn("failed to load settings, using defaults",
			slog.String("key", settingsrepo.StorageKey),
			slog.Any("error", err))
		return m, nil
	}
	m.settings = loaded

	return m, nil
}

func (m *Manager) persist(ctx context.Context) {
	if err := m.repo.Save(ctx, m.settings); err != nil {
		m.logger.Warn("failed to save settings",
			slog.String("key", settingsrepo.StorageKey),
			slog.Any("error", err))
	}
}

// ShowVoiceTrait reports whether the voice trait is shown
func (m *Manager) ShowVoiceTrait() bool {
	return m.settings.ShowVoiceTrait
}

// SetShowVoiceTrait sets and persists the voice trait flag
func (m *Manager) SetShowVoiceTrait(ctx context.Context, show bool) {
	m.settings.ShowVoiceTrait = show
	m.persist(ctx)
}

// ToggleVoiceTrait flips the voice trait flag and returns the new value
func (m *Manager) ToggleVoiceTrait(ctx context.Context) bool {
	m.SetShowVoiceTrait(ctx, !m.settings.ShowVoiceTrait)
	return m.settings.ShowVoiceTrait
}

// ShowPersonalityTrait reports whether the personality trait is shown
func (m *Manager) ShowPersonalityTrait() bool {
	return m.settings.ShowPersonalityTrait
}

// SetShowPersonalityTrait sets and persists the personality trait flag
func (m *Manager) SetShowPersonalityTrait(ctx context.Context, show bool) {
	m.settings.ShowPersonalityTrait = show
	m.persist(ctx)
}

// TogglePersonalityTrait flips the personality trait flag and returns the new value
func (m *Manager) TogglePersonalityTrait(ctx context.Context) bool {
	m.SetShowPersonalityTrait(ctx, !m.settings.ShowPersonalityTrait)
	return m.settings.ShowPersonalityTrait
}

// ShowWeaponTrait reports whether the weapon trait is shown
func (m *Manager) ShowWeaponTrait() bool {
	return m.settings.ShowWeaponTrait
}

// SetShowWeaponTrait sets and persists the weapon trait flag
func (m *Manager) SetShowWeaponTrait(ctx context.Context, show bool) {
	m.settings.ShowWeaponTrait = show
	m.persist(ctx)
}

// ToggleWeaponTrait flips the weapon trait flag and returns the new value
func (m *Manager) ToggleWeaponTrait(ctx context.Context) bool {
	m.SetShowWeaponTrait(ctx, !m.settings.ShowWeaponTrait)
	return m.settings.ShowWeaponTrait
}

// IsTogglable reports whether code's visibility can be changed
func IsTogglable(code string) bool {
	for _, c := range TogglableTraits {
		if c == code {
			return true
		}
	}
	return false
}

// SetVisible sets the flag for a togglable trait code
// Returns errors.InvalidArgument for codes that cannot be hidden
func (m *Manager) SetVisible(ctx context.Context, code string, show bool) error {
	switch code {
	case entities.TraitVoice:
		m.SetShowVoiceTrait(ctx, show)
	case entities.TraitPersonality:
		m.SetShowPersonalityTrait(ctx, show)
	case entities.TraitWeapon:
		m.SetShowWeaponTrait(ctx, show)
	default:
		return errors.InvalidArgumentf("trait %s cannot be hidden", code)
	}
	return nil
}

// Toggle flips the flag for a togglable trait code and returns the new value
// Returns errors.InvalidArgument for codes that cannot be hidden
func (m *Manager) Toggle(ctx context.Context, code string) (bool, error) {
	if !IsTogglable(code) {
		return false, errors.InvalidArgumentf("trait %s cannot be hidden", code)
	}

	show := !m.ShouldShowTrait(code)
	if err := m.SetVisible(ctx, code, show); err != nil {
		return false, err
	}
	return show, nil
}

// All returns a copy of the current settings
func (m *Manager) All() entities.Settings {
	return m.settings
}

// Reset restores and persists the defaults
func (m *Manager) Reset(ctx context.Context) {
	m.settings = entities.DefaultSettings()
	m.persist(ctx)
}

// ShouldShowTrait returns the flag for togglable codes and true for every
// other code, including codes the catalog does not know
func (m *Manager) ShouldShowTrait(code string) bool {
	switch code {
	case entities.TraitVoice:
		return m.settings.ShowVoiceTrait
	case entities.TraitPersonality:
		return m.settings.ShowPersonalityTrait
	case entities.TraitWeapon:
		return m.settings.ShowWeaponTrait
	default:
		return true
	}
}

// FilterTraits returns traits minus the hidden ones, preserving order
func (m *Manager) FilterTraits(traits []*entities.Trait) []*entities.Trait {
	visible := make([]*entities.Trait, 0, len(traits))
	for _, t := range traits {
		if m.ShouldShowTrait(t.Code) {
			visible = append(visible, t)
		}
	}
	return visible
}
