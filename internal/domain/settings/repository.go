package settings

import "context"

// SettingsRepository persists the singleton rate configuration.
type SettingsRepository interface {
	// Get returns the stored configuration, or ErrSettingsNotFound when no
	// row exists yet.
	Get(ctx context.Context) (RateConfig, error)

	// Upsert writes the configuration, creating the singleton row on first
	// save.
	Upsert(ctx context.Context, cfg RateConfig) (RateConfig, error)
}
