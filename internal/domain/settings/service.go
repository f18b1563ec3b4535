package settings

import "context"

// SettingsService exposes the rate configuration to handlers and to the
// calculation services.
type SettingsService interface {
	// Get returns the stored configuration, falling back to defaults when
	// nothing has been saved yet.
	Get(ctx context.Context) (RateConfig, error)

	// Update applies a partial update on top of the current configuration and
	// persists the result.
	Update(ctx context.Context, req UpdateRateConfigRequest) (RateConfig, error)
}
