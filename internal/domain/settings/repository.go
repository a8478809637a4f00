package settings

import "context"

// SettingsRepository stores the single-user settings row.
type SettingsRepository interface {
	// Get returns the stored settings, or Default() when nothing has been
	// saved yet.
	Get(ctx context.Context) (UserSettings, error)

	// Save upserts the settings row.
	Save(ctx context.Context, s UserSettings) (UserSettings, error)
}
