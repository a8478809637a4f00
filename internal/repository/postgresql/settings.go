package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dylanbyc/hi-fifty/internal/domain/settings"
	"github.com/dylanbyc/hi-fifty/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository. A missing row means the user
// has never saved settings; defaults apply.
func (r *settingsRepository) Get(ctx context.Context) (settings.UserSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT location, state, target_percentage, updated_at
		FROM user_settings
		WHERE id = 1
	`

	var st settings.UserSettings
	var state *string
	err := q.QueryRow(ctx, query).Scan(&st.Location, &state, &st.TargetPercentage, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Default(), nil
		}
		return settings.UserSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	if state != nil {
		st.State = *state
	}
	return st, nil
}

// Save implements settings.SettingsRepository.
func (r *settingsRepository) Save(ctx context.Context, st settings.UserSettings) (settings.UserSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_settings (id, location, state, target_percentage)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET location = EXCLUDED.location,
		    state = EXCLUDED.state,
		    target_percentage = EXCLUDED.target_percentage,
		    updated_at = NOW()
		RETURNING updated_at
	`

	var state *string
	if st.State != "" {
		state = &st.State
	}

	err := q.QueryRow(ctx, query, string(st.Location), state, st.TargetPercentage).Scan(&st.UpdatedAt)
	if err != nil {
		return settings.UserSettings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	return st, nil
}
