package settings

import (
	"context"
	"fmt"

	"github.com/dylanbyc/hi-fifty/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepo,
	}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	st, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return toResponse(st), nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	st := settings.UserSettings{
		Location:         settings.Location(req.Location),
		TargetPercentage: settings.DefaultTargetPercentage,
	}
	if st.Location == settings.LocationAustralia && req.State != nil {
		st.State = *req.State
	}
	if req.TargetPercentage != nil {
		st.TargetPercentage = *req.TargetPercentage
	}

	saved, err := s.SettingsRepository.Save(ctx, st)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return toResponse(saved), nil
}

func toResponse(st settings.UserSettings) settings.SettingsResponse {
	resp := settings.SettingsResponse{
		Location:         string(st.Location),
		TargetPercentage: st.TargetPercentage,
	}
	if st.Location == settings.LocationAustralia && st.State != "" {
		state := st.State
		resp.State = &state
	}
	return resp
}
