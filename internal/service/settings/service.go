package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/settings"
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
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.RateConfig, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.DefaultRateConfig(), nil
		}
		return settings.RateConfig{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return cfg, nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateRateConfigRequest) (settings.RateConfig, error) {
	if err := req.Validate(); err != nil {
		return settings.RateConfig{}, err
	}

	cfg, err := s.Get(ctx)
	if err != nil {
		return settings.RateConfig{}, err
	}

	applyFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	applyInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	applyFloat(&cfg.RegularHoursPerDay, req.RegularHoursPerDay)
	applyInt(&cfg.DefaultBreakMinutes, req.DefaultBreakMinutes)
	applyInt(&cfg.BreakMinutesFor6Hours, req.BreakMinutesFor6Hours)
	applyInt(&cfg.BreakMinutesFor8Hours, req.BreakMinutesFor8Hours)
	applyFloat(&cfg.OvertimeThreshold, req.OvertimeThreshold)
	applyFloat(&cfg.OvertimeRate, req.OvertimeRate)
	applyFloat(&cfg.ExcessOvertimeRate, req.ExcessOvertimeRate)
	applyFloat(&cfg.LateNightRate, req.LateNightRate)
	applyFloat(&cfg.HolidayRate, req.HolidayRate)
	applyInt(&cfg.LateNightStartHour, req.LateNightStartHour)
	applyInt(&cfg.LateNightEndHour, req.LateNightEndHour)
	applyInt(&cfg.EarlyOvertimeStandardHour, req.EarlyOvertimeStandardHour)
	applyInt(&cfg.EarlyLeaveStandardHour, req.EarlyLeaveStandardHour)
	applyInt(&cfg.OvertimeStandardHour, req.OvertimeStandardHour)
	if req.DefaultHourlyRate != nil {
		cfg.DefaultHourlyRate = *req.DefaultHourlyRate
	}

	updated, err := s.SettingsRepository.Upsert(ctx, cfg)
	if err != nil {
		return settings.RateConfig{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return updated, nil
}
