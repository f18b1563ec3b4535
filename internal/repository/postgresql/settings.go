package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/settings"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (settings.RateConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, regular_hours_per_day, default_break_minutes,
			   break_minutes_for_6_hours, break_minutes_for_8_hours,
			   overtime_threshold, overtime_rate, excess_overtime_rate,
			   late_night_rate, holiday_rate,
			   late_night_start_hour, late_night_end_hour,
			   early_overtime_standard_hour, early_leave_standard_hour,
			   overtime_standard_hour, default_hourly_rate,
			   created_at, updated_at
		FROM system_settings
		LIMIT 1
	`

	var cfg settings.RateConfig
	err := q.QueryRow(ctx, query).Scan(
		&cfg.ID, &cfg.RegularHoursPerDay, &cfg.DefaultBreakMinutes,
		&cfg.BreakMinutesFor6Hours, &cfg.BreakMinutesFor8Hours,
		&cfg.OvertimeThreshold, &cfg.OvertimeRate, &cfg.ExcessOvertimeRate,
		&cfg.LateNightRate, &cfg.HolidayRate,
		&cfg.LateNightStartHour, &cfg.LateNightEndHour,
		&cfg.EarlyOvertimeStandardHour, &cfg.EarlyLeaveStandardHour,
		&cfg.OvertimeStandardHour, &cfg.DefaultHourlyRate,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.RateConfig{}, settings.ErrSettingsNotFound
		}
		return settings.RateConfig{}, fmt.Errorf("failed to get system settings: %w", err)
	}

	return cfg, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, cfg settings.RateConfig) (settings.RateConfig, error) {
	q := GetQuerier(ctx, r.db)

	// Single-row table; the fixed id keeps the upsert a true singleton.
	query := `
		INSERT INTO system_settings (
			id, regular_hours_per_day, default_break_minutes,
			break_minutes_for_6_hours, break_minutes_for_8_hours,
			overtime_threshold, overtime_rate, excess_overtime_rate,
			late_night_rate, holiday_rate,
			late_night_start_hour, late_night_end_hour,
			early_overtime_standard_hour, early_leave_standard_hour,
			overtime_standard_hour, default_hourly_rate
		) VALUES ('singleton', $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			regular_hours_per_day = EXCLUDED.regular_hours_per_day,
			default_break_minutes = EXCLUDED.default_break_minutes,
			break_minutes_for_6_hours = EXCLUDED.break_minutes_for_6_hours,
			break_minutes_for_8_hours = EXCLUDED.break_minutes_for_8_hours,
			overtime_threshold = EXCLUDED.overtime_threshold,
			overtime_rate = EXCLUDED.overtime_rate,
			excess_overtime_rate = EXCLUDED.excess_overtime_rate,
			late_night_rate = EXCLUDED.late_night_rate,
			holiday_rate = EXCLUDED.holiday_rate,
			late_night_start_hour = EXCLUDED.late_night_start_hour,
			late_night_end_hour = EXCLUDED.late_night_end_hour,
			early_overtime_standard_hour = EXCLUDED.early_overtime_standard_hour,
			early_leave_standard_hour = EXCLUDED.early_leave_standard_hour,
			overtime_standard_hour = EXCLUDED.overtime_standard_hour,
			default_hourly_rate = EXCLUDED.default_hourly_rate,
			updated_at = NOW()
		RETURNING id, regular_hours_per_day, default_break_minutes,
			break_minutes_for_6_hours, break_minutes_for_8_hours,
			overtime_threshold, overtime_rate, excess_overtime_rate,
			late_night_rate, holiday_rate,
			late_night_start_hour, late_night_end_hour,
			early_overtime_standard_hour, early_leave_standard_hour,
			overtime_standard_hour, default_hourly_rate,
			created_at, updated_at
	`

	var saved settings.RateConfig
	err := q.QueryRow(ctx, query,
		cfg.RegularHoursPerDay, cfg.DefaultBreakMinutes,
		cfg.BreakMinutesFor6Hours, cfg.BreakMinutesFor8Hours,
		cfg.OvertimeThreshold, cfg.OvertimeRate, cfg.ExcessOvertimeRate,
		cfg.LateNightRate, cfg.HolidayRate,
		cfg.LateNightStartHour, cfg.LateNightEndHour,
		cfg.EarlyOvertimeStandardHour, cfg.EarlyLeaveStandardHour,
		cfg.OvertimeStandardHour, cfg.DefaultHourlyRate,
	).Scan(
		&saved.ID, &saved.RegularHoursPerDay, &saved.DefaultBreakMinutes,
		&saved.BreakMinutesFor6Hours, &saved.BreakMinutesFor8Hours,
		&saved.OvertimeThreshold, &saved.OvertimeRate, &saved.ExcessOvertimeRate,
		&saved.LateNightRate, &saved.HolidayRate,
		&saved.LateNightStartHour, &saved.LateNightEndHour,
		&saved.EarlyOvertimeStandardHour, &saved.EarlyLeaveStandardHour,
		&saved.OvertimeStandardHour, &saved.DefaultHourlyRate,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return settings.RateConfig{}, fmt.Errorf("failed to upsert system settings: %w", err)
	}

	return saved, nil
}
