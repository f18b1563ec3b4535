package settings

import (
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RateConfigResponse struct {
	RegularHoursPerDay        float64         `json:"regular_hours_per_day"`
	DefaultBreakMinutes       int             `json:"default_break_minutes"`
	BreakMinutesFor6Hours     int             `json:"break_minutes_for_6_hours"`
	BreakMinutesFor8Hours     int             `json:"break_minutes_for_8_hours"`
	OvertimeThreshold         float64         `json:"overtime_threshold"`
	OvertimeRate              float64         `json:"overtime_rate"`
	ExcessOvertimeRate        float64         `json:"excess_overtime_rate"`
	LateNightRate             float64         `json:"late_night_rate"`
	HolidayRate               float64         `json:"holiday_rate"`
	LateNightStartHour        int             `json:"late_night_start_hour"`
	LateNightEndHour          int             `json:"late_night_end_hour"`
	EarlyOvertimeStandardHour int             `json:"early_overtime_standard_hour"`
	EarlyLeaveStandardHour    int             `json:"early_leave_standard_hour"`
	OvertimeStandardHour      int             `json:"overtime_standard_hour"`
	DefaultHourlyRate         decimal.Decimal `json:"default_hourly_rate"`
}

type UpdateRateConfigRequest struct {
	RegularHoursPerDay        *float64         `json:"regular_hours_per_day"`
	DefaultBreakMinutes       *int             `json:"default_break_minutes"`
	BreakMinutesFor6Hours     *int             `json:"break_minutes_for_6_hours"`
	BreakMinutesFor8Hours     *int             `json:"break_minutes_for_8_hours"`
	OvertimeThreshold         *float64         `json:"overtime_threshold"`
	OvertimeRate              *float64         `json:"overtime_rate"`
	ExcessOvertimeRate        *float64         `json:"excess_overtime_rate"`
	LateNightRate             *float64         `json:"late_night_rate"`
	HolidayRate               *float64         `json:"holiday_rate"`
	LateNightStartHour        *int             `json:"late_night_start_hour"`
	LateNightEndHour          *int             `json:"late_night_end_hour"`
	EarlyOvertimeStandardHour *int             `json:"early_overtime_standard_hour"`
	EarlyLeaveStandardHour    *int             `json:"early_leave_standard_hour"`
	OvertimeStandardHour      *int             `json:"overtime_standard_hour"`
	DefaultHourlyRate         *decimal.Decimal `json:"default_hourly_rate"`
}

func (r *UpdateRateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	nonNegative := map[string]*float64{
		"regular_hours_per_day": r.RegularHoursPerDay,
		"overtime_threshold":    r.OvertimeThreshold,
		"overtime_rate":         r.OvertimeRate,
		"excess_overtime_rate":  r.ExcessOvertimeRate,
		"late_night_rate":       r.LateNightRate,
		"holiday_rate":          r.HolidayRate,
	}
	for field, v := range nonNegative {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	nonNegativeMinutes := map[string]*int{
		"default_break_minutes":     r.DefaultBreakMinutes,
		"break_minutes_for_6_hours": r.BreakMinutesFor6Hours,
		"break_minutes_for_8_hours": r.BreakMinutesFor8Hours,
	}
	for field, v := range nonNegativeMinutes {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	hourFields := map[string]*int{
		"late_night_start_hour":        r.LateNightStartHour,
		"late_night_end_hour":          r.LateNightEndHour,
		"early_overtime_standard_hour": r.EarlyOvertimeStandardHour,
		"early_leave_standard_hour":    r.EarlyLeaveStandardHour,
		"overtime_standard_hour":       r.OvertimeStandardHour,
	}
	for field, v := range hourFields {
		if v != nil && (*v < 0 || *v > 23) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be between 0 and 23",
			})
		}
	}

	if r.DefaultHourlyRate != nil && r.DefaultHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "default_hourly_rate",
			Message: "default_hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(cfg RateConfig) RateConfigResponse {
	return RateConfigResponse{
		RegularHoursPerDay:        cfg.RegularHoursPerDay,
		DefaultBreakMinutes:       cfg.DefaultBreakMinutes,
		BreakMinutesFor6Hours:     cfg.BreakMinutesFor6Hours,
		BreakMinutesFor8Hours:     cfg.BreakMinutesFor8Hours,
		OvertimeThreshold:         cfg.OvertimeThreshold,
		OvertimeRate:              cfg.OvertimeRate,
		ExcessOvertimeRate:        cfg.ExcessOvertimeRate,
		LateNightRate:             cfg.LateNightRate,
		HolidayRate:               cfg.HolidayRate,
		LateNightStartHour:        cfg.LateNightStartHour,
		LateNightEndHour:          cfg.LateNightEndHour,
		EarlyOvertimeStandardHour: cfg.EarlyOvertimeStandardHour,
		EarlyLeaveStandardHour:    cfg.EarlyLeaveStandardHour,
		OvertimeStandardHour:      cfg.OvertimeStandardHour,
		DefaultHourlyRate:         cfg.DefaultHourlyRate,
	}
}
