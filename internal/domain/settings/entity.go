package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateConfig - labor-law rule set applied by the work-time engine.
// Stored as a single row; every calculation receives it as an explicit
// parameter, never as process-global state.
type RateConfig struct {
	ID string

	// Working hours
	RegularHoursPerDay    float64
	DefaultBreakMinutes   int
	BreakMinutesFor6Hours int
	BreakMinutesFor8Hours int

	// Overtime
	OvertimeThreshold         float64 // monthly hours before the excess rate applies
	OvertimeRate              float64 // percentage premium, 25 means +25%
	ExcessOvertimeRate        float64
	LateNightRate             float64
	HolidayRate               float64
	LateNightStartHour        int
	LateNightEndHour          int // interpreted as next-day
	EarlyOvertimeStandardHour int
	EarlyLeaveStandardHour    int
	OvertimeStandardHour      int

	// Wages
	DefaultHourlyRate decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultRateConfig returns the configuration used before an administrator
// has saved one.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		RegularHoursPerDay:        8,
		DefaultBreakMinutes:       60,
		BreakMinutesFor6Hours:     45,
		BreakMinutesFor8Hours:     60,
		OvertimeThreshold:         45,
		OvertimeRate:              25,
		ExcessOvertimeRate:        50,
		LateNightRate:             25,
		HolidayRate:               35,
		LateNightStartHour:        22,
		LateNightEndHour:          5,
		EarlyOvertimeStandardHour: 9,
		EarlyLeaveStandardHour:    17,
		OvertimeStandardHour:      17,
		DefaultHourlyRate:         decimal.NewFromInt(1200),
	}
}
