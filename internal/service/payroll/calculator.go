package payroll

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/attendance"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/payroll"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/settings"
	"github.com/seika-clinic/attendance-backend-go/internal/service/worktime"
)

// round1 rounds to one decimal place, halves away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AggregateWorkHours folds one month of attendance records into the five
// hour buckets. Records are processed in date order; the split between
// overtime and excess overtime depends on a running monthly counter, so the
// order is part of the contract. Records missing either clock time are
// skipped entirely.
func AggregateWorkHours(records []attendance.Record, cfg settings.RateConfig) (payroll.WorkHours, error) {
	sorted := make([]attendance.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	var regularHours, overtimeHours, excessOvertimeHours float64
	var lateNightHours, holidayHours, totalHours float64

	for _, record := range sorted {
		if record.StartTime == nil || *record.StartTime == "" ||
			record.EndTime == nil || *record.EndTime == "" {
			continue
		}

		// A record carrying precomputed actual and overtime hours wins over
		// re-deriving them from the clock times.
		var hours, dailyOvertime float64
		if record.ActualWorkHours != nil && record.OvertimeHours != nil {
			hours = *record.ActualWorkHours + *record.OvertimeHours
			dailyOvertime = *record.OvertimeHours
		} else {
			worked, err := worktime.HoursBetween(*record.StartTime, *record.EndTime)
			if err != nil {
				return payroll.WorkHours{}, err
			}
			breakMinutes := cfg.DefaultBreakMinutes
			if record.BreakMinutes != nil && *record.BreakMinutes != 0 {
				breakMinutes = *record.BreakMinutes
			}
			hours = math.Max(0, worked-float64(breakMinutes)/60)
			dailyOvertime = math.Max(0, hours-cfg.RegularHoursPerDay)
		}

		lateNight, err := worktime.LateNightOverlap(
			*record.StartTime, *record.EndTime,
			cfg.LateNightStartHour, cfg.LateNightEndHour,
		)
		if err != nil {
			return payroll.WorkHours{}, err
		}

		totalHours += hours
		lateNightHours += lateNight

		if record.IsHoliday {
			// Holiday work is its own bucket; it never contributes to the
			// regular or overtime buckets, only to late night.
			holidayHours += hours
			continue
		}

		regularHours += math.Min(hours, cfg.RegularHoursPerDay)

		if dailyOvertime > 0 {
			if overtimeHours+excessOvertimeHours < cfg.OvertimeThreshold {
				remaining := cfg.OvertimeThreshold - (overtimeHours + excessOvertimeHours)
				if dailyOvertime <= remaining {
					overtimeHours += dailyOvertime
				} else {
					overtimeHours += remaining
					excessOvertimeHours += dailyOvertime - remaining
				}
			} else {
				excessOvertimeHours += dailyOvertime
			}
		}
	}

	return payroll.WorkHours{
		RegularHours:        round1(regularHours),
		OvertimeHours:       round1(overtimeHours),
		ExcessOvertimeHours: round1(excessOvertimeHours),
		LateNightHours:      round1(lateNightHours),
		HolidayHours:        round1(holidayHours),
		TotalHours:          round1(totalHours),
	}, nil
}

// priceBucket multiplies hours by the hourly rate and a premium multiplier,
// rounded to whole yen.
func priceBucket(hours float64, rate, multiplier decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(hours).Mul(rate).Mul(multiplier).Round(0)
}

// premiumMultiplier converts a percentage premium such as 25 into 1.25.
func premiumMultiplier(percent float64) decimal.Decimal {
	return decimal.NewFromInt(1).Add(decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100)))
}

// CalculatePayroll prices the aggregated hour buckets for one staff member.
// Pure; persistence and attendance lookup are the service's concern.
//
// A fixed monthly salary, when configured, becomes the base salary as-is and
// the regular-hours bucket is not priced. The premium buckets are always
// priced from the hourly rate. The late-night premium is the surcharge alone
// (rate/100, not 1+rate/100) because those hours are already paid once
// through their regular, overtime or holiday bucket.
func CalculatePayroll(
	staffID, staffName, month string,
	wh payroll.WorkHours,
	wage payroll.StaffWage,
	customItems []payroll.CustomItem,
	cfg settings.RateConfig,
) payroll.Calculation {
	hourlyRate := cfg.DefaultHourlyRate
	if wage.HourlyRate != nil {
		hourlyRate = *wage.HourlyRate
	}

	var baseSalary decimal.Decimal
	if wage.MonthlySalary != nil {
		baseSalary = *wage.MonthlySalary
	} else {
		baseSalary = decimal.NewFromFloat(wh.RegularHours).Mul(hourlyRate).Round(0)
	}

	overtimePay := priceBucket(wh.OvertimeHours, hourlyRate, premiumMultiplier(cfg.OvertimeRate))
	excessOvertimePay := priceBucket(wh.ExcessOvertimeHours, hourlyRate, premiumMultiplier(cfg.ExcessOvertimeRate))
	lateNightPay := priceBucket(wh.LateNightHours, hourlyRate,
		decimal.NewFromFloat(cfg.LateNightRate).Div(decimal.NewFromInt(100)))
	holidayPay := priceBucket(wh.HolidayHours, hourlyRate, premiumMultiplier(cfg.HolidayRate))

	totalAllowance := decimal.Zero
	totalDeduction := decimal.Zero
	for _, item := range customItems {
		switch item.Type {
		case payroll.ItemTypeAllowance:
			totalAllowance = totalAllowance.Add(item.Amount)
		case payroll.ItemTypeDeduction:
			totalDeduction = totalDeduction.Add(item.Amount)
		}
	}

	grossPay := baseSalary.
		Add(overtimePay).
		Add(excessOvertimePay).
		Add(lateNightPay).
		Add(holidayPay).
		Add(totalAllowance)
	netPay := grossPay.Sub(totalDeduction)

	return payroll.Calculation{
		StaffID:           staffID,
		StaffName:         staffName,
		Month:             month,
		WorkHours:         wh,
		BaseSalary:        baseSalary,
		HourlyRate:        hourlyRate,
		OvertimePay:       overtimePay,
		ExcessOvertimePay: excessOvertimePay,
		LateNightPay:      lateNightPay,
		HolidayPay:        holidayPay,
		CustomItems:       customItems,
		TotalAllowance:    totalAllowance,
		TotalDeduction:    totalDeduction,
		GrossPay:          grossPay,
		NetPay:            netPay,
	}
}
