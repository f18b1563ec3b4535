package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/attendance"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/payroll"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/settings"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }
func f64Ptr(f float64) *float64 { return &f }
func decPtr(i int64) *decimal.Decimal {
	d := decimal.NewFromInt(i)
	return &d
}

func workDay(date, start, end string) attendance.Record {
	return attendance.Record{
		StaffID:   "staff-1",
		Date:      date,
		StartTime: strPtr(start),
		EndTime:   strPtr(end),
	}
}

func assertYen(t *testing.T, want int64, got decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.NewFromInt(want)), "%s = %s, want %d", label, got, want)
}

func TestAggregateWorkHoursRegularDays(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	records := []attendance.Record{
		workDay("2026-06-01", "09:00", "18:00"),
		workDay("2026-06-02", "09:00", "18:00"),
	}

	wh, err := AggregateWorkHours(records, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 16.0, wh.RegularHours, 1e-9)
	assert.InDelta(t, 0.0, wh.OvertimeHours, 1e-9)
	assert.InDelta(t, 0.0, wh.ExcessOvertimeHours, 1e-9)
	assert.InDelta(t, 0.0, wh.HolidayHours, 1e-9)
	assert.InDelta(t, 16.0, wh.TotalHours, 1e-9)
}

func TestAggregateWorkHoursDailyOvertime(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	// 09:00-20:00 minus the 60-minute break is 10 hours, 2 of them overtime.
	wh, err := AggregateWorkHours([]attendance.Record{workDay("2026-06-01", "09:00", "20:00")}, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 8.0, wh.RegularHours, 1e-9)
	assert.InDelta(t, 2.0, wh.OvertimeHours, 1e-9)
	assert.InDelta(t, 10.0, wh.TotalHours, 1e-9)
}

func TestAggregateWorkHoursSkipsIncompleteRecords(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	records := []attendance.Record{
		workDay("2026-06-01", "09:00", "18:00"),
		{StaffID: "staff-1", Date: "2026-06-02", StartTime: strPtr("09:00")},
		{StaffID: "staff-1", Date: "2026-06-03"},
	}

	wh, err := AggregateWorkHours(records, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, wh.TotalHours, 1e-9)
}

func TestAggregateWorkHoursPrecomputedOverride(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	// Stored actual and overtime hours win over re-deriving from the clock
	// times, which here would give 8 worked hours instead.
	rec := workDay("2026-06-01", "09:00", "18:00")
	rec.ActualWorkHours = f64Ptr(8)
	rec.OvertimeHours = f64Ptr(2)

	wh, err := AggregateWorkHours([]attendance.Record{rec}, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, wh.TotalHours, 1e-9)
	assert.InDelta(t, 8.0, wh.RegularHours, 1e-9)
	assert.InDelta(t, 2.0, wh.OvertimeHours, 1e-9)
}

func TestAggregateWorkHoursBreakFallback(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	// Explicit break.
	rec := workDay("2026-06-01", "09:00", "18:00")
	rec.BreakMinutes = intPtr(30)
	wh, err := AggregateWorkHours([]attendance.Record{rec}, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 8.5, wh.TotalHours, 1e-9)

	// A zero break falls back to the default, same as an absent one.
	rec.BreakMinutes = intPtr(0)
	wh, err = AggregateWorkHours([]attendance.Record{rec}, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, wh.TotalHours, 1e-9)
}

func TestAggregateWorkHoursShortShiftFloorsAtZero(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	// A shift shorter than the break never goes negative.
	wh, err := AggregateWorkHours([]attendance.Record{workDay("2026-06-01", "09:00", "09:30")}, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, wh.TotalHours, 1e-9)
	assert.InDelta(t, 0.0, wh.RegularHours, 1e-9)
}

func TestAggregateWorkHoursMonthlyThresholdSpill(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	// Five days of 10 overtime hours each crosses the 45-hour monthly
	// threshold mid-month; the crossing day is split between the buckets.
	records := make([]attendance.Record, 0, 5)
	for _, date := range []string{"2026-06-01", "2026-06-02", "2026-06-03", "2026-06-04", "2026-06-05"} {
		rec := workDay(date, "09:00", "18:00")
		rec.ActualWorkHours = f64Ptr(8)
		rec.OvertimeHours = f64Ptr(10)
		records = append(records, rec)
	}

	wh, err := AggregateWorkHours(records, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 45.0, wh.OvertimeHours, 1e-9)
	assert.InDelta(t, 5.0, wh.ExcessOvertimeHours, 1e-9)
	assert.InDelta(t, 40.0, wh.RegularHours, 1e-9)
}

func TestAggregateWorkHoursOrderInsensitive(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	long := workDay("2026-06-01", "09:00", "18:00")
	long.ActualWorkHours = f64Ptr(8)
	long.OvertimeHours = f64Ptr(44)
	short := workDay("2026-06-02", "09:00", "18:00")
	short.ActualWorkHours = f64Ptr(8)
	short.OvertimeHours = f64Ptr(2)

	// The threshold split depends on processing order, so the aggregator
	// sorts by date before folding; input permutation must not matter.
	forward, err := AggregateWorkHours([]attendance.Record{long, short}, cfg)
	require.NoError(t, err)
	backward, err := AggregateWorkHours([]attendance.Record{short, long}, cfg)
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
	assert.InDelta(t, 45.0, forward.OvertimeHours, 1e-9)
	assert.InDelta(t, 1.0, forward.ExcessOvertimeHours, 1e-9)
}

func TestAggregateWorkHoursHolidayExclusivity(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	rec := workDay("2026-06-07", "09:00", "20:00")
	rec.IsHoliday = true

	wh, err := AggregateWorkHours([]attendance.Record{rec}, cfg)
	require.NoError(t, err)

	// Holiday hours never leak into the regular or overtime buckets.
	assert.InDelta(t, 10.0, wh.HolidayHours, 1e-9)
	assert.InDelta(t, 0.0, wh.RegularHours, 1e-9)
	assert.InDelta(t, 0.0, wh.OvertimeHours, 1e-9)
	assert.InDelta(t, 10.0, wh.TotalHours, 1e-9)
}

func TestAggregateWorkHoursHolidayNightShift(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	rec := workDay("2026-06-07", "22:00", "03:00")
	rec.IsHoliday = true

	wh, err := AggregateWorkHours([]attendance.Record{rec}, cfg)
	require.NoError(t, err)

	// Late night stacks on top of the holiday bucket.
	assert.InDelta(t, 4.0, wh.HolidayHours, 1e-9)
	assert.InDelta(t, 5.0, wh.LateNightHours, 1e-9)
}

func TestAggregateWorkHoursRoundsToOneDecimal(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	// 09:00-18:20 minus the break is 8h20m = 8.3333... hours.
	wh, err := AggregateWorkHours([]attendance.Record{workDay("2026-06-01", "09:00", "18:20")}, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 8.3, wh.TotalHours, 1e-9)
	assert.InDelta(t, 8.0, wh.RegularHours, 1e-9)
	assert.InDelta(t, 0.3, wh.OvertimeHours, 1e-9)
}

func TestAggregateWorkHoursIdempotent(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	records := []attendance.Record{
		workDay("2026-06-01", "08:30", "22:15"),
		workDay("2026-06-02", "09:00", "18:00"),
	}

	first, err := AggregateWorkHours(records, cfg)
	require.NoError(t, err)
	second, err := AggregateWorkHours(records, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculatePayrollHourly(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	wh := payroll.WorkHours{
		RegularHours:  8,
		OvertimeHours: 1,
		TotalHours:    9,
	}
	wage := payroll.StaffWage{HourlyRate: decPtr(1500)}

	calc := CalculatePayroll("staff-1", "山田 太郎", "2026-06", wh, wage, nil, cfg)

	assertYen(t, 12000, calc.BaseSalary, "base salary")
	assertYen(t, 1875, calc.OvertimePay, "overtime pay") // 1 x 1500 x 1.25
	assertYen(t, 13875, calc.GrossPay, "gross pay")
	assertYen(t, 13875, calc.NetPay, "net pay")
	assert.Equal(t, "2026-06", calc.Month)
}

func TestCalculatePayrollPremiumBuckets(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	wh := payroll.WorkHours{
		ExcessOvertimeHours: 2,
		LateNightHours:      2,
		HolidayHours:        3,
	}
	wage := payroll.StaffWage{HourlyRate: decPtr(1000)}

	calc := CalculatePayroll("staff-1", "山田 太郎", "2026-06", wh, wage, nil, cfg)

	assertYen(t, 3000, calc.ExcessOvertimePay, "excess overtime pay") // 2 x 1000 x 1.50
	// The late-night premium is the 25% surcharge alone; those hours were
	// already paid through their base bucket.
	assertYen(t, 500, calc.LateNightPay, "late night pay")
	assertYen(t, 4050, calc.HolidayPay, "holiday pay") // 3 x 1000 x 1.35
}

func TestCalculatePayrollMonthlySalary(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	wh := payroll.WorkHours{RegularHours: 160, OvertimeHours: 10, TotalHours: 170}
	wage := payroll.StaffWage{
		MonthlySalary: decPtr(300000),
		HourlyRate:    decPtr(2000),
	}

	calc := CalculatePayroll("staff-1", "山田 太郎", "2026-06", wh, wage, nil, cfg)

	// Fixed salary replaces the priced regular bucket; overtime is still
	// priced from the hourly rate.
	assertYen(t, 300000, calc.BaseSalary, "base salary")
	assertYen(t, 25000, calc.OvertimePay, "overtime pay") // 10 x 2000 x 1.25
	assertYen(t, 325000, calc.GrossPay, "gross pay")
}

func TestCalculatePayrollDefaultHourlyRate(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	wh := payroll.WorkHours{RegularHours: 8, TotalHours: 8}

	calc := CalculatePayroll("staff-1", "山田 太郎", "2026-06", wh, payroll.StaffWage{}, nil, cfg)

	assertYen(t, 9600, calc.BaseSalary, "base salary") // 8 x 1200
	assert.True(t, calc.HourlyRate.Equal(cfg.DefaultHourlyRate))
}

func TestCalculatePayrollCustomItems(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	wh := payroll.WorkHours{RegularHours: 160, TotalHours: 160}
	wage := payroll.StaffWage{HourlyRate: decPtr(1200)}
	items := []payroll.CustomItem{
		{ID: "1", Name: "通勤手当", Amount: decimal.NewFromInt(10000), Type: payroll.ItemTypeAllowance},
		{ID: "2", Name: "社宅控除", Amount: decimal.NewFromInt(25000), Type: payroll.ItemTypeDeduction},
		{ID: "3", Name: "資格手当", Amount: decimal.NewFromInt(5000), Type: payroll.ItemTypeAllowance},
	}

	calc := CalculatePayroll("staff-1", "山田 太郎", "2026-06", wh, wage, items, cfg)

	assertYen(t, 192000, calc.BaseSalary, "base salary")
	assertYen(t, 15000, calc.TotalAllowance, "total allowance")
	assertYen(t, 25000, calc.TotalDeduction, "total deduction")
	assertYen(t, 207000, calc.GrossPay, "gross pay")
	assertYen(t, 182000, calc.NetPay, "net pay")

	// Gross and net identities.
	sum := calc.BaseSalary.
		Add(calc.OvertimePay).
		Add(calc.ExcessOvertimePay).
		Add(calc.LateNightPay).
		Add(calc.HolidayPay).
		Add(calc.TotalAllowance)
	assert.True(t, calc.GrossPay.Equal(sum))
	assert.True(t, calc.NetPay.Equal(calc.GrossPay.Sub(calc.TotalDeduction)))
}

func TestCalculatePayrollFractionalHoursRounding(t *testing.T) {
	cfg := settings.DefaultRateConfig()
	// 0.3h x 1500 x 1.25 = 562.5, rounds half away from zero to 563 yen.
	wh := payroll.WorkHours{OvertimeHours: 0.3}
	wage := payroll.StaffWage{HourlyRate: decPtr(1500)}

	calc := CalculatePayroll("staff-1", "山田 太郎", "2026-06", wh, wage, nil, cfg)

	assertYen(t, 563, calc.OvertimePay, "overtime pay")
}
