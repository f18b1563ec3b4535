package attendance

import "time"

// Record is one staff member's clock data for one calendar day. Exactly one
// record exists per (staff_id, date); saves are upserts on that natural key.
type Record struct {
	ID      string
	StaffID string
	Date    string // YYYY-MM-DD, local clinic time

	// Clock times in 24-hour "HH:mm". Nil or empty means "not worked" or
	// "not yet entered"; such records are skipped by payroll aggregation.
	StartTime *string
	EndTime   *string

	// Break in minutes. Nil falls back to the configured default at
	// aggregation time.
	BreakMinutes *int

	// Precomputed hours carried on the record. When both are present they
	// override on-the-fly computation from the clock times.
	ActualWorkHours *float64
	OvertimeHours   *float64

	IsHoliday bool

	// Analyzer annotations, written on save and cleared when a clock time is
	// removed. Advisory, for display only.
	EarlyOvertime          *bool
	Overtime               *bool
	EarlyLeave             *bool
	LateNightOvertimeHours *float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	StaffName *string
}
