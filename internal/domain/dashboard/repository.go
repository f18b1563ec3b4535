package dashboard

import "context"

// StaffCounts combines headcounts by employment type in single query
type StaffCounts struct {
	Total     int64
	FullTime  int64
	Contract  int64
	PartTime  int64
	Temporary int64
}

// DayAttendanceCounts combines the attendance flag counts for one day
type DayAttendanceCounts struct {
	Recorded      int64
	Working       int64
	EarlyOvertime int64
	Overtime      int64
	EarlyLeave    int64
	HolidayWork   int64
}

// MonthWorkTotals combines the month's recorded hour sums
type MonthWorkTotals struct {
	RecordedDays      int64
	TotalWorkHours    float64
	TotalOvertimeHrs  float64
	PayrollCalculated int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetStaffCounts returns headcounts by employment type in single query
	GetStaffCounts(ctx context.Context) (*StaffCounts, error)

	// GetDayAttendanceCounts returns flag counts for a day (YYYY-MM-DD)
	GetDayAttendanceCounts(ctx context.Context, date string) (*DayAttendanceCounts, error)

	// GetMonthWorkTotals returns hour sums for a month (YYYY-MM)
	GetMonthWorkTotals(ctx context.Context, month string) (*MonthWorkTotals, error)
}
