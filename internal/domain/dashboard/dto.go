package dashboard

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	StaffSummary    StaffSummaryResponse    `json:"staff_summary"`
	TodayAttendance TodayAttendanceResponse `json:"today_attendance"`
	MonthlyWork     MonthlyWorkResponse     `json:"monthly_work"`
}

// StaffSummaryResponse contains staff headcounts by employment type
type StaffSummaryResponse struct {
	Total     int64 `json:"total"`
	FullTime  int64 `json:"full_time"`
	Contract  int64 `json:"contract"`
	PartTime  int64 `json:"part_time"`
	Temporary int64 `json:"temporary"`
}

// TodayAttendanceResponse represents today's clock-in situation
type TodayAttendanceResponse struct {
	Date          string `json:"date"` // YYYY-MM-DD
	Recorded      int64  `json:"recorded"`
	Working       int64  `json:"working"` // clocked in, not yet out
	EarlyOvertime int64  `json:"early_overtime"`
	Overtime      int64  `json:"overtime"`
	EarlyLeave    int64  `json:"early_leave"`
	HolidayWork   int64  `json:"holiday_work"`
}

// MonthlyWorkResponse summarizes the month's recorded hours
type MonthlyWorkResponse struct {
	Month             string  `json:"month"` // YYYY-MM
	RecordedDays      int64   `json:"recorded_days"`
	TotalWorkHours    float64 `json:"total_work_hours"`
	TotalOvertimeHrs  float64 `json:"total_overtime_hours"`
	PayrollCalculated int64   `json:"payroll_calculated"`
}
