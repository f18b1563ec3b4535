package postgresql

import (
	"context"
	"fmt"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/dashboard"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetStaffCounts(ctx context.Context) (*dashboard.StaffCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE employment_type = 'full-time') AS full_time,
			COUNT(*) FILTER (WHERE employment_type = 'contract') AS contract,
			COUNT(*) FILTER (WHERE employment_type = 'part-time') AS part_time,
			COUNT(*) FILTER (WHERE employment_type = 'temporary') AS temporary
		FROM staff
		WHERE deleted_at IS NULL
	`

	var counts dashboard.StaffCounts
	err := q.QueryRow(ctx, query).Scan(
		&counts.Total, &counts.FullTime, &counts.Contract, &counts.PartTime, &counts.Temporary,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff counts: %w", err)
	}
	return &counts, nil
}

func (r *dashboardRepository) GetDayAttendanceCounts(ctx context.Context, date string) (*dashboard.DayAttendanceCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS recorded,
			COUNT(*) FILTER (WHERE start_time IS NOT NULL AND end_time IS NULL) AS working,
			COUNT(*) FILTER (WHERE early_overtime) AS early_overtime,
			COUNT(*) FILTER (WHERE overtime) AS overtime,
			COUNT(*) FILTER (WHERE early_leave) AS early_leave,
			COUNT(*) FILTER (WHERE is_holiday) AS holiday_work
		FROM attendance_records
		WHERE date = $1
	`

	var counts dashboard.DayAttendanceCounts
	err := q.QueryRow(ctx, query, date).Scan(
		&counts.Recorded, &counts.Working, &counts.EarlyOvertime,
		&counts.Overtime, &counts.EarlyLeave, &counts.HolidayWork,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get day attendance counts: %w", err)
	}
	return &counts, nil
}

func (r *dashboardRepository) GetMonthWorkTotals(ctx context.Context, month string) (*dashboard.MonthWorkTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM attendance_records WHERE date LIKE $1 || '-%') AS recorded_days,
			(SELECT COALESCE(SUM(actual_work_hours), 0) FROM attendance_records WHERE date LIKE $1 || '-%') AS total_work_hours,
			(SELECT COALESCE(SUM(overtime_hours), 0) FROM attendance_records WHERE date LIKE $1 || '-%') AS total_overtime_hours,
			(SELECT COUNT(*) FROM payroll_calculations WHERE month = $1) AS payroll_calculated
	`

	var totals dashboard.MonthWorkTotals
	err := q.QueryRow(ctx, query, month).Scan(
		&totals.RecordedDays, &totals.TotalWorkHours, &totals.TotalOvertimeHrs, &totals.PayrollCalculated,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get month work totals: %w", err)
	}
	return &totals, nil
}
