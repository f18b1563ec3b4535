package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetDashboard returns combined dashboard data, one query per section, run
// in parallel.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, date, month string) (*dashboard.DashboardResponse, error) {
	now := time.Now()
	if _, err := time.Parse("2006-01-02", date); err != nil {
		date = now.Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		month = now.Format("2006-01")
	}

	var (
		staffCounts *dashboard.StaffCounts
		dayCounts   *dashboard.DayAttendanceCounts
		monthTotals *dashboard.MonthWorkTotals
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		staffCounts, err = s.GetStaffCounts(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		dayCounts, err = s.GetDayAttendanceCounts(gCtx, date)
		return err
	})
	g.Go(func() error {
		var err error
		monthTotals, err = s.GetMonthWorkTotals(gCtx, month)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		StaffSummary: dashboard.StaffSummaryResponse{
			Total:     staffCounts.Total,
			FullTime:  staffCounts.FullTime,
			Contract:  staffCounts.Contract,
			PartTime:  staffCounts.PartTime,
			Temporary: staffCounts.Temporary,
		},
		TodayAttendance: dashboard.TodayAttendanceResponse{
			Date:          date,
			Recorded:      dayCounts.Recorded,
			Working:       dayCounts.Working,
			EarlyOvertime: dayCounts.EarlyOvertime,
			Overtime:      dayCounts.Overtime,
			EarlyLeave:    dayCounts.EarlyLeave,
			HolidayWork:   dayCounts.HolidayWork,
		},
		MonthlyWork: dashboard.MonthlyWorkResponse{
			Month:             month,
			RecordedDays:      monthTotals.RecordedDays,
			TotalWorkHours:    monthTotals.TotalWorkHours,
			TotalOvertimeHrs:  monthTotals.TotalOvertimeHrs,
			PayrollCalculated: monthTotals.PayrollCalculated,
		},
	}, nil
}
