package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/attendance"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/payroll"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/settings"
	"github.com/seika-clinic/attendance-backend-go/internal/service/worktime"
)

// AttendanceJobs holds the nightly maintenance jobs. Analyzer annotations
// and saved payroll totals are derived data; rate configuration edits do not
// rewrite them in place, so these jobs bring recent rows back in sync.
type AttendanceJobs struct {
	attendanceRepo  attendance.AttendanceRepository
	payrollRepo     payroll.PayrollRepository
	payrollService  payroll.PayrollService
	settingsService settings.SettingsService
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	payrollRepo payroll.PayrollRepository,
	payrollService payroll.PayrollService,
	settingsService settings.SettingsService,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		payrollRepo:     payrollRepo,
		payrollService:  payrollService,
		settingsService: settingsService,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reannotate_recent_attendance", 1*time.Hour, j.ReannotateRecentAttendance)
	scheduler.AddJob("refresh_saved_payrolls", 1*time.Hour, j.RefreshSavedPayrolls)
}

// ReannotateRecentAttendance re-runs the day analyzer over the last week of
// records with the current rate configuration.
func (j *AttendanceJobs) ReannotateRecentAttendance(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 local)
	if time.Now().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting attendance re-annotation job")

	cfg, err := j.settingsService.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load rate configuration: %w", err)
	}

	end := time.Now().Format("2006-01-02")
	start := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	records, err := j.attendanceRepo.ListByRange(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to list recent attendance: %w", err)
	}

	updated := 0
	for _, record := range records {
		if record.StartTime == nil || record.EndTime == nil {
			continue
		}

		analysis, err := worktime.AnalyzeDay(*record.StartTime, *record.EndTime, cfg)
		if err != nil || analysis == nil {
			continue
		}

		if annotationsMatch(record, analysis) {
			continue
		}

		record.EarlyOvertime = &analysis.EarlyOvertime
		record.Overtime = &analysis.Overtime
		record.EarlyLeave = &analysis.EarlyLeave
		record.LateNightOvertimeHours = &analysis.LateNightHours
		if _, err := j.attendanceRepo.Upsert(ctx, record); err != nil {
			slog.Warn("Cron: Failed to update annotations", "staff_id", record.StaffID, "date", record.Date, "error", err)
			continue
		}
		updated++
	}

	slog.Info("Cron: Attendance re-annotation finished", "scanned", len(records), "updated", updated)
	return nil
}

// RefreshSavedPayrolls recomputes every stored calculation for the current
// month so attendance edits made during the day show up in saved totals.
func (j *AttendanceJobs) RefreshSavedPayrolls(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 local)
	if time.Now().Hour() != 0 {
		return nil
	}

	month := time.Now().Format("2006-01")
	slog.Info("Cron: Starting payroll refresh job", "month", month)

	stored, err := j.payrollRepo.ListByMonth(ctx, month)
	if err != nil {
		return fmt.Errorf("failed to list stored calculations: %w", err)
	}

	refreshed := 0
	for _, calc := range stored {
		if _, err := j.payrollService.Save(ctx, month, calc.StaffID); err != nil {
			slog.Warn("Cron: Failed to refresh calculation", "staff_id", calc.StaffID, "month", month, "error", err)
			continue
		}
		refreshed++
	}

	slog.Info("Cron: Payroll refresh finished", "stored", len(stored), "refreshed", refreshed)
	return nil
}

func annotationsMatch(record attendance.Record, analysis *worktime.DayAnalysis) bool {
	if record.EarlyOvertime == nil || *record.EarlyOvertime != analysis.EarlyOvertime {
		return false
	}
	if record.Overtime == nil || *record.Overtime != analysis.Overtime {
		return false
	}
	if record.EarlyLeave == nil || *record.EarlyLeave != analysis.EarlyLeave {
		return false
	}
	if record.LateNightOvertimeHours == nil || *record.LateNightOvertimeHours != analysis.LateNightHours {
		return false
	}
	return true
}
