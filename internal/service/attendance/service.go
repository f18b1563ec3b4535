package attendance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/attendance"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/settings"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/staff"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/database"
	"github.com/seika-clinic/attendance-backend-go/internal/repository/postgresql"
	"github.com/seika-clinic/attendance-backend-go/internal/service/worktime"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	staff.StaffRepository
	settingsService settings.SettingsService
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
	settingsService settings.SettingsService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		StaffRepository:      staffRepo,
		settingsService:      settingsService,
	}
}

// Save implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Save(ctx context.Context, req attendance.SaveAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := a.StaffRepository.GetByID(ctx, req.StaffID); err != nil {
		return attendance.AttendanceResponse{}, attendance.ErrStaffNotFound
	}

	cfg, err := a.settingsService.Get(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.buildRecord(req, cfg)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	saved, err := a.AttendanceRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}
	return toResponse(saved), nil
}

// BulkSave implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) BulkSave(ctx context.Context, req attendance.BulkSaveAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cfg, err := a.settingsService.Get(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(req.Entries))
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		for _, entry := range req.Entries {
			entry.Date = req.Date
			if _, err := a.StaffRepository.GetByID(txCtx, entry.StaffID); err != nil {
				return attendance.ErrStaffNotFound
			}
			record, err := a.buildRecord(entry, cfg)
			if err != nil {
				return err
			}
			saved, err := a.AttendanceRepository.Upsert(txCtx, record)
			if err != nil {
				return fmt.Errorf("failed to save attendance for staff %s: %w", entry.StaffID, err)
			}
			responses = append(responses, toResponse(saved))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// Analyze implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Analyze(ctx context.Context, req attendance.AnalyzeWorkRequest) (attendance.WorkAnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WorkAnalysisResponse{}, err
	}

	cfg, err := a.settingsService.Get(ctx)
	if err != nil {
		return attendance.WorkAnalysisResponse{}, err
	}

	analysis, err := worktime.AnalyzeDay(req.StartTime, req.EndTime, cfg)
	if err != nil {
		return attendance.WorkAnalysisResponse{}, attendance.ErrInvalidClockTime
	}
	if analysis == nil {
		return attendance.WorkAnalysisResponse{}, attendance.ErrMissingClockTimes
	}

	return attendance.WorkAnalysisResponse{
		StaffID:                req.StaffID,
		Date:                   req.Date,
		StartTime:              req.StartTime,
		EndTime:                req.EndTime,
		EarlyOvertime:          analysis.EarlyOvertime,
		Overtime:               analysis.Overtime,
		EarlyLeave:             analysis.EarlyLeave,
		LateNightOvertimeHours: analysis.LateNightHours,
	}, nil
}

// ListByDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

// ListByRange implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByRange(ctx context.Context, start, end string) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

// ListByStaffMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByStaffMonth(ctx context.Context, staffID, month string) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByStaffMonth(ctx, staffID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toResponses(records), nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, staffID, date string) error {
	if _, err := a.AttendanceRepository.GetByStaffAndDate(ctx, staffID, date); err != nil {
		return err
	}
	return a.AttendanceRepository.Delete(ctx, staffID, date)
}

// buildRecord assembles the record to persist, running the day analyzer when
// both clock times are present and clearing stale annotations when not.
func (a *AttendanceServiceImpl) buildRecord(req attendance.SaveAttendanceRequest, cfg settings.RateConfig) (attendance.Record, error) {
	record := attendance.Record{
		ID:              uuid.NewString(),
		StaffID:         req.StaffID,
		Date:            req.Date,
		BreakMinutes:    req.BreakMinutes,
		ActualWorkHours: req.ActualWorkHours,
		OvertimeHours:   req.OvertimeHours,
		IsHoliday:       req.IsHoliday,
	}
	if req.StartTime != "" {
		record.StartTime = &req.StartTime
	}
	if req.EndTime != "" {
		record.EndTime = &req.EndTime
	}

	analysis, err := worktime.AnalyzeDay(req.StartTime, req.EndTime, cfg)
	if err != nil {
		return attendance.Record{}, attendance.ErrInvalidClockTime
	}
	if analysis != nil {
		record.EarlyOvertime = &analysis.EarlyOvertime
		record.Overtime = &analysis.Overtime
		record.EarlyLeave = &analysis.EarlyLeave
		record.LateNightOvertimeHours = &analysis.LateNightHours
	}
	return record, nil
}

func toResponse(r attendance.Record) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                     r.ID,
		StaffID:                r.StaffID,
		Date:                   r.Date,
		StartTime:              r.StartTime,
		EndTime:                r.EndTime,
		BreakMinutes:           r.BreakMinutes,
		ActualWorkHours:        r.ActualWorkHours,
		OvertimeHours:          r.OvertimeHours,
		IsHoliday:              r.IsHoliday,
		EarlyOvertime:          r.EarlyOvertime,
		Overtime:               r.Overtime,
		EarlyLeave:             r.EarlyLeave,
		LateNightOvertimeHours: r.LateNightOvertimeHours,
	}
	if r.StaffName != nil {
		resp.StaffName = *r.StaffName
	}
	return resp
}

func toResponses(records []attendance.Record) []attendance.AttendanceResponse {
	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, toResponse(r))
	}
	return result
}
