package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/attendance"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/payroll"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	payroll.PayrollRepository
	attendance.AttendanceRepository
}

func NewReportService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
) report.ReportService {
	return &ReportServiceImpl{
		PayrollRepository:    payrollRepo,
		AttendanceRepository: attendanceRepo,
	}
}

// ExportPayrollMonth implements report.ReportService.
func (s *ReportServiceImpl) ExportPayrollMonth(ctx context.Context, month string) ([]byte, string, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, "", report.ErrInvalidMonth
	}

	calcs, err := s.PayrollRepository.ListByMonth(ctx, month)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list payroll: %w", err)
	}
	if len(calcs) == 0 {
		return nil, "", report.ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{
		"社員番号", "氏名", "通常時間", "残業時間", "超過残業時間", "深夜時間", "休日時間",
		"基本給", "残業代", "超過残業代", "深夜手当", "休日手当", "手当合計", "控除合計", "総支給額", "差引支給額",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, calc := range calcs {
		values := []interface{}{
			calc.StaffID,
			calc.StaffName,
			calc.WorkHours.RegularHours,
			calc.WorkHours.OvertimeHours,
			calc.WorkHours.ExcessOvertimeHours,
			calc.WorkHours.LateNightHours,
			calc.WorkHours.HolidayHours,
			calc.BaseSalary.IntPart(),
			calc.OvertimePay.IntPart(),
			calc.ExcessOvertimePay.IntPart(),
			calc.LateNightPay.IntPart(),
			calc.HolidayPay.IntPart(),
			calc.TotalAllowance.IntPart(),
			calc.TotalDeduction.IntPart(),
			calc.GrossPay.IntPart(),
			calc.NetPay.IntPart(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("payroll_%s.xlsx", month), nil
}

// ExportAttendanceMonth implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceMonth(ctx context.Context, month string) ([]byte, string, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, "", report.ErrInvalidMonth
	}
	end := start.AddDate(0, 1, -1)

	records, err := s.AttendanceRepository.ListByRange(ctx, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, "", fmt.Errorf("failed to list attendance: %w", err)
	}
	if len(records) == 0 {
		return nil, "", report.ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{"日付", "社員番号", "氏名", "出勤", "退勤", "休憩(分)", "実働時間", "残業時間", "休日"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, rec := range records {
		values := []interface{}{
			rec.Date,
			rec.StaffID,
			deref(rec.StaffName),
			deref(rec.StartTime),
			deref(rec.EndTime),
			derefInt(rec.BreakMinutes),
			derefFloat(rec.ActualWorkHours),
			derefFloat(rec.OvertimeHours),
			holidayMark(rec.IsHoliday),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("attendance_%s.xlsx", month), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func holidayMark(isHoliday bool) string {
	if isHoliday {
		return "休"
	}
	return ""
}
