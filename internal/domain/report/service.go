package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// ExportPayrollMonth renders the month's saved payroll calculations as
	// an Excel workbook.
	ExportPayrollMonth(ctx context.Context, month string) ([]byte, string, error)

	// ExportAttendanceMonth renders the month's attendance records as an
	// Excel workbook, one row per (staff, day).
	ExportAttendanceMonth(ctx context.Context, month string) ([]byte, string, error)
}
