package attendance

import "context"

// AttendanceService defines business logic for attendance entry and the
// per-day work analysis.
type AttendanceService interface {
	// Save upserts one staff member's record for a day, runs the day analyzer
	// and persists its annotations with the record.
	Save(ctx context.Context, req SaveAttendanceRequest) (AttendanceResponse, error)

	// BulkSave saves a whole day's entries in one transaction.
	BulkSave(ctx context.Context, req BulkSaveAttendanceRequest) ([]AttendanceResponse, error)

	// Analyze runs the day classifier without persisting anything; the entry
	// form calls it while the operator is typing.
	Analyze(ctx context.Context, req AnalyzeWorkRequest) (WorkAnalysisResponse, error)

	// ListByDate returns all records for one day.
	ListByDate(ctx context.Context, date string) ([]AttendanceResponse, error)

	// ListByRange returns records with start <= date <= end.
	ListByRange(ctx context.Context, start, end string) ([]AttendanceResponse, error)

	// ListByStaffMonth returns one staff member's records for a month, date
	// ascending.
	ListByStaffMonth(ctx context.Context, staffID, month string) ([]AttendanceResponse, error)

	// Delete removes the record for (staff_id, date).
	Delete(ctx context.Context, staffID, date string) error
}
