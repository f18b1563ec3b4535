package attendance

import "context"

// AttendanceRepository defines data access for attendance records. Records
// are addressed by the compound natural key (staff_id, date), never by a
// surrogate sequence.
type AttendanceRepository interface {
	// Upsert inserts or replaces the record for (staff_id, date).
	Upsert(ctx context.Context, record Record) (Record, error)

	// GetByStaffAndDate returns the record for one staff member on one day.
	GetByStaffAndDate(ctx context.Context, staffID, date string) (Record, error)

	// ListByDate returns every record for one day.
	ListByDate(ctx context.Context, date string) ([]Record, error)

	// ListByStaffMonth returns one staff member's records for a calendar
	// month ("YYYY-MM"), ordered by date ascending.
	ListByStaffMonth(ctx context.Context, staffID, month string) ([]Record, error)

	// ListByRange returns all records with start <= date <= end, ordered by
	// date then staff.
	ListByRange(ctx context.Context, start, end string) ([]Record, error)

	// Delete removes the record for (staff_id, date).
	Delete(ctx context.Context, staffID, date string) error
}
