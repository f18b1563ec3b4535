package payroll

import "context"

// PayrollRepository persists priced calculations keyed by (month, staff_id).
type PayrollRepository interface {
	// Upsert inserts or replaces the calculation for (month, staff_id).
	Upsert(ctx context.Context, calc Calculation) (Calculation, error)

	// GetByMonthAndStaff returns the stored calculation for one pair.
	GetByMonthAndStaff(ctx context.Context, month, staffID string) (Calculation, error)

	// ListByMonth returns every stored calculation for a month.
	ListByMonth(ctx context.Context, month string) ([]Calculation, error)

	// Delete removes the calculation for (month, staff_id).
	Delete(ctx context.Context, month, staffID string) error
}
