package payroll

import "context"

// PayrollService computes and manages monthly payroll calculations.
type PayrollService interface {
	// Calculate aggregates a staff member's attendance for a month and
	// prices it. The result is not persisted; call Save for that.
	Calculate(ctx context.Context, month, staffID string) (Calculation, error)

	// CalculateAll runs Calculate for every active staff member. A staff
	// member whose calculation fails is skipped, not fatal.
	CalculateAll(ctx context.Context, month string) ([]Calculation, error)

	// Save recomputes and persists the calculation for (month, staff_id),
	// preserving any custom items already stored for the pair.
	Save(ctx context.Context, month, staffID string) (Calculation, error)

	// Get returns the stored calculation for (month, staff_id).
	Get(ctx context.Context, month, staffID string) (Calculation, error)

	// ListByMonth returns every stored calculation for a month.
	ListByMonth(ctx context.Context, month string) ([]Calculation, error)

	// Delete removes the stored calculation for (month, staff_id).
	Delete(ctx context.Context, month, staffID string) error

	// SetCustomItems replaces the custom allowance and deduction lines on
	// a stored calculation and recomputes its totals.
	SetCustomItems(ctx context.Context, req *SetCustomItemsRequest) (Calculation, error)
}
