package staff

import "context"

type StaffRepository interface {
	Create(ctx context.Context, newStaff Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Staff, error)
	ExistsByEmployeeCode(ctx context.Context, employeeCode string, excludeID *string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]Staff, error)
	Update(ctx context.Context, updated Staff) (Staff, error)
	SoftDelete(ctx context.Context, id string) error
}

// ListFilter narrows List results. Zero value lists every non-deleted
// staff member.
type ListFilter struct {
	Department *string
	// ActiveOn keeps staff employed on the given date (hired on or before
	// it, not yet retired). YYYY-MM-DD.
	ActiveOn *string
}
