package staff

import "context"

type StaffService interface {
	Create(ctx context.Context, req *CreateStaffRequest) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context, filter ListFilter) ([]Staff, error)
	Update(ctx context.Context, id string, req *UpdateStaffRequest) (Staff, error)
	Delete(ctx context.Context, id string) error
}
