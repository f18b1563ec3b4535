package user

import "context"

type UserService interface {
	Create(ctx context.Context, req *CreateUserRequest) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, actorID, id string, req *UpdateUserRoleRequest) error
	Delete(ctx context.Context, actorID, id string) error
}
