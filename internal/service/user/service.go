package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

// Create implements user.UserService.
func (u *UserServiceImpl) Create(ctx context.Context, req *user.CreateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	exists, err := u.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.User{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	created, err := u.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &passwordHash,
		Role:         user.Role(req.Role),
		StaffID:      req.StaffID,
	})
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// List implements user.UserService.
func (u *UserServiceImpl) List(ctx context.Context) ([]user.User, error) {
	return u.UserRepository.List(ctx)
}

// UpdateRole implements user.UserService.
func (u *UserServiceImpl) UpdateRole(ctx context.Context, actorID, id string, req *user.UpdateUserRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	target, err := u.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Demoting the final system-admin would lock everyone out of account
	// management.
	if target.Role == user.RoleSystemAdmin && user.Role(req.Role) != user.RoleSystemAdmin {
		count, err := u.UserRepository.CountByRole(ctx, user.RoleSystemAdmin)
		if err != nil {
			return fmt.Errorf("failed to count system admins: %w", err)
		}
		if count <= 1 {
			return user.ErrCannotDemoteLastAdmin
		}
	}

	return u.UserRepository.UpdateRole(ctx, id, user.Role(req.Role))
}

// Delete implements user.UserService.
func (u *UserServiceImpl) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return user.ErrCannotDeleteSelf
	}

	target, err := u.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if target.Role == user.RoleSystemAdmin {
		count, err := u.UserRepository.CountByRole(ctx, user.RoleSystemAdmin)
		if err != nil {
			return fmt.Errorf("failed to count system admins: %w", err)
		}
		if count <= 1 {
			return user.ErrCannotDemoteLastAdmin
		}
	}

	return u.UserRepository.Delete(ctx, id)
}
