package user

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByOAuthProviderID(ctx context.Context, provider, providerID string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	LinkGoogleAccount(ctx context.Context, googleID, email string) (User, error)
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role Role) (int, error)
}
