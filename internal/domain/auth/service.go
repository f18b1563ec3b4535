package auth

import (
	"context"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// LoginWithGoogle exchanges a verified Google identity for a session
	// token. The account must already exist; sign-up is admin-driven.
	LoginWithGoogle(ctx context.Context, email, googleID string) (TokenResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	Me(ctx context.Context, userID string) (user.UserResponse, error)
}
