package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrGoogleNotLinked    = errors.New("google account is not linked to any user")
	ErrPasswordNotSet     = errors.New("account has no password, sign in with google")
)
