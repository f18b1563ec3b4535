package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
	ErrInvalidPasswordLength   = errors.New("password must be at least 8 characters")
	ErrInvalidRole             = errors.New("role must be system-admin, admin or user")
	ErrInvalidOAuthProvider    = errors.New("invalid oauth provider")
	ErrOAuthProviderIDExists   = errors.New("oauth provider id already registered")
	ErrAdminAccessRequired     = errors.New("admin access required")
	ErrSystemAdminRequired     = errors.New("system-admin access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrCannotDeleteSelf        = errors.New("cannot delete your own account")
	ErrCannotDemoteLastAdmin   = errors.New("cannot remove the last system-admin")
)
