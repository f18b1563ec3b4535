package user

import "time"

type Role string

const (
	RoleSystemAdmin Role = "system-admin" // Manages accounts and system settings
	RoleAdmin       Role = "admin"        // Runs attendance and payroll operations
	RoleUser        Role = "user"         // Read-only clinic staff account
)

type User struct {
	ID              string
	Email           string
	Name            string
	PasswordHash    *string
	Role            Role
	StaffID         *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsSystemAdmin checks if the role manages accounts and settings
func (r Role) IsSystemAdmin() bool {
	return r == RoleSystemAdmin
}

// IsAdmin checks if the role is admin or system-admin
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSystemAdmin
}

// IsSystemAdmin checks if user manages accounts and settings
func (u *User) IsSystemAdmin() bool {
	return u.Role.IsSystemAdmin()
}

// IsAdmin checks if user is admin or system-admin
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// CanManageUsers checks if user can create and delete accounts
func (u *User) CanManageUsers() bool {
	return u.IsSystemAdmin()
}

// CanRunPayroll checks if user can calculate and save payroll
func (u *User) CanRunPayroll() bool {
	return u.IsAdmin()
}
