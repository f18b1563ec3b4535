package user

import (
	"testing"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleSystemAdmin, PermissionUserManage, true},
		{RoleSystemAdmin, PermissionSettingsManage, true},
		{RoleAdmin, PermissionPayrollManage, true},
		{RoleAdmin, PermissionSettingsManage, true},
		{RoleAdmin, PermissionUserManage, false},
		{RoleUser, PermissionStaffView, true},
		{RoleUser, PermissionAttendanceView, true},
		{RoleUser, PermissionAttendanceManage, false},
		{RoleUser, PermissionPayrollView, false},
		{Role("unknown"), PermissionStaffView, false},
		{Role(""), PermissionStaffView, false},
	}
	for _, c := range cases {
		got := HasPermission(c.role, c.permission)
		if got != c.want {
			t.Errorf("HasPermission(%q, %q) = %v, want %v", c.role, c.permission, got, c.want)
		}
	}
}

func TestSystemAdminHasEveryPermission(t *testing.T) {
	for role, permissions := range RolePermissions {
		for _, p := range permissions {
			if !HasPermission(RoleSystemAdmin, p) {
				t.Errorf("system-admin is missing %q held by %q", p, role)
			}
		}
	}
}
