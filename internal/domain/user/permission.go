package user

type Permission string

const (
	// Staff Management
	PermissionStaffView   Permission = "staff.view"
	PermissionStaffManage Permission = "staff.manage"

	// Attendance Management
	PermissionAttendanceView   Permission = "attendance.view"
	PermissionAttendanceManage Permission = "attendance.manage"

	// Payroll Management
	PermissionPayrollView   Permission = "payroll.view"
	PermissionPayrollManage Permission = "payroll.manage"

	// System Settings
	PermissionSettingsView   Permission = "settings.view"
	PermissionSettingsManage Permission = "settings.manage"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSystemAdmin: {
		// System admin has all permissions
		PermissionStaffView,
		PermissionStaffManage,
		PermissionAttendanceView,
		PermissionAttendanceManage,
		PermissionPayrollView,
		PermissionPayrollManage,
		PermissionSettingsView,
		PermissionSettingsManage,
		PermissionReportsView,
		PermissionUserManage,
	},
	RoleAdmin: {
		// Admin runs day-to-day attendance, payroll and rate configuration
		PermissionStaffView,
		PermissionStaffManage,
		PermissionAttendanceView,
		PermissionAttendanceManage,
		PermissionPayrollView,
		PermissionPayrollManage,
		PermissionSettingsView,
		PermissionSettingsManage,
		PermissionReportsView,
	},
	RoleUser: {
		// Staff accounts see the schedule, nothing else
		PermissionStaffView,
		PermissionAttendanceView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
