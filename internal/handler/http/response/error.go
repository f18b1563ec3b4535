package response

import (
	"errors"
	"net/http"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/attendance"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/auth"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/payroll"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/report"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/settings"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/staff"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/user"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrPasswordNotSet):
		Unauthorized(w, "Account has no password, sign in with Google")
	case errors.Is(err, auth.ErrGoogleNotLinked):
		Forbidden(w, "Google account is not linked to any user")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)
	case errors.Is(err, user.ErrCannotDemoteLastAdmin):
		Conflict(w, "Cannot remove the last system-admin")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrSystemAdminRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrStaffNotFound):
		NotFound(w, "Staff member not found for attendance record")
	case errors.Is(err, attendance.ErrEndBeforeStart),
		errors.Is(err, attendance.ErrInvalidClockTime),
		errors.Is(err, attendance.ErrMissingClockTimes),
		errors.Is(err, attendance.ErrDuplicateStaffInDay):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrCalculationNotFound):
		NotFound(w, "Payroll calculation not found")
	case errors.Is(err, payroll.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, payroll.ErrInvalidMonth),
		errors.Is(err, payroll.ErrInvalidItemType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrNoAttendanceRecords):
		NotFound(w, "No attendance records for the requested month")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "System settings not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrNothingToExport):
		NotFound(w, "No data to export for the requested month")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
