package payroll

import "errors"

var (
	ErrCalculationNotFound = errors.New("payroll calculation not found")
	ErrInvalidMonth        = errors.New("invalid payroll month")
	ErrNoAttendanceRecords = errors.New("no attendance records for the month")
	ErrInvalidItemType     = errors.New("invalid custom item type")
	ErrStaffNotFound       = errors.New("staff member not found")
)
