package attendance

import "errors"

var (
	ErrRecordNotFound      = errors.New("attendance record not found")
	ErrEndBeforeStart      = errors.New("end time must be later than start time")
	ErrStaffNotFound       = errors.New("staff member not found for attendance record")
	ErrInvalidClockTime    = errors.New("invalid clock time")
	ErrMissingClockTimes   = errors.New("both start and end time are required")
	ErrDuplicateStaffInDay = errors.New("duplicate staff entry for the same day")
)
