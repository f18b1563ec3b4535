package report

import "errors"

var (
	ErrInvalidMonth    = errors.New("month must be in YYYY-MM format")
	ErrNothingToExport = errors.New("no data to export for the requested month")
)
