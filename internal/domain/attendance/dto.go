package attendance

import (
	"strconv"

	"github.com/seika-clinic/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type SaveAttendanceRequest struct {
	StaffID         string   `json:"staff_id"`
	Date            string   `json:"date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	BreakMinutes    *int     `json:"break_minutes"`
	ActualWorkHours *float64 `json:"actual_work_hours"`
	OvertimeHours   *float64 `json:"overtime_hours"`
	IsHoliday       bool     `json:"is_holiday"`
}

func (r *SaveAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.StartTime != "" && !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:mm format",
		})
	}

	if r.EndTime != "" && !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:mm format",
		})
	}

	// An end at or before the start is a data-entry mistake on the save path.
	// The late-night helper would treat end < start as a midnight-crossing
	// shift, but operators enter day shifts here and the form blocks the save.
	if validator.IsValidClockTime(r.StartTime) && validator.IsValidClockTime(r.EndTime) &&
		r.EndTime <= r.StartTime {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be later than start_time",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkSaveAttendanceRequest struct {
	Date    string                 `json:"date"`
	Entries []SaveAttendanceRequest `json:"entries"`
}

func (r *BulkSaveAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	seen := make(map[string]bool)
	for i, entry := range r.Entries {
		entry.Date = r.Date
		if err := entry.Validate(); err != nil {
			if vErrs, ok := err.(validator.ValidationErrors); ok {
				for _, ve := range vErrs {
					errs = append(errs, validator.ValidationError{
						Field:   "entries[" + strconv.Itoa(i) + "]." + ve.Field,
						Message: ve.Message,
					})
				}
			}
		}
		if seen[entry.StaffID] {
			errs = append(errs, validator.ValidationError{
				Field:   "entries[" + strconv.Itoa(i) + "].staff_id",
				Message: "duplicate staff entry for the same day",
			})
		}
		seen[entry.StaffID] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AnalyzeWorkRequest struct {
	StaffID   string `json:"staff_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *AnalyzeWorkRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:mm format",
		})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                     string   `json:"id"`
	StaffID                string   `json:"staff_id"`
	StaffName              string   `json:"staff_name,omitempty"`
	Date                   string   `json:"date"`
	StartTime              *string  `json:"start_time"`
	EndTime                *string  `json:"end_time"`
	BreakMinutes           *int     `json:"break_minutes"`
	ActualWorkHours        *float64 `json:"actual_work_hours"`
	OvertimeHours          *float64 `json:"overtime_hours"`
	IsHoliday              bool     `json:"is_holiday"`
	EarlyOvertime          *bool    `json:"early_overtime"`
	Overtime               *bool    `json:"overtime"`
	EarlyLeave             *bool    `json:"early_leave"`
	LateNightOvertimeHours *float64 `json:"late_night_overtime_hours"`
}

type WorkAnalysisResponse struct {
	StaffID                string  `json:"staff_id"`
	Date                   string  `json:"date"`
	StartTime              string  `json:"start_time"`
	EndTime                string  `json:"end_time"`
	EarlyOvertime          bool    `json:"early_overtime"`
	Overtime               bool    `json:"overtime"`
	EarlyLeave             bool    `json:"early_leave"`
	LateNightOvertimeHours float64 `json:"late_night_overtime_hours"`
}
