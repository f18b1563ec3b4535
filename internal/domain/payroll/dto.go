package payroll

import (
	"strconv"

	"github.com/seika-clinic/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateRequest struct {
	Month   string `json:"month"` // YYYY-MM
	StaffID string `json:"staff_id"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CustomItemRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
}

type SetCustomItemsRequest struct {
	Month   string              `json:"month"`
	StaffID string              `json:"staff_id"`
	Items   []CustomItemRequest `json:"items"`
}

func (r *SetCustomItemsRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	for i, item := range r.Items {
		if validator.IsEmpty(item.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "items[" + strconv.Itoa(i) + "].name",
				Message: "name is required",
			})
		}
		if item.Type != string(ItemTypeAllowance) && item.Type != string(ItemTypeDeduction) {
			errs = append(errs, validator.ValidationError{
				Field:   "items[" + strconv.Itoa(i) + "].type",
				Message: "type must be allowance or deduction",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculationResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name"`
	Month     string `json:"month"`

	WorkHours WorkHours `json:"work_hours"`

	BaseSalary decimal.Decimal `json:"base_salary"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	OvertimePay       decimal.Decimal `json:"overtime_pay"`
	ExcessOvertimePay decimal.Decimal `json:"excess_overtime_pay"`
	LateNightPay      decimal.Decimal `json:"late_night_pay"`
	HolidayPay        decimal.Decimal `json:"holiday_pay"`

	CustomItems    []CustomItem    `json:"custom_items"`
	TotalAllowance decimal.Decimal `json:"total_allowance"`
	TotalDeduction decimal.Decimal `json:"total_deduction"`

	GrossPay decimal.Decimal `json:"gross_pay"`
	NetPay   decimal.Decimal `json:"net_pay"`
}

func ToResponse(c Calculation) CalculationResponse {
	items := c.CustomItems
	if items == nil {
		items = []CustomItem{}
	}
	return CalculationResponse{
		ID:                c.ID,
		StaffID:           c.StaffID,
		StaffName:         c.StaffName,
		Month:             c.Month,
		WorkHours:         c.WorkHours,
		BaseSalary:        c.BaseSalary,
		HourlyRate:        c.HourlyRate,
		OvertimePay:       c.OvertimePay,
		ExcessOvertimePay: c.ExcessOvertimePay,
		LateNightPay:      c.LateNightPay,
		HolidayPay:        c.HolidayPay,
		CustomItems:       items,
		TotalAllowance:    c.TotalAllowance,
		TotalDeduction:    c.TotalDeduction,
		GrossPay:          c.GrossPay,
		NetPay:            c.NetPay,
	}
}

func ToResponses(calcs []Calculation) []CalculationResponse {
	result := make([]CalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		result = append(result, ToResponse(c))
	}
	return result
}
