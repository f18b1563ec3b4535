package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkHours - monthly aggregation of one staff member's records into the
// five hour buckets. Ephemeral; recomputed on every calculation run. All
// buckets are rounded to one decimal place.
type WorkHours struct {
	RegularHours        float64 `json:"regular_hours"`
	OvertimeHours       float64 `json:"overtime_hours"`
	ExcessOvertimeHours float64 `json:"excess_overtime_hours"`
	LateNightHours      float64 `json:"late_night_hours"`
	HolidayHours        float64 `json:"holiday_hours"`
	TotalHours          float64 `json:"total_hours"`
}

// ItemType enum
type ItemType string

const (
	ItemTypeAllowance ItemType = "allowance"
	ItemTypeDeduction ItemType = "deduction"
)

// CustomItem - operator-entered allowance or deduction line. Flat amounts
// only; tax and social insurance are out of scope and handled this way.
type CustomItem struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Type   ItemType        `json:"type"`
}

// Calculation - the priced payroll result for one (month, staff) pair.
// Persisted verbatim, keyed by the compound natural key; derived totals are
// never patched in place, only replaced by a full recomputation.
type Calculation struct {
	ID        string
	StaffID   string
	StaffName string
	Month     string // YYYY-MM

	WorkHours WorkHours

	BaseSalary decimal.Decimal
	HourlyRate decimal.Decimal

	OvertimePay       decimal.Decimal
	ExcessOvertimePay decimal.Decimal
	LateNightPay      decimal.Decimal
	HolidayPay        decimal.Decimal

	CustomItems    []CustomItem
	TotalAllowance decimal.Decimal
	TotalDeduction decimal.Decimal

	GrossPay decimal.Decimal
	NetPay   decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffWage - the wage fields the calculator needs from the staff master
// record. A fixed monthly salary, when present, is reported as the base
// salary; the hourly rate still prices the premium buckets.
type StaffWage struct {
	MonthlySalary *decimal.Decimal
	HourlyRate    *decimal.Decimal
}
