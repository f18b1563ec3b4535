package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

type Staff struct {
	ID           string
	EmployeeCode string

	LastName      string
	FirstName     string
	LastNameKana  *string
	FirstNameKana *string
	Gender        *Gender
	BirthDate     *string // YYYY-MM-DD
	PostalCode    *string
	Address       *string
	Phone         *string
	Email         *string

	EmploymentType *EmploymentType
	Department     string
	HireDate       *string // YYYY-MM-DD
	RetireDate     *string
	WorkType       *WorkType
	WorkLocation   *string

	MonthlySalary *decimal.Decimal
	HourlyRate    *decimal.Decimal
	Allowances    []PayItem
	Deductions    []PayItem
	BankName      *string
	BranchName    *string
	AccountType   *AccountType
	AccountNumber *string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// FullName joins family and given name the way they are displayed, family
// name first.
func (s Staff) FullName() string {
	return s.LastName + " " + s.FirstName
}

// PayItem - a fixed allowance or deduction preset on the staff master.
// Copied into the payroll calculation as custom items on every run.
type PayItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type EmploymentType string

const (
	EmploymentTypeFullTime  EmploymentType = "full-time"
	EmploymentTypeContract  EmploymentType = "contract"
	EmploymentTypePartTime  EmploymentType = "part-time"
	EmploymentTypeTemporary EmploymentType = "temporary"
)

type WorkType string

const (
	WorkTypeRegular   WorkType = "regular"
	WorkTypeIrregular WorkType = "irregular"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)
