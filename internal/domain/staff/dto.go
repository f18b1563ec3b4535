package staff

import (
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayItemRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type CreateStaffRequest struct {
	EmployeeCode string `json:"employee_code"`

	LastName      string  `json:"last_name"`
	FirstName     string  `json:"first_name"`
	LastNameKana  *string `json:"last_name_kana"`
	FirstNameKana *string `json:"first_name_kana"`
	Gender        *string `json:"gender"`
	BirthDate     *string `json:"birth_date"`
	PostalCode    *string `json:"postal_code"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`

	EmploymentType *string `json:"employment_type"`
	Department     string  `json:"department"`
	HireDate       *string `json:"hire_date"`
	RetireDate     *string `json:"retire_date"`
	WorkType       *string `json:"work_type"`
	WorkLocation   *string `json:"work_location"`

	MonthlySalary *decimal.Decimal `json:"monthly_salary"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate"`
	Allowances    []PayItemRequest `json:"allowances"`
	Deductions    []PayItemRequest `json:"deductions"`
	BankName      *string          `json:"bank_name"`
	BranchName    *string          `json:"branch_name"`
	AccountType   *string          `json:"account_type"`
	AccountNumber *string          `json:"account_number"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be alphanumeric with optional dashes",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{
		string(GenderMale), string(GenderFemale), string(GenderOther),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male, female or other",
		})
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, []string{
		string(EmploymentTypeFullTime), string(EmploymentTypeContract),
		string(EmploymentTypePartTime), string(EmploymentTypeTemporary),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be full-time, contract, part-time or temporary",
		})
	}
	if r.WorkType != nil && !validator.IsInSlice(*r.WorkType, []string{
		string(WorkTypeRegular), string(WorkTypeIrregular),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be regular or irregular",
		})
	}
	if r.AccountType != nil && !validator.IsInSlice(*r.AccountType, []string{
		string(AccountTypeChecking), string(AccountTypeSavings),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "account_type",
			Message: "account_type must be checking or savings",
		})
	}
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"birth_date", r.BirthDate},
		{"hire_date", r.HireDate},
		{"retire_date", r.RetireDate},
	} {
		if field.value == nil || validator.IsEmpty(*field.value) {
			continue
		}
		if _, ok := validator.IsValidDate(*field.value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field.name,
				Message: field.name + " must be in YYYY-MM-DD format",
			})
		}
	}
	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStaffRequest carries the same fields as create. Updates replace the
// whole record; the frontend always submits the full form.
type UpdateStaffRequest = CreateStaffRequest

type StaffResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`

	LastName      string  `json:"last_name"`
	FirstName     string  `json:"first_name"`
	Name          string  `json:"name"`
	LastNameKana  *string `json:"last_name_kana,omitempty"`
	FirstNameKana *string `json:"first_name_kana,omitempty"`
	Gender        *Gender `json:"gender,omitempty"`
	BirthDate     *string `json:"birth_date,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	Address       *string `json:"address,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`

	EmploymentType *EmploymentType `json:"employment_type,omitempty"`
	Department     string          `json:"department"`
	HireDate       *string         `json:"hire_date,omitempty"`
	RetireDate     *string         `json:"retire_date,omitempty"`
	WorkType       *WorkType       `json:"work_type,omitempty"`
	WorkLocation   *string         `json:"work_location,omitempty"`

	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate,omitempty"`
	Allowances    []PayItem        `json:"allowances"`
	Deductions    []PayItem        `json:"deductions"`
	BankName      *string          `json:"bank_name,omitempty"`
	BranchName    *string          `json:"branch_name,omitempty"`
	AccountType   *AccountType     `json:"account_type,omitempty"`
	AccountNumber *string          `json:"account_number,omitempty"`
}

func ToResponse(s Staff) StaffResponse {
	allowances := s.Allowances
	if allowances == nil {
		allowances = []PayItem{}
	}
	deductions := s.Deductions
	if deductions == nil {
		deductions = []PayItem{}
	}
	return StaffResponse{
		ID:             s.ID,
		EmployeeCode:   s.EmployeeCode,
		LastName:       s.LastName,
		FirstName:      s.FirstName,
		Name:           s.FullName(),
		LastNameKana:   s.LastNameKana,
		FirstNameKana:  s.FirstNameKana,
		Gender:         s.Gender,
		BirthDate:      s.BirthDate,
		PostalCode:     s.PostalCode,
		Address:        s.Address,
		Phone:          s.Phone,
		Email:          s.Email,
		EmploymentType: s.EmploymentType,
		Department:     s.Department,
		HireDate:       s.HireDate,
		RetireDate:     s.RetireDate,
		WorkType:       s.WorkType,
		WorkLocation:   s.WorkLocation,
		MonthlySalary:  s.MonthlySalary,
		HourlyRate:     s.HourlyRate,
		Allowances:     allowances,
		Deductions:     deductions,
		BankName:       s.BankName,
		BranchName:     s.BranchName,
		AccountType:    s.AccountType,
		AccountNumber:  s.AccountNumber,
	}
}

func ToResponses(staffList []Staff) []StaffResponse {
	result := make([]StaffResponse, 0, len(staffList))
	for _, s := range staffList {
		result = append(result, ToResponse(s))
	}
	return result
}
