package staff

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/staff"
)

type StaffServiceImpl struct {
	staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository: staffRepo,
	}
}

// Create implements staff.StaffService.
func (s *StaffServiceImpl) Create(ctx context.Context, req *staff.CreateStaffRequest) (staff.Staff, error) {
	if err := req.Validate(); err != nil {
		return staff.Staff{}, err
	}

	exists, err := s.StaffRepository.ExistsByEmployeeCode(ctx, req.EmployeeCode, nil)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if exists {
		return staff.Staff{}, staff.ErrEmployeeCodeExists
	}

	newStaff := fromRequest(req)
	newStaff.ID = uuid.NewString()

	created, err := s.StaffRepository.Create(ctx, newStaff)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return created, nil
}

// GetByID implements staff.StaffService.
func (s *StaffServiceImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	return s.StaffRepository.GetByID(ctx, id)
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, filter staff.ListFilter) ([]staff.Staff, error) {
	return s.StaffRepository.List(ctx, filter)
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, id string, req *staff.UpdateStaffRequest) (staff.Staff, error) {
	if err := req.Validate(); err != nil {
		return staff.Staff{}, err
	}

	current, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return staff.Staff{}, err
	}

	exists, err := s.StaffRepository.ExistsByEmployeeCode(ctx, req.EmployeeCode, &id)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if exists {
		return staff.Staff{}, staff.ErrEmployeeCodeExists
	}

	updated := fromRequest(req)
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	saved, err := s.StaffRepository.Update(ctx, updated)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to update staff: %w", err)
	}
	return saved, nil
}

// Delete implements staff.StaffService.
func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.StaffRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.StaffRepository.SoftDelete(ctx, id)
}

func fromRequest(req *staff.CreateStaffRequest) staff.Staff {
	result := staff.Staff{
		EmployeeCode:  req.EmployeeCode,
		LastName:      req.LastName,
		FirstName:     req.FirstName,
		LastNameKana:  req.LastNameKana,
		FirstNameKana: req.FirstNameKana,
		BirthDate:     req.BirthDate,
		PostalCode:    req.PostalCode,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		Department:    req.Department,
		HireDate:      req.HireDate,
		RetireDate:    req.RetireDate,
		WorkLocation:  req.WorkLocation,
		MonthlySalary: req.MonthlySalary,
		HourlyRate:    req.HourlyRate,
		BankName:      req.BankName,
		BranchName:    req.BranchName,
		AccountNumber: req.AccountNumber,
	}
	if req.Gender != nil {
		g := staff.Gender(*req.Gender)
		result.Gender = &g
	}
	if req.EmploymentType != nil {
		et := staff.EmploymentType(*req.EmploymentType)
		result.EmploymentType = &et
	}
	if req.WorkType != nil {
		wt := staff.WorkType(*req.WorkType)
		result.WorkType = &wt
	}
	if req.AccountType != nil {
		at := staff.AccountType(*req.AccountType)
		result.AccountType = &at
	}
	for _, item := range req.Allowances {
		result.Allowances = append(result.Allowances, staff.PayItem{Name: item.Name, Amount: item.Amount})
	}
	for _, item := range req.Deductions {
		result.Deductions = append(result.Deductions, staff.PayItem{Name: item.Name, Amount: item.Amount})
	}
	return result
}
