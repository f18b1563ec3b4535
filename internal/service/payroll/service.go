package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/attendance"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/payroll"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/settings"
	"github.com/seika-clinic/attendance-backend-go/internal/domain/staff"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	attendance.AttendanceRepository
	staff.StaffRepository
	settingsService settings.SettingsService
	logger          *slog.Logger
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
	settingsService settings.SettingsService,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:    payrollRepo,
		AttendanceRepository: attendanceRepo,
		StaffRepository:      staffRepo,
		settingsService:      settingsService,
		logger:               logger,
	}
}

// Calculate implements payroll.PayrollService.
func (p *PayrollServiceImpl) Calculate(ctx context.Context, month, staffID string) (payroll.Calculation, error) {
	return p.calculate(ctx, month, staffID, nil)
}

// calculate runs the aggregation and pricing for one staff member. When
// items is nil the custom items come from any stored calculation for the
// pair, falling back to the staff master's fixed presets.
func (p *PayrollServiceImpl) calculate(ctx context.Context, month, staffID string, items []payroll.CustomItem) (payroll.Calculation, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return payroll.Calculation{}, payroll.ErrInvalidMonth
	}

	staffRec, err := p.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return payroll.Calculation{}, payroll.ErrStaffNotFound
		}
		return payroll.Calculation{}, fmt.Errorf("failed to get staff: %w", err)
	}

	records, err := p.AttendanceRepository.ListByStaffMonth(ctx, staffID, month)
	if err != nil {
		return payroll.Calculation{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	if len(records) == 0 {
		return payroll.Calculation{}, payroll.ErrNoAttendanceRecords
	}

	cfg, err := p.settingsService.Get(ctx)
	if err != nil {
		return payroll.Calculation{}, err
	}

	wh, err := AggregateWorkHours(records, cfg)
	if err != nil {
		return payroll.Calculation{}, fmt.Errorf("failed to aggregate work hours: %w", err)
	}

	if items == nil {
		items = p.customItemsFor(ctx, month, staffRec)
	}

	wage := payroll.StaffWage{
		MonthlySalary: staffRec.MonthlySalary,
		HourlyRate:    staffRec.HourlyRate,
	}
	return CalculatePayroll(staffID, staffRec.FullName(), month, wh, wage, items, cfg), nil
}

// customItemsFor prefers the items already stored on a saved calculation, so
// operator edits survive a recalculation. A first run copies the staff
// master's fixed allowance and deduction presets.
func (p *PayrollServiceImpl) customItemsFor(ctx context.Context, month string, staffRec staff.Staff) []payroll.CustomItem {
	stored, err := p.PayrollRepository.GetByMonthAndStaff(ctx, month, staffRec.ID)
	if err == nil {
		return stored.CustomItems
	}

	items := make([]payroll.CustomItem, 0, len(staffRec.Allowances)+len(staffRec.Deductions))
	for _, preset := range staffRec.Allowances {
		items = append(items, payroll.CustomItem{
			ID:     uuid.NewString(),
			Name:   preset.Name,
			Amount: preset.Amount,
			Type:   payroll.ItemTypeAllowance,
		})
	}
	for _, preset := range staffRec.Deductions {
		items = append(items, payroll.CustomItem{
			ID:     uuid.NewString(),
			Name:   preset.Name,
			Amount: preset.Amount,
			Type:   payroll.ItemTypeDeduction,
		})
	}
	return items
}

// CalculateAll implements payroll.PayrollService.
func (p *PayrollServiceImpl) CalculateAll(ctx context.Context, month string) ([]payroll.Calculation, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return nil, payroll.ErrInvalidMonth
	}

	staffList, err := p.StaffRepository.List(ctx, staff.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	calcs := make([]payroll.Calculation, 0, len(staffList))
	for _, staffRec := range staffList {
		calc, err := p.Calculate(ctx, month, staffRec.ID)
		if err != nil {
			// One bad staff record must not block the whole month.
			if !errors.Is(err, payroll.ErrNoAttendanceRecords) {
				p.logger.Warn("payroll calculation skipped",
					"staff_id", staffRec.ID,
					"month", month,
					"error", err,
				)
			}
			continue
		}
		calcs = append(calcs, calc)
	}
	return calcs, nil
}

// Save implements payroll.PayrollService.
func (p *PayrollServiceImpl) Save(ctx context.Context, month, staffID string) (payroll.Calculation, error) {
	calc, err := p.Calculate(ctx, month, staffID)
	if err != nil {
		return payroll.Calculation{}, err
	}
	calc.ID = uuid.NewString()

	saved, err := p.PayrollRepository.Upsert(ctx, calc)
	if err != nil {
		return payroll.Calculation{}, fmt.Errorf("failed to save payroll: %w", err)
	}
	return saved, nil
}

// Get implements payroll.PayrollService.
func (p *PayrollServiceImpl) Get(ctx context.Context, month, staffID string) (payroll.Calculation, error) {
	return p.PayrollRepository.GetByMonthAndStaff(ctx, month, staffID)
}

// ListByMonth implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListByMonth(ctx context.Context, month string) ([]payroll.Calculation, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return nil, payroll.ErrInvalidMonth
	}
	return p.PayrollRepository.ListByMonth(ctx, month)
}

// Delete implements payroll.PayrollService.
func (p *PayrollServiceImpl) Delete(ctx context.Context, month, staffID string) error {
	if _, err := p.PayrollRepository.GetByMonthAndStaff(ctx, month, staffID); err != nil {
		return err
	}
	return p.PayrollRepository.Delete(ctx, month, staffID)
}

// SetCustomItems implements payroll.PayrollService.
func (p *PayrollServiceImpl) SetCustomItems(ctx context.Context, req *payroll.SetCustomItemsRequest) (payroll.Calculation, error) {
	if err := req.Validate(); err != nil {
		return payroll.Calculation{}, err
	}

	stored, err := p.PayrollRepository.GetByMonthAndStaff(ctx, req.Month, req.StaffID)
	if err != nil {
		return payroll.Calculation{}, err
	}

	items := make([]payroll.CustomItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, payroll.CustomItem{
			ID:     uuid.NewString(),
			Name:   item.Name,
			Amount: item.Amount,
			Type:   payroll.ItemType(item.Type),
		})
	}

	// Editing items triggers a full recomputation; derived totals are never
	// patched in place.
	calc, err := p.calculate(ctx, req.Month, req.StaffID, items)
	if err != nil {
		return payroll.Calculation{}, err
	}
	calc.ID = stored.ID

	saved, err := p.PayrollRepository.Upsert(ctx, calc)
	if err != nil {
		return payroll.Calculation{}, fmt.Errorf("failed to save payroll: %w", err)
	}
	return saved, nil
}
