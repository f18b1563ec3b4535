package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/payroll"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, staff_id, staff_name, month,
	regular_hours, overtime_hours, excess_overtime_hours, late_night_hours, holiday_hours, total_hours,
	base_salary, hourly_rate,
	overtime_pay, excess_overtime_pay, late_night_pay, holiday_pay,
	custom_items, total_allowance, total_deduction, gross_pay, net_pay,
	created_at, updated_at
`

func scanCalculation(row pgx.Row) (payroll.Calculation, error) {
	var c payroll.Calculation
	var itemsJSON []byte
	err := row.Scan(
		&c.ID, &c.StaffID, &c.StaffName, &c.Month,
		&c.WorkHours.RegularHours, &c.WorkHours.OvertimeHours, &c.WorkHours.ExcessOvertimeHours,
		&c.WorkHours.LateNightHours, &c.WorkHours.HolidayHours, &c.WorkHours.TotalHours,
		&c.BaseSalary, &c.HourlyRate,
		&c.OvertimePay, &c.ExcessOvertimePay, &c.LateNightPay, &c.HolidayPay,
		&itemsJSON, &c.TotalAllowance, &c.TotalDeduction, &c.GrossPay, &c.NetPay,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return payroll.Calculation{}, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &c.CustomItems); err != nil {
			return payroll.Calculation{}, fmt.Errorf("failed to decode custom items: %w", err)
		}
	}
	return c, nil
}

func (r *payrollRepository) Upsert(ctx context.Context, calc payroll.Calculation) (payroll.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	itemsJSON, err := json.Marshal(calc.CustomItems)
	if err != nil {
		return payroll.Calculation{}, fmt.Errorf("failed to encode custom items: %w", err)
	}

	query := `
		INSERT INTO payroll_calculations (
			id, staff_id, staff_name, month,
			regular_hours, overtime_hours, excess_overtime_hours, late_night_hours, holiday_hours, total_hours,
			base_salary, hourly_rate,
			overtime_pay, excess_overtime_pay, late_night_pay, holiday_pay,
			custom_items, total_allowance, total_deduction, gross_pay, net_pay
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (month, staff_id) DO UPDATE SET
			staff_name = EXCLUDED.staff_name,
			regular_hours = EXCLUDED.regular_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			excess_overtime_hours = EXCLUDED.excess_overtime_hours,
			late_night_hours = EXCLUDED.late_night_hours,
			holiday_hours = EXCLUDED.holiday_hours,
			total_hours = EXCLUDED.total_hours,
			base_salary = EXCLUDED.base_salary,
			hourly_rate = EXCLUDED.hourly_rate,
			overtime_pay = EXCLUDED.overtime_pay,
			excess_overtime_pay = EXCLUDED.excess_overtime_pay,
			late_night_pay = EXCLUDED.late_night_pay,
			holiday_pay = EXCLUDED.holiday_pay,
			custom_items = EXCLUDED.custom_items,
			total_allowance = EXCLUDED.total_allowance,
			total_deduction = EXCLUDED.total_deduction,
			gross_pay = EXCLUDED.gross_pay,
			net_pay = EXCLUDED.net_pay,
			updated_at = NOW()
		RETURNING ` + payrollColumns

	saved, err := scanCalculation(q.QueryRow(ctx, query,
		calc.ID, calc.StaffID, calc.StaffName, calc.Month,
		calc.WorkHours.RegularHours, calc.WorkHours.OvertimeHours, calc.WorkHours.ExcessOvertimeHours,
		calc.WorkHours.LateNightHours, calc.WorkHours.HolidayHours, calc.WorkHours.TotalHours,
		calc.BaseSalary, calc.HourlyRate,
		calc.OvertimePay, calc.ExcessOvertimePay, calc.LateNightPay, calc.HolidayPay,
		itemsJSON, calc.TotalAllowance, calc.TotalDeduction, calc.GrossPay, calc.NetPay,
	))
	if err != nil {
		return payroll.Calculation{}, fmt.Errorf("failed to upsert payroll calculation: %w", err)
	}
	return saved, nil
}

func (r *payrollRepository) GetByMonthAndStaff(ctx context.Context, month, staffID string) (payroll.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_calculations
		WHERE month = $1 AND staff_id = $2
	`

	calc, err := scanCalculation(q.QueryRow(ctx, query, month, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Calculation{}, payroll.ErrCalculationNotFound
		}
		return payroll.Calculation{}, fmt.Errorf("failed to get payroll calculation: %w", err)
	}
	return calc, nil
}

func (r *payrollRepository) ListByMonth(ctx context.Context, month string) ([]payroll.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_calculations
		WHERE month = $1
		ORDER BY staff_name
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll calculations: %w", err)
	}
	defer rows.Close()

	var calcs []payroll.Calculation
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll calculation: %w", err)
		}
		calcs = append(calcs, calc)
	}
	return calcs, rows.Err()
}

func (r *payrollRepository) Delete(ctx context.Context, month, staffID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_calculations WHERE month = $1 AND staff_id = $2`, month, staffID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll calculation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrCalculationNotFound
	}
	return nil
}
