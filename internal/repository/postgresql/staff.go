package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/staff"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `
	id, employee_code, last_name, first_name, last_name_kana, first_name_kana,
	gender, birth_date, postal_code, address, phone, email,
	employment_type, department, hire_date, retire_date, work_type, work_location,
	monthly_salary, hourly_rate, allowances, deductions,
	bank_name, branch_name, account_type, account_number,
	created_at, updated_at, deleted_at
`

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var s staff.Staff
	var allowancesJSON, deductionsJSON []byte
	err := row.Scan(
		&s.ID, &s.EmployeeCode, &s.LastName, &s.FirstName, &s.LastNameKana, &s.FirstNameKana,
		&s.Gender, &s.BirthDate, &s.PostalCode, &s.Address, &s.Phone, &s.Email,
		&s.EmploymentType, &s.Department, &s.HireDate, &s.RetireDate, &s.WorkType, &s.WorkLocation,
		&s.MonthlySalary, &s.HourlyRate, &allowancesJSON, &deductionsJSON,
		&s.BankName, &s.BranchName, &s.AccountType, &s.AccountNumber,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		return staff.Staff{}, err
	}
	if len(allowancesJSON) > 0 {
		if err := json.Unmarshal(allowancesJSON, &s.Allowances); err != nil {
			return staff.Staff{}, fmt.Errorf("failed to decode allowances: %w", err)
		}
	}
	if len(deductionsJSON) > 0 {
		if err := json.Unmarshal(deductionsJSON, &s.Deductions); err != nil {
			return staff.Staff{}, fmt.Errorf("failed to decode deductions: %w", err)
		}
	}
	return s, nil
}

func encodePayItems(items []staff.PayItem) ([]byte, error) {
	if items == nil {
		items = []staff.PayItem{}
	}
	return json.Marshal(items)
}

func (r *staffRepository) Create(ctx context.Context, newStaff staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	allowancesJSON, err := encodePayItems(newStaff.Allowances)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to encode allowances: %w", err)
	}
	deductionsJSON, err := encodePayItems(newStaff.Deductions)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to encode deductions: %w", err)
	}

	query := `
		INSERT INTO staff (
			id, employee_code, last_name, first_name, last_name_kana, first_name_kana,
			gender, birth_date, postal_code, address, phone, email,
			employment_type, department, hire_date, retire_date, work_type, work_location,
			monthly_salary, hourly_rate, allowances, deductions,
			bank_name, branch_name, account_type, account_number
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26
		)
		RETURNING ` + staffColumns

	created, err := scanStaff(q.QueryRow(ctx, query,
		newStaff.ID, newStaff.EmployeeCode, newStaff.LastName, newStaff.FirstName,
		newStaff.LastNameKana, newStaff.FirstNameKana,
		newStaff.Gender, newStaff.BirthDate, newStaff.PostalCode, newStaff.Address,
		newStaff.Phone, newStaff.Email,
		newStaff.EmploymentType, newStaff.Department, newStaff.HireDate, newStaff.RetireDate,
		newStaff.WorkType, newStaff.WorkLocation,
		newStaff.MonthlySalary, newStaff.HourlyRate, allowancesJSON, deductionsJSON,
		newStaff.BankName, newStaff.BranchName, newStaff.AccountType, newStaff.AccountNumber,
	))
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return created, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1 AND deleted_at IS NULL`

	s, err := scanStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}
	return s, nil
}

func (r *staffRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE employee_code = $1 AND deleted_at IS NULL`

	s, err := scanStaff(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by employee code: %w", err)
	}
	return s, nil
}

func (r *staffRepository) ExistsByEmployeeCode(ctx context.Context, employeeCode string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (
		SELECT 1 FROM staff
		WHERE employee_code = $1 AND deleted_at IS NULL AND ($2::text IS NULL OR id <> $2)
	)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeCode, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee code: %w", err)
	}
	return exists, nil
}

func (r *staffRepository) List(ctx context.Context, filter staff.ListFilter) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}

	if filter.Department != nil {
		args = append(args, *filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.ActiveOn != nil {
		args = append(args, *filter.ActiveOn)
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(hire_date IS NULL OR hire_date <= $%d)", n),
			fmt.Sprintf("(retire_date IS NULL OR retire_date >= $%d)", n),
		)
	}

	query := `SELECT ` + staffColumns + ` FROM staff WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY employee_code`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var staffList []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staffList = append(staffList, s)
	}
	return staffList, rows.Err()
}

func (r *staffRepository) Update(ctx context.Context, updated staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	allowancesJSON, err := encodePayItems(updated.Allowances)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to encode allowances: %w", err)
	}
	deductionsJSON, err := encodePayItems(updated.Deductions)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to encode deductions: %w", err)
	}

	query := `
		UPDATE staff SET
			employee_code = $2, last_name = $3, first_name = $4,
			last_name_kana = $5, first_name_kana = $6,
			gender = $7, birth_date = $8, postal_code = $9, address = $10,
			phone = $11, email = $12,
			employment_type = $13, department = $14, hire_date = $15, retire_date = $16,
			work_type = $17, work_location = $18,
			monthly_salary = $19, hourly_rate = $20, allowances = $21, deductions = $22,
			bank_name = $23, branch_name = $24, account_type = $25, account_number = $26,
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + staffColumns

	s, err := scanStaff(q.QueryRow(ctx, query,
		updated.ID, updated.EmployeeCode, updated.LastName, updated.FirstName,
		updated.LastNameKana, updated.FirstNameKana,
		updated.Gender, updated.BirthDate, updated.PostalCode, updated.Address,
		updated.Phone, updated.Email,
		updated.EmploymentType, updated.Department, updated.HireDate, updated.RetireDate,
		updated.WorkType, updated.WorkLocation,
		updated.MonthlySalary, updated.HourlyRate, allowancesJSON, deductionsJSON,
		updated.BankName, updated.BranchName, updated.AccountType, updated.AccountNumber,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to update staff: %w", err)
	}
	return s, nil
}

func (r *staffRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE staff SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}
