package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/attendance"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.staff_id, a.date, a.start_time, a.end_time, a.break_minutes,
	a.actual_work_hours, a.overtime_hours, a.is_holiday,
	a.early_overtime, a.overtime, a.early_leave, a.late_night_overtime_hours,
	a.created_at, a.updated_at,
	s.last_name || ' ' || s.first_name AS staff_name
`

func (r *attendanceRepository) scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.StaffID, &rec.Date, &rec.StartTime, &rec.EndTime, &rec.BreakMinutes,
		&rec.ActualWorkHours, &rec.OvertimeHours, &rec.IsHoliday,
		&rec.EarlyOvertime, &rec.Overtime, &rec.EarlyLeave, &rec.LateNightOvertimeHours,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.StaffName,
	)
	return rec, err
}

func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH upserted AS (
			INSERT INTO attendance_records (
				id, staff_id, date, start_time, end_time, break_minutes,
				actual_work_hours, overtime_hours, is_holiday,
				early_overtime, overtime, early_leave, late_night_overtime_hours
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (staff_id, date) DO UPDATE SET
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				break_minutes = EXCLUDED.break_minutes,
				actual_work_hours = EXCLUDED.actual_work_hours,
				overtime_hours = EXCLUDED.overtime_hours,
				is_holiday = EXCLUDED.is_holiday,
				early_overtime = EXCLUDED.early_overtime,
				overtime = EXCLUDED.overtime,
				early_leave = EXCLUDED.early_leave,
				late_night_overtime_hours = EXCLUDED.late_night_overtime_hours,
				updated_at = NOW()
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM upserted a
		JOIN staff s ON s.id = a.staff_id
	`

	rec, err := r.scanRecord(q.QueryRow(ctx, query,
		record.ID, record.StaffID, record.Date, record.StartTime, record.EndTime, record.BreakMinutes,
		record.ActualWorkHours, record.OvertimeHours, record.IsHoliday,
		record.EarlyOvertime, record.Overtime, record.EarlyLeave, record.LateNightOvertimeHours,
	))
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}
	return rec, nil
}

func (r *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID, date string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.staff_id = $1 AND a.date = $2
	`

	rec, err := r.scanRecord(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.date = $1
		ORDER BY s.employee_code
	`
	return r.list(ctx, query, date)
}

func (r *attendanceRepository) ListByStaffMonth(ctx context.Context, staffID, month string) ([]attendance.Record, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.staff_id = $1 AND a.date LIKE $2 || '-%'
		ORDER BY a.date
	`
	return r.list(ctx, query, staffID, month)
}

func (r *attendanceRepository) ListByRange(ctx context.Context, start, end string) ([]attendance.Record, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.date BETWEEN $1 AND $2
		ORDER BY a.date, s.employee_code
	`
	return r.list(ctx, query, start, end)
}

func (r *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) Delete(ctx context.Context, staffID, date string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE staff_id = $1 AND date = $2`, staffID, date)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}
