package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) BulkUpsert(ctx context.Context, records []attendance.Attendance) error {
	if len(records) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, company_id, employee_id, date, status, marked_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id, employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			marked_by = EXCLUDED.marked_by,
			updated_at = NOW()
	`

	// One batch round-trip; a leave approval can touch a month of days.
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(query, rec.ID, rec.CompanyID, rec.EmployeeID, rec.Date, rec.Status, rec.MarkedBy)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert attendance: %w", err)
		}
	}

	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, companyID, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance WHERE company_id = $1 AND employee_id = $2 AND date = $3`

	// Deleting an absent row is a no-op on purpose: unmarking an unmarked
	// day is idempotent.
	if _, err := q.Exec(ctx, query, companyID, employeeID, date); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

func (r *attendanceRepository) List(ctx context.Context, companyID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, date, status, marked_by, created_at, updated_at
		FROM attendance
		WHERE company_id = $1
	`
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		query += fmt.Sprintf(" AND to_char(date, 'YYYY-MM') = $%d", len(args))
	}
	query += " ORDER BY date, employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.EmployeeID, &a.Date, &a.Status, &a.MarkedBy, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) GetEmployeeMonthMap(ctx context.Context, companyID, employeeID string, from, to time.Time) (attendance.DayStatusMap, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, status
		FROM attendance
		WHERE company_id = $1 AND employee_id = $2 AND date >= $3 AND date < $4
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance map: %w", err)
	}
	defer rows.Close()

	statusMap := make(attendance.DayStatusMap)
	for rows.Next() {
		var date time.Time
		var status attendance.Status
		if err := rows.Scan(&date, &status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		statusMap[date.Format("2006-01-02")] = status
	}

	return statusMap, rows.Err()
}

func (r *attendanceRepository) GetCompanyMonthMap(ctx context.Context, companyID string, from, to time.Time) (attendance.CompanyStatusMap, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, date, status
		FROM attendance
		WHERE company_id = $1 AND date >= $2 AND date < $3
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get company attendance map: %w", err)
	}
	defer rows.Close()

	companyMap := make(attendance.CompanyStatusMap)
	for rows.Next() {
		var employeeID string
		var date time.Time
		var status attendance.Status
		if err := rows.Scan(&employeeID, &date, &status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		if companyMap[employeeID] == nil {
			companyMap[employeeID] = make(attendance.DayStatusMap)
		}
		companyMap[employeeID][date.Format("2006-01-02")] = status
	}

	return companyMap, rows.Err()
}
