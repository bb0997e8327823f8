package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
)

type slipRepository struct {
	db *database.DB
}

func NewSlipRepository(db *database.DB) salary.SlipRepository {
	return &slipRepository{db: db}
}

const slipColumns = `
	s.id, s.company_id, s.employee_id, s.month, s.earnings, s.deductions,
	s.total_earnings, s.total_deductions, s.gross_salary, s.tax_amount, s.net_salary,
	s.attendance_summary, s.created_at, e.full_name, e.employee_code
`

func (r *slipRepository) Create(ctx context.Context, slip salary.SalarySlip) (salary.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	earnings, deductions, summary, err := marshalSlipJSON(slip)
	if err != nil {
		return salary.SalarySlip{}, err
	}

	query := `
		INSERT INTO salary_slips (
			id, company_id, employee_id, month, earnings, deductions,
			total_earnings, total_deductions, gross_salary, tax_amount, net_salary,
			attendance_summary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err = q.QueryRow(ctx, query,
		slip.ID, slip.CompanyID, slip.EmployeeID, slip.Month, earnings, deductions,
		slip.TotalEarnings, slip.TotalDeductions, slip.GrossSalary, slip.TaxAmount, slip.NetSalary,
		summary,
	).Scan(&slip.ID, &slip.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_slip_company_employee_month") {
			return salary.SalarySlip{}, salary.ErrSlipAlreadyExists
		}
		return salary.SalarySlip{}, fmt.Errorf("failed to create slip: %w", err)
	}

	return slip, nil
}

func (r *slipRepository) GetByID(ctx context.Context, id string, companyID string) (salary.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slipColumns + `
		FROM salary_slips s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1 AND s.company_id = $2
	`

	slip, err := scanSlip(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalarySlip{}, salary.ErrSlipNotFound
		}
		return salary.SalarySlip{}, fmt.Errorf("failed to get slip: %w", err)
	}

	return slip, nil
}

func (r *slipRepository) Exists(ctx context.Context, companyID, employeeID, month string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM salary_slips WHERE company_id = $1 AND employee_id = $2 AND month = $3)`

	var exists bool
	if err := q.QueryRow(ctx, query, companyID, employeeID, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slip existence: %w", err)
	}
	return exists, nil
}

func (r *slipRepository) List(ctx context.Context, companyID string, filter salary.SlipFilter) ([]salary.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slipColumns + `
		FROM salary_slips s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.company_id = $1
	`
	args := []interface{}{companyID}

	if filter.Month != nil {
		args = append(args, *filter.Month)
		query += fmt.Sprintf(" AND s.month = $%d", len(args))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND s.employee_id = $%d", len(args))
	}
	query += " ORDER BY s.month DESC, e.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list slips: %w", err)
	}
	defer rows.Close()

	var slips []salary.SalarySlip
	for rows.Next() {
		slip, err := scanSlip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan slip: %w", err)
		}
		slips = append(slips, slip)
	}

	return slips, rows.Err()
}

func (r *slipRepository) EmployeeIDsWithSlip(ctx context.Context, companyID, month string) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT employee_id FROM salary_slips WHERE company_id = $1 AND month = $2`

	rows, err := q.Query(ctx, query, companyID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list slip employee ids: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		existing[id] = true
	}

	return existing, rows.Err()
}

// BulkInsert inserts with conflict-skip semantics via a pgx batch and
// counts the rows that actually landed. A slip lost to a concurrent run
// is not an error.
func (r *slipRepository) BulkInsert(ctx context.Context, slips []salary.SalarySlip) (int, error) {
	if len(slips) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO salary_slips (
			id, company_id, employee_id, month, earnings, deductions,
			total_earnings, total_deductions, gross_salary, tax_amount, net_salary,
			attendance_summary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (company_id, employee_id, month) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, slip := range slips {
		earnings, deductions, summary, err := marshalSlipJSON(slip)
		if err != nil {
			return 0, err
		}
		batch.Queue(query,
			slip.ID, slip.CompanyID, slip.EmployeeID, slip.Month, earnings, deductions,
			slip.TotalEarnings, slip.TotalDeductions, slip.GrossSalary, slip.TaxAmount, slip.NetSalary,
			summary,
		)
	}

	results := GetQuerier(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range slips {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert slip batch: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

func marshalSlipJSON(slip salary.SalarySlip) ([]byte, []byte, []byte, error) {
	earnings, err := json.Marshal(slip.Earnings)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode earnings: %w", err)
	}
	deductions, err := json.Marshal(slip.Deductions)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode deductions: %w", err)
	}
	summary, err := json.Marshal(slip.AttendanceSummary)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode attendance summary: %w", err)
	}
	return earnings, deductions, summary, nil
}

func scanSlip(row pgx.Row) (salary.SalarySlip, error) {
	var slip salary.SalarySlip
	var earnings, deductions, summary []byte

	err := row.Scan(
		&slip.ID, &slip.CompanyID, &slip.EmployeeID, &slip.Month, &earnings, &deductions,
		&slip.TotalEarnings, &slip.TotalDeductions, &slip.GrossSalary, &slip.TaxAmount, &slip.NetSalary,
		&summary, &slip.CreatedAt, &slip.EmployeeName, &slip.EmployeeCode,
	)
	if err != nil {
		return salary.SalarySlip{}, err
	}

	if err := json.Unmarshal(earnings, &slip.Earnings); err != nil {
		return salary.SalarySlip{}, fmt.Errorf("failed to decode earnings: %w", err)
	}
	if err := json.Unmarshal(deductions, &slip.Deductions); err != nil {
		return salary.SalarySlip{}, fmt.Errorf("failed to decode deductions: %w", err)
	}
	if err := json.Unmarshal(summary, &slip.AttendanceSummary); err != nil {
		return salary.SalarySlip{}, fmt.Errorf("failed to decode attendance summary: %w", err)
	}

	return slip, nil
}
