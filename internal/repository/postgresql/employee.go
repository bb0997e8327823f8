package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/employee"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, full_name, employee_code, status, hire_date, created_at, updated_at
		FROM employees
		WHERE id = $1 AND company_id = $2
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&e.ID, &e.CompanyID, &e.FullName, &e.EmployeeCode, &e.Status, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, full_name, employee_code, status, hire_date, created_at, updated_at
		FROM employees
		WHERE company_id = $1 AND status = $2
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, companyID, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.FullName, &e.EmployeeCode, &e.Status, &e.HireDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) FilterExisting(ctx context.Context, ids []string, companyID string) (map[string]bool, error) {
	if len(ids) == 0 {
		return map[string]bool{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `SELECT id FROM employees WHERE company_id = $1 AND id = ANY($2)`

	rows, err := q.Query(ctx, query, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to filter employees: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		existing[id] = true
	}

	return existing, rows.Err()
}
