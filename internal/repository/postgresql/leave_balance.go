package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/staffledger/payroll-backend-go/internal/domain/leave"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

func (r *leaveBalanceRepository) GetOrCreate(ctx context.Context, companyID, employeeID, month string, allocation float64) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	// The no-op DO UPDATE makes RETURNING yield the existing row on
	// conflict instead of nothing.
	query := `
		INSERT INTO leave_balances (id, company_id, employee_id, month, total_allocated, used, remaining)
		VALUES ($1, $2, $3, $4, $5, 0, $5)
		ON CONFLICT (company_id, employee_id, month) DO UPDATE SET updated_at = leave_balances.updated_at
		RETURNING id, company_id, employee_id, month, total_allocated, used, remaining, created_at, updated_at
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, uuid.New().String(), companyID, employeeID, month, allocation).Scan(
		&b.ID, &b.CompanyID, &b.EmployeeID, &b.Month,
		&b.TotalAllocated, &b.Used, &b.Remaining, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to get or create leave balance: %w", err)
	}

	return b, nil
}

func (r *leaveBalanceRepository) Save(ctx context.Context, balance leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET total_allocated = $1, used = $2, remaining = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, balance.TotalAllocated, balance.Used, balance.Remaining, balance.ID)
	if err != nil {
		return fmt.Errorf("failed to save leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveBalanceNotFound
	}
	return nil
}

func (r *leaveBalanceRepository) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, month, total_allocated, used, remaining, created_at, updated_at
		FROM leave_balances
		WHERE company_id = $1 AND employee_id = $2
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, companyID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(
			&b.ID, &b.CompanyID, &b.EmployeeID, &b.Month,
			&b.TotalAllocated, &b.Used, &b.Remaining, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}
