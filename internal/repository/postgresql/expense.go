package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/expense"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}

// RecomputeFromSlips re-derives the aggregate from the slips table in one
// statement, so the ledger can never disagree with stored slips for
// longer than the duration of this call.
func (r *expenseRepository) RecomputeFromSlips(ctx context.Context, companyID, month string) (expense.MonthlyExpense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_expenses (id, company_id, month, total_gross, slip_count)
		SELECT $1, $2, $3, COALESCE(SUM(gross_salary), 0), COUNT(*)
		FROM salary_slips
		WHERE company_id = $2 AND month = $3
		ON CONFLICT (company_id, month) DO UPDATE SET
			total_gross = EXCLUDED.total_gross,
			slip_count = EXCLUDED.slip_count,
			updated_at = NOW()
		RETURNING id, company_id, month, total_gross, slip_count, updated_at
	`

	var e expense.MonthlyExpense
	err := q.QueryRow(ctx, query, uuid.New().String(), companyID, month).Scan(
		&e.ID, &e.CompanyID, &e.Month, &e.TotalGross, &e.SlipCount, &e.UpdatedAt,
	)
	if err != nil {
		return expense.MonthlyExpense{}, fmt.Errorf("failed to recompute monthly expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) GetByMonth(ctx context.Context, companyID, month string) (expense.MonthlyExpense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, month, total_gross, slip_count, updated_at
		FROM monthly_expenses
		WHERE company_id = $1 AND month = $2
	`

	var e expense.MonthlyExpense
	err := q.QueryRow(ctx, query, companyID, month).Scan(
		&e.ID, &e.CompanyID, &e.Month, &e.TotalGross, &e.SlipCount, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.MonthlyExpense{}, expense.ErrExpenseNotFound
		}
		return expense.MonthlyExpense{}, fmt.Errorf("failed to get monthly expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) ListByCompany(ctx context.Context, companyID string) ([]expense.MonthlyExpense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, month, total_gross, slip_count, updated_at
		FROM monthly_expenses
		WHERE company_id = $1
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly expenses: %w", err)
	}
	defer rows.Close()

	var entries []expense.MonthlyExpense
	for rows.Next() {
		var e expense.MonthlyExpense
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Month, &e.TotalGross, &e.SlipCount, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan monthly expense: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *expenseRepository) CompanyIDsWithSlips(ctx context.Context, month string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT DISTINCT company_id FROM salary_slips WHERE month = $1`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies with slips: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
