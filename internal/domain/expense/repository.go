package expense

import "context"

// ExpenseRepository maintains the monthly salary-expense ledger.
type ExpenseRepository interface {
	// RecomputeFromSlips re-derives the (company, month) aggregate from
	// the slips table and upserts it in one statement.
	RecomputeFromSlips(ctx context.Context, companyID, month string) (MonthlyExpense, error)
	GetByMonth(ctx context.Context, companyID, month string) (MonthlyExpense, error)
	ListByCompany(ctx context.Context, companyID string) ([]MonthlyExpense, error)
	// CompanyIDsWithSlips lists companies holding any slip for the month;
	// the reconciliation job iterates this set.
	CompanyIDsWithSlips(ctx context.Context, month string) ([]string, error)
}
