package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffledger/payroll-backend-go/internal/domain/expense"
)

// ExpenseReconciliationJob re-derives every company's expense ledger for
// the current and previous month. The ledger is also updated inline after
// each generation run; this job is the safety net that heals any entry a
// crashed request left stale.
type ExpenseReconciliationJob struct {
	expenseRepo expense.ExpenseRepository
}

func NewExpenseReconciliationJob(expenseRepo expense.ExpenseRepository) *ExpenseReconciliationJob {
	return &ExpenseReconciliationJob{expenseRepo: expenseRepo}
}

func (j *ExpenseReconciliationJob) Run(ctx context.Context) error {
	now := time.Now()
	months := []string{
		now.Format("2006-01"),
		now.AddDate(0, -1, 0).Format("2006-01"),
	}

	for _, month := range months {
		companyIDs, err := j.expenseRepo.CompanyIDsWithSlips(ctx, month)
		if err != nil {
			return fmt.Errorf("failed to list companies for %s: %w", month, err)
		}

		for _, companyID := range companyIDs {
			if _, err := j.expenseRepo.RecomputeFromSlips(ctx, companyID, month); err != nil {
				slog.Error("Expense reconciliation failed", "company_id", companyID, "month", month, "error", err)
				continue
			}
		}
		slog.Debug("Expense reconciliation pass completed", "month", month, "companies", len(companyIDs))
	}

	return nil
}
