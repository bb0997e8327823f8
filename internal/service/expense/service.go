package expense

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/staffledger/payroll-backend-go/internal/domain/expense"
)

type ExpenseResponse struct {
	Month      string          `json:"month"`
	TotalGross decimal.Decimal `json:"total_gross"`
	SlipCount  int             `json:"slip_count"`
}

type Service struct {
	expenseRepo expense.ExpenseRepository
}

func NewService(expenseRepo expense.ExpenseRepository) *Service {
	return &Service{expenseRepo: expenseRepo}
}

func (s *Service) GetByMonth(ctx context.Context, companyID, month string) (ExpenseResponse, error) {
	entry, err := s.expenseRepo.GetByMonth(ctx, companyID, month)
	if err != nil {
		return ExpenseResponse{}, err
	}
	return toResponse(entry), nil
}

func (s *Service) ListByCompany(ctx context.Context, companyID string) ([]ExpenseResponse, error) {
	entries, err := s.expenseRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly expenses: %w", err)
	}

	responses := make([]ExpenseResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

// Recompute re-derives one month's aggregate from the slips on record.
func (s *Service) Recompute(ctx context.Context, companyID, month string) (ExpenseResponse, error) {
	entry, err := s.expenseRepo.RecomputeFromSlips(ctx, companyID, month)
	if err != nil {
		return ExpenseResponse{}, fmt.Errorf("failed to recompute monthly expense: %w", err)
	}
	return toResponse(entry), nil
}

func toResponse(e expense.MonthlyExpense) ExpenseResponse {
	return ExpenseResponse{
		Month:      e.Month,
		TotalGross: e.TotalGross,
		SlipCount:  e.SlipCount,
	}
}
