package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/leave"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
)

type leaveSettingsRepository struct {
	db *database.DB
}

func NewLeaveSettingsRepository(db *database.DB) leave.LeaveSettingsRepository {
	return &leaveSettingsRepository{db: db}
}

func (r *leaveSettingsRepository) Get(ctx context.Context, companyID string) (leave.GlobalLeaveSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, default_monthly_paid_leaves, created_at, updated_at
		FROM leave_settings
		WHERE company_id = $1
	`

	var s leave.GlobalLeaveSettings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.DefaultMonthlyPaidLeaves, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.GlobalLeaveSettings{}, leave.ErrLeaveSettingsNotFound
		}
		return leave.GlobalLeaveSettings{}, fmt.Errorf("failed to get leave settings: %w", err)
	}

	return s, nil
}

func (r *leaveSettingsRepository) Upsert(ctx context.Context, settings leave.GlobalLeaveSettings) (leave.GlobalLeaveSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_settings (id, company_id, default_monthly_paid_leaves)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_id) DO UPDATE SET
			default_monthly_paid_leaves = EXCLUDED.default_monthly_paid_leaves,
			updated_at = NOW()
		RETURNING id, company_id, default_monthly_paid_leaves, created_at, updated_at
	`

	var s leave.GlobalLeaveSettings
	err := q.QueryRow(ctx, query, settings.ID, settings.CompanyID, settings.DefaultMonthlyPaidLeaves).Scan(
		&s.ID, &s.CompanyID, &s.DefaultMonthlyPaidLeaves, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return leave.GlobalLeaveSettings{}, fmt.Errorf("failed to upsert leave settings: %w", err)
	}

	return s, nil
}
