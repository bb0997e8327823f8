package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
)

type taxSlabRepository struct {
	db *database.DB
}

func NewTaxSlabRepository(db *database.DB) salary.TaxSlabRepository {
	return &taxSlabRepository{db: db}
}

func (r *taxSlabRepository) Create(ctx context.Context, slab salary.TaxSlab) (salary.TaxSlab, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tax_slabs (id, company_id, min_income, max_income, rate_percent, effective_from)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, company_id, min_income, max_income, rate_percent, effective_from, created_at
	`

	var created salary.TaxSlab
	err := q.QueryRow(ctx, query,
		slab.ID, slab.CompanyID, slab.MinIncome, slab.MaxIncome, slab.RatePercent, slab.EffectiveFrom,
	).Scan(
		&created.ID, &created.CompanyID, &created.MinIncome, &created.MaxIncome,
		&created.RatePercent, &created.EffectiveFrom, &created.CreatedAt,
	)
	if err != nil {
		return salary.TaxSlab{}, fmt.Errorf("failed to create tax slab: %w", err)
	}

	return created, nil
}

func (r *taxSlabRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM tax_slabs WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete tax slab: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrTaxSlabNotFound
	}
	return nil
}

func (r *taxSlabRepository) ListByCompany(ctx context.Context, companyID string) ([]salary.TaxSlab, error) {
	query := `
		SELECT id, company_id, min_income, max_income, rate_percent, effective_from, created_at
		FROM tax_slabs
		WHERE company_id = $1
		ORDER BY min_income
	`
	return r.list(ctx, query, companyID)
}

func (r *taxSlabRepository) ListEffective(ctx context.Context, companyID string, asOf time.Time) ([]salary.TaxSlab, error) {
	query := `
		SELECT id, company_id, min_income, max_income, rate_percent, effective_from, created_at
		FROM tax_slabs
		WHERE company_id = $1 AND effective_from <= $2
		ORDER BY min_income
	`
	return r.list(ctx, query, companyID, asOf)
}

func (r *taxSlabRepository) list(ctx context.Context, query string, args ...interface{}) ([]salary.TaxSlab, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax slabs: %w", err)
	}
	defer rows.Close()

	var slabs []salary.TaxSlab
	for rows.Next() {
		var slab salary.TaxSlab
		if err := rows.Scan(
			&slab.ID, &slab.CompanyID, &slab.MinIncome, &slab.MaxIncome,
			&slab.RatePercent, &slab.EffectiveFrom, &slab.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tax slab: %w", err)
		}
		slabs = append(slabs, slab)
	}

	return slabs, rows.Err()
}
