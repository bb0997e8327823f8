package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
)

type salaryConfigRepository struct {
	db *database.DB
}

func NewSalaryConfigRepository(db *database.DB) salary.SalaryConfigRepository {
	return &salaryConfigRepository{db: db}
}

// headRecord is the JSONB shape for one salary head.
type headRecord struct {
	HeadID     string `json:"head_id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Component  string `json:"component"`
	Value      string `json:"value"`
	Percentage string `json:"percentage"`
}

func marshalHeads(heads []salary.SalaryHead) ([]byte, error) {
	records := make([]headRecord, 0, len(heads))
	for _, h := range heads {
		records = append(records, headRecord{
			HeadID:     h.HeadID,
			Name:       h.Name,
			Kind:       string(h.Kind),
			Component:  string(h.Component),
			Value:      h.Value.String(),
			Percentage: h.Percentage.String(),
		})
	}
	return json.Marshal(records)
}

func unmarshalHeads(data []byte) ([]salary.SalaryHead, error) {
	var records []headRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode salary heads: %w", err)
	}

	heads := make([]salary.SalaryHead, 0, len(records))
	for _, rec := range records {
		h := salary.SalaryHead{
			HeadID:    rec.HeadID,
			Name:      rec.Name,
			Kind:      salary.HeadKind(rec.Kind),
			Component: salary.ComponentType(rec.Component),
		}
		var err error
		if h.Value, err = parseDecimal(rec.Value); err != nil {
			return nil, err
		}
		if h.Percentage, err = parseDecimal(rec.Percentage); err != nil {
			return nil, err
		}
		heads = append(heads, h)
	}
	return heads, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse decimal %q: %w", s, err)
	}
	return d, nil
}

func (r *salaryConfigRepository) Upsert(ctx context.Context, config salary.SalaryConfiguration) (salary.SalaryConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	headsJSON, err := marshalHeads(config.Heads)
	if err != nil {
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to encode salary heads: %w", err)
	}

	query := `
		INSERT INTO salary_configurations (id, company_id, employee_id, heads, tax_applicable)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id, employee_id) DO UPDATE SET
			heads = EXCLUDED.heads,
			tax_applicable = EXCLUDED.tax_applicable,
			updated_at = NOW()
		RETURNING id, company_id, employee_id, heads, tax_applicable, created_at, updated_at
	`

	var saved salary.SalaryConfiguration
	var savedHeads []byte
	err = q.QueryRow(ctx, query, config.ID, config.CompanyID, config.EmployeeID, headsJSON, config.TaxApplicable).Scan(
		&saved.ID, &saved.CompanyID, &saved.EmployeeID, &savedHeads, &saved.TaxApplicable,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to upsert salary configuration: %w", err)
	}
	if saved.Heads, err = unmarshalHeads(savedHeads); err != nil {
		return salary.SalaryConfiguration{}, err
	}

	return saved, nil
}

func (r *salaryConfigRepository) GetByEmployee(ctx context.Context, employeeID string, companyID string) (salary.SalaryConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, heads, tax_applicable, created_at, updated_at
		FROM salary_configurations
		WHERE employee_id = $1 AND company_id = $2
	`

	var config salary.SalaryConfiguration
	var headsJSON []byte
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&config.ID, &config.CompanyID, &config.EmployeeID, &headsJSON, &config.TaxApplicable,
		&config.CreatedAt, &config.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryConfiguration{}, salary.ErrSalaryConfigNotFound
		}
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to get salary configuration: %w", err)
	}
	if config.Heads, err = unmarshalHeads(headsJSON); err != nil {
		return salary.SalaryConfiguration{}, err
	}

	return config, nil
}

func (r *salaryConfigRepository) GetByEmployeeIDs(ctx context.Context, employeeIDs []string, companyID string) (map[string]salary.SalaryConfiguration, error) {
	if len(employeeIDs) == 0 {
		return map[string]salary.SalaryConfiguration{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, heads, tax_applicable, created_at, updated_at
		FROM salary_configurations
		WHERE company_id = $1 AND employee_id = ANY($2)
	`

	rows, err := q.Query(ctx, query, companyID, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary configurations: %w", err)
	}
	defer rows.Close()

	configs := make(map[string]salary.SalaryConfiguration, len(employeeIDs))
	for rows.Next() {
		var config salary.SalaryConfiguration
		var headsJSON []byte
		if err := rows.Scan(
			&config.ID, &config.CompanyID, &config.EmployeeID, &headsJSON, &config.TaxApplicable,
			&config.CreatedAt, &config.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary configuration: %w", err)
		}
		if config.Heads, err = unmarshalHeads(headsJSON); err != nil {
			return nil, err
		}
		configs[config.EmployeeID] = config
	}

	return configs, rows.Err()
}
