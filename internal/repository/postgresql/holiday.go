package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
	"github.com/staffledger/payroll-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, company_id, date, name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, company_id, date, name, created_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query, h.ID, h.CompanyID, h.Date, h.Name).Scan(
		&created.ID, &created.CompanyID, &created.Date, &created.Name, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_holiday_company_date") {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

func (r *holidayRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM holidays WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func (r *holidayRepository) ListByYear(ctx context.Context, companyID string, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, date, name, created_at
		FROM holidays
		WHERE company_id = $1 AND EXTRACT(YEAR FROM date) = $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

func (r *holidayRepository) GetDateSet(ctx context.Context, companyID string, from, to time.Time) (holiday.DateSet, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT date FROM holidays WHERE company_id = $1 AND date >= $2 AND date < $3`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.DateSet{}, nil
		}
		return nil, fmt.Errorf("failed to get holiday dates: %w", err)
	}
	defer rows.Close()

	set := make(holiday.DateSet)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan holiday date: %w", err)
		}
		set[date.Format("2006-01-02")] = struct{}{}
	}

	return set, rows.Err()
}
