package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string, companyID string) error
	ListByYear(ctx context.Context, companyID string, year int) ([]Holiday, error)
	// GetDateSet loads all holiday dates in [from, to) in one query.
	GetDateSet(ctx context.Context, companyID string, from, to time.Time) (DateSet, error)
}
