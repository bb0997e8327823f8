package holiday

import "time"

// Holiday - a non-working date for one company; unique per (company, date).
type Holiday struct {
	ID        string
	CompanyID string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}

// DateSet holds holiday dates keyed by "YYYY-MM-DD" for O(1) lookups
// during the salary engine's day-walk.
type DateSet map[string]struct{}

func (s DateSet) Contains(dateKey string) bool {
	_, ok := s[dateKey]
	return ok
}
