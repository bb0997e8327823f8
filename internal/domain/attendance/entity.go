package attendance

import "time"

// Status enum for a marked day. "Unmarked" is accepted on input only and
// means the record is deleted, never stored.
type Status string

const (
	StatusPresent     Status = "present"
	StatusAbsent      Status = "absent"
	StatusPaidLeave   Status = "paid_leave"
	StatusUnpaidLeave Status = "unpaid_leave"
	StatusHalfDay     Status = "half_day"

	// StatusUnmarked is an input sentinel, not a stored value.
	StatusUnmarked Status = "unmarked"
)

func IsStorableStatus(s Status) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusPaidLeave, StatusUnpaidLeave, StatusHalfDay:
		return true
	}
	return false
}

// Attendance - one status per (company, employee, date). The unique index
// on that triple is the concurrency guarantee for upserts.
type Attendance struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Date       time.Time
	Status     Status
	MarkedBy   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
