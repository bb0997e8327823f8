package leave

import "time"

// LeaveRequestStatus enum. Approved and Rejected are terminal.
type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

type LeaveRequest struct {
	ID         string
	CompanyID  string
	EmployeeID string
	FromDate   time.Time
	ToDate     time.Time
	LeaveType  string
	Reason     string
	Status     LeaveRequestStatus
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LeaveBalance - paid-leave counters for one (company, employee, month).
// TotalAllocated tracks the company-wide monthly allocation and is
// re-synchronized lazily whenever the row is read or written.
type LeaveBalance struct {
	ID             string
	CompanyID      string
	EmployeeID     string
	Month          string // canonical YYYY-MM
	TotalAllocated float64
	Used           float64
	Remaining      float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SyncAllocation reconciles a balance against the current company-wide
// allocation. Used is preserved; Remaining absorbs the delta, floored at
// zero. Returns true when the row drifted and needs saving.
func (b *LeaveBalance) SyncAllocation(currentDefault float64) bool {
	if b.TotalAllocated == currentDefault {
		return false
	}
	delta := currentDefault - b.TotalAllocated
	b.TotalAllocated = currentDefault
	b.Remaining = b.Remaining + delta
	if b.Remaining < 0 {
		b.Remaining = 0
	}
	return true
}

// GlobalLeaveSettings - mutable company-wide allocation setting.
type GlobalLeaveSettings struct {
	ID                       string
	CompanyID                string
	DefaultMonthlyPaidLeaves float64
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

const DefaultMonthlyPaidLeaves = 1.0
