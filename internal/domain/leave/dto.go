package leave

import (
	"time"

	"github.com/staffledger/payroll-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

func (r CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	var from, to time.Time
	var ok bool
	if from, ok = validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from_date must be YYYY-MM-DD"})
	}
	if to, ok = validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must be YYYY-MM-DD"})
	}
	if len(errs) == 0 && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must not be before from_date"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateLeaveStatusRequest) Validate() error {
	if r.Status != string(LeaveRequestStatusApproved) && r.Status != string(LeaveRequestStatusRejected) {
		return validator.ValidationErrors{{Field: "status", Message: "status must be approved or rejected"}}
	}
	return nil
}

type UpdateLeaveSettingsRequest struct {
	DefaultMonthlyPaidLeaves *float64 `json:"default_monthly_paid_leaves"`
}

func (r UpdateLeaveSettingsRequest) Validate() error {
	if r.DefaultMonthlyPaidLeaves == nil {
		return validator.ValidationErrors{{Field: "default_monthly_paid_leaves", Message: "default_monthly_paid_leaves is required"}}
	}
	if *r.DefaultMonthlyPaidLeaves < 0 {
		return validator.ValidationErrors{{Field: "default_monthly_paid_leaves", Message: "must not be negative"}}
	}
	return nil
}

type LeaveRequestResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
	LeaveType  string  `json:"leave_type"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	ApprovedBy *string `json:"approved_by,omitempty"`
}

type LeaveBalanceResponse struct {
	Month          string  `json:"month"`
	TotalAllocated float64 `json:"total_allocated"`
	Used           float64 `json:"used"`
	Remaining      float64 `json:"remaining"`
}

// ApprovalResult summarizes what an approval wrote.
type ApprovalResult struct {
	PaidDays    float64 `json:"paid_days"`
	UnpaidDays  float64 `json:"unpaid_days"`
	SkippedDays int     `json:"skipped_days"`
}

type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *string
}
