package leave

import "context"

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string, companyID string) (LeaveRequest, error)
	List(ctx context.Context, companyID string, filter LeaveRequestFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, req LeaveRequest) error
}

// LeaveBalanceRepository defines data access methods for the balance ledger.
type LeaveBalanceRepository interface {
	// GetOrCreate loads the (company, employee, month) row, creating it
	// with the given allocation when absent.
	GetOrCreate(ctx context.Context, companyID, employeeID, month string, allocation float64) (LeaveBalance, error)
	Save(ctx context.Context, balance LeaveBalance) error
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]LeaveBalance, error)
}

// LeaveSettingsRepository stores the company-wide allocation setting.
type LeaveSettingsRepository interface {
	Get(ctx context.Context, companyID string) (GlobalLeaveSettings, error)
	Upsert(ctx context.Context, settings GlobalLeaveSettings) (GlobalLeaveSettings, error)
}
