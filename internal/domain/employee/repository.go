package employee

import "context"

// EmployeeRepository defines data access methods for employees.
// All methods include companyID to prevent cross-company data access.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	// FilterExisting returns the subset of ids that belong to the company.
	FilterExisting(ctx context.Context, ids []string, companyID string) (map[string]bool, error)
}
