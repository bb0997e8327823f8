package salary

import (
	"context"
	"time"
)

// SalaryConfigRepository defines data access methods for pay structures.
// All methods include companyID to prevent cross-company data access.
type SalaryConfigRepository interface {
	Upsert(ctx context.Context, config SalaryConfiguration) (SalaryConfiguration, error)
	GetByEmployee(ctx context.Context, employeeID string, companyID string) (SalaryConfiguration, error)
	// GetByEmployeeIDs loads every configuration in one query, indexed by
	// employee id; employees without a configuration are simply absent.
	GetByEmployeeIDs(ctx context.Context, employeeIDs []string, companyID string) (map[string]SalaryConfiguration, error)
}

// TaxSlabRepository defines data access methods for tax brackets.
type TaxSlabRepository interface {
	Create(ctx context.Context, slab TaxSlab) (TaxSlab, error)
	Delete(ctx context.Context, id string, companyID string) error
	ListByCompany(ctx context.Context, companyID string) ([]TaxSlab, error)
	// ListEffective returns slabs with effective_from <= asOf, sorted by
	// min_income ascending.
	ListEffective(ctx context.Context, companyID string, asOf time.Time) ([]TaxSlab, error)
}

// SlipRepository defines data access methods for salary slips.
type SlipRepository interface {
	Create(ctx context.Context, slip SalarySlip) (SalarySlip, error)
	GetByID(ctx context.Context, id string, companyID string) (SalarySlip, error)
	Exists(ctx context.Context, companyID, employeeID, month string) (bool, error)
	List(ctx context.Context, companyID string, filter SlipFilter) ([]SalarySlip, error)
	// EmployeeIDsWithSlip returns the set of employees already holding a
	// slip for the month.
	EmployeeIDsWithSlip(ctx context.Context, companyID, month string) (map[string]bool, error)
	// BulkInsert inserts unordered with conflict-skip semantics and
	// reports how many rows actually landed; a duplicate key is a skip,
	// not a batch failure.
	BulkInsert(ctx context.Context, slips []SalarySlip) (int, error)
}
