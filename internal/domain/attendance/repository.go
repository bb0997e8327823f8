package attendance

import (
	"context"
	"time"
)

// DayStatusMap maps "YYYY-MM-DD" date keys to the marked status.
type DayStatusMap map[string]Status

// CompanyStatusMap maps employeeID to that employee's DayStatusMap.
type CompanyStatusMap map[string]DayStatusMap

// AttendanceRepository defines data access methods for attendance records.
// All methods include companyID to prevent cross-company data access.
type AttendanceRepository interface {
	// BulkUpsert writes records keyed on (company, employee, date);
	// last write wins on conflict.
	BulkUpsert(ctx context.Context, records []Attendance) error
	// Delete removes a record entirely (the "Unmarked" semantics).
	Delete(ctx context.Context, companyID, employeeID string, date time.Time) error
	List(ctx context.Context, companyID string, filter AttendanceFilter) ([]Attendance, error)

	// GetEmployeeMonthMap loads one employee's statuses for [from, to).
	GetEmployeeMonthMap(ctx context.Context, companyID, employeeID string, from, to time.Time) (DayStatusMap, error)
	// GetCompanyMonthMap loads every employee's statuses for [from, to)
	// in a single query; the bulk generator depends on this to avoid
	// per-employee round-trips.
	GetCompanyMonthMap(ctx context.Context, companyID string, from, to time.Time) (CompanyStatusMap, error)
}
