package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// HeadKind is the explicit tag for how a salary head's amount is derived.
// Basic is the anchor absolute value; Percentage entries are evaluated
// against it at computation time, never pre-computed.
type HeadKind string

const (
	HeadKindBasic      HeadKind = "basic"
	HeadKindPercentage HeadKind = "percentage"
	HeadKindFixed      HeadKind = "fixed"
)

// ComponentType enum
type ComponentType string

const (
	ComponentTypeEarning   ComponentType = "earning"
	ComponentTypeDeduction ComponentType = "deduction"
)

// SalaryHead - one line item of an employee's pay structure.
type SalaryHead struct {
	HeadID     string
	Name       string
	Kind       HeadKind
	Component  ComponentType
	Value      decimal.Decimal // absolute amount for basic/fixed kinds
	Percentage decimal.Decimal // percent of basic for percentage kind
}

// SalaryConfiguration - a live formula: the heads are re-evaluated every
// time a slip is computed. Exactly one head must be HeadKindBasic.
type SalaryConfiguration struct {
	ID            string
	CompanyID     string
	EmployeeID    string
	Heads         []SalaryHead
	TaxApplicable bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BasicSalary resolves the anchor value. The zero value is returned when
// no usable basic head exists; callers must treat that as a
// configuration error, not as a zero salary.
func (c SalaryConfiguration) BasicSalary() (decimal.Decimal, bool) {
	for _, h := range c.Heads {
		if h.Kind == HeadKindBasic {
			if h.Value.IsPositive() {
				return h.Value, true
			}
			return decimal.Zero, false
		}
	}
	return decimal.Zero, false
}

// TaxSlab - one progressive bracket. MaxIncome nil means unbounded.
type TaxSlab struct {
	ID            string
	CompanyID     string
	MinIncome     decimal.Decimal
	MaxIncome     *decimal.Decimal
	RatePercent   decimal.Decimal
	EffectiveFrom time.Time
	CreatedAt     time.Time
}

// SlipLine - one computed earning or deduction on a slip.
type SlipLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// AttendanceSummary - the day-walk tallies embedded in a slip.
type AttendanceSummary struct {
	TotalDaysInMonth int     `json:"total_days_in_month"`
	WorkingDays      int     `json:"working_days"`
	PresentDays      int     `json:"present_days"`
	PaidLeaveDays    int     `json:"paid_leave_days"`
	UnpaidLeaveDays  int     `json:"unpaid_leave_days"`
	HalfDays         int     `json:"half_days"`
	UnpaidDayUnits   float64 `json:"unpaid_day_units"`
}

// SalarySlip - the persisted computation result; unique per
// (company, employee, month). Regeneration is rejected, never overwritten.
type SalarySlip struct {
	ID                string
	CompanyID         string
	EmployeeID        string
	Month             string // canonical YYYY-MM
	Earnings          []SlipLine
	Deductions        []SlipLine
	TotalEarnings     decimal.Decimal
	TotalDeductions   decimal.Decimal
	GrossSalary       decimal.Decimal
	TaxAmount         decimal.Decimal
	NetSalary         decimal.Decimal
	AttendanceSummary AttendanceSummary
	CreatedAt         time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
