package salary

import (
	"github.com/shopspring/decimal"

	"github.com/staffledger/payroll-backend-go/internal/pkg/validator"
)

// ========== CONFIGURATION ==========

type SalaryHeadInput struct {
	Name       string           `json:"name"`
	Kind       string           `json:"kind"`
	Component  string           `json:"component"`
	Value      *decimal.Decimal `json:"value,omitempty"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

type UpsertConfigurationRequest struct {
	EmployeeID    string            `json:"-"`
	Heads         []SalaryHeadInput `json:"heads"`
	TaxApplicable bool              `json:"tax_applicable"`
}

func (r UpsertConfigurationRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Heads) == 0 {
		errs = append(errs, validator.ValidationError{Field: "heads", Message: "at least one salary head is required"})
	}

	basicCount := 0
	for _, h := range r.Heads {
		if validator.IsEmpty(h.Name) {
			errs = append(errs, validator.ValidationError{Field: "heads", Message: "head name is required"})
			break
		}
		switch HeadKind(h.Kind) {
		case HeadKindBasic:
			basicCount++
			if h.Value == nil || !h.Value.IsPositive() {
				errs = append(errs, validator.ValidationError{Field: "heads", Message: "basic head requires a positive value"})
			}
		case HeadKindFixed:
			if h.Value == nil || h.Value.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: "heads", Message: "fixed head requires a non-negative value"})
			}
		case HeadKindPercentage:
			if h.Percentage == nil || h.Percentage.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: "heads", Message: "percentage head requires a non-negative percentage"})
			}
		default:
			errs = append(errs, validator.ValidationError{Field: "heads", Message: "kind must be basic, percentage, or fixed"})
		}
		if h.Kind != string(HeadKindBasic) {
			ct := ComponentType(h.Component)
			if ct != ComponentTypeEarning && ct != ComponentTypeDeduction {
				errs = append(errs, validator.ValidationError{Field: "heads", Message: "component must be earning or deduction"})
			}
		}
	}
	if basicCount != 1 {
		errs = append(errs, validator.ValidationError{Field: "heads", Message: "exactly one basic head is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigurationResponse struct {
	EmployeeID    string       `json:"employee_id"`
	Heads         []SalaryHead `json:"heads"`
	TaxApplicable bool         `json:"tax_applicable"`
}

// ========== TAX SLABS ==========

type CreateTaxSlabRequest struct {
	MinIncome     decimal.Decimal  `json:"min_income"`
	MaxIncome     *decimal.Decimal `json:"max_income,omitempty"`
	RatePercent   decimal.Decimal  `json:"rate_percent"`
	EffectiveFrom string           `json:"effective_from"`
}

func (r CreateTaxSlabRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MinIncome.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "min_income", Message: "min_income must not be negative"})
	}
	if r.MaxIncome != nil && !r.MaxIncome.GreaterThan(r.MinIncome) {
		errs = append(errs, validator.ValidationError{Field: "max_income", Message: "max_income must be greater than min_income"})
	}
	if r.RatePercent.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate_percent", Message: "rate_percent must not be negative"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "effective_from must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaxSlabResponse struct {
	ID            string           `json:"id"`
	MinIncome     decimal.Decimal  `json:"min_income"`
	MaxIncome     *decimal.Decimal `json:"max_income,omitempty"`
	RatePercent   decimal.Decimal  `json:"rate_percent"`
	EffectiveFrom string           `json:"effective_from"`
}

// ========== SLIPS ==========

type GenerateSlipRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

func (r GenerateSlipRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkGenerateRequest struct {
	Month string `json:"month"`
}

func (r BulkGenerateRequest) Validate() error {
	if validator.IsEmpty(r.Month) {
		return validator.ValidationErrors{{Field: "month", Message: "month is required"}}
	}
	return nil
}

type SlipResponse struct {
	ID                string            `json:"id"`
	EmployeeID        string            `json:"employee_id"`
	EmployeeName      string            `json:"employee_name,omitempty"`
	Month             string            `json:"month"`
	Earnings          []SlipLine        `json:"earnings"`
	Deductions        []SlipLine        `json:"deductions"`
	TotalEarnings     decimal.Decimal   `json:"total_earnings"`
	TotalDeductions   decimal.Decimal   `json:"total_deductions"`
	GrossSalary       decimal.Decimal   `json:"gross_salary"`
	TaxAmount         decimal.Decimal   `json:"tax_amount"`
	NetSalary         decimal.Decimal   `json:"net_salary"`
	AttendanceSummary AttendanceSummary `json:"attendance_summary"`
}

// EmployeeError - one employee's failure inside a bulk run.
type EmployeeError struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// BulkGenerateResult - partial-success report for a company-wide run.
type BulkGenerateResult struct {
	Month     string          `json:"month"`
	Processed int             `json:"processed"`
	Skipped   int             `json:"skipped"`
	Errors    []EmployeeError `json:"errors,omitempty"`
}

type SlipFilter struct {
	Month      *string
	EmployeeID *string
}
