package salary

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
)

// ComputeInput carries everything one slip computation needs. The caller
// (single or bulk path) pre-fetches the maps; the engine itself never
// touches storage, so the same code serves preview, persist, and bulk.
type ComputeInput struct {
	Config     salary.SalaryConfiguration
	Month      string // canonical YYYY-MM
	TaxSlabs   []salary.TaxSlab
	HolidaySet holiday.DateSet
	DayStatus  attendance.DayStatusMap
}

// SlipResult is the pure computation output; persistence is the caller's
// decision.
type SlipResult struct {
	Earnings          []salary.SlipLine
	Deductions        []salary.SlipLine
	TotalEarnings     decimal.Decimal
	TotalDeductions   decimal.Decimal
	GrossSalary       decimal.Decimal
	TaxAmount         decimal.Decimal
	NetSalary         decimal.Decimal
	AttendanceSummary salary.AttendanceSummary
}

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	half    = decimal.NewFromFloat(0.5)
)

// ComputeSlip expands the salary heads, walks the month's working days to
// derive the leave deduction, and applies progressive tax. Deterministic
// given its inputs.
func ComputeSlip(in ComputeInput) (SlipResult, error) {
	monthStart, monthEnd, err := MonthBounds(in.Month)
	if err != nil {
		return SlipResult{}, err
	}

	basic, ok := in.Config.BasicSalary()
	if !ok {
		return SlipResult{}, salary.ErrBasicSalaryNotConfigured
	}

	var result SlipResult
	for _, head := range in.Config.Heads {
		var amount decimal.Decimal
		switch head.Kind {
		case salary.HeadKindBasic, salary.HeadKindFixed:
			amount = head.Value.Round(2)
		case salary.HeadKindPercentage:
			amount = head.Percentage.Mul(basic).Div(hundred).Round(2)
		default:
			return SlipResult{}, fmt.Errorf("unknown head kind %q for head %s", head.Kind, head.Name)
		}

		line := salary.SlipLine{Name: head.Name, Amount: amount}
		if head.Kind == salary.HeadKindBasic || head.Component == salary.ComponentTypeEarning {
			result.Earnings = append(result.Earnings, line)
		} else {
			result.Deductions = append(result.Deductions, line)
		}
	}

	summary, unpaidUnits := walkMonth(monthStart, monthEnd, in.HolidaySet, in.DayStatus)
	result.AttendanceSummary = summary

	if unpaidUnits.IsPositive() {
		days := decimal.NewFromInt(int64(summary.TotalDaysInMonth))
		deduction := basic.Div(days).Mul(unpaidUnits).Round(2)
		if deduction.IsPositive() {
			result.Deductions = append(result.Deductions, salary.SlipLine{
				Name:   fmt.Sprintf("Leave Deduction (%s days)", unpaidUnits.String()),
				Amount: deduction,
			})
		}
	}

	result.TotalEarnings = sumLines(result.Earnings)
	result.TotalDeductions = sumLines(result.Deductions)
	// Gross excludes deductions by this system's convention; deductions
	// and tax both subtract from gross only at the net stage.
	result.GrossSalary = result.TotalEarnings

	if in.Config.TaxApplicable {
		annual := result.GrossSalary.Mul(twelve)
		result.TaxAmount = ProgressiveTax(annual, in.TaxSlabs).Div(twelve).Round(2)
	} else {
		result.TaxAmount = decimal.Zero
	}

	result.NetSalary = result.GrossSalary.Sub(result.TotalDeductions).Sub(result.TaxAmount).Round(2)

	return result, nil
}

// walkMonth tallies the month day by day. Sundays and holidays are not
// working days and never attract deductions. A day with no record is
// treated as present: marking may be incomplete on small teams, and the
// lenient reading is the documented behavior.
func walkMonth(monthStart, monthEnd time.Time, holidays holiday.DateSet, dayStatus attendance.DayStatusMap) (salary.AttendanceSummary, decimal.Decimal) {
	summary := salary.AttendanceSummary{
		TotalDaysInMonth: monthEnd.AddDate(0, 0, -1).Day(),
	}
	unpaidUnits := decimal.Zero

	for d := monthStart; d.Before(monthEnd); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		key := d.Format("2006-01-02")
		if holidays.Contains(key) {
			continue
		}

		summary.WorkingDays++

		switch dayStatus[key] {
		case attendance.StatusUnpaidLeave, attendance.StatusAbsent:
			summary.UnpaidLeaveDays++
			unpaidUnits = unpaidUnits.Add(decimal.NewFromInt(1))
		case attendance.StatusHalfDay:
			summary.HalfDays++
			unpaidUnits = unpaidUnits.Add(half)
		case attendance.StatusPaidLeave:
			summary.PaidLeaveDays++
		default:
			// Present, or unmarked (implicitly present).
			summary.PresentDays++
		}
	}

	summary.UnpaidDayUnits, _ = unpaidUnits.Float64()
	return summary, unpaidUnits
}

func sumLines(lines []salary.SlipLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total.Round(2)
}
