package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
	"github.com/staffledger/payroll-backend-go/internal/domain/salary"
)

func testConfig(taxApplicable bool) salary.SalaryConfiguration {
	return salary.SalaryConfiguration{
		Heads: []salary.SalaryHead{
			{Name: "Basic", Kind: salary.HeadKindBasic, Component: salary.ComponentTypeEarning, Value: dec("30000")},
			{Name: "HRA", Kind: salary.HeadKindPercentage, Component: salary.ComponentTypeEarning, Percentage: dec("40")},
			{Name: "Provident Fund", Kind: salary.HeadKindFixed, Component: salary.ComponentTypeDeduction, Value: dec("1800")},
		},
		TaxApplicable: taxApplicable,
	}
}

func TestComputeSlip_FullAttendance(t *testing.T) {
	t.Parallel()

	// June 2025: 30 days, Sundays on 1, 8, 15, 22, 29.
	result, err := ComputeSlip(ComputeInput{
		Config: testConfig(false),
		Month:  "2025-06",
	})
	require.NoError(t, err)

	assert.Equal(t, 30, result.AttendanceSummary.TotalDaysInMonth)
	assert.Equal(t, 25, result.AttendanceSummary.WorkingDays)
	assert.Equal(t, 25, result.AttendanceSummary.PresentDays)
	assert.Equal(t, 0.0, result.AttendanceSummary.UnpaidDayUnits)

	// Basic 30000 + HRA 40% of basic = 12000.
	assert.True(t, dec("42000").Equal(result.TotalEarnings), "got %s", result.TotalEarnings)
	assert.True(t, dec("42000").Equal(result.GrossSalary))
	assert.True(t, dec("1800").Equal(result.TotalDeductions))
	assert.True(t, result.TaxAmount.IsZero())
	assert.True(t, dec("40200").Equal(result.NetSalary), "got %s", result.NetSalary)
}

func TestComputeSlip_LeaveDeduction(t *testing.T) {
	t.Parallel()

	// Two full unpaid days and one half day: 2.5 units over a 30-day
	// month at basic 30000 deducts 2500.
	dayStatus := attendance.DayStatusMap{
		"2025-06-02": attendance.StatusUnpaidLeave,
		"2025-06-03": attendance.StatusAbsent,
		"2025-06-04": attendance.StatusHalfDay,
	}

	result, err := ComputeSlip(ComputeInput{
		Config:    testConfig(false),
		Month:     "2025-06",
		DayStatus: dayStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.AttendanceSummary.UnpaidLeaveDays)
	assert.Equal(t, 1, result.AttendanceSummary.HalfDays)
	assert.Equal(t, 22, result.AttendanceSummary.PresentDays)
	assert.Equal(t, 2.5, result.AttendanceSummary.UnpaidDayUnits)

	require.Len(t, result.Deductions, 2)
	leaveLine := result.Deductions[1]
	assert.Equal(t, "Leave Deduction (2.5 days)", leaveLine.Name)
	assert.True(t, dec("2500").Equal(leaveLine.Amount), "got %s", leaveLine.Amount)

	// Gross is unaffected by deductions.
	assert.True(t, dec("42000").Equal(result.GrossSalary))
	assert.True(t, dec("4300").Equal(result.TotalDeductions))
	assert.True(t, dec("37700").Equal(result.NetSalary), "got %s", result.NetSalary)
}

func TestComputeSlip_SundayAndHolidayNeverDeducted(t *testing.T) {
	t.Parallel()

	// June 1 2025 is a Sunday and June 5 is a holiday; unpaid marks on
	// either must not count.
	dayStatus := attendance.DayStatusMap{
		"2025-06-01": attendance.StatusUnpaidLeave,
		"2025-06-05": attendance.StatusUnpaidLeave,
	}
	holidays := holiday.DateSet{"2025-06-05": {}}

	result, err := ComputeSlip(ComputeInput{
		Config:     testConfig(false),
		Month:      "2025-06",
		HolidaySet: holidays,
		DayStatus:  dayStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, 24, result.AttendanceSummary.WorkingDays)
	assert.Equal(t, 0.0, result.AttendanceSummary.UnpaidDayUnits)
	require.Len(t, result.Deductions, 1)
	assert.Equal(t, "Provident Fund", result.Deductions[0].Name)
}

func TestComputeSlip_PaidLeaveNotDeducted(t *testing.T) {
	t.Parallel()

	dayStatus := attendance.DayStatusMap{
		"2025-06-02": attendance.StatusPaidLeave,
		"2025-06-03": attendance.StatusPaidLeave,
	}

	result, err := ComputeSlip(ComputeInput{
		Config:    testConfig(false),
		Month:     "2025-06",
		DayStatus: dayStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.AttendanceSummary.PaidLeaveDays)
	assert.Equal(t, 0.0, result.AttendanceSummary.UnpaidDayUnits)
	assert.True(t, dec("42000").Equal(result.GrossSalary))
}

func TestComputeSlip_MonthlyTax(t *testing.T) {
	t.Parallel()

	// Annualized gross 42000 x 12 = 504000; bracketed tax 13300 a year,
	// so 1108.33 a month.
	result, err := ComputeSlip(ComputeInput{
		Config:   testConfig(true),
		Month:    "2025-06",
		TaxSlabs: testSlabs(),
	})
	require.NoError(t, err)

	assert.True(t, dec("1108.33").Equal(result.TaxAmount), "got %s", result.TaxAmount)
	// Net = 42000 - 1800 - 1108.33.
	assert.True(t, dec("39091.67").Equal(result.NetSalary), "got %s", result.NetSalary)
}

func TestComputeSlip_NoBasicHead(t *testing.T) {
	t.Parallel()

	config := salary.SalaryConfiguration{
		Heads: []salary.SalaryHead{
			{Name: "HRA", Kind: salary.HeadKindPercentage, Component: salary.ComponentTypeEarning, Percentage: dec("40")},
		},
	}

	_, err := ComputeSlip(ComputeInput{Config: config, Month: "2025-06"})
	assert.ErrorIs(t, err, salary.ErrBasicSalaryNotConfigured)
}

func TestComputeSlip_ZeroBasicHead(t *testing.T) {
	t.Parallel()

	config := salary.SalaryConfiguration{
		Heads: []salary.SalaryHead{
			{Name: "Basic", Kind: salary.HeadKindBasic, Value: dec("0")},
		},
	}

	_, err := ComputeSlip(ComputeInput{Config: config, Month: "2025-06"})
	assert.ErrorIs(t, err, salary.ErrBasicSalaryNotConfigured)
}

func TestComputeSlip_InvalidMonth(t *testing.T) {
	t.Parallel()

	_, err := ComputeSlip(ComputeInput{Config: testConfig(false), Month: "junk"})
	assert.ErrorIs(t, err, salary.ErrInvalidMonth)
}

func TestComputeSlip_UnmarkedDaysArePresent(t *testing.T) {
	t.Parallel()

	// An empty status map means nobody marked anything; the month still
	// pays out in full.
	result, err := ComputeSlip(ComputeInput{
		Config:    testConfig(false),
		Month:     "2025-06",
		DayStatus: attendance.DayStatusMap{},
	})
	require.NoError(t, err)

	assert.Equal(t, result.AttendanceSummary.WorkingDays, result.AttendanceSummary.PresentDays)
	assert.True(t, dec("42000").Equal(result.GrossSalary))
}
