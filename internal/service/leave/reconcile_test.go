package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
	"github.com/staffledger/payroll-backend-go/internal/domain/leave"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPlanApproval_BalanceExhaustion(t *testing.T) {
	t.Parallel()

	// One paid day remaining over three working days: first is paid,
	// the rest unpaid. June 2-4 2025 are Mon-Wed.
	balances := map[string]leave.LeaveBalance{
		"2025-06": {Month: "2025-06", TotalAllocated: 1, Used: 0, Remaining: 1},
	}

	plan := PlanApproval(day(2025, time.June, 2), day(2025, time.June, 4), nil, balances)

	require.Len(t, plan.Days, 3)
	assert.Equal(t, attendance.StatusPaidLeave, plan.Days[0].Status)
	assert.Equal(t, attendance.StatusUnpaidLeave, plan.Days[1].Status)
	assert.Equal(t, attendance.StatusUnpaidLeave, plan.Days[2].Status)

	assert.Equal(t, 1.0, plan.Result.PaidDays)
	assert.Equal(t, 2.0, plan.Result.UnpaidDays)
	assert.Equal(t, 0, plan.Result.SkippedDays)

	updated := plan.Balances["2025-06"]
	assert.Equal(t, 0.0, updated.Remaining)
	assert.Equal(t, 3.0, updated.Used)
}

func TestPlanApproval_FractionalRemainderStillPaid(t *testing.T) {
	t.Parallel()

	// A fractional allocation (0.5 remaining) still covers one paid day;
	// the counter floors at zero instead of going negative.
	balances := map[string]leave.LeaveBalance{
		"2025-06": {Month: "2025-06", TotalAllocated: 0.5, Used: 0, Remaining: 0.5},
	}

	plan := PlanApproval(day(2025, time.June, 2), day(2025, time.June, 3), nil, balances)

	require.Len(t, plan.Days, 2)
	assert.Equal(t, attendance.StatusPaidLeave, plan.Days[0].Status)
	assert.Equal(t, attendance.StatusUnpaidLeave, plan.Days[1].Status)

	updated := plan.Balances["2025-06"]
	assert.Equal(t, 0.0, updated.Remaining)
	assert.Equal(t, 2.0, updated.Used)
	assert.Equal(t, 1.0, plan.Result.PaidDays)
	assert.Equal(t, 1.0, plan.Result.UnpaidDays)
}

func TestPlanApproval_SkipsSundaysAndHolidays(t *testing.T) {
	t.Parallel()

	// June 6-9 2025: Friday, Saturday, Sunday, Monday. Saturday is a
	// declared holiday; Sunday is skipped by rule.
	holidays := holiday.DateSet{"2025-06-07": {}}
	balances := map[string]leave.LeaveBalance{
		"2025-06": {Month: "2025-06", TotalAllocated: 2, Remaining: 2},
	}

	plan := PlanApproval(day(2025, time.June, 6), day(2025, time.June, 9), holidays, balances)

	require.Len(t, plan.Days, 2)
	assert.Equal(t, day(2025, time.June, 6), plan.Days[0].Date)
	assert.Equal(t, day(2025, time.June, 9), plan.Days[1].Date)
	assert.Equal(t, 2, plan.Result.SkippedDays)
	assert.Equal(t, 2.0, plan.Result.PaidDays)
}

func TestPlanApproval_SpansMonths(t *testing.T) {
	t.Parallel()

	// June 30 and July 1 2025 (Mon, Tue) draw on separate monthly
	// balances.
	balances := map[string]leave.LeaveBalance{
		"2025-06": {Month: "2025-06", TotalAllocated: 1, Remaining: 1},
		"2025-07": {Month: "2025-07", TotalAllocated: 1, Remaining: 1},
	}

	plan := PlanApproval(day(2025, time.June, 30), day(2025, time.July, 1), nil, balances)

	require.Len(t, plan.Days, 2)
	assert.Equal(t, attendance.StatusPaidLeave, plan.Days[0].Status)
	assert.Equal(t, attendance.StatusPaidLeave, plan.Days[1].Status)

	assert.Equal(t, 0.0, plan.Balances["2025-06"].Remaining)
	assert.Equal(t, 0.0, plan.Balances["2025-07"].Remaining)
	assert.Equal(t, 1.0, plan.Balances["2025-06"].Used)
	assert.Equal(t, 1.0, plan.Balances["2025-07"].Used)
}

func TestPlanApproval_AllDaysSkipped(t *testing.T) {
	t.Parallel()

	// A Sunday-only span writes nothing and touches no balance.
	balances := map[string]leave.LeaveBalance{
		"2025-06": {Month: "2025-06", TotalAllocated: 1, Remaining: 1},
	}

	plan := PlanApproval(day(2025, time.June, 8), day(2025, time.June, 8), nil, balances)

	assert.Empty(t, plan.Days)
	assert.Empty(t, plan.Balances)
	assert.Equal(t, 1, plan.Result.SkippedDays)
}

func TestPlanApproval_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	balances := map[string]leave.LeaveBalance{
		"2025-06": {Month: "2025-06", TotalAllocated: 1, Remaining: 1},
	}

	PlanApproval(day(2025, time.June, 2), day(2025, time.June, 4), nil, balances)

	assert.Equal(t, 1.0, balances["2025-06"].Remaining)
	assert.Equal(t, 0.0, balances["2025-06"].Used)
}

func TestSyncAllocation(t *testing.T) {
	t.Parallel()

	t.Run("no drift", func(t *testing.T) {
		b := leave.LeaveBalance{TotalAllocated: 2, Used: 1, Remaining: 1}
		assert.False(t, b.SyncAllocation(2))
	})

	t.Run("allocation raised", func(t *testing.T) {
		b := leave.LeaveBalance{TotalAllocated: 1, Used: 1, Remaining: 0}
		assert.True(t, b.SyncAllocation(3))
		assert.Equal(t, 3.0, b.TotalAllocated)
		assert.Equal(t, 2.0, b.Remaining)
		assert.Equal(t, 1.0, b.Used)
	})

	t.Run("allocation lowered floors at zero", func(t *testing.T) {
		b := leave.LeaveBalance{TotalAllocated: 3, Used: 2, Remaining: 1}
		assert.True(t, b.SyncAllocation(1))
		assert.Equal(t, 1.0, b.TotalAllocated)
		assert.Equal(t, 0.0, b.Remaining)
	})
}

func TestMonthsSpanned(t *testing.T) {
	t.Parallel()

	months := monthsSpanned(day(2025, time.November, 20), day(2026, time.January, 5))
	assert.Equal(t, []string{"2025-11", "2025-12", "2026-01"}, months)

	single := monthsSpanned(day(2025, time.June, 1), day(2025, time.June, 30))
	assert.Equal(t, []string{"2025-06"}, single)
}
