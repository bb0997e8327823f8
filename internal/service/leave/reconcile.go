package leave

import (
	"time"

	"github.com/staffledger/payroll-backend-go/internal/domain/attendance"
	"github.com/staffledger/payroll-backend-go/internal/domain/holiday"
	"github.com/staffledger/payroll-backend-go/internal/domain/leave"
)

// PlannedDay is one attendance write an approval will perform.
type PlannedDay struct {
	Date   time.Time
	Status attendance.Status
}

// ApprovalPlan is the pure outcome of reconciling an approved leave span
// against the balance ledger: which days become paid or unpaid, and what
// each touched month's balance looks like afterwards.
type ApprovalPlan struct {
	Days     []PlannedDay
	Balances map[string]leave.LeaveBalance // by month, only touched months
	Result   leave.ApprovalResult
}

// PlanApproval walks [from, to] one day at a time. Sundays and holidays
// are skipped outright. Each working day draws on the balance of the
// month the day falls in: while any Remaining is left the day is paid
// leave, after that unpaid. Used counts every leave day taken, paid or
// not, so the ledger shows the true consumption.
//
// The input balances map is not mutated; updated copies come back in the
// plan.
func PlanApproval(from, to time.Time, holidays holiday.DateSet, balances map[string]leave.LeaveBalance) ApprovalPlan {
	plan := ApprovalPlan{
		Balances: make(map[string]leave.LeaveBalance, len(balances)),
	}
	for month, b := range balances {
		plan.Balances[month] = b
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			plan.Result.SkippedDays++
			continue
		}
		if holidays.Contains(d.Format("2006-01-02")) {
			plan.Result.SkippedDays++
			continue
		}

		month := d.Format("2006-01")
		balance := plan.Balances[month]

		// The allocation setting permits fractional days, so a partial
		// remainder still buys a paid day and the counter floors at zero.
		status := attendance.StatusUnpaidLeave
		if balance.Remaining > 0 {
			status = attendance.StatusPaidLeave
			balance.Remaining--
			if balance.Remaining < 0 {
				balance.Remaining = 0
			}
			plan.Result.PaidDays++
		} else {
			plan.Result.UnpaidDays++
		}
		balance.Used++
		plan.Balances[month] = balance

		plan.Days = append(plan.Days, PlannedDay{Date: d, Status: status})
	}

	// Untouched months stay out of the plan so the approval writes only
	// what changed.
	for month, b := range plan.Balances {
		if orig, ok := balances[month]; ok && orig == b {
			delete(plan.Balances, month)
		}
	}

	return plan
}

// monthsSpanned lists the canonical months covered by [from, to].
func monthsSpanned(from, to time.Time) []string {
	var months []string
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(end) {
		months = append(months, cur.Format("2006-01"))
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}
