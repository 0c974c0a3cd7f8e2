// Package billing holds the recurring-billing-cycle arithmetic: how
// many periods of an obligation have fallen due, which due dates land
// in a window, and how due amounts net against payments. Everything
// here is a pure function over snapshot data; persistence and transport
// live elsewhere.
package billing

import (
	"time"

	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/util"
)

// PeriodsDue returns the number of billing periods of exp due as of
// asOf. The first period is due on the start date itself (advance
// convention), boundary dates are inclusive and partial periods are
// never pro-rated. An end-dated obligation stops accruing at its end
// date. One-time expenses are due exactly once; an unrecognized cycle
// counts as zero periods rather than failing the caller.
func PeriodsDue(exp *domain.TenantExpense, asOf time.Time) int {
	start := util.DateOnly(exp.StartDate)
	asOf = util.DateOnly(asOf)

	if start.After(asOf) {
		return 0
	}

	if exp.Cycle == domain.CycleOneTime {
		return 1
	}

	step := exp.Cycle.MonthStep()
	if step <= 0 {
		return 0
	}

	end := asOf
	if exp.EndDate != nil {
		if e := util.DateOnly(*exp.EndDate); e.Before(end) {
			end = e
		}
	}

	// The i-th due date is computed from the start date each time so a
	// day-31 start does not drift after clamping through February.
	count := 0
	for i := 0; ; i++ {
		due := util.AddMonthsClamped(start, i*step)
		if due.After(end) {
			break
		}
		count++
	}
	return count
}

// DueDatesInWindow returns the obligation's due dates falling within
// [winStart, winEnd], in ascending order. Generation is additionally
// bounded by cutoff (normally "today") so an open month only shows
// charges that have already fallen due; obligations payable in advance
// ignore the cutoff and are charged for the whole window up front. An
// end-dated obligation emits nothing past its end date.
func DueDatesInWindow(exp *domain.TenantExpense, winStart, winEnd, cutoff time.Time) []time.Time {
	start := util.DateOnly(exp.StartDate)
	winStart = util.DateOnly(winStart)
	winEnd = util.DateOnly(winEnd)

	bound := util.DateOnly(cutoff)
	if exp.PayableInAdvance {
		bound = winEnd
	}
	if bound.After(winEnd) {
		bound = winEnd
	}
	if exp.EndDate != nil {
		if e := util.DateOnly(*exp.EndDate); e.Before(bound) {
			bound = e
		}
	}

	if start.After(bound) {
		return nil
	}

	if exp.Cycle == domain.CycleOneTime {
		if !start.Before(winStart) {
			return []time.Time{start}
		}
		return nil
	}

	step := exp.Cycle.MonthStep()
	if step <= 0 {
		return nil
	}

	var dues []time.Time
	for i := 0; ; i++ {
		due := util.AddMonthsClamped(start, i*step)
		if due.After(bound) {
			break
		}
		if !due.Before(winStart) {
			dues = append(dues, due)
		}
	}
	return dues
}
