package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func expense(cycle domain.BillingCycle, start time.Time, end *time.Time) *domain.TenantExpense {
	return &domain.TenantExpense{
		ID:            1,
		OwnerID:       1,
		TenantID:      1,
		ExpenseTypeID: 1,
		Cycle:         cycle,
		StartDate:     start,
		EndDate:       end,
		Amount:        decimal.NewFromInt(1000),
	}
}

func TestPeriodsDue(t *testing.T) {
	feb15 := date(2024, time.February, 15)

	tests := []struct {
		name  string
		cycle domain.BillingCycle
		start time.Time
		end   *time.Time
		asOf  time.Time
		want  int
	}{
		{"start in future", domain.CycleMonthly, date(2024, time.May, 1), nil, date(2024, time.April, 15), 0},
		{"due on start date itself", domain.CycleMonthly, date(2024, time.January, 1), nil, date(2024, time.January, 1), 1},
		{"monthly mid period", domain.CycleMonthly, date(2024, time.January, 1), nil, date(2024, time.April, 15), 4},
		{"monthly on boundary inclusive", domain.CycleMonthly, date(2024, time.January, 1), nil, date(2024, time.April, 1), 4},
		{"monthly day before boundary", domain.CycleMonthly, date(2024, time.January, 1), nil, date(2024, time.March, 31), 3},
		{"ended obligation capped at end date", domain.CycleMonthly, date(2024, time.January, 1), &feb15, date(2024, time.April, 15), 2},
		{"quarterly", domain.CycleQuarterly, date(2024, time.January, 1), nil, date(2024, time.December, 31), 4},
		{"halfyearly", domain.CycleHalfYearly, date(2024, time.January, 1), nil, date(2025, time.January, 1), 3},
		{"annual", domain.CycleAnnual, date(2022, time.March, 10), nil, date(2024, time.March, 9), 2},
		{"onetime due once", domain.CycleOneTime, date(2024, time.January, 1), nil, date(2030, time.June, 1), 1},
		{"onetime ignores end date", domain.CycleOneTime, date(2024, time.January, 1), &feb15, date(2030, time.June, 1), 1},
		{"onetime not yet due", domain.CycleOneTime, date(2024, time.January, 1), nil, date(2023, time.December, 31), 0},
		{"unrecognized cycle degrades to zero", domain.BillingCycle("fortnightly"), date(2024, time.January, 1), nil, date(2024, time.June, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodsDue(expense(tt.cycle, tt.start, tt.end), tt.asOf)
			if got != tt.want {
				t.Errorf("PeriodsDue = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPeriodsDueClampsDayOfMonth(t *testing.T) {
	// A Jan 31 start falls due on the last day of shorter months, and
	// each due date is derived from the start so the day never drifts.
	exp := expense(domain.CycleMonthly, date(2024, time.January, 31), nil)

	if got := PeriodsDue(exp, date(2024, time.February, 28)); got != 1 {
		t.Errorf("before clamped Feb due date: got %d, want 1", got)
	}
	if got := PeriodsDue(exp, date(2024, time.February, 29)); got != 2 {
		t.Errorf("on clamped Feb due date: got %d, want 2", got)
	}
	if got := PeriodsDue(exp, date(2024, time.March, 30)); got != 2 {
		t.Errorf("March due date must stay on the 31st: got %d, want 2", got)
	}
	if got := PeriodsDue(exp, date(2024, time.March, 31)); got != 3 {
		t.Errorf("on March 31: got %d, want 3", got)
	}
}

func TestPeriodsDueMonotonic(t *testing.T) {
	feb15 := date(2024, time.February, 15)
	expenses := []*domain.TenantExpense{
		expense(domain.CycleMonthly, date(2024, time.January, 31), nil),
		expense(domain.CycleQuarterly, date(2023, time.November, 5), &feb15),
		expense(domain.CycleOneTime, date(2024, time.March, 1), nil),
		expense(domain.CycleAnnual, date(2020, time.February, 29), nil),
	}

	for _, exp := range expenses {
		prev := 0
		for d := date(2023, time.June, 1); d.Before(date(2026, time.June, 1)); d = d.AddDate(0, 0, 7) {
			got := PeriodsDue(exp, d)
			if got < prev {
				t.Fatalf("PeriodsDue(%s, %s) = %d, decreased from %d", exp.Cycle, d.Format("2006-01-02"), got, prev)
			}
			prev = got
		}
	}
}

func TestPeriodsDueOneTimeInvariant(t *testing.T) {
	end := date(2024, time.June, 1)
	exp := expense(domain.CycleOneTime, date(2024, time.March, 15), &end)

	for d := date(2024, time.January, 1); d.Before(date(2025, time.January, 1)); d = d.AddDate(0, 0, 1) {
		got := PeriodsDue(exp, d)
		if got != 0 && got != 1 {
			t.Fatalf("one-time PeriodsDue(%s) = %d, want 0 or 1", d.Format("2006-01-02"), got)
		}
	}
}

func TestDueDatesInWindow(t *testing.T) {
	winStart := date(2024, time.April, 1)
	winEnd := date(2024, time.April, 30)

	t.Run("cutoff bounds open month", func(t *testing.T) {
		exp := expense(domain.CycleMonthly, date(2024, time.January, 20), nil)
		dues := DueDatesInWindow(exp, winStart, winEnd, date(2024, time.April, 10))
		if len(dues) != 0 {
			t.Errorf("due date past cutoff must not be emitted, got %v", dues)
		}

		dues = DueDatesInWindow(exp, winStart, winEnd, date(2024, time.April, 20))
		if len(dues) != 1 || !dues[0].Equal(date(2024, time.April, 20)) {
			t.Errorf("expected [2024-04-20], got %v", dues)
		}
	})

	t.Run("payable in advance ignores cutoff", func(t *testing.T) {
		exp := expense(domain.CycleMonthly, date(2024, time.January, 20), nil)
		exp.PayableInAdvance = true
		dues := DueDatesInWindow(exp, winStart, winEnd, date(2024, time.April, 10))
		if len(dues) != 1 || !dues[0].Equal(date(2024, time.April, 20)) {
			t.Errorf("advance obligation is charged for the whole window, got %v", dues)
		}
	})

	t.Run("advance never emits past the window", func(t *testing.T) {
		exp := expense(domain.CycleMonthly, date(2024, time.January, 20), nil)
		exp.PayableInAdvance = true
		dues := DueDatesInWindow(exp, winStart, winEnd, date(2024, time.December, 1))
		if len(dues) != 1 {
			t.Errorf("expected a single April due date, got %v", dues)
		}
	})

	t.Run("end date stops generation", func(t *testing.T) {
		end := date(2024, time.April, 10)
		exp := expense(domain.CycleMonthly, date(2024, time.January, 20), &end)
		exp.PayableInAdvance = true
		dues := DueDatesInWindow(exp, winStart, winEnd, date(2024, time.April, 30))
		if len(dues) != 0 {
			t.Errorf("obligation ended before its April due date, got %v", dues)
		}
	})

	t.Run("earlier periods excluded from window", func(t *testing.T) {
		exp := expense(domain.CycleMonthly, date(2024, time.January, 1), nil)
		dues := DueDatesInWindow(exp, winStart, winEnd, date(2024, time.June, 1))
		if len(dues) != 1 || !dues[0].Equal(date(2024, time.April, 1)) {
			t.Errorf("only the April due date belongs to the window, got %v", dues)
		}
	})

	t.Run("onetime inside window", func(t *testing.T) {
		exp := expense(domain.CycleOneTime, date(2024, time.April, 12), nil)
		dues := DueDatesInWindow(exp, winStart, winEnd, date(2024, time.April, 30))
		if len(dues) != 1 || !dues[0].Equal(date(2024, time.April, 12)) {
			t.Errorf("expected [2024-04-12], got %v", dues)
		}
	})

	t.Run("onetime outside window", func(t *testing.T) {
		exp := expense(domain.CycleOneTime, date(2024, time.March, 12), nil)
		dues := DueDatesInWindow(exp, winStart, winEnd, date(2024, time.April, 30))
		if len(dues) != 0 {
			t.Errorf("expected no due dates, got %v", dues)
		}
	})

	t.Run("quarterly lands in window", func(t *testing.T) {
		exp := expense(domain.CycleQuarterly, date(2024, time.January, 15), nil)
		dues := DueDatesInWindow(exp, winStart, winEnd, date(2024, time.April, 30))
		if len(dues) != 1 || !dues[0].Equal(date(2024, time.April, 15)) {
			t.Errorf("expected [2024-04-15], got %v", dues)
		}
	})

	t.Run("regenerated from scratch each call", func(t *testing.T) {
		exp := expense(domain.CycleMonthly, date(2024, time.January, 1), nil)
		first := DueDatesInWindow(exp, winStart, winEnd, date(2024, time.June, 1))
		second := DueDatesInWindow(exp, winStart, winEnd, date(2024, time.June, 1))
		if len(first) != len(second) {
			t.Errorf("repeated calls diverged: %v vs %v", first, second)
		}
	})
}
