package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// BalancePolicy controls whether an overpaid balance is carried as a
// negative amount or floored at zero.
type BalancePolicy int

const (
	// FloorAtZero reports overpayment as zero pending; credit is not
	// carried forward.
	FloorAtZero BalancePolicy = iota
	// AllowNegative reports overpayment as a negative balance.
	AllowNegative
)

// Apply enforces the policy on a computed balance.
func (p BalancePolicy) Apply(balance decimal.Decimal) decimal.Decimal {
	if p == FloorAtZero && balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// Expected returns the cumulative amount charged by exp as of asOf.
func Expected(exp *domain.TenantExpense, asOf time.Time) decimal.Decimal {
	return exp.Amount.Mul(decimal.NewFromInt(int64(PeriodsDue(exp, asOf))))
}

// Pending nets the expected amount of a single obligation against the
// payments linked to it. Payments not linked to exp are ignored; the
// slice may safely contain a tenant's whole payment history.
func Pending(exp *domain.TenantExpense, payments []*domain.PaidExpense, asOf time.Time, policy BalancePolicy) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		if p.TenantExpenseID != nil && *p.TenantExpenseID == exp.ID {
			paid = paid.Add(p.Amount)
		}
	}
	return policy.Apply(Expected(exp, asOf).Sub(paid))
}
