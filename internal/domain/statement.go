package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLineKind distinguishes statement lines.
type LedgerLineKind string

const (
	LineKindExpense LedgerLineKind = "Expense"
	LineKindPayment LedgerLineKind = "Payment"
)

// LedgerLine is one dated entry in a monthly statement. Amount is
// signed: due charges are positive, payments negative. RunningBalance
// is filled in after the lines are sorted chronologically.
type LedgerLine struct {
	Date            time.Time       `json:"date"`
	Kind            LedgerLineKind  `json:"type"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TenantExpenseID *int32          `json:"linkedExpenseId,omitempty"`
	PaidExpenseID   *int32          `json:"paidExpenseId,omitempty"`
	Notes           *string         `json:"comments,omitempty"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
}

// StatementSummary totals a monthly statement. PendingAmount is the
// month's expected minus paid and may be negative (an overpaid month);
// TotalAllTimePending is floored at zero and covers the tenant's full
// history, not just the statement window.
type StatementSummary struct {
	TotalExpected       decimal.Decimal `json:"totalExpected"`
	TotalPaid           decimal.Decimal `json:"totalPaid"`
	PendingAmount       decimal.Decimal `json:"pendingAmount"`
	TotalAllTimePending decimal.Decimal `json:"totalAllTimePending"`
}

// MonthlyStatement is the month-scoped ledger for one tenant.
type MonthlyStatement struct {
	TenantID int32            `json:"tenantId"`
	Year     int              `json:"year"`
	Month    int              `json:"month"`
	Tenant   *Tenant          `json:"tenantDetails"`
	Lines    []LedgerLine     `json:"lineItems"`
	Summary  StatementSummary `json:"summary"`
}
