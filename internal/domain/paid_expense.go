package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaidExpense is a payment received from a tenant. TenantExpenseID
// links the payment to the obligation it settles; ad-hoc payments
// against a category leave it nil.
type PaidExpense struct {
	ID              int32           `json:"id"`
	OwnerID         int32           `json:"ownerId"`
	TenantID        int32           `json:"tenantId"`
	ExpenseTypeID   int32           `json:"expenseTypeId"`
	TenantExpenseID *int32          `json:"tenantExpenseId,omitempty"`
	PaymentDate     time.Time       `json:"paymentDate"`
	Amount          decimal.Decimal `json:"amount"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type PaidExpenseRepository interface {
	Create(pe *PaidExpense) (*PaidExpense, error)
	GetByID(ownerID int32, id int32) (*PaidExpense, error)
	ListByTenant(ownerID int32, tenantID int32) ([]*PaidExpense, error)
	ListByTenantBetween(ownerID int32, tenantID int32, from, to time.Time) ([]*PaidExpense, error)
	ListByTenantExpense(ownerID int32, tenantExpenseID int32) ([]*PaidExpense, error)
	Delete(ownerID int32, id int32) error
}
