package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantExpense is a recurring (or one-time) obligation a tenant owes.
// The first period is due on StartDate itself; a nil EndDate means the
// obligation is open-ended. Amount is the fixed charge per period.
type TenantExpense struct {
	ID               int32           `json:"id"`
	OwnerID          int32           `json:"ownerId"`
	TenantID         int32           `json:"tenantId"`
	ExpenseTypeID    int32           `json:"expenseTypeId"`
	Cycle            BillingCycle    `json:"cycle"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          *time.Time      `json:"endDate,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	PayableInAdvance bool            `json:"payableInAdvance"`
	Notes            *string         `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type TenantExpenseRepository interface {
	Create(te *TenantExpense) (*TenantExpense, error)
	GetByID(ownerID int32, id int32) (*TenantExpense, error)
	ListByTenant(ownerID int32, tenantID int32) ([]*TenantExpense, error)
	Update(te *TenantExpense) (*TenantExpense, error)
	Delete(ownerID int32, id int32) error
}
