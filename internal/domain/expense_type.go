package domain

import "time"

// ExpenseType is an owner-scoped catalog entry (rent, water, power,
// maintenance). PayableInAdvance marks categories whose charges are due
// for a period before that period has elapsed; new tenant expenses of
// this type inherit the flag.
type ExpenseType struct {
	ID               int32     `json:"id"`
	OwnerID          int32     `json:"ownerId"`
	Name             string    `json:"name"`
	PayableInAdvance bool      `json:"payableInAdvance"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ExpenseTypeRepository interface {
	Create(et *ExpenseType) (*ExpenseType, error)
	GetByID(ownerID int32, id int32) (*ExpenseType, error)
	ListByOwner(ownerID int32) ([]*ExpenseType, error)
	Update(et *ExpenseType) (*ExpenseType, error)
	Delete(ownerID int32, id int32) error
}
