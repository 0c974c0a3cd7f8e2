package domain

import "time"

// Unit is a rentable portion of a property (a flat, floor or shop).
type Unit struct {
	ID         int32     `json:"id"`
	OwnerID    int32     `json:"ownerId"`
	PropertyID int32     `json:"propertyId"`
	Label      string    `json:"label"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type UnitRepository interface {
	Create(u *Unit) (*Unit, error)
	GetByID(ownerID int32, id int32) (*Unit, error)
	ListByProperty(ownerID int32, propertyID int32) ([]*Unit, error)
	Update(u *Unit) (*Unit, error)
	Delete(ownerID int32, id int32) error
}
