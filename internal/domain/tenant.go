package domain

import "time"

type Tenant struct {
	ID          int32      `json:"id"`
	OwnerID     int32      `json:"ownerId"`
	UnitID      int32      `json:"unitId"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	MoveInDate  time.Time  `json:"moveInDate"`
	MoveOutDate *time.Time `json:"moveOutDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type TenantRepository interface {
	Create(t *Tenant) (*Tenant, error)
	GetByID(ownerID int32, id int32) (*Tenant, error)
	ListByUnit(ownerID int32, unitID int32) ([]*Tenant, error)
	Update(t *Tenant) (*Tenant, error)
	Delete(ownerID int32, id int32) error
}
