package domain

import "time"

type Property struct {
	ID        int32     `json:"id"`
	OwnerID   int32     `json:"ownerId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	PhotoPath *string   `json:"photoPath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PropertyRepository interface {
	Create(p *Property) (*Property, error)
	GetByID(ownerID int32, id int32) (*Property, error)
	ListByOwner(ownerID int32) ([]*Property, error)
	Update(p *Property) (*Property, error)
	SetPhotoPath(ownerID int32, id int32, photoPath *string) error
	Delete(ownerID int32, id int32) error
}
