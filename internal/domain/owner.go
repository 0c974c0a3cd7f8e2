package domain

import "time"

// Owner is the property owner operating the app. Owners sign in with a
// phone-number OTP; every other entity is scoped to its owner.
type Owner struct {
	ID        int32     `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OwnerRepository interface {
	CreateOrGetByPhone(phone string) (*Owner, error)
	GetByID(id int32) (*Owner, error)
	UpdateProfile(id int32, name string, email *string) (*Owner, error)
}
