package service

import (
	"strings"

	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// PropertyService handles property business logic
type PropertyService struct {
	propertyRepo domain.PropertyRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo domain.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

// CreatePropertyInput holds the input for creating a property
type CreatePropertyInput struct {
	Name    string
	Address string
}

// CreateProperty creates a new property for the owner
func (s *PropertyService) CreateProperty(ownerID int32, input CreatePropertyInput) (*domain.Property, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	return s.propertyRepo.Create(&domain.Property{
		OwnerID: ownerID,
		Name:    name,
		Address: strings.TrimSpace(input.Address),
	})
}

// ListProperties retrieves all properties of the owner
func (s *PropertyService) ListProperties(ownerID int32) ([]*domain.Property, error) {
	return s.propertyRepo.ListByOwner(ownerID)
}

// GetProperty retrieves a property by ID
func (s *PropertyService) GetProperty(ownerID, id int32) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ownerID, id)
}

// UpdateProperty updates a property's name and address
func (s *PropertyService) UpdateProperty(ownerID, id int32, input CreatePropertyInput) (*domain.Property, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	existing, err := s.propertyRepo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.Address = strings.TrimSpace(input.Address)

	return s.propertyRepo.Update(existing)
}

// DeleteProperty deletes a property
func (s *PropertyService) DeleteProperty(ownerID, id int32) error {
	return s.propertyRepo.Delete(ownerID, id)
}
