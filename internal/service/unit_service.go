package service

import (
	"strings"

	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// UnitService handles unit business logic
type UnitService struct {
	unitRepo     domain.UnitRepository
	propertyRepo domain.PropertyRepository
}

// NewUnitService creates a new UnitService
func NewUnitService(unitRepo domain.UnitRepository, propertyRepo domain.PropertyRepository) *UnitService {
	return &UnitService{
		unitRepo:     unitRepo,
		propertyRepo: propertyRepo,
	}
}

// CreateUnitInput holds the input for creating a unit
type CreateUnitInput struct {
	PropertyID int32
	Label      string
	Notes      *string
}

// CreateUnit creates a new unit under a property
func (s *UnitService) CreateUnit(ownerID int32, input CreateUnitInput) (*domain.Unit, error) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, domain.ErrNameRequired
	}
	if len(label) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	// Validate property exists and belongs to the owner
	if _, err := s.propertyRepo.GetByID(ownerID, input.PropertyID); err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	return s.unitRepo.Create(&domain.Unit{
		OwnerID:    ownerID,
		PropertyID: input.PropertyID,
		Label:      label,
		Notes:      input.Notes,
	})
}

// ListUnits retrieves all units of a property
func (s *UnitService) ListUnits(ownerID, propertyID int32) ([]*domain.Unit, error) {
	if _, err := s.propertyRepo.GetByID(ownerID, propertyID); err != nil {
		return nil, domain.ErrPropertyNotFound
	}
	return s.unitRepo.ListByProperty(ownerID, propertyID)
}

// GetUnit retrieves a unit by ID
func (s *UnitService) GetUnit(ownerID, id int32) (*domain.Unit, error) {
	return s.unitRepo.GetByID(ownerID, id)
}

// UpdateUnit updates a unit's label and notes
func (s *UnitService) UpdateUnit(ownerID, id int32, label string, notes *string) (*domain.Unit, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, domain.ErrNameRequired
	}
	if len(label) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	existing, err := s.unitRepo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	existing.Label = label
	existing.Notes = notes

	return s.unitRepo.Update(existing)
}

// DeleteUnit deletes a unit
func (s *UnitService) DeleteUnit(ownerID, id int32) error {
	return s.unitRepo.Delete(ownerID, id)
}
