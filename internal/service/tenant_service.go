package service

import (
	"strings"
	"time"

	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// TenantService handles tenant business logic
type TenantService struct {
	tenantRepo domain.TenantRepository
	unitRepo   domain.UnitRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo domain.TenantRepository, unitRepo domain.UnitRepository) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		unitRepo:   unitRepo,
	}
}

// CreateTenantInput holds the input for creating a tenant
type CreateTenantInput struct {
	UnitID      int32
	Name        string
	Phone       string
	MoveInDate  time.Time
	MoveOutDate *time.Time
}

// CreateTenant creates a new tenant in a unit
func (s *TenantService) CreateTenant(ownerID int32, input CreateTenantInput) (*domain.Tenant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	if input.MoveOutDate != nil && input.MoveOutDate.Before(input.MoveInDate) {
		return nil, domain.ErrInvalidDateRange
	}

	// Validate unit exists and belongs to the owner
	if _, err := s.unitRepo.GetByID(ownerID, input.UnitID); err != nil {
		return nil, domain.ErrUnitNotFound
	}

	return s.tenantRepo.Create(&domain.Tenant{
		OwnerID:     ownerID,
		UnitID:      input.UnitID,
		Name:        name,
		Phone:       strings.TrimSpace(input.Phone),
		MoveInDate:  input.MoveInDate,
		MoveOutDate: input.MoveOutDate,
	})
}

// ListTenants retrieves all tenants of a unit
func (s *TenantService) ListTenants(ownerID, unitID int32) ([]*domain.Tenant, error) {
	if _, err := s.unitRepo.GetByID(ownerID, unitID); err != nil {
		return nil, domain.ErrUnitNotFound
	}
	return s.tenantRepo.ListByUnit(ownerID, unitID)
}

// GetTenant retrieves a tenant by ID
func (s *TenantService) GetTenant(ownerID, id int32) (*domain.Tenant, error) {
	return s.tenantRepo.GetByID(ownerID, id)
}

// UpdateTenant updates an existing tenant
func (s *TenantService) UpdateTenant(ownerID, id int32, input CreateTenantInput) (*domain.Tenant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	if input.MoveOutDate != nil && input.MoveOutDate.Before(input.MoveInDate) {
		return nil, domain.ErrInvalidDateRange
	}

	existing, err := s.tenantRepo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.Phone = strings.TrimSpace(input.Phone)
	existing.MoveInDate = input.MoveInDate
	existing.MoveOutDate = input.MoveOutDate

	return s.tenantRepo.Update(existing)
}

// DeleteTenant deletes a tenant
func (s *TenantService) DeleteTenant(ownerID, id int32) error {
	return s.tenantRepo.Delete(ownerID, id)
}
