package service

import (
	"strings"

	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// ExpenseTypeService manages the owner's expense-type catalog
type ExpenseTypeService struct {
	expenseTypeRepo domain.ExpenseTypeRepository
}

// NewExpenseTypeService creates a new ExpenseTypeService
func NewExpenseTypeService(expenseTypeRepo domain.ExpenseTypeRepository) *ExpenseTypeService {
	return &ExpenseTypeService{expenseTypeRepo: expenseTypeRepo}
}

// CreateExpenseType creates a new catalog entry
func (s *ExpenseTypeService) CreateExpenseType(ownerID int32, name string, payableInAdvance bool) (*domain.ExpenseType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	return s.expenseTypeRepo.Create(&domain.ExpenseType{
		OwnerID:          ownerID,
		Name:             name,
		PayableInAdvance: payableInAdvance,
	})
}

// ListExpenseTypes retrieves the owner's catalog
func (s *ExpenseTypeService) ListExpenseTypes(ownerID int32) ([]*domain.ExpenseType, error) {
	return s.expenseTypeRepo.ListByOwner(ownerID)
}

// GetExpenseType retrieves a catalog entry by ID
func (s *ExpenseTypeService) GetExpenseType(ownerID, id int32) (*domain.ExpenseType, error) {
	return s.expenseTypeRepo.GetByID(ownerID, id)
}

// UpdateExpenseType updates a catalog entry
func (s *ExpenseTypeService) UpdateExpenseType(ownerID, id int32, name string, payableInAdvance bool) (*domain.ExpenseType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	existing, err := s.expenseTypeRepo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.PayableInAdvance = payableInAdvance

	return s.expenseTypeRepo.Update(existing)
}

// DeleteExpenseType deletes a catalog entry
func (s *ExpenseTypeService) DeleteExpenseType(ownerID, id int32) error {
	return s.expenseTypeRepo.Delete(ownerID, id)
}
