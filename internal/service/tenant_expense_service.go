package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/ws"
)

// TenantExpenseService handles recurring-obligation business logic
type TenantExpenseService struct {
	expenseRepo     domain.TenantExpenseRepository
	tenantRepo      domain.TenantRepository
	expenseTypeRepo domain.ExpenseTypeRepository
	eventPublisher  ws.EventPublisher
}

// NewTenantExpenseService creates a new TenantExpenseService
func NewTenantExpenseService(
	expenseRepo domain.TenantExpenseRepository,
	tenantRepo domain.TenantRepository,
	expenseTypeRepo domain.ExpenseTypeRepository,
) *TenantExpenseService {
	return &TenantExpenseService{
		expenseRepo:     expenseRepo,
		tenantRepo:      tenantRepo,
		expenseTypeRepo: expenseTypeRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *TenantExpenseService) SetEventPublisher(publisher ws.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateTenantExpenseInput holds the input for creating a tenant expense
type CreateTenantExpenseInput struct {
	TenantID      int32
	ExpenseTypeID int32
	Cycle         domain.BillingCycle
	StartDate     time.Time
	EndDate       *time.Time
	Amount        decimal.Decimal
	Notes         *string
}

func (s *TenantExpenseService) validate(input CreateTenantExpenseInput) error {
	if !input.Cycle.Valid() {
		return domain.ErrInvalidCycle
	}
	if input.Amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return domain.ErrInvalidDateRange
	}
	return nil
}

// CreateTenantExpense creates a new recurring obligation for a tenant.
// The advance-payment flag is inherited from the expense type.
func (s *TenantExpenseService) CreateTenantExpense(ownerID int32, input CreateTenantExpenseInput) (*domain.TenantExpense, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	if _, err := s.tenantRepo.GetByID(ownerID, input.TenantID); err != nil {
		return nil, domain.ErrTenantNotFound
	}

	expenseType, err := s.expenseTypeRepo.GetByID(ownerID, input.ExpenseTypeID)
	if err != nil {
		return nil, domain.ErrExpenseTypeNotFound
	}

	created, err := s.expenseRepo.Create(&domain.TenantExpense{
		OwnerID:          ownerID,
		TenantID:         input.TenantID,
		ExpenseTypeID:    input.ExpenseTypeID,
		Cycle:            input.Cycle,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Amount:           input.Amount,
		PayableInAdvance: expenseType.PayableInAdvance,
		Notes:            input.Notes,
	})
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(ownerID, ws.TenantExpenseCreated(created))
	}

	return created, nil
}

// ListTenantExpenses retrieves all obligations of a tenant
func (s *TenantExpenseService) ListTenantExpenses(ownerID, tenantID int32) ([]*domain.TenantExpense, error) {
	if _, err := s.tenantRepo.GetByID(ownerID, tenantID); err != nil {
		return nil, domain.ErrTenantNotFound
	}
	return s.expenseRepo.ListByTenant(ownerID, tenantID)
}

// GetTenantExpense retrieves an obligation by ID
func (s *TenantExpenseService) GetTenantExpense(ownerID, id int32) (*domain.TenantExpense, error) {
	return s.expenseRepo.GetByID(ownerID, id)
}

// UpdateTenantExpense updates an existing obligation
func (s *TenantExpenseService) UpdateTenantExpense(ownerID, id int32, input CreateTenantExpenseInput) (*domain.TenantExpense, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	expenseType, err := s.expenseTypeRepo.GetByID(ownerID, input.ExpenseTypeID)
	if err != nil {
		return nil, domain.ErrExpenseTypeNotFound
	}

	existing, err := s.expenseRepo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	existing.ExpenseTypeID = input.ExpenseTypeID
	existing.Cycle = input.Cycle
	existing.StartDate = input.StartDate
	existing.EndDate = input.EndDate
	existing.Amount = input.Amount
	existing.PayableInAdvance = expenseType.PayableInAdvance
	existing.Notes = input.Notes

	updated, err := s.expenseRepo.Update(existing)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(ownerID, ws.TenantExpenseUpdated(updated))
	}

	return updated, nil
}

// DeleteTenantExpense deletes an obligation
func (s *TenantExpenseService) DeleteTenantExpense(ownerID, id int32) error {
	return s.expenseRepo.Delete(ownerID, id)
}
