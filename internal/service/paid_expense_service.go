package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/ws"
)

// PaidExpenseService handles payment-record business logic
type PaidExpenseService struct {
	paymentRepo     domain.PaidExpenseRepository
	tenantRepo      domain.TenantRepository
	expenseTypeRepo domain.ExpenseTypeRepository
	expenseRepo     domain.TenantExpenseRepository
	eventPublisher  ws.EventPublisher
}

// NewPaidExpenseService creates a new PaidExpenseService
func NewPaidExpenseService(
	paymentRepo domain.PaidExpenseRepository,
	tenantRepo domain.TenantRepository,
	expenseTypeRepo domain.ExpenseTypeRepository,
	expenseRepo domain.TenantExpenseRepository,
) *PaidExpenseService {
	return &PaidExpenseService{
		paymentRepo:     paymentRepo,
		tenantRepo:      tenantRepo,
		expenseTypeRepo: expenseTypeRepo,
		expenseRepo:     expenseRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *PaidExpenseService) SetEventPublisher(publisher ws.EventPublisher) {
	s.eventPublisher = publisher
}

// RecordPaymentInput holds the input for recording a payment
type RecordPaymentInput struct {
	TenantID        int32
	ExpenseTypeID   int32
	TenantExpenseID *int32
	PaymentDate     time.Time
	Amount          decimal.Decimal
	Notes           *string
}

// RecordPayment records a payment received from a tenant. The payment
// may be linked to a specific obligation or stand alone against a
// category.
func (s *PaidExpenseService) RecordPayment(ownerID int32, input RecordPaymentInput) (*domain.PaidExpense, error) {
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	if _, err := s.tenantRepo.GetByID(ownerID, input.TenantID); err != nil {
		return nil, domain.ErrTenantNotFound
	}

	if _, err := s.expenseTypeRepo.GetByID(ownerID, input.ExpenseTypeID); err != nil {
		return nil, domain.ErrExpenseTypeNotFound
	}

	if input.TenantExpenseID != nil {
		if _, err := s.expenseRepo.GetByID(ownerID, *input.TenantExpenseID); err != nil {
			return nil, domain.ErrTenantExpenseNotFound
		}
	}

	created, err := s.paymentRepo.Create(&domain.PaidExpense{
		OwnerID:         ownerID,
		TenantID:        input.TenantID,
		ExpenseTypeID:   input.ExpenseTypeID,
		TenantExpenseID: input.TenantExpenseID,
		PaymentDate:     input.PaymentDate,
		Amount:          input.Amount,
		Notes:           input.Notes,
	})
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(ownerID, ws.PaymentRecorded(created))
	}

	return created, nil
}

// ListPayments retrieves all payments of a tenant
func (s *PaidExpenseService) ListPayments(ownerID, tenantID int32) ([]*domain.PaidExpense, error) {
	if _, err := s.tenantRepo.GetByID(ownerID, tenantID); err != nil {
		return nil, domain.ErrTenantNotFound
	}
	return s.paymentRepo.ListByTenant(ownerID, tenantID)
}

// GetPayment retrieves a payment by ID
func (s *PaidExpenseService) GetPayment(ownerID, id int32) (*domain.PaidExpense, error) {
	return s.paymentRepo.GetByID(ownerID, id)
}

// DeletePayment deletes a payment record
func (s *PaidExpenseService) DeletePayment(ownerID, id int32) error {
	if err := s.paymentRepo.Delete(ownerID, id); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(ownerID, ws.PaymentDeleted(map[string]int32{"id": id}))
	}

	return nil
}
