package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yashalsharma/kirayadoor-backend/internal/billing"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// PendingService computes net pending amounts at expense, tenant, unit
// and property granularity. Every call recomputes from a fresh snapshot
// of the repositories; nothing is memoized.
type PendingService struct {
	propertyRepo domain.PropertyRepository
	unitRepo     domain.UnitRepository
	tenantRepo   domain.TenantRepository
	expenseRepo  domain.TenantExpenseRepository
	paymentRepo  domain.PaidExpenseRepository
}

// NewPendingService creates a new PendingService
func NewPendingService(
	propertyRepo domain.PropertyRepository,
	unitRepo domain.UnitRepository,
	tenantRepo domain.TenantRepository,
	expenseRepo domain.TenantExpenseRepository,
	paymentRepo domain.PaidExpenseRepository,
) *PendingService {
	return &PendingService{
		propertyRepo: propertyRepo,
		unitRepo:     unitRepo,
		tenantRepo:   tenantRepo,
		expenseRepo:  expenseRepo,
		paymentRepo:  paymentRepo,
	}
}

// ForExpense returns the pending amount of one obligation: periods due
// times the per-period amount, minus payments linked to it, floored at
// zero.
func (s *PendingService) ForExpense(ownerID, expenseID int32, asOf time.Time) (decimal.Decimal, error) {
	exp, err := s.expenseRepo.GetByID(ownerID, expenseID)
	if err != nil {
		return decimal.Zero, err
	}

	payments, err := s.paymentRepo.ListByTenantExpense(ownerID, expenseID)
	if err != nil {
		return decimal.Zero, err
	}

	return billing.Pending(exp, payments, asOf, billing.FloorAtZero), nil
}

// ForTenant sums the pending amounts of all of a tenant's obligations.
// Only payments linked to a specific obligation reduce its pending.
func (s *PendingService) ForTenant(ownerID, tenantID int32, asOf time.Time) (decimal.Decimal, error) {
	if _, err := s.tenantRepo.GetByID(ownerID, tenantID); err != nil {
		return decimal.Zero, err
	}

	expenses, err := s.expenseRepo.ListByTenant(ownerID, tenantID)
	if err != nil {
		return decimal.Zero, err
	}

	payments, err := s.paymentRepo.ListByTenant(ownerID, tenantID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, exp := range expenses {
		total = total.Add(billing.Pending(exp, payments, asOf, billing.FloorAtZero))
	}
	return total, nil
}

// ForUnit sums the tenant pending amounts across all tenants of a unit.
func (s *PendingService) ForUnit(ownerID, unitID int32, asOf time.Time) (decimal.Decimal, error) {
	if _, err := s.unitRepo.GetByID(ownerID, unitID); err != nil {
		return decimal.Zero, err
	}

	tenants, err := s.tenantRepo.ListByUnit(ownerID, unitID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, tenant := range tenants {
		pending, err := s.ForTenant(ownerID, tenant.ID, asOf)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(pending)
	}
	return total, nil
}

// ForProperty sums the unit pending amounts across all units of a
// property.
func (s *PendingService) ForProperty(ownerID, propertyID int32, asOf time.Time) (decimal.Decimal, error) {
	if _, err := s.propertyRepo.GetByID(ownerID, propertyID); err != nil {
		return decimal.Zero, err
	}

	units, err := s.unitRepo.ListByProperty(ownerID, propertyID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, unit := range units {
		pending, err := s.ForUnit(ownerID, unit.ID, asOf)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(pending)
	}
	return total, nil
}
