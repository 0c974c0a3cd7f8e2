package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/testutil"
)

type pendingFixture struct {
	propertyRepo *testutil.MockPropertyRepository
	unitRepo     *testutil.MockUnitRepository
	tenantRepo   *testutil.MockTenantRepository
	expenseRepo  *testutil.MockTenantExpenseRepository
	paymentRepo  *testutil.MockPaidExpenseRepository
	service      *PendingService
}

func newPendingFixture() *pendingFixture {
	f := &pendingFixture{
		propertyRepo: testutil.NewMockPropertyRepository(),
		unitRepo:     testutil.NewMockUnitRepository(),
		tenantRepo:   testutil.NewMockTenantRepository(),
		expenseRepo:  testutil.NewMockTenantExpenseRepository(),
		paymentRepo:  testutil.NewMockPaidExpenseRepository(),
	}
	f.service = NewPendingService(f.propertyRepo, f.unitRepo, f.tenantRepo, f.expenseRepo, f.paymentRepo)
	return f
}

func (f *pendingFixture) addMonthlyExpense(id, tenantID int32, amount string, start time.Time) *domain.TenantExpense {
	exp := &domain.TenantExpense{
		ID:            id,
		OwnerID:       1,
		TenantID:      tenantID,
		ExpenseTypeID: 1,
		Cycle:         domain.CycleMonthly,
		StartDate:     start,
		Amount:        decimal.RequireFromString(amount),
	}
	f.expenseRepo.AddExpense(exp)
	return exp
}

func (f *pendingFixture) addLinkedPayment(id, tenantID, expenseID int32, amount string, date time.Time) {
	f.paymentRepo.AddPayment(&domain.PaidExpense{
		ID:              id,
		OwnerID:         1,
		TenantID:        tenantID,
		ExpenseTypeID:   1,
		TenantExpenseID: &expenseID,
		PaymentDate:     date,
		Amount:          decimal.RequireFromString(amount),
	})
}

func TestPendingForExpense_NetsLinkedPayments(t *testing.T) {
	f := newPendingFixture()
	f.tenantRepo.AddTenant(&domain.Tenant{ID: 1, OwnerID: 1, UnitID: 1, Name: "Asha"})
	f.addMonthlyExpense(1, 1, "1000", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	f.addLinkedPayment(1, 1, 1, "2500", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))

	pending, err := f.service.ForExpense(1, 1, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// 4 periods due at 1000 each, 2500 paid
	if !pending.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Expected pending 1500, got %s", pending.String())
	}
}

func TestPendingForExpense_FlooredAtZero(t *testing.T) {
	f := newPendingFixture()
	f.addMonthlyExpense(1, 1, "1000", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	f.addLinkedPayment(1, 1, 1, "9000", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))

	pending, err := f.service.ForExpense(1, 1, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !pending.IsZero() {
		t.Errorf("Expected pending 0 for overpaid expense, got %s", pending.String())
	}
}

func TestPendingForExpense_NotFound(t *testing.T) {
	f := newPendingFixture()

	_, err := f.service.ForExpense(1, 99, time.Now())
	if !errors.Is(err, domain.ErrTenantExpenseNotFound) {
		t.Errorf("Expected ErrTenantExpenseNotFound, got %v", err)
	}
}

func TestPendingForTenant_IgnoresUnlinkedPayments(t *testing.T) {
	f := newPendingFixture()
	f.tenantRepo.AddTenant(&domain.Tenant{ID: 1, OwnerID: 1, UnitID: 1, Name: "Asha"})
	f.addMonthlyExpense(1, 1, "1000", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	// Unlinked payment against the category only
	f.paymentRepo.AddPayment(&domain.PaidExpense{
		ID:            1,
		OwnerID:       1,
		TenantID:      1,
		ExpenseTypeID: 1,
		PaymentDate:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(500),
	})

	pending, err := f.service.ForTenant(1, 1, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// 2 periods due, unlinked money does not reduce the obligation
	if !pending.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("Expected pending 2000, got %s", pending.String())
	}
}

func TestPendingForTenant_TenantNotFound(t *testing.T) {
	f := newPendingFixture()

	_, err := f.service.ForTenant(1, 42, time.Now())
	if !errors.Is(err, domain.ErrTenantNotFound) {
		t.Errorf("Expected ErrTenantNotFound, got %v", err)
	}
}

func TestPendingAggregation_Consistency(t *testing.T) {
	f := newPendingFixture()
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	f.propertyRepo.AddProperty(&domain.Property{ID: 1, OwnerID: 1, Name: "Lakeview"})
	f.unitRepo.AddUnit(&domain.Unit{ID: 1, OwnerID: 1, PropertyID: 1, Label: "G-1"})
	f.unitRepo.AddUnit(&domain.Unit{ID: 2, OwnerID: 1, PropertyID: 1, Label: "G-2"})
	f.tenantRepo.AddTenant(&domain.Tenant{ID: 1, OwnerID: 1, UnitID: 1, Name: "Asha"})
	f.tenantRepo.AddTenant(&domain.Tenant{ID: 2, OwnerID: 1, UnitID: 1, Name: "Bilal"})
	f.tenantRepo.AddTenant(&domain.Tenant{ID: 3, OwnerID: 1, UnitID: 2, Name: "Charu"})

	f.addMonthlyExpense(1, 1, "1000", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	f.addMonthlyExpense(2, 2, "750.50", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	f.addMonthlyExpense(3, 3, "2000", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	f.addLinkedPayment(1, 1, 1, "3000", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	f.addLinkedPayment(2, 3, 3, "2000", time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))

	tenantTotal := decimal.Zero
	for _, tenantID := range []int32{1, 2, 3} {
		pending, err := f.service.ForTenant(1, tenantID, asOf)
		if err != nil {
			t.Fatalf("ForTenant(%d): %v", tenantID, err)
		}
		tenantTotal = tenantTotal.Add(pending)
	}

	unitTotal := decimal.Zero
	for _, unitID := range []int32{1, 2} {
		pending, err := f.service.ForUnit(1, unitID, asOf)
		if err != nil {
			t.Fatalf("ForUnit(%d): %v", unitID, err)
		}
		unitTotal = unitTotal.Add(pending)
	}

	propertyPending, err := f.service.ForProperty(1, 1, asOf)
	if err != nil {
		t.Fatalf("ForProperty: %v", err)
	}

	if !tenantTotal.Equal(unitTotal) {
		t.Errorf("Tenant total %s != unit total %s", tenantTotal.String(), unitTotal.String())
	}
	if !unitTotal.Equal(propertyPending) {
		t.Errorf("Unit total %s != property pending %s", unitTotal.String(), propertyPending.String())
	}
}

func TestPendingForProperty_Idempotent(t *testing.T) {
	f := newPendingFixture()
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	f.propertyRepo.AddProperty(&domain.Property{ID: 1, OwnerID: 1, Name: "Lakeview"})
	f.unitRepo.AddUnit(&domain.Unit{ID: 1, OwnerID: 1, PropertyID: 1, Label: "G-1"})
	f.tenantRepo.AddTenant(&domain.Tenant{ID: 1, OwnerID: 1, UnitID: 1, Name: "Asha"})
	f.addMonthlyExpense(1, 1, "1000", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	f.addLinkedPayment(1, 1, 1, "1500", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	first, err := f.service.ForProperty(1, 1, asOf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := f.service.ForProperty(1, 1, asOf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !first.Equal(second) {
		t.Errorf("Repeated computation changed result: %s then %s", first.String(), second.String())
	}
}
