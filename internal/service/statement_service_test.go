package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/testutil"
)

type statementFixture struct {
	tenantRepo      *testutil.MockTenantRepository
	expenseRepo     *testutil.MockTenantExpenseRepository
	paymentRepo     *testutil.MockPaidExpenseRepository
	expenseTypeRepo *testutil.MockExpenseTypeRepository
	service         *StatementService
}

func newStatementFixture(today time.Time) *statementFixture {
	f := &statementFixture{
		tenantRepo:      testutil.NewMockTenantRepository(),
		expenseRepo:     testutil.NewMockTenantExpenseRepository(),
		paymentRepo:     testutil.NewMockPaidExpenseRepository(),
		expenseTypeRepo: testutil.NewMockExpenseTypeRepository(),
	}
	f.service = NewStatementService(f.tenantRepo, f.expenseRepo, f.paymentRepo, f.expenseTypeRepo)
	f.service.now = func() time.Time { return today }
	f.tenantRepo.AddTenant(&domain.Tenant{ID: 1, OwnerID: 1, UnitID: 1, Name: "Asha"})
	f.expenseTypeRepo.AddExpenseType(&domain.ExpenseType{ID: 1, OwnerID: 1, Name: "Rent"})
	return f
}

func statementDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthlyStatement_RunningBalance(t *testing.T) {
	f := newStatementFixture(statementDate(2024, 2, 15))
	f.expenseRepo.AddExpense(&domain.TenantExpense{
		ID: 1, OwnerID: 1, TenantID: 1, ExpenseTypeID: 1,
		Cycle:     domain.CycleMonthly,
		StartDate: statementDate(2024, 1, 1),
		Amount:    decimal.NewFromInt(1000),
	})
	f.paymentRepo.AddPayment(&domain.PaidExpense{
		ID: 1, OwnerID: 1, TenantID: 1, ExpenseTypeID: 1,
		PaymentDate: statementDate(2024, 1, 10),
		Amount:      decimal.NewFromInt(400),
	})

	stmt, err := f.service.BuildMonthlyStatement(1, 1, 2024, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(stmt.Lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(stmt.Lines))
	}
	if stmt.Lines[0].Kind != domain.LineKindExpense {
		t.Errorf("Expected first line to be a charge, got %s", stmt.Lines[0].Kind)
	}
	if !stmt.Lines[0].RunningBalance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected running balance 1000, got %s", stmt.Lines[0].RunningBalance.String())
	}
	if !stmt.Lines[1].RunningBalance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("Expected running balance 600, got %s", stmt.Lines[1].RunningBalance.String())
	}
	if !stmt.Summary.TotalExpected.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected total expected 1000, got %s", stmt.Summary.TotalExpected.String())
	}
	if !stmt.Summary.TotalPaid.Equal(decimal.NewFromInt(400)) {
		t.Errorf("Expected total paid 400, got %s", stmt.Summary.TotalPaid.String())
	}
	if !stmt.Summary.PendingAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("Expected month pending 600, got %s", stmt.Summary.PendingAmount.String())
	}
}

func TestBuildMonthlyStatement_ChargeBeforePaymentOnSameDate(t *testing.T) {
	f := newStatementFixture(statementDate(2024, 2, 15))
	f.expenseRepo.AddExpense(&domain.TenantExpense{
		ID: 1, OwnerID: 1, TenantID: 1, ExpenseTypeID: 1,
		Cycle:     domain.CycleMonthly,
		StartDate: statementDate(2024, 1, 5),
		Amount:    decimal.NewFromInt(1000),
	})
	f.paymentRepo.AddPayment(&domain.PaidExpense{
		ID: 1, OwnerID: 1, TenantID: 1, ExpenseTypeID: 1,
		PaymentDate: statementDate(2024, 1, 5),
		Amount:      decimal.NewFromInt(1000),
	})

	stmt, err := f.service.BuildMonthlyStatement(1, 1, 2024, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(stmt.Lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(stmt.Lines))
	}
	if stmt.Lines[0].Kind != domain.LineKindExpense || stmt.Lines[1].Kind != domain.LineKindPayment {
		t.Errorf("Expected charge before payment on equal dates, got %s then %s",
			stmt.Lines[0].Kind, stmt.Lines[1].Kind)
	}
	if !stmt.Lines[1].RunningBalance.IsZero() {
		t.Errorf("Expected final balance 0, got %s", stmt.Lines[1].RunningBalance.String())
	}
}

func TestBuildMonthlyStatement_AdvancePayableChargedUpFront(t *testing.T) {
	// Today is the 5th; both obligations fall due on the 20th.
	f := newStatementFixture(statementDate(2024, 1, 5))
	f.expenseTypeRepo.AddExpenseType(&domain.ExpenseType{ID: 2, OwnerID: 1, Name: "Water"})
	f.expenseRepo.AddExpense(&domain.TenantExpense{
		ID: 1, OwnerID: 1, TenantID: 1, ExpenseTypeID: 1,
		Cycle:            domain.CycleMonthly,
		StartDate:        statementDate(2024, 1, 20),
		Amount:           decimal.NewFromInt(1000),
		PayableInAdvance: true,
	})
	f.expenseRepo.AddExpense(&domain.TenantExpense{
		ID: 2, OwnerID: 1, TenantID: 1, ExpenseTypeID: 2,
		Cycle:     domain.CycleMonthly,
		StartDate: statementDate(2024, 1, 20),
		Amount:    decimal.NewFromInt(300),
	})

	stmt, err := f.service.BuildMonthlyStatement(1, 1, 2024, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(stmt.Lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(stmt.Lines))
	}
	if stmt.Lines[0].TenantExpenseID == nil || *stmt.Lines[0].TenantExpenseID != 1 {
		t.Errorf("Expected the advance-payable charge, got line %+v", stmt.Lines[0])
	}
	if !stmt.Summary.TotalExpected.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected total expected 1000, got %s", stmt.Summary.TotalExpected.String())
	}
}

func TestBuildMonthlyStatement_OverpaidMonthGoesNegative(t *testing.T) {
	f := newStatementFixture(statementDate(2024, 2, 15))
	f.expenseRepo.AddExpense(&domain.TenantExpense{
		ID: 1, OwnerID: 1, TenantID: 1, ExpenseTypeID: 1,
		Cycle:     domain.CycleMonthly,
		StartDate: statementDate(2024, 1, 1),
		Amount:    decimal.NewFromInt(1000),
	})
	f.paymentRepo.AddPayment(&domain.PaidExpense{
		ID: 1, OwnerID: 1, TenantID: 1, ExpenseTypeID: 1,
		PaymentDate: statementDate(2024, 1, 15),
		Amount:      decimal.NewFromInt(2500),
	})

	stmt, err := f.service.BuildMonthlyStatement(1, 1, 2024, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !stmt.Summary.PendingAmount.Equal(decimal.NewFromInt(-1500)) {
		t.Errorf("Expected month pending -1500, got %s", stmt.Summary.PendingAmount.String())
	}
	if !stmt.Summary.TotalAllTimePending.IsZero() {
		t.Errorf("Expected all-time pending floored at 0, got %s",
			stmt.Summary.TotalAllTimePending.String())
	}
}

func TestBuildMonthlyStatement_AllTimePendingCountsUnlinkedPayments(t *testing.T) {
	f := newStatementFixture(statementDate(2024, 3, 15))
	f.expenseRepo.AddExpense(&domain.TenantExpense{
		ID: 1, OwnerID: 1, TenantID: 1, ExpenseTypeID: 1,
		Cycle:     domain.CycleMonthly,
		StartDate: statementDate(2024, 1, 1),
		Amount:    decimal.NewFromInt(1000),
	})
	// Ad-hoc payment with no linked obligation in a prior month
	f.paymentRepo.AddPayment(&domain.PaidExpense{
		ID: 1, OwnerID: 1, TenantID: 1, ExpenseTypeID: 1,
		PaymentDate: statementDate(2024, 2, 10),
		Amount:      decimal.NewFromInt(700),
	})

	stmt, err := f.service.BuildMonthlyStatement(1, 1, 2024, 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// 3 periods due at 1000 each minus the 700 received
	if !stmt.Summary.TotalAllTimePending.Equal(decimal.NewFromInt(2300)) {
		t.Errorf("Expected all-time pending 2300, got %s",
			stmt.Summary.TotalAllTimePending.String())
	}
}

func TestBuildMonthlyStatement_ExcludesEndedObligations(t *testing.T) {
	f := newStatementFixture(statementDate(2024, 4, 15))
	end := statementDate(2024, 2, 20)
	f.expenseRepo.AddExpense(&domain.TenantExpense{
		ID: 1, OwnerID: 1, TenantID: 1, ExpenseTypeID: 1,
		Cycle:     domain.CycleMonthly,
		StartDate: statementDate(2024, 1, 1),
		EndDate:   &end,
		Amount:    decimal.NewFromInt(1000),
	})

	stmt, err := f.service.BuildMonthlyStatement(1, 1, 2024, 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(stmt.Lines) != 0 {
		t.Errorf("Expected no lines for an ended obligation, got %d", len(stmt.Lines))
	}
}

func TestBuildMonthlyStatement_TenantNotFound(t *testing.T) {
	f := newStatementFixture(statementDate(2024, 1, 15))

	_, err := f.service.BuildMonthlyStatement(1, 99, 2024, 1)
	if !errors.Is(err, domain.ErrTenantNotFound) {
		t.Errorf("Expected ErrTenantNotFound, got %v", err)
	}
}
