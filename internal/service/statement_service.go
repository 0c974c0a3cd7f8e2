package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yashalsharma/kirayadoor-backend/internal/billing"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/util"
)

// StatementService assembles month-scoped tenant ledgers: one line per
// due date of each active obligation, one line per payment received in
// the month, sorted chronologically with a running balance.
type StatementService struct {
	tenantRepo      domain.TenantRepository
	expenseRepo     domain.TenantExpenseRepository
	paymentRepo     domain.PaidExpenseRepository
	expenseTypeRepo domain.ExpenseTypeRepository
	now             func() time.Time
}

// NewStatementService creates a new StatementService
func NewStatementService(
	tenantRepo domain.TenantRepository,
	expenseRepo domain.TenantExpenseRepository,
	paymentRepo domain.PaidExpenseRepository,
	expenseTypeRepo domain.ExpenseTypeRepository,
) *StatementService {
	return &StatementService{
		tenantRepo:      tenantRepo,
		expenseRepo:     expenseRepo,
		paymentRepo:     paymentRepo,
		expenseTypeRepo: expenseTypeRepo,
		now:             time.Now,
	}
}

// BuildMonthlyStatement builds the ledger for one tenant and calendar
// month. Obligations that ended before the month begins are excluded;
// due dates are generated up to today, except advance-payable
// obligations which are charged for the whole month up front. The
// month's pending may be negative (overpaid month); the all-time
// pending is floored at zero.
func (s *StatementService) BuildMonthlyStatement(ownerID, tenantID int32, year, month int) (*domain.MonthlyStatement, error) {
	tenant, err := s.tenantRepo.GetByID(ownerID, tenantID)
	if err != nil {
		return nil, err
	}

	winStart, winEnd := util.MonthWindow(year, time.Month(month))
	today := util.DateOnly(s.now())

	expenses, err := s.expenseRepo.ListByTenant(ownerID, tenantID)
	if err != nil {
		return nil, err
	}

	typeNames, err := s.expenseTypeNames(ownerID)
	if err != nil {
		return nil, err
	}

	// Due lines are appended first so that on equal dates the stable
	// sort keeps charges ahead of the payments that settle them.
	var lines []domain.LedgerLine
	for _, exp := range expenses {
		if exp.EndDate != nil && exp.EndDate.Before(winStart) {
			continue
		}
		for _, due := range billing.DueDatesInWindow(exp, winStart, winEnd, today) {
			lines = append(lines, domain.LedgerLine{
				Date:            due,
				Kind:            domain.LineKindExpense,
				Description:     s.dueDescription(exp, typeNames),
				Amount:          exp.Amount,
				TenantExpenseID: &exp.ID,
				Notes:           exp.Notes,
			})
		}
	}

	payments, err := s.paymentRepo.ListByTenantBetween(ownerID, tenantID, winStart, winEnd)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		lines = append(lines, domain.LedgerLine{
			Date:            util.DateOnly(p.PaymentDate),
			Kind:            domain.LineKindPayment,
			Description:     s.paymentDescription(p, typeNames),
			Amount:          p.Amount.Neg(),
			TenantExpenseID: p.TenantExpenseID,
			PaidExpenseID:   &p.ID,
			Notes:           p.Notes,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})

	totalExpected := decimal.Zero
	totalPaid := decimal.Zero
	balance := decimal.Zero
	for i := range lines {
		balance = balance.Add(lines[i].Amount)
		lines[i].RunningBalance = balance

		if lines[i].Kind == domain.LineKindExpense {
			totalExpected = totalExpected.Add(lines[i].Amount)
		} else {
			totalPaid = totalPaid.Add(lines[i].Amount.Neg())
		}
	}

	allTimePending, err := s.allTimePending(ownerID, tenantID, expenses, today)
	if err != nil {
		return nil, err
	}

	return &domain.MonthlyStatement{
		TenantID: tenantID,
		Year:     year,
		Month:    month,
		Tenant:   tenant,
		Lines:    lines,
		Summary: domain.StatementSummary{
			TotalExpected:       totalExpected,
			TotalPaid:           totalPaid,
			PendingAmount:       billing.AllowNegative.Apply(totalExpected.Sub(totalPaid)),
			TotalAllTimePending: allTimePending,
		},
	}, nil
}

// allTimePending nets the tenant's cumulative expected charges against
// every payment on record, linked or not. Ad-hoc payments count here
// because the money was received, even when no obligation claims it.
func (s *StatementService) allTimePending(ownerID, tenantID int32, expenses []*domain.TenantExpense, asOf time.Time) (decimal.Decimal, error) {
	payments, err := s.paymentRepo.ListByTenant(ownerID, tenantID)
	if err != nil {
		return decimal.Zero, err
	}

	expected := decimal.Zero
	for _, exp := range expenses {
		expected = expected.Add(billing.Expected(exp, asOf))
	}

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	return billing.FloorAtZero.Apply(expected.Sub(paid)), nil
}

func (s *StatementService) expenseTypeNames(ownerID int32) (map[int32]string, error) {
	types, err := s.expenseTypeRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	names := make(map[int32]string, len(types))
	for _, et := range types {
		names[et.ID] = et.Name
	}
	return names, nil
}

func (s *StatementService) dueDescription(exp *domain.TenantExpense, typeNames map[int32]string) string {
	name := typeNames[exp.ExpenseTypeID]
	if name == "" {
		name = "Expense"
	}
	return fmt.Sprintf("%s (%s)", name, exp.Cycle)
}

func (s *StatementService) paymentDescription(p *domain.PaidExpense, typeNames map[int32]string) string {
	name := typeNames[p.ExpenseTypeID]
	if name == "" {
		name = "Expense"
	}
	return fmt.Sprintf("Payment - %s", name)
}
