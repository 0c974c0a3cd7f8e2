package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// PaidExpenseRepository implements domain.PaidExpenseRepository using PostgreSQL
type PaidExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewPaidExpenseRepository creates a new PaidExpenseRepository
func NewPaidExpenseRepository(pool *pgxpool.Pool) *PaidExpenseRepository {
	return &PaidExpenseRepository{pool: pool}
}

// Create records a new payment
func (r *PaidExpenseRepository) Create(pe *domain.PaidExpense) (*domain.PaidExpense, error) {
	ctx := context.Background()
	amount, err := decimalToPgNumeric(pe.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO paid_expenses (owner_id, tenant_id, expense_type_id, tenant_expense_id, payment_date, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, tenant_id, expense_type_id, tenant_expense_id, payment_date, amount, notes, created_at, updated_at`,
		pe.OwnerID, pe.TenantID, pe.ExpenseTypeID, nullableInt4ToPgInt4(pe.TenantExpenseID),
		dateToPgDate(pe.PaymentDate), amount, nullableTextToPgText(pe.Notes),
	)
	return scanPaidExpense(row)
}

// GetByID retrieves a payment by ID within an owner's scope
func (r *PaidExpenseRepository) GetByID(ownerID int32, id int32) (*domain.PaidExpense, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, tenant_id, expense_type_id, tenant_expense_id, payment_date, amount, notes, created_at, updated_at
		FROM paid_expenses
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	payment, err := scanPaidExpense(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPaidExpenseNotFound
		}
		return nil, err
	}
	return payment, nil
}

// ListByTenant retrieves all payments of a tenant
func (r *PaidExpenseRepository) ListByTenant(ownerID int32, tenantID int32) ([]*domain.PaidExpense, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, tenant_id, expense_type_id, tenant_expense_id, payment_date, amount, notes, created_at, updated_at
		FROM paid_expenses
		WHERE owner_id = $1 AND tenant_id = $2
		ORDER BY payment_date, id`,
		ownerID, tenantID,
	)
	if err != nil {
		return nil, err
	}
	return collectPaidExpenses(rows)
}

// ListByTenantBetween retrieves a tenant's payments dated within
// [from, to] inclusive.
func (r *PaidExpenseRepository) ListByTenantBetween(ownerID int32, tenantID int32, from, to time.Time) ([]*domain.PaidExpense, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, tenant_id, expense_type_id, tenant_expense_id, payment_date, amount, notes, created_at, updated_at
		FROM paid_expenses
		WHERE owner_id = $1 AND tenant_id = $2 AND payment_date >= $3 AND payment_date <= $4
		ORDER BY payment_date, id`,
		ownerID, tenantID, dateToPgDate(from), dateToPgDate(to),
	)
	if err != nil {
		return nil, err
	}
	return collectPaidExpenses(rows)
}

// ListByTenantExpense retrieves the payments linked to one obligation
func (r *PaidExpenseRepository) ListByTenantExpense(ownerID int32, tenantExpenseID int32) ([]*domain.PaidExpense, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, tenant_id, expense_type_id, tenant_expense_id, payment_date, amount, notes, created_at, updated_at
		FROM paid_expenses
		WHERE owner_id = $1 AND tenant_expense_id = $2
		ORDER BY payment_date, id`,
		ownerID, tenantExpenseID,
	)
	if err != nil {
		return nil, err
	}
	return collectPaidExpenses(rows)
}

// Delete removes a payment record
func (r *PaidExpenseRepository) Delete(ownerID int32, id int32) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM paid_expenses
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaidExpenseNotFound
	}
	return nil
}

func collectPaidExpenses(rows pgx.Rows) ([]*domain.PaidExpense, error) {
	defer rows.Close()

	var payments []*domain.PaidExpense
	for rows.Next() {
		payment, err := scanPaidExpense(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func scanPaidExpense(row pgx.Row) (*domain.PaidExpense, error) {
	var (
		payment         domain.PaidExpense
		tenantExpenseID pgtype.Int4
		paymentDate     pgtype.Date
		amount          pgtype.Numeric
		notes           pgtype.Text
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)
	if err := row.Scan(
		&payment.ID, &payment.OwnerID, &payment.TenantID, &payment.ExpenseTypeID,
		&tenantExpenseID, &paymentDate, &amount, &notes, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	payment.TenantExpenseID = pgInt4ToNullableInt4(tenantExpenseID)
	payment.PaymentDate = paymentDate.Time
	payment.Amount = pgNumericToDecimal(amount)
	payment.Notes = pgTextToNullableText(notes)
	payment.CreatedAt = createdAt.Time
	payment.UpdatedAt = updatedAt.Time
	return &payment, nil
}
