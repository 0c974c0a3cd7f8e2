package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// TenantExpenseRepository implements domain.TenantExpenseRepository using PostgreSQL
type TenantExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewTenantExpenseRepository creates a new TenantExpenseRepository
func NewTenantExpenseRepository(pool *pgxpool.Pool) *TenantExpenseRepository {
	return &TenantExpenseRepository{pool: pool}
}

// Create creates a new tenant expense
func (r *TenantExpenseRepository) Create(te *domain.TenantExpense) (*domain.TenantExpense, error) {
	ctx := context.Background()
	amount, err := decimalToPgNumeric(te.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO tenant_expenses (owner_id, tenant_id, expense_type_id, cycle, start_date, end_date, amount, payable_in_advance, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, owner_id, tenant_id, expense_type_id, cycle, start_date, end_date, amount, payable_in_advance, notes, created_at, updated_at`,
		te.OwnerID, te.TenantID, te.ExpenseTypeID, string(te.Cycle),
		dateToPgDate(te.StartDate), nullableDateToPgDate(te.EndDate),
		amount, te.PayableInAdvance, nullableTextToPgText(te.Notes),
	)
	return scanTenantExpense(row)
}

// GetByID retrieves a tenant expense by ID within an owner's scope
func (r *TenantExpenseRepository) GetByID(ownerID int32, id int32) (*domain.TenantExpense, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, tenant_id, expense_type_id, cycle, start_date, end_date, amount, payable_in_advance, notes, created_at, updated_at
		FROM tenant_expenses
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	expense, err := scanTenantExpense(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTenantExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// ListByTenant retrieves all obligations of a tenant
func (r *TenantExpenseRepository) ListByTenant(ownerID int32, tenantID int32) ([]*domain.TenantExpense, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, tenant_id, expense_type_id, cycle, start_date, end_date, amount, payable_in_advance, notes, created_at, updated_at
		FROM tenant_expenses
		WHERE owner_id = $1 AND tenant_id = $2
		ORDER BY start_date, id`,
		ownerID, tenantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.TenantExpense
	for rows.Next() {
		expense, err := scanTenantExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// Update updates an existing tenant expense
func (r *TenantExpenseRepository) Update(te *domain.TenantExpense) (*domain.TenantExpense, error) {
	ctx := context.Background()
	amount, err := decimalToPgNumeric(te.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE tenant_expenses
		SET expense_type_id = $3, cycle = $4, start_date = $5, end_date = $6, amount = $7, payable_in_advance = $8, notes = $9, updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING id, owner_id, tenant_id, expense_type_id, cycle, start_date, end_date, amount, payable_in_advance, notes, created_at, updated_at`,
		te.OwnerID, te.ID, te.ExpenseTypeID, string(te.Cycle),
		dateToPgDate(te.StartDate), nullableDateToPgDate(te.EndDate),
		amount, te.PayableInAdvance, nullableTextToPgText(te.Notes),
	)
	expense, err := scanTenantExpense(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTenantExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// Delete removes a tenant expense
func (r *TenantExpenseRepository) Delete(ownerID int32, id int32) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM tenant_expenses
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTenantExpenseNotFound
	}
	return nil
}

func scanTenantExpense(row pgx.Row) (*domain.TenantExpense, error) {
	var (
		expense   domain.TenantExpense
		cycle     string
		startDate pgtype.Date
		endDate   pgtype.Date
		amount    pgtype.Numeric
		notes     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(
		&expense.ID, &expense.OwnerID, &expense.TenantID, &expense.ExpenseTypeID,
		&cycle, &startDate, &endDate, &amount, &expense.PayableInAdvance, &notes,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	expense.Cycle = domain.BillingCycle(cycle)
	expense.StartDate = startDate.Time
	expense.EndDate = pgDateToNullableDate(endDate)
	expense.Amount = pgNumericToDecimal(amount)
	expense.Notes = pgTextToNullableText(notes)
	expense.CreatedAt = createdAt.Time
	expense.UpdatedAt = updatedAt.Time
	return &expense, nil
}
