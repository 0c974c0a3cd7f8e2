package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// ExpenseTypeRepository implements domain.ExpenseTypeRepository using PostgreSQL
type ExpenseTypeRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseTypeRepository creates a new ExpenseTypeRepository
func NewExpenseTypeRepository(pool *pgxpool.Pool) *ExpenseTypeRepository {
	return &ExpenseTypeRepository{pool: pool}
}

// Create creates a new catalog entry
func (r *ExpenseTypeRepository) Create(et *domain.ExpenseType) (*domain.ExpenseType, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO expense_types (owner_id, name, payable_in_advance)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, name, payable_in_advance, created_at, updated_at`,
		et.OwnerID, et.Name, et.PayableInAdvance,
	)
	return scanExpenseType(row)
}

// GetByID retrieves a catalog entry by ID within an owner's scope
func (r *ExpenseTypeRepository) GetByID(ownerID int32, id int32) (*domain.ExpenseType, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, payable_in_advance, created_at, updated_at
		FROM expense_types
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	expenseType, err := scanExpenseType(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrExpenseTypeNotFound
		}
		return nil, err
	}
	return expenseType, nil
}

// ListByOwner retrieves the owner's whole catalog
func (r *ExpenseTypeRepository) ListByOwner(ownerID int32) ([]*domain.ExpenseType, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, name, payable_in_advance, created_at, updated_at
		FROM expense_types
		WHERE owner_id = $1
		ORDER BY name`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*domain.ExpenseType
	for rows.Next() {
		expenseType, err := scanExpenseType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, expenseType)
	}
	return types, rows.Err()
}

// Update updates a catalog entry
func (r *ExpenseTypeRepository) Update(et *domain.ExpenseType) (*domain.ExpenseType, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE expense_types
		SET name = $3, payable_in_advance = $4, updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING id, owner_id, name, payable_in_advance, created_at, updated_at`,
		et.OwnerID, et.ID, et.Name, et.PayableInAdvance,
	)
	expenseType, err := scanExpenseType(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrExpenseTypeNotFound
		}
		return nil, err
	}
	return expenseType, nil
}

// Delete removes a catalog entry
func (r *ExpenseTypeRepository) Delete(ownerID int32, id int32) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM expense_types
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseTypeNotFound
	}
	return nil
}

func scanExpenseType(row pgx.Row) (*domain.ExpenseType, error) {
	var (
		expenseType domain.ExpenseType
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(&expenseType.ID, &expenseType.OwnerID, &expenseType.Name, &expenseType.PayableInAdvance, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	expenseType.CreatedAt = createdAt.Time
	expenseType.UpdatedAt = updatedAt.Time
	return &expenseType, nil
}
