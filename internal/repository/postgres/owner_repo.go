package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// OwnerRepository implements domain.OwnerRepository using PostgreSQL
type OwnerRepository struct {
	pool *pgxpool.Pool
}

// NewOwnerRepository creates a new OwnerRepository
func NewOwnerRepository(pool *pgxpool.Pool) *OwnerRepository {
	return &OwnerRepository{pool: pool}
}

// CreateOrGetByPhone returns the owner for the phone number, creating
// the row on first login.
func (r *OwnerRepository) CreateOrGetByPhone(phone string) (*domain.Owner, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO owners (phone, name)
		VALUES ($1, '')
		ON CONFLICT (phone) DO UPDATE SET updated_at = now()
		RETURNING id, phone, name, email, created_at, updated_at`,
		phone,
	)
	return scanOwner(row)
}

// GetByID retrieves an owner by ID
func (r *OwnerRepository) GetByID(id int32) (*domain.Owner, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, phone, name, email, created_at, updated_at
		FROM owners
		WHERE id = $1`,
		id,
	)
	owner, err := scanOwner(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, err
	}
	return owner, nil
}

// UpdateProfile updates the owner's display name and contact email
func (r *OwnerRepository) UpdateProfile(id int32, name string, email *string) (*domain.Owner, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE owners
		SET name = $2, email = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, phone, name, email, created_at, updated_at`,
		id, name, nullableTextToPgText(email),
	)
	owner, err := scanOwner(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, err
	}
	return owner, nil
}

func scanOwner(row pgx.Row) (*domain.Owner, error) {
	var (
		owner     domain.Owner
		email     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&owner.ID, &owner.Phone, &owner.Name, &email, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	owner.Email = pgTextToNullableText(email)
	owner.CreatedAt = createdAt.Time
	owner.UpdatedAt = updatedAt.Time
	return &owner, nil
}
