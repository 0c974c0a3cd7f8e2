package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// UnitRepository implements domain.UnitRepository using PostgreSQL
type UnitRepository struct {
	pool *pgxpool.Pool
}

// NewUnitRepository creates a new UnitRepository
func NewUnitRepository(pool *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{pool: pool}
}

// Create creates a new unit
func (r *UnitRepository) Create(u *domain.Unit) (*domain.Unit, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO units (owner_id, property_id, label, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, owner_id, property_id, label, notes, created_at, updated_at`,
		u.OwnerID, u.PropertyID, u.Label, nullableTextToPgText(u.Notes),
	)
	return scanUnit(row)
}

// GetByID retrieves a unit by ID within an owner's scope
func (r *UnitRepository) GetByID(ownerID int32, id int32) (*domain.Unit, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, property_id, label, notes, created_at, updated_at
		FROM units
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	unit, err := scanUnit(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUnitNotFound
		}
		return nil, err
	}
	return unit, nil
}

// ListByProperty retrieves all units of a property
func (r *UnitRepository) ListByProperty(ownerID int32, propertyID int32) ([]*domain.Unit, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, property_id, label, notes, created_at, updated_at
		FROM units
		WHERE owner_id = $1 AND property_id = $2
		ORDER BY label`,
		ownerID, propertyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*domain.Unit
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, rows.Err()
}

// Update updates a unit's label and notes
func (r *UnitRepository) Update(u *domain.Unit) (*domain.Unit, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE units
		SET label = $3, notes = $4, updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING id, owner_id, property_id, label, notes, created_at, updated_at`,
		u.OwnerID, u.ID, u.Label, nullableTextToPgText(u.Notes),
	)
	unit, err := scanUnit(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUnitNotFound
		}
		return nil, err
	}
	return unit, nil
}

// Delete removes a unit
func (r *UnitRepository) Delete(ownerID int32, id int32) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM units
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func scanUnit(row pgx.Row) (*domain.Unit, error) {
	var (
		unit      domain.Unit
		notes     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&unit.ID, &unit.OwnerID, &unit.PropertyID, &unit.Label, &notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	unit.Notes = pgTextToNullableText(notes)
	unit.CreatedAt = createdAt.Time
	unit.UpdatedAt = updatedAt.Time
	return &unit, nil
}
