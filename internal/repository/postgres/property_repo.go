package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// PropertyRepository implements domain.PropertyRepository using PostgreSQL
type PropertyRepository struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

// Create creates a new property
func (r *PropertyRepository) Create(p *domain.Property) (*domain.Property, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (owner_id, name, address)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, name, address, photo_path, created_at, updated_at`,
		p.OwnerID, p.Name, p.Address,
	)
	return scanProperty(row)
}

// GetByID retrieves a property by ID within an owner's scope
func (r *PropertyRepository) GetByID(ownerID int32, id int32) (*domain.Property, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, address, photo_path, created_at, updated_at
		FROM properties
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	property, err := scanProperty(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return property, nil
}

// ListByOwner retrieves all properties of an owner
func (r *PropertyRepository) ListByOwner(ownerID int32) ([]*domain.Property, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, name, address, photo_path, created_at, updated_at
		FROM properties
		WHERE owner_id = $1
		ORDER BY name`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*domain.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, rows.Err()
}

// Update updates a property's name and address
func (r *PropertyRepository) Update(p *domain.Property) (*domain.Property, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE properties
		SET name = $3, address = $4, updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING id, owner_id, name, address, photo_path, created_at, updated_at`,
		p.OwnerID, p.ID, p.Name, p.Address,
	)
	property, err := scanProperty(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return property, nil
}

// SetPhotoPath records or clears the stored photo's object path
func (r *PropertyRepository) SetPhotoPath(ownerID int32, id int32, photoPath *string) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		UPDATE properties
		SET photo_path = $3, updated_at = now()
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id, nullableTextToPgText(photoPath),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// Delete removes a property
func (r *PropertyRepository) Delete(ownerID int32, id int32) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM properties
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var (
		property  domain.Property
		photoPath pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&property.ID, &property.OwnerID, &property.Name, &property.Address, &photoPath, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	property.PhotoPath = pgTextToNullableText(photoPath)
	property.CreatedAt = createdAt.Time
	property.UpdatedAt = updatedAt.Time
	return &property, nil
}
