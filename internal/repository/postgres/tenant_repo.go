package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
)

// TenantRepository implements domain.TenantRepository using PostgreSQL
type TenantRepository struct {
	pool *pgxpool.Pool
}

// NewTenantRepository creates a new TenantRepository
func NewTenantRepository(pool *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{pool: pool}
}

// Create creates a new tenant
func (r *TenantRepository) Create(t *domain.Tenant) (*domain.Tenant, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tenants (owner_id, unit_id, name, phone, move_in_date, move_out_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, unit_id, name, phone, move_in_date, move_out_date, created_at, updated_at`,
		t.OwnerID, t.UnitID, t.Name, t.Phone, dateToPgDate(t.MoveInDate), nullableDateToPgDate(t.MoveOutDate),
	)
	return scanTenant(row)
}

// GetByID retrieves a tenant by ID within an owner's scope
func (r *TenantRepository) GetByID(ownerID int32, id int32) (*domain.Tenant, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, unit_id, name, phone, move_in_date, move_out_date, created_at, updated_at
		FROM tenants
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	tenant, err := scanTenant(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

// ListByUnit retrieves all tenants of a unit
func (r *TenantRepository) ListByUnit(ownerID int32, unitID int32) ([]*domain.Tenant, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, unit_id, name, phone, move_in_date, move_out_date, created_at, updated_at
		FROM tenants
		WHERE owner_id = $1 AND unit_id = $2
		ORDER BY name`,
		ownerID, unitID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []*domain.Tenant
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, tenant)
	}
	return tenants, rows.Err()
}

// Update updates an existing tenant
func (r *TenantRepository) Update(t *domain.Tenant) (*domain.Tenant, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE tenants
		SET name = $3, phone = $4, move_in_date = $5, move_out_date = $6, updated_at = now()
		WHERE owner_id = $1 AND id = $2
		RETURNING id, owner_id, unit_id, name, phone, move_in_date, move_out_date, created_at, updated_at`,
		t.OwnerID, t.ID, t.Name, t.Phone, dateToPgDate(t.MoveInDate), nullableDateToPgDate(t.MoveOutDate),
	)
	tenant, err := scanTenant(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

// Delete removes a tenant
func (r *TenantRepository) Delete(ownerID int32, id int32) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM tenants
		WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

func scanTenant(row pgx.Row) (*domain.Tenant, error) {
	var (
		tenant    domain.Tenant
		moveIn    pgtype.Date
		moveOut   pgtype.Date
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&tenant.ID, &tenant.OwnerID, &tenant.UnitID, &tenant.Name, &tenant.Phone, &moveIn, &moveOut, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	tenant.MoveInDate = moveIn.Time
	tenant.MoveOutDate = pgDateToNullableDate(moveOut)
	tenant.CreatedAt = createdAt.Time
	tenant.UpdatedAt = updatedAt.Time
	return &tenant, nil
}
