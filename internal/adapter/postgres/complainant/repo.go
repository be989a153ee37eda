// Package complainant implements the Complainant repository using PostgreSQL.
package complainant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Memex-200/Abutig-sub000/internal/adapter/postgres"
	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

const entity = "complainant"

const selectSQL = `SELECT id, full_name, national_id, phone, email, created_at FROM complainants`

// Repo provides complainant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new complainant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a complainant by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complainant, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, selectSQL+` WHERE id = $1`, id)

	c, err := scanComplainant(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return c, nil
}

// GetByNationalID returns a complainant by national id.
func (r *Repo) GetByNationalID(ctx context.Context, nationalID string) (*domain.Complainant, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, selectSQL+` WHERE national_id = $1`, nationalID)

	c, err := scanComplainant(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, nationalID)
	}
	return c, nil
}

// Create inserts a complainant. A duplicate national id maps to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Complainant) (*domain.Complainant, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO complainants (id, full_name, national_id, phone, email, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, full_name, national_id, phone, email, created_at`,
		c.ID, c.FullName, c.NationalID, c.Phone, c.Email, c.CreatedAt,
	)

	created, err := scanComplainant(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, c.ID)
	}
	return created, nil
}

func scanComplainant(row pgx.Row) (*domain.Complainant, error) {
	var c domain.Complainant
	if err := row.Scan(&c.ID, &c.FullName, &c.NationalID, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return &c, nil
}
