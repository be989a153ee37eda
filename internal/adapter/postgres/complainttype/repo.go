// Package complainttype implements the ComplaintType repository using PostgreSQL.
package complainttype

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Memex-200/Abutig-sub000/internal/adapter/postgres"
	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

const entity = "complaint_type"

var columns = []string{"id", "name", "description", "is_active", "created_at"}

// Repo provides complaint type persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new complaint type repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a complaint type by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplaintType, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("complaint_types").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	ct, err := scanType(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &ct, nil
}

// GetByIDs returns the complaint types with the given ids in no particular
// order. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ComplaintType, error) {
	if len(ids) == 0 {
		return []domain.ComplaintType{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	return r.query(ctx, postgres.Builder().
		Select(columns...).
		From("complaint_types").
		Where(sq.Eq{"id": keys}))
}

// List returns complaint types ordered by name.
func (r *Repo) List(ctx context.Context, activeOnly bool) ([]domain.ComplaintType, error) {
	b := postgres.Builder().
		Select(columns...).
		From("complaint_types").
		OrderBy("name ASC")
	if activeOnly {
		b = b.Where(sq.Eq{"is_active": true})
	}
	return r.query(ctx, b)
}

// Create inserts a complaint type. A duplicate name maps to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, ct *domain.ComplaintType) (*domain.ComplaintType, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO complaint_types (id, name, description, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, description, is_active, created_at`,
		ct.ID, ct.Name, ct.Description, ct.IsActive, ct.CreatedAt,
	)

	created, err := scanType(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, ct.ID)
	}
	return &created, nil
}

// SetActive toggles the is_active flag.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.ComplaintType, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`UPDATE complaint_types SET is_active = $2 WHERE id = $1
		 RETURNING id, name, description, is_active, created_at`,
		id, active,
	)

	ct, err := scanType(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &ct, nil
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]domain.ComplaintType, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query complaint_types: %w", err)
	}
	defer rows.Close()

	out := []domain.ComplaintType{}
	for rows.Next() {
		ct, err := scanType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan complaint_type: %w", err)
		}
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate complaint_types: %w", err)
	}
	return out, nil
}

func scanType(row pgx.Row) (domain.ComplaintType, error) {
	var ct domain.ComplaintType
	err := row.Scan(&ct.ID, &ct.Name, &ct.Description, &ct.IsActive, &ct.CreatedAt)
	return ct, err
}
