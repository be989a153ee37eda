// Package complaint implements the Complaint repository using PostgreSQL.
package complaint

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Memex-200/Abutig-sub000/internal/adapter/postgres"
	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

const entity = "complaint"

// selectColumns is the read projection; every read joins complainants for
// the denormalised complainant name.
var selectColumns = []string{
	"c.id", "c.complainant_id", "c.type_id", "c.assigned_to_id", "c.status",
	"c.title", "c.description", "c.location",
	"c.created_at", "c.updated_at", "c.resolved_at",
	"cp.full_name",
}

const fromJoined = "complaints c JOIN complainants cp ON cp.id = c.complainant_id"

// Repo provides complaint persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new complaint repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a complaint by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	return r.getOne(ctx, id, "")
}

// GetForUpdate returns a complaint and locks its row until the surrounding
// transaction ends. It must run inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	return r.getOne(ctx, id, "FOR UPDATE OF c")
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, suffix string) (*domain.Complaint, error) {
	b := postgres.Builder().
		Select(selectColumns...).
		From(fromJoined).
		Where(sq.Eq{"c.id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build complaint query: %w", err)
	}

	c, err := scanComplaint(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return c, nil
}

// List returns one page of complaints visible under scope and matching
// filter, plus the total number of matching rows. filter must be normalized.
func (r *Repo) List(ctx context.Context, scope domain.ComplaintScope, filter domain.ComplaintFilter) ([]domain.Complaint, int, error) {
	countQ, listQ := buildListQueries(scope, filter)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count complaints: %w", err)
	}
	if total == 0 {
		return []domain.Complaint{}, 0, nil
	}

	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list complaints: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Complaint, 0, filter.PageSize)
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan complaint: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate complaints: %w", err)
	}

	return items, total, nil
}

// buildListQueries renders the scope and the client filter into count and
// page queries. The scope predicates are always present when set and are
// ANDed with every client predicate.
func buildListQueries(scope domain.ComplaintScope, filter domain.ComplaintFilter) (sq.SelectBuilder, sq.SelectBuilder) {
	where := sq.And{}

	if scope.AssignedToID != nil {
		where = append(where, sq.Eq{"c.assigned_to_id": *scope.AssignedToID})
	}
	if scope.ComplainantID != nil {
		where = append(where, sq.Eq{"c.complainant_id": *scope.ComplainantID})
	}

	if filter.Status != nil {
		where = append(where, sq.Eq{"c.status": string(*filter.Status)})
	}
	if filter.TypeID != nil {
		where = append(where, sq.Eq{"c.type_id": *filter.TypeID})
	}
	if filter.Search != "" {
		pattern := "%" + domain.EscapeLike(filter.Search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"c.title": pattern},
			sq.ILike{"c.description": pattern},
			sq.ILike{"cp.full_name": pattern},
		})
	}

	countQ := postgres.Builder().Select("count(*)").From(fromJoined)
	listQ := postgres.Builder().Select(selectColumns...).From(fromJoined)
	if len(where) > 0 {
		countQ = countQ.Where(where)
		listQ = listQ.Where(where)
	}

	order := "DESC"
	if filter.SortOrder == domain.SortAsc {
		order = "ASC"
	}
	listQ = listQ.
		OrderBy("c.created_at "+order, "c.id "+order).
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset()))

	return countQ, listQ
}

// CountByStatus returns the number of complaints per status. Statuses with
// no complaints are omitted.
func (r *Repo) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT status, count(*) FROM complaints GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("count complaints by status: %w", err)
	}
	defer rows.Close()

	var out []domain.StatusCount
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out = append(out, domain.StatusCount{Status: domain.ComplaintStatus(status), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a complaint and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	query := `
		WITH ins AS (
			INSERT INTO complaints (id, complainant_id, type_id, assigned_to_id, status,
			                        title, description, location, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
			RETURNING *
		)
		SELECT ` + returningColumns + ` FROM ins c JOIN complainants cp ON cp.id = c.complainant_id`

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query,
		c.ID, c.ComplainantID, c.TypeID, c.AssignedToID, string(c.Status),
		c.Title, c.Description, c.Location, c.CreatedAt,
	)

	created, err := scanComplaint(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, c.ID)
	}
	return created, nil
}

// UpdateStatus sets status and resolved_at and bumps updated_at.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ComplaintStatus, resolvedAt *time.Time) (*domain.Complaint, error) {
	query := `
		WITH upd AS (
			UPDATE complaints
			SET status = $2, resolved_at = $3, updated_at = now()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + returningColumns + ` FROM upd c JOIN complainants cp ON cp.id = c.complainant_id`

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, id, string(status), resolvedAt)

	c, err := scanComplaint(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return c, nil
}

// UpdateAssignee sets assigned_to_id and bumps updated_at.
func (r *Repo) UpdateAssignee(ctx context.Context, id uuid.UUID, assigneeID uuid.UUID) (*domain.Complaint, error) {
	query := `
		WITH upd AS (
			UPDATE complaints
			SET assigned_to_id = $2, updated_at = now()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + returningColumns + ` FROM upd c JOIN complainants cp ON cp.id = c.complainant_id`

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, id, assigneeID)

	c, err := scanComplaint(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

const returningColumns = `c.id, c.complainant_id, c.type_id, c.assigned_to_id, c.status,
	c.title, c.description, c.location, c.created_at, c.updated_at, c.resolved_at, cp.full_name`

func scanComplaint(row pgx.Row) (*domain.Complaint, error) {
	var (
		c      domain.Complaint
		status string
	)
	err := row.Scan(
		&c.ID, &c.ComplainantID, &c.TypeID, &c.AssignedToID, &status,
		&c.Title, &c.Description, &c.Location,
		&c.CreatedAt, &c.UpdatedAt, &c.ResolvedAt,
		&c.ComplainantName,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.ComplaintStatus(status)
	return &c, nil
}
