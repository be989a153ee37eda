// Package complaintlog implements the append-only complaint history
// repository using PostgreSQL.
package complaintlog

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Memex-200/Abutig-sub000/internal/adapter/postgres"
	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

const entity = "complaint_log"

var columns = []string{
	"id", "complaint_id", "user_id", "action", "old_status", "new_status", "notes", "created_at",
}

// Repo provides complaint log persistence backed by PostgreSQL. There is
// no update or delete; the table trigger rejects both.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new complaint log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append inserts a log entry. created_at is assigned by the database
// clock so entries written in one transaction keep their order.
func (r *Repo) Append(ctx context.Context, entry domain.ComplaintLog) (domain.ComplaintLog, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert("complaint_logs").
		Columns("id", "complaint_id", "user_id", "action", "old_status", "new_status", "notes").
		Values(
			entry.ID, entry.ComplaintID, entry.UserID, string(entry.Action),
			statusPtrToText(entry.OldStatus), statusPtrToText(entry.NewStatus), entry.Notes,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ComplaintLog{}, fmt.Errorf("build append query: %w", err)
	}

	got, err := scanLog(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ComplaintLog{}, postgres.MapError(err, entity, entry.ID)
	}
	return got, nil
}

// ListByComplaint returns a complaint's history, newest first. Entries
// whose action is in exclude are skipped.
func (r *Repo) ListByComplaint(ctx context.Context, complaintID uuid.UUID, exclude ...domain.LogAction) ([]domain.ComplaintLog, error) {
	b := postgres.Builder().
		Select(columns...).
		From("complaint_logs").
		Where(sq.Eq{"complaint_id": complaintID}).
		OrderBy("created_at DESC", "id DESC")

	if len(exclude) > 0 {
		actions := make([]string, len(exclude))
		for i, a := range exclude {
			actions[i] = string(a)
		}
		b = b.Where(sq.NotEq{"action": actions})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list complaint_logs for %s: %w", complaintID, err)
	}
	defer rows.Close()

	logs := []domain.ComplaintLog{}
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan complaint_log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate complaint_logs: %w", err)
	}

	return logs, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanLog(row pgx.Row) (domain.ComplaintLog, error) {
	var (
		l                    domain.ComplaintLog
		action               string
		oldStatus, newStatus *string
	)
	if err := row.Scan(&l.ID, &l.ComplaintID, &l.UserID, &action, &oldStatus, &newStatus, &l.Notes, &l.CreatedAt); err != nil {
		return domain.ComplaintLog{}, err
	}
	l.Action = domain.LogAction(action)
	l.OldStatus = textToStatusPtr(oldStatus)
	l.NewStatus = textToStatusPtr(newStatus)
	return l, nil
}

func statusPtrToText(s *domain.ComplaintStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func textToStatusPtr(s *string) *domain.ComplaintStatus {
	if s == nil {
		return nil
	}
	v := domain.ComplaintStatus(*s)
	return &v
}
