// Package admin implements staff, complaint type and reporting management.
// Every operation requires an ADMIN actor.
package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/pkg/ctxutil"
)

type userRepo interface {
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
}

type typeRepo interface {
	List(ctx context.Context, activeOnly bool) ([]domain.ComplaintType, error)
	Create(ctx context.Context, ct *domain.ComplaintType) (*domain.ComplaintType, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.ComplaintType, error)
}

type complainantRepo interface {
	Create(ctx context.Context, c *domain.Complainant) (*domain.Complainant, error)
}

type statsRepo interface {
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
}

// Service implements admin operations.
type Service struct {
	log          *slog.Logger
	users        userRepo
	types        typeRepo
	complainants complainantRepo
	stats        statsRepo
	now          func() time.Time
}

// NewService creates a new admin service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	types typeRepo,
	complainants complainantRepo,
	stats statsRepo,
) *Service {
	return &Service{
		log:          logger.With("service", "admin"),
		users:        users,
		types:        types,
		complainants: complainants,
		stats:        stats,
		now:          time.Now,
	}
}

func requireAdmin(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return domain.Actor{}, domain.ErrForbidden
	}
	return actor, nil
}
