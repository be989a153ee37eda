// Package complaint implements role-scoped complaint access and the status
// transition workflow.
package complaint

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

type complaintRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	List(ctx context.Context, scope domain.ComplaintScope, filter domain.ComplaintFilter) ([]domain.Complaint, int, error)
	Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ComplaintStatus, resolvedAt *time.Time) (*domain.Complaint, error)
	UpdateAssignee(ctx context.Context, id uuid.UUID, assigneeID uuid.UUID) (*domain.Complaint, error)
}

type logRepo interface {
	Append(ctx context.Context, entry domain.ComplaintLog) (domain.ComplaintLog, error)
	ListByComplaint(ctx context.Context, complaintID uuid.UUID, exclude ...domain.LogAction) ([]domain.ComplaintLog, error)
}

type typeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplaintType, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// notifier hands events to background delivery and never blocks.
type notifier interface {
	Dispatch(ev domain.StatusChangeEvent) bool
}

type transitionRecorder interface {
	ObserveTransition(from, to domain.ComplaintStatus)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements complaint operations for all three roles.
type Service struct {
	log        *slog.Logger
	complaints complaintRepo
	logs       logRepo
	types      typeRepo
	users      userRepo
	notifier   notifier
	metrics    transitionRecorder
	tx         txManager
	now        func() time.Time
}

// NewService creates a new complaint service instance.
func NewService(
	logger *slog.Logger,
	complaints complaintRepo,
	logs logRepo,
	types typeRepo,
	users userRepo,
	notifier notifier,
	metrics transitionRecorder,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "complaint"),
		complaints: complaints,
		logs:       logs,
		types:      types,
		users:      users,
		notifier:   notifier,
		metrics:    metrics,
		tx:         tx,
		now:        time.Now,
	}
}
