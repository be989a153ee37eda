package complaint

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/pkg/ctxutil"
)

// UpdateStatus moves a complaint to a new status. Any status may follow
// any other.
//
// The row is locked for the whole read-modify-append sequence, so concurrent
// writers on one complaint are serialised and every log entry's old status
// is the status it actually replaced. An employee acting on an unassigned
// complaint claims it in the same transaction. The complainant is notified
// after commit without waiting on delivery; notification failures never
// fail the call.
func (s *Service) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*domain.Complaint, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !actor.Role.IsStaff() {
		return nil, domain.ErrForbidden
	}

	in.Notes = strings.TrimSpace(in.Notes)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var (
		updated   *domain.Complaint
		oldStatus domain.ComplaintStatus
		notes     string
		claimed   bool
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.complaints.GetForUpdate(ctx, in.ComplaintID)
		if err != nil {
			return fmt.Errorf("lock complaint: %w", err)
		}

		switch actor.Role {
		case domain.RoleAdmin:
		case domain.RoleEmployee:
			switch {
			case current.AssignedToID == nil:
				claimed = true
			case !current.IsAssignedTo(actor.ID):
				return domain.ErrForbidden
			}
		default:
			return domain.ErrForbidden
		}

		oldStatus = current.Status

		// resolved_at is stamped once, on the first move to RESOLVED, and
		// never cleared.
		resolvedAt := current.ResolvedAt
		if in.Status == domain.StatusResolved && resolvedAt == nil {
			now := s.now().UTC()
			resolvedAt = &now
		}

		if claimed {
			if _, err := s.complaints.UpdateAssignee(ctx, current.ID, actor.ID); err != nil {
				return fmt.Errorf("claim complaint: %w", err)
			}
		}

		updated, err = s.complaints.UpdateStatus(ctx, current.ID, in.Status, resolvedAt)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		notes = in.Notes
		if notes == "" {
			notes = domain.StatusChangeNote(oldStatus, in.Status)
		}
		newStatus := in.Status
		if _, err := s.logs.Append(ctx, domain.ComplaintLog{
			ComplaintID: current.ID,
			UserID:      actor.StaffID(),
			Action:      domain.LogActionStatusChanged,
			OldStatus:   &oldStatus,
			NewStatus:   &newStatus,
			Notes:       notes,
		}); err != nil {
			return fmt.Errorf("append log: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("complaint.UpdateStatus: %w", err)
	}

	s.metrics.ObserveTransition(oldStatus, in.Status)
	s.log.InfoContext(ctx, "complaint status changed",
		slog.String("complaint_id", updated.ID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("old_status", oldStatus.String()),
		slog.String("new_status", in.Status.String()),
		slog.Bool("claimed", claimed),
	)

	s.notifyStatusChange(actor, updated, oldStatus, notes)

	return updated, nil
}

// notifyStatusChange queues a notification for the complainant. The
// recipient is resolved by the delivery worker, so nothing here touches the
// database.
func (s *Service) notifyStatusChange(actor domain.Actor, c *domain.Complaint, oldStatus domain.ComplaintStatus, notes string) {
	s.notifier.Dispatch(domain.StatusChangeEvent{
		ComplaintID:   c.ID,
		Title:         c.Title,
		ComplainantID: c.ComplainantID,
		OldStatus:     oldStatus,
		NewStatus:     c.Status,
		Notes:         notes,
		ChangedBy:     actor.ID,
		ChangedAt:     c.UpdatedAt,
	})
}
