package complaint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/pkg/ctxutil"
)

// Assign hands a complaint to an active employee (admin only). Reassigning
// an already assigned complaint is allowed.
func (s *Service) Assign(ctx context.Context, in AssignInput) (*domain.Complaint, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	in.Notes = strings.TrimSpace(in.Notes)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Complaint
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.complaints.GetForUpdate(ctx, in.ComplaintID)
		if err != nil {
			return fmt.Errorf("lock complaint: %w", err)
		}

		assignee, err := s.users.GetByID(ctx, in.AssigneeID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("assignee_id", "unknown user")
			}
			return fmt.Errorf("get assignee: %w", err)
		}
		if assignee.Role != domain.RoleEmployee || !assignee.IsActive {
			return domain.NewValidationError("assignee_id", "must be an active employee")
		}

		updated, err = s.complaints.UpdateAssignee(ctx, current.ID, assignee.ID)
		if err != nil {
			return fmt.Errorf("update assignee: %w", err)
		}

		notes := in.Notes
		if notes == "" {
			notes = "Assigned to " + assignee.FullName
		}
		if _, err := s.logs.Append(ctx, domain.ComplaintLog{
			ComplaintID: current.ID,
			UserID:      actor.StaffID(),
			Action:      domain.LogActionAssigned,
			Notes:       notes,
		}); err != nil {
			return fmt.Errorf("append log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("complaint.Assign: %w", err)
	}

	s.log.InfoContext(ctx, "complaint assigned",
		slog.String("complaint_id", updated.ID.String()),
		slog.String("assignee_id", in.AssigneeID.String()),
	)
	return updated, nil
}
