package complaint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/pkg/ctxutil"
)

const createdNote = "Complaint submitted"

// Create files a new complaint for the calling citizen. The complaint
// starts as NEW and unassigned.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Complaint, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if actor.Role != domain.RoleCitizen {
		return nil, domain.ErrForbidden
	}

	in.normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Complaint
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ct, err := s.types.GetByID(ctx, in.TypeID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("type_id", "unknown complaint type")
			}
			return fmt.Errorf("get type: %w", err)
		}
		if !ct.IsActive {
			return domain.NewValidationError("type_id", "complaint type is inactive")
		}

		now := s.now().UTC()
		created, err = s.complaints.Create(ctx, &domain.Complaint{
			ID:            uuid.New(),
			ComplainantID: actor.ComplainantID,
			TypeID:        ct.ID,
			Status:        domain.StatusNew,
			Title:         in.Title,
			Description:   in.Description,
			Location:      in.Location,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("insert complaint: %w", err)
		}

		status := domain.StatusNew
		if _, err := s.logs.Append(ctx, domain.ComplaintLog{
			ComplaintID: created.ID,
			Action:      domain.LogActionCreated,
			NewStatus:   &status,
			Notes:       createdNote,
		}); err != nil {
			return fmt.Errorf("append log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("complaint.Create: %w", err)
	}

	s.log.InfoContext(ctx, "complaint created",
		slog.String("complaint_id", created.ID.String()),
		slog.String("complainant_id", actor.ComplainantID.String()),
	)
	return created, nil
}
