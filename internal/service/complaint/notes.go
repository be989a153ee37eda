package complaint

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/pkg/ctxutil"
)

// AddInternalNote appends a staff-only note. Employees may only annotate
// complaints assigned to them.
func (s *Service) AddInternalNote(ctx context.Context, in NoteInput) (domain.ComplaintLog, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ComplaintLog{}, domain.ErrUnauthorized
	}
	if !actor.Role.IsStaff() {
		return domain.ComplaintLog{}, domain.ErrForbidden
	}

	in.Notes = strings.TrimSpace(in.Notes)
	if err := in.Validate(); err != nil {
		return domain.ComplaintLog{}, err
	}

	c, err := s.complaints.GetByID(ctx, in.ComplaintID)
	if err != nil {
		return domain.ComplaintLog{}, fmt.Errorf("complaint.AddInternalNote: %w", err)
	}
	if !canRead(actor, c) {
		return domain.ComplaintLog{}, domain.ErrForbidden
	}

	entry, err := s.logs.Append(ctx, domain.ComplaintLog{
		ComplaintID: c.ID,
		UserID:      actor.StaffID(),
		Action:      domain.LogActionInternalNote,
		Notes:       in.Notes,
	})
	if err != nil {
		return domain.ComplaintLog{}, fmt.Errorf("complaint.AddInternalNote: %w", err)
	}
	return entry, nil
}

// ListLogs returns a complaint's history, newest first. Access follows
// GetByID. Citizens do not see internal notes.
func (s *Service) ListLogs(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintLog, error) {
	c, err := s.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	actor, _ := ctxutil.ActorFromCtx(ctx)
	var exclude []domain.LogAction
	if actor.Role == domain.RoleCitizen {
		exclude = append(exclude, domain.LogActionInternalNote)
	}

	entries, err := s.logs.ListByComplaint(ctx, c.ID, exclude...)
	if err != nil {
		return nil, fmt.Errorf("complaint.ListLogs: %w", err)
	}
	return entries, nil
}
