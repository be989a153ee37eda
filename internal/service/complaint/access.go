package complaint

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/pkg/ctxutil"
)

// scopeFor derives the row restriction for an actor. The scope is ANDed
// with client filters by the repository and can never be widened by them.
func scopeFor(actor domain.Actor) (domain.ComplaintScope, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		return domain.ComplaintScope{}, nil
	case domain.RoleEmployee:
		id := actor.ID
		return domain.ComplaintScope{AssignedToID: &id}, nil
	case domain.RoleCitizen:
		id := actor.ComplainantID
		return domain.ComplaintScope{ComplainantID: &id}, nil
	}
	return domain.ComplaintScope{}, domain.ErrForbidden
}

// canRead is the single-row counterpart of scopeFor.
func canRead(actor domain.Actor, c *domain.Complaint) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleEmployee:
		return c.IsAssignedTo(actor.ID)
	case domain.RoleCitizen:
		return c.ComplainantID == actor.ComplainantID
	}
	return false
}

// List returns one page of complaints visible to the caller.
func (s *Service) List(ctx context.Context, filter domain.ComplaintFilter) (*domain.Page[domain.Complaint], error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	scope, err := scopeFor(actor)
	if err != nil {
		return nil, err
	}

	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	filter.Normalize()

	items, total, err := s.complaints.List(ctx, scope, filter)
	if err != nil {
		return nil, fmt.Errorf("complaint.List: %w", err)
	}

	return domain.NewPage(items, total, filter.Page, filter.PageSize), nil
}

// GetByID returns a complaint if the caller may see it. A missing row is
// ErrNotFound for every role; an existing row outside the caller's scope is
// ErrForbidden.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("complaint.GetByID: %w", err)
	}

	if !canRead(actor, c) {
		return nil, domain.ErrForbidden
	}
	return c, nil
}
