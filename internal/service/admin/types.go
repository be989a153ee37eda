package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/pkg/ctxutil"
)

// CreateType adds an active complaint type.
func (s *Service) CreateType(ctx context.Context, in CreateTypeInput) (*domain.ComplaintType, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	in.normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ct, err := s.types.Create(ctx, &domain.ComplaintType{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("admin.CreateType: %w", err)
	}
	return ct, nil
}

// ListTypes lists complaint types. Any authenticated actor may list active
// types; only admins may include inactive ones.
func (s *Service) ListTypes(ctx context.Context, includeInactive bool) ([]domain.ComplaintType, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if includeInactive && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	types, err := s.types.List(ctx, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("admin.ListTypes: %w", err)
	}
	return types, nil
}

// SetTypeActive toggles a complaint type. Inactive types reject new
// complaints; existing complaints keep their type.
func (s *Service) SetTypeActive(ctx context.Context, id uuid.UUID, active bool) (*domain.ComplaintType, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	ct, err := s.types.SetActive(ctx, id, active)
	if err != nil {
		return nil, fmt.Errorf("admin.SetTypeActive: %w", err)
	}
	return ct, nil
}
