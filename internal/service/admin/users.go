package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

// CreateUser creates an active staff account.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	in.normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	u, err := s.users.Create(ctx, &domain.User{
		ID:        uuid.New(),
		FullName:  in.FullName,
		Email:     in.Email,
		Role:      in.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("admin.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "staff user created",
		slog.String("user_id", u.ID.String()),
		slog.String("role", u.Role.String()),
	)
	return u, nil
}

// ListUsers returns a page of staff accounts.
func (s *Service) ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.Page[domain.User], error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if filter.Role != nil && !filter.Role.IsStaff() {
		return nil, domain.NewValidationError("role", "must be ADMIN or EMPLOYEE")
	}
	filter.Normalize()

	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("admin.ListUsers: %w", err)
	}
	return domain.NewPage(users, total, filter.Page, filter.PageSize), nil
}

// SetUserActive activates or deactivates a staff account. Deactivated users
// fail identity resolution on their next request. Admins cannot deactivate
// themselves.
func (s *Service) SetUserActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if !active && actor.ID == id {
		return nil, domain.NewValidationError("is_active", "cannot deactivate yourself")
	}

	u, err := s.users.SetActive(ctx, id, active)
	if err != nil {
		return nil, fmt.Errorf("admin.SetUserActive: %w", err)
	}

	s.log.InfoContext(ctx, "staff user active flag changed",
		slog.String("user_id", id.String()),
		slog.Bool("active", active),
	)
	return u, nil
}
