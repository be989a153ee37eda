package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

// RegisterComplainant records a citizen so the identity provider can issue
// tokens for them. A duplicate national id is domain.ErrAlreadyExists.
func (s *Service) RegisterComplainant(ctx context.Context, in RegisterComplainantInput) (*domain.Complainant, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	in.normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c, err := s.complainants.Create(ctx, &domain.Complainant{
		ID:         uuid.New(),
		FullName:   in.FullName,
		NationalID: in.NationalID,
		Phone:      in.Phone,
		Email:      in.Email,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("admin.RegisterComplainant: %w", err)
	}

	s.log.InfoContext(ctx, "complainant registered", slog.String("complainant_id", c.ID.String()))
	return c, nil
}
