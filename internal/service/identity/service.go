// Package identity maps a bearer token to the Actor making the request.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/auth"
	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

type tokenVerifier interface {
	ValidateAccessToken(token string) (auth.Claims, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type complainantRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complainant, error)
}

// Service resolves actors. It only reads.
type Service struct {
	log          *slog.Logger
	tokens       tokenVerifier
	users        userRepo
	complainants complainantRepo
}

// NewService creates a new identity service.
func NewService(
	logger *slog.Logger,
	tokens tokenVerifier,
	users userRepo,
	complainants complainantRepo,
) *Service {
	return &Service{
		log:          logger.With("service", "identity"),
		tokens:       tokens,
		users:        users,
		complainants: complainants,
	}
}

// Resolve verifies token and loads the principal it names. Any credential
// problem yields domain.ErrUnauthorized; repository failures other than a
// miss are returned as is.
func (s *Service) Resolve(ctx context.Context, token string) (domain.Actor, error) {
	claims, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return domain.Actor{}, domain.Unauthenticated("invalid token")
	}

	if claims.IsCitizen() {
		return s.resolveCitizen(ctx, *claims.ComplainantID)
	}
	return s.resolveStaff(ctx, *claims.UserID)
}

func (s *Service) resolveCitizen(ctx context.Context, id uuid.UUID) (domain.Actor, error) {
	c, err := s.complainants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Actor{}, domain.Unauthenticated("invalid complainant")
		}
		return domain.Actor{}, fmt.Errorf("identity.Resolve: load complainant: %w", err)
	}
	return domain.NewCitizenActor(c), nil
}

func (s *Service) resolveStaff(ctx context.Context, id uuid.UUID) (domain.Actor, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Actor{}, domain.Unauthenticated("invalid or inactive user")
		}
		return domain.Actor{}, fmt.Errorf("identity.Resolve: load user: %w", err)
	}
	if !u.IsActive || !u.Role.IsStaff() {
		return domain.Actor{}, domain.Unauthenticated("invalid or inactive user")
	}
	return domain.NewStaffActor(u), nil
}
