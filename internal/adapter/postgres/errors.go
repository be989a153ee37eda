package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

// SQLSTATE codes the repositories translate.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// MapError translates a pgx error about one row into the domain sentinel
// services branch on. key identifies the row (an id or a natural key) in the
// message. Context errors and unknown failures are wrapped unchanged.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	var sentinel error
	switch pgErr.Code {
	case codeUniqueViolation:
		sentinel = domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		// A dangling reference (type, assignee, complainant) means the
		// referenced row does not exist.
		sentinel = domain.ErrNotFound
	case codeCheckViolation:
		sentinel = domain.ErrValidation
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		sentinel = domain.ErrConflict
	default:
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if pgErr.ConstraintName != "" {
		return fmt.Errorf("%s %v (%s): %w", entity, key, pgErr.ConstraintName, sentinel)
	}
	return fmt.Errorf("%s %v: %w", entity, key, sentinel)
}
