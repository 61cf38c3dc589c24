package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested entity does not exist or is not
// visible to the caller under row security.
var ErrNotFound = errors.New("not found")

// ErrPermissionDenied is returned when a row-security policy rejects a write.
var ErrPermissionDenied = errors.New("permission denied")

// ErrConflict is returned when a write violates a unique or exclusion constraint.
var ErrConflict = errors.New("conflict")

const (
	sqlStateInsufficientPrivilege = "42501"
	sqlStateUniqueViolation       = "23505"
	sqlStateExclusionViolation    = "23P01"
)

// mapError translates driver errors into store sentinels. Other errors pass
// through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateInsufficientPrivilege:
			return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
		case sqlStateUniqueViolation, sqlStateExclusionViolation:
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
	}
	return err
}

// ConstraintName returns the violated constraint for a conflict error, or "".
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
