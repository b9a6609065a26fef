package infra

import (
	"errors"

	"courtdesk/internal/pkg/errs"
	"courtdesk/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string // set for unique/FK violations
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(msg string, err error, kind RepositoryErrorKind) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// MapPgError classifies a pgx error into a RepositoryError, preserving the
// violated constraint name so callers can tell a code collision apart from a
// double-booked slot.
func MapPgError(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return RepositoryError{Kind: KindNotFound, msg: msg, err: errs.Wrap(err, msg)}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return RepositoryError{
				Kind:       KindDuplicateKey,
				Constraint: pgErr.ConstraintName,
				msg:        msg,
				err:        errs.Wrap(err, msg),
			}
		case pgErrCodeForeignKeyViolation:
			return RepositoryError{
				Kind:       KindForeignKeyViolated,
				Constraint: pgErr.ConstraintName,
				msg:        msg,
				err:        errs.Wrap(err, msg),
			}
		}
	}

	return RepositoryError{Kind: KindDBFailure, msg: msg, err: errs.Wrap(err, msg)}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsConstraint reports whether err is a duplicate-key or FK violation on the
// named constraint.
func IsConstraint(err error, constraint string) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint == constraint
	}
	return false
}
