package repository

import (
	"errors"

	"hotel-management-system/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// writeKind classifies a failed write: the bookings exclusion constraint
// firing means a genuine overlap conflict, duplicate keys get their own
// kind, everything else is a plain DB failure.
func writeKind(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}
	switch pgErr.Code {
	case pgErrCodeExclusionViolation:
		return infra.KindConflict
	case pgErrCodeUniqueViolation:
		return infra.KindDuplicateKey
	default:
		return infra.KindDBFailure
	}
}
