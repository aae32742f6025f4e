package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation      = "23505"
	PgErrSerializationFailure = "40001"
)

// ConstraintActiveShipment частичный уникальный индекс из миграции 00005.
const ConstraintActiveShipment = "uq_shipments_active_order_type"

func IsPgErrorWithCode(err error, code string) bool {
	pgErr, ok := asPgError(err)
	return ok && pgErr.Code == code
}

// IsUniqueViolationOn нарушение уникальности именно этого ограничения или индекса.
func IsUniqueViolationOn(err error, constraint string) bool {
	pgErr, ok := asPgError(err)
	return ok && pgErr.Code == PgErrUniqueViolation && pgErr.ConstraintName == constraint
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
