package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505), optionally on a specific constraint/index.
// The partial unique indexes make the insert itself the duplicate gate, so
// controllers translate 23505 into a Conflict response. Both pgx and lib/pq
// error shapes are handled, matching whichever driver wrapped the statement.
func IsUniqueViolation(err error, constraint string) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		if pgxErr.Code != "23505" {
			return false
		}
		return constraint == "" || pgxErr.ConstraintName == constraint
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if string(pqErr.Code) != "23505" {
			return false
		}
		return constraint == "" || pqErr.Constraint == constraint
	}
	return false
}
