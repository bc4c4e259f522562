package httperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsUniqueViolation reports whether err is a store-level unique-constraint
// violation (duplicate username/email that slipped past the pre-check).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite (tests) reports the same condition as a plain error string
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsExclusionConflict reports whether err is the postgres exclusion
// constraint over (doctor_id, appointment interval) firing. It is the
// store-enforced backstop behind the in-transaction conflict scan.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}
