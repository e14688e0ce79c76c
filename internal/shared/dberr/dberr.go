// Package dberr classifies driver errors for the GORM adapters.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the Postgres error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// IsDuplicateKey reports whether err is a uniqueness violation, either as
// translated by GORM or as the raw Postgres driver error.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
