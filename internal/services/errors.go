package services

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound                  = errors.New("record not found")
	ErrDuplicateSlug             = errors.New("slug already in use")
	ErrInvalidSlug               = errors.New("slug not provided and not derivable")
	ErrInvalidStructure          = errors.New("invalid page structure")
	ErrInvalidStatus             = errors.New("invalid page status")
	ErrCannotDeleteActiveVersion = errors.New("cannot delete the active version")
	ErrConcurrencyConflict       = errors.New("concurrent modification detected")
	ErrSystemComponent           = errors.New("system components cannot be modified")
)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
