package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNumericOverflow     = "22003"
)

// IsUniqueViolation reports whether err is a natural-key collision from the store
// (pgx, lib/pq, gorm translated errors, or sqlite constraint messages).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value")
}

func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == pgForeignKeyViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgForeignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// IsNumericOverflow reports a value too large for its numeric column.
func IsNumericOverflow(err error) bool {
	if err == nil {
		return false
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == pgNumericOverflow
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgNumericOverflow
	}
	return strings.Contains(err.Error(), "numeric field overflow")
}

// MapStoreError translates store-level failures so callers never see raw constraint errors.
func MapStoreError(err error, conflict *AppError) error {
	switch {
	case err == nil:
		return nil
	case IsUniqueViolation(err) && conflict != nil:
		return conflict
	case IsForeignKeyViolation(err):
		return ErrInvalidKey.WithMessage("Referenced entity does not exist")
	case IsNumericOverflow(err):
		return ErrInvalidKey.WithMessage("Amount is too large")
	default:
		return err
	}
}
