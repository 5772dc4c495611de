package postgres

import (
	"strings"

	"blog/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Constraint names declared in the migrations.
const (
	constraintUsersUsername = "users_username_key"
	constraintUsersEmail    = "users_email_key"
)

func pgErrorCode(err error) (code, constraint string, ok bool) {
	pgErr, ok := errors.AsTarget[*pgconn.PgError](err)
	if !ok {
		return "", "", false
	}

	return pgErr.Code, pgErr.ConstraintName, true
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	code, _, ok := pgErrorCode(err)

	return ok && code == pgUniqueViolation
}

// violatedConstraint returns the constraint name reported by PostgreSQL, or an
// empty string when the driver did not expose it.
func violatedConstraint(err error) string {
	_, constraint, _ := pgErrorCode(err)

	return strings.ToLower(constraint)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	code, _, ok := pgErrorCode(err)

	return ok && code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, _, ok := pgErrorCode(err)

	return ok && code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	code, _, ok := pgErrorCode(err)

	return ok && code == pgCheckViolation
}
