package store

import (
	"context"
	"database/sql/driver"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"Chirp/api/feed"
)

type violation int

const (
	violationNone violation = iota
	violationUnique
	violationCheck
	violationForeignKey
)

// SQLSTATE codes we react to.
const (
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgForeignKeyViolation = "23503"
)

// constraintViolation reports which integrity constraint rejected a write.
// Postgres is recognized by SQLSTATE; SQLite only by its message text.
func constraintViolation(err error) violation {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return violationUnique
		case pgCheckViolation:
			return violationCheck
		case pgForeignKeyViolation:
			return violationForeignKey
		}
		return violationNone
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return violationUnique
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"):
		return violationUnique
	case strings.Contains(msg, "check constraint failed"):
		return violationCheck
	case strings.Contains(msg, "foreign key constraint failed"):
		return violationForeignKey
	}
	return violationNone
}

// isTransient reports failures a caller may retry: lost or refused
// connections, server shutdown, resource exhaustion and timeouts.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "08"): // connection exception
			return true
		case strings.HasPrefix(pgErr.Code, "53"): // insufficient resources
			return true
		case strings.HasPrefix(pgErr.Code, "57P"): // operator intervention
			return true
		case pgErr.Code == "40001" || pgErr.Code == "40P01": // serialization failure, deadlock
			return true
		}
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") || strings.Contains(msg, "database is locked")
}

// failure wraps err with the operation name and classifies it.
func failure(op string, err error) error {
	return feed.NewStorageError(errors.Wrap(err, op), isTransient(err))
}
