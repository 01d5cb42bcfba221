package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"Chirp/api/feed"
)

func TestConstraintViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want violation
	}{
		{"pg unique", &pgconn.PgError{Code: "23505"}, violationUnique},
		{"pg check", &pgconn.PgError{Code: "23514", ConstraintName: "follows_no_self_follow"}, violationCheck},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, violationForeignKey},
		{"pg other", &pgconn.PgError{Code: "42601"}, violationNone},
		{"wrapped pg", errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), violationUnique},
		{"gorm translated", gorm.ErrDuplicatedKey, violationUnique},
		{"sqlite unique", errors.New("UNIQUE constraint failed: follows.follower_id, follows.following_id"), violationUnique},
		{"sqlite check", errors.New("CHECK constraint failed: follows_no_self_follow"), violationCheck},
		{"sqlite fk", errors.New("FOREIGN KEY constraint failed"), violationForeignKey},
		{"unrelated", errors.New("no such table: follows"), violationNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, constraintViolation(tc.err))
		})
	}
}

func TestIsTransient(t *testing.T) {
	transient := []error{
		context.DeadlineExceeded,
		errors.Wrap(context.DeadlineExceeded, "query"),
		driver.ErrBadConn,
		&pgconn.PgError{Code: "08006"},
		&pgconn.PgError{Code: "57P01"},
		&pgconn.PgError{Code: "53300"},
		&pgconn.PgError{Code: "40001"},
		&pgconn.PgError{Code: "40P01"},
		errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
		errors.New("database is locked"),
	}
	for _, err := range transient {
		assert.True(t, isTransient(err), "%v", err)
	}

	permanent := []error{
		&pgconn.PgError{Code: "42601"},
		&pgconn.PgError{Code: "23505"},
		errors.New("no such column: foo"),
	}
	for _, err := range permanent {
		assert.False(t, isTransient(err), "%v", err)
	}
}

func TestFailureClassifies(t *testing.T) {
	err := failure("tweetStore.Create", &pgconn.PgError{Code: "08001", Message: "cannot connect"})
	assert.ErrorIs(t, err, feed.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "tweetStore.Create")

	err = failure("tweetStore.Create", fmt.Errorf("bad sql"))
	assert.ErrorIs(t, err, feed.ErrStorage)
}

func TestEdgeFailure(t *testing.T) {
	assert.ErrorIs(t, edgeFailure("op", &pgconn.PgError{Code: "23514"}), feed.ErrSelfFollow)
	assert.ErrorIs(t, edgeFailure("op", &pgconn.PgError{Code: "23503"}), feed.ErrUserNotFound)
	assert.ErrorIs(t, edgeFailure("op", feed.ErrUserNotFound), feed.ErrUserNotFound)
	assert.ErrorIs(t, edgeFailure("op", &pgconn.PgError{Code: "57P03"}), feed.ErrStorageUnavailable)
}
