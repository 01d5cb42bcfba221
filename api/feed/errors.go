package feed

import (
	"github.com/pkg/errors"
)

// Reason is the stable, enumerable failure kind exposed to callers.
type Reason string

const (
	ReasonEmptyContent       Reason = "empty_content"
	ReasonContentTooLong     Reason = "content_too_long"
	ReasonEmptyUsername      Reason = "empty_username"
	ReasonUsernameTooLong    Reason = "username_too_long"
	ReasonInvalidRequest     Reason = "invalid_request"
	ReasonNotFound           Reason = "not_found"
	ReasonUserNotFound       Reason = "user_not_found"
	ReasonSelfFollow         Reason = "self_follow"
	ReasonAlreadyFollowing   Reason = "already_following"
	ReasonNotFollowing       Reason = "not_following"
	ReasonStorage            Reason = "storage_error"
	ReasonStorageUnavailable Reason = "storage_unavailable"
)

// Error carries a Reason plus a human readable message. Two errors with the
// same Reason match under errors.Is, so wrapped storage failures still
// compare equal to ErrStorage.
type Error struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Reason) + ": " + e.Err.Error()
	}
	return string(e.Reason) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Reason == e.Reason
}

// Validation errors.
var (
	ErrEmptyContent    = &Error{Reason: ReasonEmptyContent, Message: "Tweet content cannot be empty"}
	ErrContentTooLong  = &Error{Reason: ReasonContentTooLong, Message: "Tweet content exceeds 280 characters"}
	ErrEmptyUsername   = &Error{Reason: ReasonEmptyUsername, Message: "Username cannot be empty"}
	ErrUsernameTooLong = &Error{Reason: ReasonUsernameTooLong, Message: "Username exceeds 255 characters"}
	ErrInvalidRequest  = &Error{Reason: ReasonInvalidRequest, Message: "Invalid request"}
)

// Domain-rule errors.
var (
	ErrNotFound         = &Error{Reason: ReasonNotFound, Message: "Tweet not found"}
	ErrUserNotFound     = &Error{Reason: ReasonUserNotFound, Message: "User not found"}
	ErrSelfFollow       = &Error{Reason: ReasonSelfFollow, Message: "Cannot follow yourself"}
	ErrAlreadyFollowing = &Error{Reason: ReasonAlreadyFollowing, Message: "Already following this user"}
	ErrNotFollowing     = &Error{Reason: ReasonNotFollowing, Message: "You are not following this user"}
)

// Storage errors. Match against these with errors.Is; concrete values come
// from NewStorageError.
var (
	ErrStorage            = &Error{Reason: ReasonStorage, Message: "Internal server error"}
	ErrStorageUnavailable = &Error{Reason: ReasonStorageUnavailable, Message: "Storage temporarily unavailable"}
)

// NewStorageError wraps an infrastructure failure. Transient failures
// (connection loss, timeouts) are reported as storage_unavailable so a caller
// may retry; everything else collapses into storage_error.
func NewStorageError(err error, transient bool) *Error {
	if transient {
		return &Error{Reason: ReasonStorageUnavailable, Message: ErrStorageUnavailable.Message, Err: err}
	}
	return &Error{Reason: ReasonStorage, Message: ErrStorage.Message, Err: err}
}

// AsError returns err as an *Error, classifying anything unknown as a
// permanent storage failure.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr
	}
	return NewStorageError(err, false)
}

// storageFailure keeps domain errors produced by a store intact and wraps
// everything else with the failing operation.
func storageFailure(op string, err error) error {
	var ferr *Error
	if errors.As(err, &ferr) {
		return err
	}
	return NewStorageError(errors.Wrap(err, op), false)
}
