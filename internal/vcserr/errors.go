package vcserr

import (
	"errors"
)

type Kind string

const (
	KindInvalidArguments Kind = "INVALID_ARGUMENTS"
	KindNotFound         Kind = "NOT_FOUND"
	KindNothingToCommit  Kind = "NOTHING_TO_COMMIT"
	KindMessageMissing   Kind = "MESSAGE_MISSING"
)

// Error is a user-recoverable condition. Its message is the single line
// shown to the invoking user; it is never treated as fatal.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func InvalidArguments(message string) *Error {
	return &Error{Kind: KindInvalidArguments, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NothingToCommit(message string) *Error {
	return &Error{Kind: KindNothingToCommit, Message: message}
}

func MessageMissing(message string) *Error {
	return &Error{Kind: KindMessageMissing, Message: message}
}

// KindOf returns the kind of err, or "" when err carries no kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
