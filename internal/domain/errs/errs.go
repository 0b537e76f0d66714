// Package errs defines the error kinds fetcharr reports to callers.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller.
type Kind int

const (
	Internal Kind = iota
	Validation
	Configuration
	Extraction
	NotFound
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Configuration:
		return "configuration"
	case Extraction:
		return "extraction"
	case NotFound:
		return "not found"
	default:
		return "internal"
	}
}

// Error is an error tagged with a Kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error returns the message, falling back to the wrapped error.
func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String() + " error"
	}
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a tagged error with a formatted message.
func New(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags err with a kind. The message of err is kept as-is.
func Wrap(k Kind, err error) *Error {
	return &Error{Kind: k, Err: err}
}

// KindOf returns the kind of the first tagged error in err's chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
