// Package generr defines the error taxonomy shared by every stage of a
// generation task. All errors are terminal for the task that produced them.
package generr

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure.
type Kind int

const (
	InputNotFound Kind = iota + 1
	MalformedInput
	DuplicateEntry
	InvalidKey
	InvalidName
	TooManyEntries
	EmptyRegistry
	OutputUnavailable
)

var kindNames = map[Kind]string{
	InputNotFound:     "input not found",
	MalformedInput:    "malformed input",
	DuplicateEntry:    "duplicate entry",
	InvalidKey:        "invalid key",
	InvalidName:       "invalid name",
	TooManyEntries:    "too many entries",
	EmptyRegistry:     "empty registry",
	OutputUnavailable: "output unavailable",
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error carries the kind of failure and the offending value.
type Error struct {
	Kind  Kind
	Value string
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Value != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of Value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New creates an error of the given kind for value.
func New(kind Kind, value string, cause error) *Error {
	return &Error{Kind: kind, Value: value, Err: cause}
}

// Newf is like New with a formatted cause.
func Newf(kind Kind, value string, format string, args ...any) *Error {
	return &Error{Kind: kind, Value: value, Err: fmt.Errorf(format, args...)}
}

// Sentinels for errors.Is.
var (
	ErrInputNotFound     = &Error{Kind: InputNotFound}
	ErrMalformedInput    = &Error{Kind: MalformedInput}
	ErrDuplicateEntry    = &Error{Kind: DuplicateEntry}
	ErrInvalidKey        = &Error{Kind: InvalidKey}
	ErrInvalidName       = &Error{Kind: InvalidName}
	ErrTooManyEntries    = &Error{Kind: TooManyEntries}
	ErrEmptyRegistry     = &Error{Kind: EmptyRegistry}
	ErrOutputUnavailable = &Error{Kind: OutputUnavailable}
)

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
