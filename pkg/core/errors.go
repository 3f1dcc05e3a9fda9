package core

import (
	"errors"
	"fmt"
)

// Kind classifies store failures.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound means the note (or the notes root) is absent when presence was required.
	KindNotFound
	// KindAlreadyExists means a create targeted a title that is already taken.
	KindAlreadyExists
	// KindIOFailure covers environmental filesystem failures (permissions, disk, encoding).
	KindIOFailure
	// KindInvalidInput means an empty or malformed title or contents.
	KindInvalidInput
	// KindReadOnly means a write was attempted against a read-only store.
	KindReadOnly
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAlreadyExists:
		return "already exists"
	case KindIOFailure:
		return "io failure"
	case KindInvalidInput:
		return "invalid input"
	case KindReadOnly:
		return "read only"
	default:
		return "unknown"
	}
}

// Common errors.
var (
	ErrNotFound      = errors.New("note not found")
	ErrAlreadyExists = errors.New("note already exists")
	ErrIOFailure     = errors.New("note storage failure")
	ErrInvalidInput  = errors.New("invalid note input")
	ErrReadOnly      = errors.New("store is in read-only mode")
)

var kindSentinels = map[Kind]error{
	KindNotFound:      ErrNotFound,
	KindAlreadyExists: ErrAlreadyExists,
	KindIOFailure:     ErrIOFailure,
	KindInvalidInput:  ErrInvalidInput,
	KindReadOnly:      ErrReadOnly,
}

// Error is the typed failure returned by every store operation.
// It matches the sentinel of its Kind with errors.Is and unwraps to the cause.
type Error struct {
	Op    string
	Title string
	Path  string
	Kind  Kind
	Err   error
}

// NewError builds an *Error. A nil cause is replaced by the sentinel of the kind.
func NewError(op string, kind Kind, title, path string, cause error) *Error {
	if cause == nil {
		cause = kindSentinels[kind]
	}
	return &Error{Op: op, Title: title, Path: path, Kind: kind, Err: cause}
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.String()
	if e.Title != "" {
		msg += fmt.Sprintf(" %q", e.Title)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Err != nil && e.Err != kindSentinels[e.Kind] {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// KindOf extracts the Kind of err, or KindUnknown when err is not a store error.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for k, s := range kindSentinels {
		if errors.Is(err, s) {
			return k
		}
	}
	return KindUnknown
}
