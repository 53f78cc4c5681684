package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies clipboard backend failures.
type ErrorKind int

const (
	// KindUnknown covers process spawn, pipe and wait failures and
	// utilities exiting with a failure status.
	KindUnknown ErrorKind = iota
	// KindBackendUnavailable means a required utility is missing.
	KindBackendUnavailable
	// KindBackendUnsupported means the backend never handles the
	// requested content type.
	KindBackendUnsupported
	// KindConversionFailure means captured output is not valid UTF-8.
	KindConversionFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindBackendUnavailable:
		return "clipboard backend unavailable"
	case KindBackendUnsupported:
		return "content type not supported by clipboard backend"
	case KindConversionFailure:
		return "clipboard content is not valid UTF-8 text"
	default:
		return "unknown clipboard error"
	}
}

// Error is the error type returned by clipboard backends.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

var (
	ErrUnknown            = &Error{Kind: KindUnknown}
	ErrBackendUnavailable = &Error{Kind: KindBackendUnavailable}
	ErrUnsupported        = &Error{Kind: KindBackendUnsupported}
	ErrConversionFailure  = &Error{Kind: KindConversionFailure}
)

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any bare sentinel of the same kind, so callers can write
// errors.Is(err, types.ErrBackendUnavailable).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Msg != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindUnknown, false
}

// Unknownf builds a KindUnknown error wrapping cause.
func Unknownf(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindUnknown, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Unavailablef builds a KindBackendUnavailable error wrapping cause.
func Unavailablef(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindBackendUnavailable, Msg: fmt.Sprintf(format, args...), Err: cause}
}
