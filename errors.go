package argparse

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when a token cannot be converted to the requested or declared
	// type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInsufficientArguments is returned when the token stream ends before an argument has
	// consumed all of its values.
	ErrInsufficientArguments = errors.New("insufficient number of arguments")
	// ErrNotFound is returned when reading an argument that has no parsed values.
	ErrNotFound = errors.New("argument not found")
	// ErrNotReady is returned when reading values before a successful call to [Parser.Parse].
	ErrNotReady = errors.New("arguments are not parsed")
	// ErrInvalidSpec is returned by the registration methods when an argument definition is
	// rejected.
	ErrInvalidSpec = errors.New("invalid argument definition")
)

// ParseError is returned by [Parser.Parse]. Use [errors.Is] with [ErrTypeMismatch] or
// [ErrInsufficientArguments] to tell the causes apart.
type ParseError struct {
	// Argument is the name of the argument being filled when parsing stopped. Empty when no
	// argument was involved.
	Argument string
	// Token is the offending token, if there was one.
	Token string
	// HelpRequested reports whether a help directive was given as a switch anywhere in the tokens,
	// so a caller can print help instead of the error.
	HelpRequested bool

	Err error
}

func (e *ParseError) Error() string {
	if e.Argument == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("argument %q: %v", e.Argument, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalidSpec(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpec, fmt.Sprintf(format, args...))
}
