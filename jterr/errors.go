// Package jterr defines the failure taxonomy for jsontree.
//
// Every error returned by the parser or by a value conversion/access maps to
// exactly one Class, so callers can branch on the failure condition instead
// of matching message text.
package jterr

import "fmt"

// Class is a stable failure category.
type Class string

// Parse failure classes. These carry the byte offset of the offending input.
const (
	UnexpectedEOF   Class = "UNEXPECTED_EOF"
	UnexpectedChar  Class = "UNEXPECTED_CHAR"
	LeadingZero     Class = "LEADING_ZERO"
	InvalidEscape   Class = "INVALID_ESCAPE"
	MissingEndQuote Class = "MISSING_END_QUOTE"
	InvalidHex      Class = "INVALID_HEX"
	MissingColon    Class = "MISSING_COLON"
	UnexpectedClose Class = "UNEXPECTED_CLOSE"
	TrailingContent Class = "TRAILING_CONTENT"
)

// Conversion and access failure classes. Offset is -1 for these.
const (
	WrongKind  Class = "WRONG_KIND"
	IndexRange Class = "INDEX_RANGE"
	MissingKey Class = "MISSING_KEY"
	NotFinite  Class = "NOT_FINITE"
)

// Error is the structured error type for all jsontree failures.
type Error struct {
	Class   Class
	Offset  int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("jterr: %s at byte %d: %s", e.Class, e.Offset, msg)
	}
	return fmt.Sprintf("jterr: %s: %s", e.Class, msg)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given class and message. Offset is the
// byte position in the input for parse errors, or -1 when not applicable.
func New(class Class, offset int, message string) *Error {
	return &Error{Class: class, Offset: offset, Message: message}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(class Class, offset int, format string, args ...any) *Error {
	return &Error{Class: class, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(class Class, offset int, message string, cause error) *Error {
	return &Error{Class: class, Offset: offset, Message: message, Cause: cause}
}
