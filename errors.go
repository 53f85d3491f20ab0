package pls

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrMissingPlaylistSection is returned by Parse when the document has no
// [playlist] section at all.
var ErrMissingPlaylistSection = errors.New("missing [playlist] section")

// InvalidVersionError is returned by Parse when the Version key parses as
// an integer but is not 2.
type InvalidVersionError struct {
	Version uint64
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %d specified", e.Version)
}

func (e *InvalidVersionError) Is(target error) bool {
	t, ok := target.(*InvalidVersionError)
	return ok && t.Version == e.Version
}

// MissingKeyError is returned by Parse when a required key is absent: a
// File# key named by the entry count, or the entry count itself (Key then
// names all accepted spellings joined by '|').
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key %q missing", e.Key)
}

func (e *MissingKeyError) Is(target error) bool {
	t, ok := target.(*MissingKeyError)
	return ok && t.Key == e.Key
}

// InvalidIntegerError is returned by Parse when a Version, entry count or
// Length# value is not an unsigned integer. Cause is the underlying
// strconv failure.
type InvalidIntegerError struct {
	Cause error
}

func (e *InvalidIntegerError) Error() string {
	return "invalid integer: " + e.Cause.Error()
}

func (e *InvalidIntegerError) Unwrap() error {
	return e.Cause
}

func (e *InvalidIntegerError) Is(target error) bool {
	t, ok := target.(*InvalidIntegerError)
	if !ok {
		return false
	}
	if t.Cause == nil || e.Cause == nil {
		return t.Cause == nil && e.Cause == nil
	}
	return t.Cause.Error() == e.Cause.Error()
}

// SyntaxError is returned by Parse when the document is not structurally
// valid INI. Line is 1-based; Col is the 0-based byte offset into the line
// at which the problem was detected.
//
// Two SyntaxErrors match under errors.Is iff their line, column and
// message are equal.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string

	cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d col %d: %s", e.Line, e.Col, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.cause
}

func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Line == e.Line && t.Col == e.Col && t.Msg == e.Msg
}
