// Package pls implements a parser and writer for the PLS playlist format,
// the INI-flavored format identified by a [playlist] section header.
//
// Parse is lenient about key naming: the Version key may be omitted, the
// entry count is accepted under the non-standard spellings some real-world
// producers emit, and per-entry Title#/Length# keys are optional. It is
// strict about values: a count, version or length that is not an integer
// fails the whole parse.
//
// Write always produces the canonical version 2 form, regardless of what
// the elements were parsed from.
package pls

import "strings"

// Element is a single entry of a playlist.
type Element struct {
	Path  string  // Value of the File# key, unconstrained; a filesystem path or a URL
	Title *string // Value of the Title# key, or nil if the key was omitted
	Len   Length  // Value of the Length# key, or UnknownLength() if omitted
}

// Length is a playlist element's duration: a non-negative number of
// seconds, or unknown when the Length# key was omitted or set to -1.
//
// The zero value is the unknown length. Length is comparable with ==.
type Length struct {
	seconds uint64
	known   bool
}

// LengthSeconds returns a known Length of n seconds.
func LengthSeconds(n uint64) Length {
	return Length{seconds: n, known: true}
}

// UnknownLength returns the unknown Length.
func UnknownLength() Length {
	return Length{}
}

// IsKnown reports whether the length carries a duration.
func (l Length) IsKnown() bool {
	return l.known
}

// Seconds returns the duration in seconds, or 0 when unknown.
func (l Length) Seconds() uint64 {
	return l.seconds
}

// Compare orders elements lexicographically by path, then title (absent
// sorts first), then length (unknown sorts first). Parse and Write never
// order elements themselves; this is a convenience for callers that sort
// or deduplicate.
func (e Element) Compare(o Element) int {
	if c := strings.Compare(e.Path, o.Path); c != 0 {
		return c
	}
	switch {
	case e.Title == nil && o.Title != nil:
		return -1
	case e.Title != nil && o.Title == nil:
		return 1
	case e.Title != nil && o.Title != nil:
		if c := strings.Compare(*e.Title, *o.Title); c != 0 {
			return c
		}
	}
	return e.Len.compare(o.Len)
}

// Equal reports whether two elements are structurally identical.
func (e Element) Equal(o Element) bool {
	return e.Compare(o) == 0
}

func (l Length) compare(o Length) int {
	switch {
	case !l.known && !o.known:
		return 0
	case !l.known:
		return -1
	case !o.known:
		return 1
	case l.seconds < o.seconds:
		return -1
	case l.seconds > o.seconds:
		return 1
	}
	return 0
}
