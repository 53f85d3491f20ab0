package pls

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Write serializes elements to w in canonical form: the [playlist] header,
// one File#/Title#/Length# block per element each followed by a blank
// line, then NumberOfEntries and Version=2. Unknown lengths produce no
// Length# line, so a length parsed from -1 is dropped on write.
//
// Paths and titles are written verbatim; the format has no escape syntax,
// so values containing a newline or '=' produce output that will not read
// back cleanly.
//
// The first failed write aborts, leaving a truncated document in w.
func Write(elements []Element, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "[playlist]"); err != nil {
		return errors.Wrap(err, "write section header")
	}

	count := 0
	for i, e := range elements {
		n := i + 1
		if _, err := fmt.Fprintf(w, "File%d=%s\n", n, e.Path); err != nil {
			return errors.Wrapf(err, "write File%d", n)
		}
		if e.Title != nil {
			if _, err := fmt.Fprintf(w, "Title%d=%s\n", n, *e.Title); err != nil {
				return errors.Wrapf(err, "write Title%d", n)
			}
		}
		if e.Len.IsKnown() {
			if _, err := fmt.Fprintf(w, "Length%d=%d\n", n, e.Len.Seconds()); err != nil {
				return errors.Wrapf(err, "write Length%d", n)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.Wrap(err, "write entry separator")
		}
		count++
	}

	if _, err := fmt.Fprintf(w, "NumberOfEntries=%d\n", count); err != nil {
		return errors.Wrap(err, "write NumberOfEntries")
	}
	if _, err := fmt.Fprintln(w, "Version=2"); err != nil {
		return errors.Wrap(err, "write Version")
	}
	return nil
}
