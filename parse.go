package pls

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/soundkit/pls/internal/ini"
)

// Spellings under which producers store the entry count, in probe order.
// Some major radio stations emit malformed playlists:
//
//	"numberofentries" http://newmedia.kcrw.com/legacy/pls/kcrwsimulcast.pls
//	"NumberOfEvents"  http://www.abc.net.au/res/streaming/audio/mp3/classic_fm.pls
var entryCountKeys = [...]string{"NumberOfEntries", "numberofentries", "NumberOfEvents"}

// Parse reads a PLS playlist from r and returns its elements in playlist
// order.
//
// The [playlist] section is required, everything else is lenient: Version
// may be omitted (2 is assumed), the entry count is accepted under any of
// the NumberOfEntries/numberofentries/NumberOfEvents spellings, and
// Title#/Length# keys are optional. A Length# of -1 means unknown.
//
// Any failure aborts the whole parse; no partial result is returned. The
// error is one of ErrMissingPlaylistSection, *InvalidVersionError,
// *MissingKeyError, *InvalidIntegerError or *SyntaxError.
func Parse(r io.Reader) ([]Element, error) {
	doc, err := ini.ReadFrom(r)
	if err != nil {
		var ie *ini.Error
		if errors.As(err, &ie) {
			return nil, &SyntaxError{Line: ie.Line, Col: ie.Col, Msg: ie.Msg, cause: ie}
		}
		return nil, errors.Wrap(err, "read playlist")
	}

	play, ok := doc.Section("playlist")
	if !ok {
		return nil, ErrMissingPlaylistSection
	}

	if v, ok := play.Get("Version"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, &InvalidIntegerError{Cause: err}
		}
		if n != 2 {
			return nil, &InvalidVersionError{Version: n}
		}
	}

	count, err := entryCount(play)
	if err != nil {
		return nil, err
	}

	elems := make([]Element, 0, int(min(count, 1024)))
	for i := uint64(1); i <= count; i++ {
		path, ok := play.Get(fmt.Sprintf("File%d", i))
		if !ok {
			return nil, &MissingKeyError{Key: fmt.Sprintf("File%d", i)}
		}

		e := Element{Path: path, Len: UnknownLength()}
		if t, ok := play.Get(fmt.Sprintf("Title%d", i)); ok {
			e.Title = &t
		}
		l, lok := play.Get(fmt.Sprintf("Length%d", i))
		e.Len, err = parseLength(l, lok)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return elems, nil
}

// entryCount probes the accepted count-key spellings in order; the first
// key found wins, with no merging across spellings.
func entryCount(play *ini.Section) (uint64, error) {
	for _, key := range entryCountKeys {
		v, ok := play.Get(key)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, &InvalidIntegerError{Cause: err}
		}
		return n, nil
	}
	return 0, &MissingKeyError{Key: strings.Join(entryCountKeys[:], "|")}
}

// parseLength resolves an optional Length# value. Absence and the literal
// "-1" both mean unknown; anything else must be a non-negative integer, so
// -2 fails rather than rounding to unknown.
func parseLength(v string, ok bool) (Length, error) {
	if !ok || v == "-1" {
		return UnknownLength(), nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return UnknownLength(), &InvalidIntegerError{Cause: err}
	}
	return LengthSeconds(n), nil
}
