// Package ini implements the minimal INI subset the PLS format sits on:
// [section] headers and Key=Value lines.
//
// The reader is deliberately narrow. It performs no quoting, escaping or
// type coercion, and ';'/'#' start a comment only at the beginning of a
// line, so values containing '#' (percent-decoded URLs, titles) survive
// intact.
package ini

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Error is a structural parse failure. Line is 1-based; Col is the 0-based
// byte offset into the line at which the problem was detected.
type Error struct {
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d col %d: %s", e.Line, e.Col, e.Msg)
}

// Document is a parsed INI document: named sections of key/value pairs.
// Pairs appearing before the first section header live in the section
// named "".
type Document struct {
	sections map[string]*Section
	order    []string
}

// Section holds one section's pairs. Duplicate keys overwrite (last one
// wins); Keys preserves first-seen order.
type Section struct {
	name   string
	values map[string]string
	keys   []string
}

// ReadFrom parses an INI document from r. Blank lines and comment lines
// are skipped; keys and values are trimmed of surrounding whitespace, with
// interior whitespace preserved verbatim.
func ReadFrom(r io.Reader) (*Document, error) {
	doc := &Document{sections: make(map[string]*Section)}
	var current *Section

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		text := strings.TrimSpace(raw)
		if text == "" || text[0] == ';' || text[0] == '#' {
			continue
		}

		if text[0] == '[' {
			end := strings.IndexByte(text, ']')
			if end < 0 {
				return nil, &Error{Line: line, Col: len(raw), Msg: "unterminated section header: expected ']' before end of line"}
			}
			if rest := strings.TrimSpace(text[end+1:]); rest != "" {
				return nil, &Error{Line: line, Col: strings.IndexByte(raw, ']') + 1, Msg: fmt.Sprintf("unexpected %q after section header", rest)}
			}
			current = doc.section(strings.TrimSpace(text[1:end]))
			continue
		}

		eq := strings.IndexByte(text, '=')
		if eq < 0 {
			return nil, &Error{Line: line, Col: len(raw), Msg: fmt.Sprintf("expected '=' in key/value line %q", text)}
		}
		key := strings.TrimSpace(text[:eq])
		if key == "" {
			return nil, &Error{Line: line, Col: strings.IndexByte(raw, '='), Msg: "empty key"}
		}
		if current == nil {
			current = doc.section("")
		}
		current.set(key, strings.TrimSpace(text[eq+1:]))
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Line: line + 1, Col: 0, Msg: err.Error()}
	}
	return doc, nil
}

// Section returns the section with the exact given name (lookup is
// case-sensitive) and whether it exists.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// Sections returns section names in order of first appearance.
func (d *Document) Sections() []string {
	return d.order
}

func (d *Document) section(name string) *Section {
	if s, ok := d.sections[name]; ok {
		return s
	}
	s := &Section{name: name, values: make(map[string]string)}
	d.sections[name] = s
	d.order = append(d.order, name)
	return s
}

// Name returns the section's name as written in the header.
func (s *Section) Name() string {
	return s.name
}

// Get returns the value stored under key and whether the key exists.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the section's keys in first-seen order.
func (s *Section) Keys() []string {
	return s.keys
}

func (s *Section) set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}
