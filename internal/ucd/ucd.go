// Package ucd provides a parser for Unicode Character Database files, the
// format of which is described at https://www.unicode.org/reports/tr44/.
package ucd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Parser parses one UCD file line by line. Lines consist of one or more
// semicolon separated fields; comments run from a '#' to the end of the
// line. The first field may be a single code point "XXXX" or a range
// "XXXX..YYYY".
type Parser struct {
	scanner *bufio.Scanner
	err     error

	fields  []string
	comment string

	rangeStart rune
	rangeEnd   rune

	partHandler func(p *Parser)
}

// An Option configures a Parser.
type Option func(p *Parser)

// Part sets a handler for part lines (lines starting with "@"), which
// divide some UCD files into blocks.
func Part(f func(p *Parser)) Option {
	return func(p *Parser) {
		p.partHandler = f
	}
}

// New returns a Parser reading UCD data from r.
func New(r io.Reader, o ...Option) *Parser {
	p := &Parser{scanner: bufio.NewScanner(r)}
	for _, f := range o {
		f(p)
	}
	return p
}

// Err returns the first error encountered while parsing, if any.
func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) setError(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

// Next parses the next data line, reporting whether one was found. Comment
// only and blank lines are skipped.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	for p.scanner.Scan() {
		line := p.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			p.comment = strings.TrimSpace(line[i+1:])
			line = line[:i]
		} else {
			p.comment = ""
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] == '@' {
			if p.partHandler != nil {
				p.fields = strings.Split(line[1:], ";")
				for i, f := range p.fields {
					p.fields[i] = strings.TrimSpace(f)
				}
				p.partHandler(p)
			}
			continue
		}
		p.fields = strings.Split(line, ";")
		for i, f := range p.fields {
			p.fields[i] = strings.TrimSpace(f)
		}
		if err := p.parseRange(); err != nil {
			p.setError(err)
			return false
		}
		return true
	}
	p.setError(p.scanner.Err())
	return false
}

func (p *Parser) parseRange() error {
	f := p.fields[0]
	if i := strings.Index(f, ".."); i >= 0 {
		lo, err := parseRune(f[:i])
		if err != nil {
			return err
		}
		hi, err := parseRune(f[i+2:])
		if err != nil {
			return err
		}
		if hi < lo {
			return fmt.Errorf("ucd: invalid range %q", f)
		}
		p.rangeStart, p.rangeEnd = lo, hi
		return nil
	}
	r, err := parseRune(f)
	if err != nil {
		return err
	}
	p.rangeStart, p.rangeEnd = r, r
	return nil
}

func parseRune(s string) (rune, error) {
	if len(s) > 2 && (s[:2] == "U+" || s[:2] == "u+") {
		s = s[2:]
	}
	x, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("ucd: bad code point %q", s)
	}
	return rune(x), nil
}

// Range returns the code point range of the first field. For a single code
// point both values are equal.
func (p *Parser) Range() (lo, hi rune) {
	return p.rangeStart, p.rangeEnd
}

// Rune parses and returns field i as a single code point.
func (p *Parser) Rune(i int) rune {
	if i == 0 {
		if p.rangeStart != p.rangeEnd {
			p.setError(errors.New("ucd: not a single code point"))
		}
		return p.rangeStart
	}
	r, err := parseRune(p.String(i))
	if err != nil {
		p.setError(err)
		return 0
	}
	return r
}

// Runes parses and returns field i as a space separated list of code
// points. An empty field yields a nil slice.
func (p *Parser) Runes(i int) []rune {
	s := p.String(i)
	if s == "" {
		return nil
	}
	var runes []rune
	for _, f := range strings.Fields(s) {
		r, err := parseRune(f)
		if err != nil {
			p.setError(err)
			return nil
		}
		runes = append(runes, r)
	}
	return runes
}

// String returns field i as a string, or "" if the line has no field i.
func (p *Parser) String(i int) string {
	if i >= len(p.fields) {
		return ""
	}
	return p.fields[i]
}

// Comment returns the comment text, if any, of the current line.
func (p *Parser) Comment() string {
	return p.comment
}

// Parse calls f for every data line of r and returns the first error
// encountered.
func Parse(r io.Reader, f func(p *Parser)) error {
	p := New(r)
	for p.Next() {
		f(p)
	}
	return p.Err()
}
