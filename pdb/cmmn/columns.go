package cmmn

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MalformedRecordError is returned when a column cannot be read as the
// type it should have.
type MalformedRecordError struct {
	Record      string // record name, like ATOM
	First, Last int    // columns, counting from 1, inclusive
	Line        string
	Err         error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s columns %d-%d: %v\n%s\n%s", e.Record, e.First, e.Last, e.Err, Ruler, e.Line)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// Field returns columns first to last of a line. Columns are counted
// from 1 as in the pdb documentation and both ends are included.
// Lines are often shorter than 80 characters, so anything past the end
// of the line is blank.
func Field(line string, first, last int) string {
	if first > len(line) {
		return ""
	}
	if last > len(line) {
		last = len(line)
	}
	return line[first-1 : last]
}

// Cols reads the fields of one line. The first error is kept and all
// later reads return zero values, like bufio.Scanner.
type Cols struct {
	rec  string
	line string
	err  error
}

// NewCols is for reading line, which is a record of type rec.
func NewCols(rec, line string) *Cols {
	return &Cols{rec: rec, line: line}
}

// Err returns the first error, if there was one.
func (c *Cols) Err() error { return c.err }

func (c *Cols) fail(first, last int, err error) {
	if c.err == nil {
		c.err = &MalformedRecordError{Record: c.rec, First: first, Last: last, Line: c.line, Err: err}
	}
}

// Str is a field with blanks removed from both ends.
func (c *Cols) Str(first, last int) string {
	return strings.TrimSpace(Field(c.line, first, last))
}

// Text is everything from column first onwards without trailing
// blanks. Leading blanks are kept.
func (c *Cols) Text(first int) string {
	return TrimRight(Field(c.line, first, len(c.line)))
}

// TextTo is Text stopping at column last.
func (c *Cols) TextTo(first, last int) string {
	return TrimRight(Field(c.line, first, last))
}

// Int is a field which must hold an integer.
func (c *Cols) Int(first, last int) int {
	if c.err != nil {
		return 0
	}
	s := c.Str(first, last)
	n, err := strconv.Atoi(s)
	if err != nil {
		c.fail(first, last, fmt.Errorf("%q is not an integer", s))
		return 0
	}
	return n
}

// NullInt is an integer field which may be blank.
func (c *Cols) NullInt(first, last int) NullInt {
	if c.err != nil {
		return NullInt{}
	}
	if c.Str(first, last) == "" {
		return NullInt{}
	}
	return Some(c.Int(first, last))
}

// IntOrZero is for integer columns where blank means zero.
func (c *Cols) IntOrZero(first, last int) int {
	return c.NullInt(first, last).Int
}

// Float is a field which must hold a number.
func (c *Cols) Float(first, last int) float64 {
	if c.err != nil {
		return 0
	}
	s := c.Str(first, last)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.fail(first, last, fmt.Errorf("%q is not a number", s))
		return 0
	}
	return f
}

// NullFloat is a real valued field which may be blank.
func (c *Cols) NullFloat(first, last int) NullFloat {
	if c.err != nil {
		return NullFloat{}
	}
	if c.Str(first, last) == "" {
		return NullFloat{}
	}
	return SomeFloat(c.Float(first, last))
}

// Date reads a DD-MMM-YY field. Blank gives the zero time.
func (c *Cols) Date(first, last int) time.Time {
	if c.err != nil {
		return time.Time{}
	}
	s := c.Str(first, last)
	if s == "" {
		return time.Time{}
	}
	t, err := ParseDate(s)
	if err != nil {
		c.fail(first, last, err)
	}
	return t
}
