// Package record has one codec for each line type in a PDB format file.
// Every record can read a physical line and write itself back as one or
// more fixed column lines. Records which span several lines collect the
// pieces as they are parsed and number the continuation lines again when
// they are written, so the input numbering is never trusted.
//
// Column numbers in this package count from 1, as in the wwPDB format
// description, version 3.3.
package record

import (
	"fmt"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// Record is what every line type can do.
type Record interface {
	Tag() string               // record name, like HEADER or ATOM
	Parse(line string) error   // read one physical line
	Format() ([]string, error) // write lines without trailing blanks
	Original() []string        // the lines as they were read
}

// raw keeps the source lines of a record for when things go wrong.
type raw struct {
	lines []string
}

func (r *raw) keep(line string) { r.lines = append(r.lines, line) }

// Original returns the lines that were parsed to make the record.
func (r *raw) Original() []string { return r.lines }

// trimmed takes fmt style arguments and right trims the result
func trimmed(format string, a ...interface{}) string {
	return cmmn.TrimRight(fmt.Sprintf(format, a...))
}

// Tag returns the record name in the first six columns of a line.
func Tag(line string) string {
	return cmmn.TrimRight(cmmn.Field(line, 1, 6))
}

// one is for text records that write a single line
func one(s string) ([]string, error) { return []string{s}, nil }
