// Package pdb/cmmn has the small pieces shared by every record in a
// pdb file. Column access, dates, grouping of continuation payloads and
// the atom name alignment rule.
package cmmn

import (
	"math"
	"strconv"
	"strings"
)

// Xyz is a coordinate triplet
type Xyz struct{ X, Y, Z float32 }

var BrokenXyz = Xyz{math.MaxFloat32, 0, -math.MaxFloat32}

func (xyz *Xyz) Ok() bool {
	if *xyz != BrokenXyz {
		return true
	}
	return false
}

// Ruler goes under or over a line when we complain about columns.
const Ruler = "         1         2         3         4         5         6         7         8\n" +
	"12345678901234567890123456789012345678901234567890123456789012345678901234567890"

// Dates and other optional fields are blank when absent.
const blankDate = "         "

// NullInt is an integer column which may be blank.
type NullInt struct {
	Int   int
	Valid bool
}

// Fmt right-justifies the value in a field of width w, or gives w
// spaces if there is no value.
func (n NullInt) Fmt(w int) string {
	if !n.Valid {
		return strings.Repeat(" ", w)
	}
	s := strconv.Itoa(n.Int)
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

// Some is a shortcut for a valid NullInt
func Some(i int) NullInt { return NullInt{Int: i, Valid: true} }

// NullFloat is a real valued column which may be blank.
type NullFloat struct {
	Float float64
	Valid bool
}

// Fmt writes the number with w characters and prec decimals.
func (n NullFloat) Fmt(w, prec int) string {
	if !n.Valid {
		return strings.Repeat(" ", w)
	}
	s := strconv.FormatFloat(n.Float, 'f', prec, 64)
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

// SomeFloat is a shortcut for a valid NullFloat
func SomeFloat(f float64) NullFloat { return NullFloat{Float: f, Valid: true} }

// Absent marks the unused slots at the end of the last group
// returned by Chunk when working with strings.
const Absent = "\x00"

// Chunk breaks items into groups of exactly n. The final group is
// padded with the absent value, which callers must skip. No items
// gives no groups.
func Chunk[T any](items []T, n int, absent T) [][]T {
	if n < 1 {
		panic("chunk size must be positive")
	}
	var groups [][]T
	for i := 0; i < len(items); i += n {
		g := make([]T, n)
		k := copy(g, items[i:])
		for ; k < n; k++ {
			g[k] = absent
		}
		groups = append(groups, g)
	}
	return groups
}

// TrimRight removes trailing blanks. Every line we write goes through
// here.
func TrimRight(s string) string { return strings.TrimRight(s, " ") }

// ContNum gives the continuation field for the i'th line (from zero)
// of a record. The first line has no number.
func ContNum(i, w int) string {
	if i == 0 {
		return strings.Repeat(" ", w)
	}
	return Some(i + 1).Fmt(w)
}

// Wrap breaks text into pieces no longer than width, cutting at
// blanks where it can. It is for putting long strings into
// continuation records.
func Wrap(text string, width int) []string {
	var out []string
	text = strings.TrimSpace(text)
	for len(text) > width {
		cut := strings.LastIndexByte(text[:width+1], ' ')
		if cut <= 0 {
			cut = width
		}
		out = append(out, TrimRight(text[:cut]))
		text = strings.TrimLeft(text[cut:], " ")
	}
	if text != "" {
		out = append(out, text)
	}
	return out
}
