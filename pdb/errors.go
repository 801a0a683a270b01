package pdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
	"github.com/andrew-torda/pdbcodec/pdb/record"
)

const maxMsgLen = 80

// DuplicateRecordError is a second HEADER, NUMMDL, CRYST1 or MASTER.
type DuplicateRecordError struct {
	Record string
}

func (e *DuplicateRecordError) Error() string {
	return "more than one " + e.Record + " record"
}

// TooManyTransformsError is a fourth line of ORIGX, SCALE or MTRIX.
type TooManyTransformsError struct {
	Kind string
}

func (e *TooManyTransformsError) Error() string {
	return "more than 3 " + e.Kind + " records"
}

// UnknownRecordError is a line starting with a record name we do not
// know. The message has a ruler to help find column problems.
type UnknownRecordError struct {
	Name string
	Line string
}

func (e *UnknownRecordError) Error() string {
	return fmt.Sprintf("unknown record %q\n%s\n%s", e.Name, cmmn.Ruler, e.Line)
}

// UnresolvedLinkError lives in the record package, since formatting a
// LINK needs it.
type UnresolvedLinkError = record.UnresolvedLinkError

// LineError says which line a parse error came from.
type LineError struct {
	N    int // line number, from 1
	Line string
	Err  error
}

func firstPart(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

// Error gives the line number and the cause. If the cause does
// not show the line already, it is added.
func (e *LineError) Error() string {
	msg := "Line: " + strconv.Itoa(e.N) + " " + e.Err.Error()
	if !strings.Contains(msg, cmmn.Ruler) {
		msg += "\nLine starting with\n" + firstPart(e.Line)
	}
	return msg
}

func (e *LineError) Unwrap() error { return e.Err }

// CIFValueError is an mmCIF value which cannot be converted to the type
// the PDB record needs.
type CIFValueError struct {
	Category string
	Attr     string
	Row      int // from 0
	Value    string
}

func (e *CIFValueError) Error() string {
	return fmt.Sprintf("_%s.%s row %d: cannot convert %q", e.Category, e.Attr, e.Row+1, e.Value)
}
