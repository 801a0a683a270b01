package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// Header is the first line of an entry.
type Header struct {
	raw
	Classification string
	DepDate        time.Time
	IDCode         string
}

func (*Header) Tag() string { return "HEADER" }

func (h *Header) Parse(line string) error {
	c := cmmn.NewCols("HEADER", line)
	h.Classification = c.Str(11, 50)
	h.DepDate = c.Date(51, 59)
	h.IDCode = c.Str(63, 66)
	h.keep(line)
	return c.Err()
}

func (h *Header) Format() ([]string, error) {
	return one(trimmed("HEADER    %-40s%9s   %-4s", h.Classification, cmmn.FormatDate(h.DepDate), h.IDCode))
}

// First column of the continuation number for the free text records.
// The number always ends in column 10 and the text starts in 11.
var textCont = map[string]int{
	"TITLE":  9,
	"COMPND": 8,
	"SOURCE": 8,
	"KEYWDS": 9,
	"EXPDTA": 9,
	"MDLTYP": 9,
	"AUTHOR": 9,
}

// Text is any of the records which are just one long string spread
// over continuation lines: TITLE, COMPND, SOURCE, KEYWDS, EXPDTA,
// MDLTYP and AUTHOR.
// Continuation lines have a blank in column 11. It is not part of the
// fragment we store.
type Text struct {
	raw
	tag       string
	contFirst int
	Fragments []string
}

// NewText makes a text record. It panics if tag is not one of the
// text records.
func NewText(tag string) *Text {
	c, ok := textCont[tag]
	if !ok {
		panic("programming bug: " + tag + " is not a text record")
	}
	return &Text{tag: tag, contFirst: c}
}

func (t *Text) Tag() string { return t.tag }

func (t *Text) Parse(line string) error {
	c := cmmn.NewCols(t.tag, line)
	frag := c.Text(11)
	if len(t.Fragments) > 0 {
		frag = strings.TrimPrefix(frag, " ")
	}
	t.Fragments = append(t.Fragments, frag)
	t.keep(line)
	return c.Err()
}

func (t *Text) Format() ([]string, error) {
	if len(t.Fragments) == 0 {
		return one(t.tag)
	}
	w := 11 - t.contFirst
	out := make([]string, len(t.Fragments))
	for i, f := range t.Fragments {
		if i == 0 {
			out[i] = trimmed("%-10s%s", t.tag, f)
		} else {
			out[i] = trimmed("%-*s%s %s", t.contFirst-1, t.tag, cmmn.ContNum(i, w), f)
		}
	}
	return out, nil
}

// Add appends a fragment as if it had come from another line.
func (t *Text) Add(frag string) { t.Fragments = append(t.Fragments, frag) }

// SetText replaces the contents with s, broken into lines that fit.
func (t *Text) SetText(s string) {
	t.Fragments = cmmn.Wrap(s, 69)
}

// Joined puts the fragments back together with sep between them.
func (t *Text) Joined(sep string) string {
	return strings.Join(t.Fragments, sep)
}

// List treats the text as comma separated, as in KEYWDS and AUTHOR.
func (t *Text) List() []string {
	var ret []string
	for _, s := range strings.Split(t.Joined(" "), ",") {
		if s = strings.TrimSpace(s); s != "" {
			ret = append(ret, s)
		}
	}
	return ret
}

// Caveat warns about severe errors in an entry.
type Caveat struct {
	raw
	IDCode   string
	Comments []string
}

func (*Caveat) Tag() string { return "CAVEAT" }

func (cv *Caveat) Parse(line string) error {
	c := cmmn.NewCols("CAVEAT", line)
	if len(cv.lines) == 0 {
		cv.IDCode = c.Str(12, 15)
	}
	cv.Comments = append(cv.Comments, c.Text(20))
	cv.keep(line)
	return c.Err()
}

func (cv *Caveat) Format() ([]string, error) {
	comments := cv.Comments
	if len(comments) == 0 {
		comments = []string{""}
	}
	out := make([]string, len(comments))
	for i, s := range comments {
		out[i] = trimmed("CAVEAT  %2s %-4s    %s", cmmn.ContNum(i, 2), cv.IDCode, s)
	}
	return out, nil
}

// Number of ID codes on one OBSLTE or SPRSDE line.
const replacePerLine = 8

// Replace is an OBSLTE or SPRSDE record. Both have a date, the ID of
// this entry and a list of other entries.
type Replace struct {
	raw
	tag    string
	repeat bool // continuation lines carry the date and ID again
	Date   time.Time
	IDCode string
	IDs    []string
}

// NewObsolete is for OBSLTE, which lists the entries replacing this one.
func NewObsolete() *Replace { return &Replace{tag: "OBSLTE", repeat: true} }

// NewSupersedes is for SPRSDE, which lists the entries this one replaces.
func NewSupersedes() *Replace { return &Replace{tag: "SPRSDE"} }

func (r *Replace) Tag() string { return r.tag }

func (r *Replace) Parse(line string) error {
	c := cmmn.NewCols(r.tag, line)
	if len(r.lines) == 0 {
		r.Date = c.Date(12, 20)
		r.IDCode = c.Str(22, 25)
	}
	for k := 0; k < replacePerLine; k++ {
		if s := c.Str(32+5*k, 35+5*k); s != "" {
			r.IDs = append(r.IDs, s)
		}
	}
	r.keep(line)
	return c.Err()
}

func (r *Replace) Format() ([]string, error) {
	groups := cmmn.Chunk(r.IDs, replacePerLine, cmmn.Absent)
	if len(groups) == 0 {
		groups = [][]string{nil}
	}
	out := make([]string, 0, len(groups))
	for i, g := range groups {
		date, id := cmmn.FormatDate(r.Date), r.IDCode
		if i > 0 && !r.repeat {
			date, id = cmmn.FormatDate(time.Time{}), ""
		}
		s := fmt.Sprintf("%-6s  %2s %9s %-4s      ", r.tag, cmmn.ContNum(i, 2), date, id)
		for _, code := range g {
			if code == cmmn.Absent {
				break
			}
			s += fmt.Sprintf("%-4s ", code)
		}
		out = append(out, cmmn.TrimRight(s))
	}
	return out, nil
}

// Number of ID codes on one SPLIT line.
const splitPerLine = 14

// Split lists the entries making up a structure too big for one file.
type Split struct {
	raw
	IDs []string
}

func (*Split) Tag() string { return "SPLIT" }

func (sp *Split) Parse(line string) error {
	c := cmmn.NewCols("SPLIT", line)
	for k := 0; k < splitPerLine; k++ {
		if s := c.Str(12+5*k, 15+5*k); s != "" {
			sp.IDs = append(sp.IDs, s)
		}
	}
	sp.keep(line)
	return c.Err()
}

func (sp *Split) Format() ([]string, error) {
	groups := cmmn.Chunk(sp.IDs, splitPerLine, cmmn.Absent)
	if len(groups) == 0 {
		groups = [][]string{nil}
	}
	var out []string
	for i, g := range groups {
		s := fmt.Sprintf("SPLIT   %2s ", cmmn.ContNum(i, 2))
		for _, id := range g {
			if id == cmmn.Absent {
				break
			}
			s += fmt.Sprintf("%-4s ", id)
		}
		out = append(out, cmmn.TrimRight(s))
	}
	return out, nil
}

// NumModels is NUMMDL
type NumModels struct {
	raw
	N int
}

func (*NumModels) Tag() string { return "NUMMDL" }

func (n *NumModels) Parse(line string) error {
	c := cmmn.NewCols("NUMMDL", line)
	n.N = c.Int(11, 14)
	n.keep(line)
	return c.Err()
}

func (n *NumModels) Format() ([]string, error) {
	return one(trimmed("NUMMDL    %-4d", n.N))
}

// Number of changed record names on one REVDAT line
const revPerLine = 4

// RevData is one modification in the REVDAT list. Entries are keyed by
// modification number and may run over several lines.
type RevData struct {
	raw
	ModNum  int
	Date    time.Time
	ModID   string
	ModType cmmn.NullInt // 0 for the first release, 1 for later ones
	Records []string
}

func (*RevData) Tag() string { return "REVDAT" }

// Key is the modification number.
func (rv *RevData) Key() string { return strconv.Itoa(rv.ModNum) }

func (rv *RevData) Parse(line string) error {
	c := cmmn.NewCols("REVDAT", line)
	n := c.Int(8, 10)
	if len(rv.lines) == 0 {
		rv.ModNum = n
		rv.Date = c.Date(14, 22)
		rv.ModID = c.Str(24, 27)
		rv.ModType = c.NullInt(32, 32)
	}
	for k := 0; k < revPerLine; k++ {
		if s := c.Str(40+7*k, 45+7*k); s != "" {
			rv.Records = append(rv.Records, s)
		}
	}
	rv.keep(line)
	return c.Err()
}

func (rv *RevData) Format() ([]string, error) {
	groups := cmmn.Chunk(rv.Records, revPerLine, cmmn.Absent)
	if len(groups) == 0 {
		groups = [][]string{nil}
	}
	var out []string
	for i, g := range groups {
		var recs []string
		for _, r := range g {
			if r != cmmn.Absent {
				recs = append(recs, fmt.Sprintf("%-6s", r))
			}
		}
		out = append(out, trimmed("REVDAT %3d%2s %9s %-4s    %1s       %s",
			rv.ModNum, cmmn.ContNum(i, 2), cmmn.FormatDate(rv.Date), rv.ModID,
			rv.ModType.Fmt(1), strings.Join(recs, " ")))
	}
	return out, nil
}

// Journal is one JRNL line. We keep the text from column 13 and do not
// try to take the sub-records apart.
type Journal struct {
	raw
	Text string
}

func (*Journal) Tag() string { return "JRNL" }

func (j *Journal) Parse(line string) error {
	j.Text = cmmn.NewCols("JRNL", line).Text(13)
	j.keep(line)
	return nil
}

func (j *Journal) Format() ([]string, error) {
	return one(trimmed("JRNL        %s", j.Text))
}

// SubRecord is the name in columns 13-16, like AUTH, TITL or REF.
func (j *Journal) SubRecord() string {
	return strings.TrimSpace(cmmn.Field(j.Text, 1, 4))
}

// Remark is one line of a REMARK block.
type Remark struct {
	raw
	Num  int
	Text string
}

func (*Remark) Tag() string { return "REMARK" }

func (r *Remark) Parse(line string) error {
	c := cmmn.NewCols("REMARK", line)
	r.Num = c.Int(8, 10)
	r.Text = c.Text(12)
	r.keep(line)
	return c.Err()
}

func (r *Remark) Format() ([]string, error) {
	return one(trimmed("REMARK %3d %s", r.Num, r.Text))
}
