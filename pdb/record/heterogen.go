package record

import (
	"strings"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// Het is one non-standard group in a chain.
type Het struct {
	raw
	HetID       string
	ChainID     string
	SeqNum      int
	ICode       string
	NumHetAtoms int
	Text        string
}

func (*Het) Tag() string { return "HET" }

func (h *Het) Parse(line string) error {
	c := cmmn.NewCols("HET", line)
	h.HetID = c.Str(8, 10)
	h.ChainID = c.Str(13, 13)
	h.SeqNum = c.Int(14, 17)
	h.ICode = c.Str(18, 18)
	h.NumHetAtoms = c.Int(21, 25)
	h.Text = c.Text(31)
	h.keep(line)
	return c.Err()
}

func (h *Het) Format() ([]string, error) {
	return one(trimmed("HET    %3s  %1s%4d%1s  %5d     %s",
		h.HetID, h.ChainID, h.SeqNum, h.ICode, h.NumHetAtoms, h.Text))
}

// HetName is the chemical name (HETNAM) or the synonyms (HETSYN) of one
// heterogen. Lines are grouped by heterogen ID.
// Text starts in column 16 and continuation lines have an extra blank
// there which is dropped.
type HetName struct {
	raw
	tag       string
	HetID     string
	Fragments []string
}

// NewHetName is for HETNAM
func NewHetName() *HetName { return &HetName{tag: "HETNAM"} }

// NewHetSyn is for HETSYN
func NewHetSyn() *HetName { return &HetName{tag: "HETSYN"} }

func (h *HetName) Tag() string { return h.tag }

// Key is the heterogen ID.
func (h *HetName) Key() string { return h.HetID }

func (h *HetName) Parse(line string) error {
	c := cmmn.NewCols(h.tag, line)
	if len(h.lines) == 0 {
		h.HetID = c.Str(12, 14)
	}
	frag := c.Text(16)
	if len(h.Fragments) > 0 {
		frag = strings.TrimPrefix(frag, " ")
	}
	h.Fragments = append(h.Fragments, frag)
	h.keep(line)
	return c.Err()
}

func (h *HetName) Format() ([]string, error) {
	frags := h.Fragments
	if len(frags) == 0 {
		frags = []string{""}
	}
	out := make([]string, len(frags))
	for i, f := range frags {
		if i == 0 {
			out[i] = trimmed("%s     %3s %s", h.tag, h.HetID, f)
		} else {
			out[i] = trimmed("%s  %2d %3s  %s", h.tag, i+1, h.HetID, f)
		}
	}
	return out, nil
}

// Joined gives the name as one string.
func (h *HetName) Joined() string { return strings.Join(h.Fragments, "") }

// Formula is the FORMUL block for one heterogen.
type Formula struct {
	raw
	CompNum   int
	HetID     string
	Water     bool // asterisk in column 19
	Fragments []string
}

func (*Formula) Tag() string { return "FORMUL" }

// Key is the heterogen ID.
func (f *Formula) Key() string { return f.HetID }

func (f *Formula) Parse(line string) error {
	c := cmmn.NewCols("FORMUL", line)
	if len(f.lines) == 0 {
		f.CompNum = c.Int(9, 10)
		f.HetID = c.Str(13, 15)
		f.Water = c.Str(19, 19) == "*"
	}
	f.Fragments = append(f.Fragments, c.Text(20))
	f.keep(line)
	return c.Err()
}

func (f *Formula) Format() ([]string, error) {
	frags := f.Fragments
	if len(frags) == 0 {
		frags = []string{""}
	}
	star := ""
	if f.Water {
		star = "*"
	}
	out := make([]string, len(frags))
	for i, s := range frags {
		out[i] = trimmed("FORMUL  %2d  %3s %2s%1s%s", f.CompNum, f.HetID, cmmn.ContNum(i, 2), star, s)
	}
	return out, nil
}

// Joined gives the formula as one string.
func (f *Formula) Joined() string { return strings.Join(f.Fragments, "") }
