package record

import (
	"fmt"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// ResID picks out a residue the way most annotation records do.
type ResID struct {
	ResName string
	ChainID string
	SeqNum  int
	ICode   string
}

func (r ResID) String() string {
	return fmt.Sprintf("%s %s%d%s", r.ResName, r.ChainID, r.SeqNum, r.ICode)
}

// Helix is one HELIX line.
type Helix struct {
	raw
	SerNum     int
	HelixID    string
	Init, End  ResID
	HelixClass cmmn.NullInt
	Comment    string
	Length     cmmn.NullInt
}

func (*Helix) Tag() string { return "HELIX" }

func (h *Helix) Parse(line string) error {
	c := cmmn.NewCols("HELIX", line)
	h.SerNum = c.Int(8, 10)
	h.HelixID = c.Str(12, 14)
	h.Init = ResID{c.Str(16, 18), c.Str(20, 20), c.Int(22, 25), c.Str(26, 26)}
	h.End = ResID{c.Str(28, 30), c.Str(32, 32), c.Int(34, 37), c.Str(38, 38)}
	h.HelixClass = c.NullInt(39, 40)
	h.Comment = c.TextTo(41, 70)
	h.Length = c.NullInt(72, 76)
	h.keep(line)
	return c.Err()
}

func (h *Helix) Format() ([]string, error) {
	return one(trimmed("HELIX  %3d %3s %3s %1s %4d%1s %3s %1s %4d%1s%2s%-30s %5s",
		h.SerNum, h.HelixID,
		h.Init.ResName, h.Init.ChainID, h.Init.SeqNum, h.Init.ICode,
		h.End.ResName, h.End.ChainID, h.End.SeqNum, h.End.ICode,
		h.HelixClass.Fmt(2), h.Comment, h.Length.Fmt(5)))
}

// Registration is the optional part of a SHEET line saying how a
// strand lines up with the one before.
type Registration struct {
	CurAtom  string
	Cur      ResID
	PrevAtom string
	Prev     ResID
	Valid    bool
}

// Sheet is one strand of a sheet.
type Sheet struct {
	raw
	Strand     int
	SheetID    string
	NumStrands int
	Init, End  ResID
	Sense      int // 0 first strand, 1 parallel, -1 anti-parallel
	Reg        Registration
}

func (*Sheet) Tag() string { return "SHEET" }

func (s *Sheet) Parse(line string) error {
	c := cmmn.NewCols("SHEET", line)
	s.Strand = c.Int(8, 10)
	s.SheetID = c.Str(12, 14)
	s.NumStrands = c.Int(15, 16)
	s.Init = ResID{c.Str(18, 20), c.Str(22, 22), c.Int(23, 26), c.Str(27, 27)}
	s.End = ResID{c.Str(29, 31), c.Str(33, 33), c.Int(34, 37), c.Str(38, 38)}
	s.Sense = c.IntOrZero(39, 40)
	if c.Str(42, 70) != "" {
		s.Reg = Registration{
			CurAtom:  c.Str(42, 45),
			Cur:      ResID{c.Str(46, 48), c.Str(50, 50), c.IntOrZero(51, 54), c.Str(55, 55)},
			PrevAtom: c.Str(57, 60),
			Prev:     ResID{c.Str(61, 63), c.Str(65, 65), c.IntOrZero(66, 69), c.Str(70, 70)},
			Valid:    true,
		}
	}
	s.keep(line)
	return c.Err()
}

// sheetAtom is for the two atom names in a registration. The element
// is not known here, so short names always start in the second column.
func sheetAtom(name string) string {
	if len(name) >= 4 {
		return name
	}
	return fmt.Sprintf(" %-3s", name)
}

func (s *Sheet) Format() ([]string, error) {
	line := fmt.Sprintf("SHEET  %3d %3s%2d %3s %1s%4d%1s %3s %1s%4d%1s%2d",
		s.Strand, s.SheetID, s.NumStrands,
		s.Init.ResName, s.Init.ChainID, s.Init.SeqNum, s.Init.ICode,
		s.End.ResName, s.End.ChainID, s.End.SeqNum, s.End.ICode, s.Sense)
	if r := s.Reg; r.Valid {
		line += fmt.Sprintf(" %4s%3s %1s%4d%1s %4s%3s %1s%4d%1s",
			sheetAtom(r.CurAtom), r.Cur.ResName, r.Cur.ChainID, r.Cur.SeqNum, r.Cur.ICode,
			sheetAtom(r.PrevAtom), r.Prev.ResName, r.Prev.ChainID, r.Prev.SeqNum, r.Prev.ICode)
	}
	return one(cmmn.TrimRight(line))
}
