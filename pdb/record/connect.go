package record

import (
	"fmt"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// SSBond is a disulfide bond.
type SSBond struct {
	raw
	SerNum     int
	Res1, Res2 ResID
	Sym1, Sym2 string
	Length     cmmn.NullFloat
}

func (*SSBond) Tag() string { return "SSBOND" }

func (s *SSBond) Parse(line string) error {
	c := cmmn.NewCols("SSBOND", line)
	s.SerNum = c.Int(8, 10)
	s.Res1 = ResID{c.Str(12, 14), c.Str(16, 16), c.Int(18, 21), c.Str(22, 22)}
	s.Res2 = ResID{c.Str(26, 28), c.Str(30, 30), c.Int(32, 35), c.Str(36, 36)}
	s.Sym1 = c.Str(60, 65)
	s.Sym2 = c.Str(67, 72)
	s.Length = c.NullFloat(74, 78)
	s.keep(line)
	return c.Err()
}

func (s *SSBond) Format() ([]string, error) {
	return one(trimmed("SSBOND %3d %3s %1s %4d%1s   %3s %1s %4d%1s                       %6s %6s %5s",
		s.SerNum,
		s.Res1.ResName, s.Res1.ChainID, s.Res1.SeqNum, s.Res1.ICode,
		s.Res2.ResName, s.Res2.ChainID, s.Res2.SeqNum, s.Res2.ICode,
		s.Sym1, s.Sym2, s.Length.Fmt(5, 2)))
}

// LinkAtom is one end of a LINK.
type LinkAtom struct {
	Name   string
	AltLoc string
	ResID
}

// UnresolvedLinkError is returned when a LINK is written before its
// atoms have been looked up, or when the lookup fails.
type UnresolvedLinkError struct {
	Atom         LinkAtom
	NotAnnotated bool
}

func (e *UnresolvedLinkError) Error() string {
	if e.NotAnnotated {
		return fmt.Sprintf("LINK to %s %s written before its atoms were looked up", e.Atom.Name, e.Atom.ResID)
	}
	return fmt.Sprintf("LINK atom %s of residue %d in chain %q not found",
		e.Atom.Name, e.Atom.SeqNum, e.Atom.ChainID)
}

// Link is a bond which is not implied by the residues. Formatting
// needs to know if each atom name starts with its element symbol, which
// only the coordinates can say. See Annotate.
type Link struct {
	raw
	Atom1, Atom2 LinkAtom
	Sym1, Sym2   string
	Length       cmmn.NullFloat

	IsElement1, IsElement2 bool
	annotated              bool
}

func (*Link) Tag() string { return "LINK" }

func (l *Link) Parse(line string) error {
	c := cmmn.NewCols("LINK", line)
	l.Atom1 = LinkAtom{c.Str(13, 16), c.Str(17, 17),
		ResID{c.Str(18, 20), c.Str(22, 22), c.Int(23, 26), c.Str(27, 27)}}
	l.Atom2 = LinkAtom{c.Str(43, 46), c.Str(47, 47),
		ResID{c.Str(48, 50), c.Str(52, 52), c.Int(53, 56), c.Str(57, 57)}}
	l.Sym1 = c.Str(60, 65)
	l.Sym2 = c.Str(67, 72)
	l.Length = c.NullFloat(74, 78)
	l.keep(line)
	return c.Err()
}

// Annotate sets the element flags for the two atoms.
func (l *Link) Annotate(isElement1, isElement2 bool) {
	l.IsElement1, l.IsElement2 = isElement1, isElement2
	l.annotated = true
}

// Annotated says if Annotate has been called.
func (l *Link) Annotated() bool { return l.annotated }

func (l *Link) Format() ([]string, error) {
	if !l.annotated {
		return nil, &UnresolvedLinkError{Atom: l.Atom1, NotAnnotated: true}
	}
	a, b := l.Atom1, l.Atom2
	return one(trimmed("LINK        %4s%1s%3s %1s%4d%1s               %4s%1s%3s %1s%4d%1s  %6s %6s %5s",
		cmmn.AlignAtomName(a.Name, l.IsElement1), a.AltLoc, a.ResName, a.ChainID, a.SeqNum, a.ICode,
		cmmn.AlignAtomName(b.Name, l.IsElement2), b.AltLoc, b.ResName, b.ChainID, b.SeqNum, b.ICode,
		l.Sym1, l.Sym2, l.Length.Fmt(5, 2)))
}

// CisPep is a cis peptide.
type CisPep struct {
	raw
	SerNum     int
	Pep1, Pep2 ResID
	ModNum     int
	Measure    float64 // omega angle in degrees
}

func (*CisPep) Tag() string { return "CISPEP" }

func (cp *CisPep) Parse(line string) error {
	c := cmmn.NewCols("CISPEP", line)
	cp.SerNum = c.Int(8, 10)
	cp.Pep1 = ResID{c.Str(12, 14), c.Str(16, 16), c.Int(18, 21), c.Str(22, 22)}
	cp.Pep2 = ResID{c.Str(26, 28), c.Str(30, 30), c.Int(32, 35), c.Str(36, 36)}
	cp.ModNum = c.IntOrZero(44, 46)
	cp.Measure = c.Float(54, 59)
	cp.keep(line)
	return c.Err()
}

func (cp *CisPep) Format() ([]string, error) {
	return one(trimmed("CISPEP %3d %3s %1s %4d%1s   %3s %1s %4d%1s       %3d       %6.2f",
		cp.SerNum,
		cp.Pep1.ResName, cp.Pep1.ChainID, cp.Pep1.SeqNum, cp.Pep1.ICode,
		cp.Pep2.ResName, cp.Pep2.ChainID, cp.Pep2.SeqNum, cp.Pep2.ICode,
		cp.ModNum, cp.Measure))
}
