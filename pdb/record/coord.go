package record

import (
	"strings"

	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
)

// CoordRecord is anything that can go in a model: *Atom (ATOM or
// HETATM), *AnisoU or *Ter.
type CoordRecord interface {
	Record
	Chain() string
	coord()
}

// Atom is an ATOM or HETATM line. They have the same columns and Het
// says which one it is.
type Atom struct {
	raw
	Het        bool
	Serial     int
	Name       string
	AltLoc     string
	ResName    string
	ChainID    string
	ResSeq     int
	ICode      string
	X, Y, Z    float64
	Occupancy  float64
	TempFactor float64
	SegID      string
	Element    string
	Charge     string
}

// NewAtom is for ATOM, or HETATM if het is true.
func NewAtom(het bool) *Atom { return &Atom{Het: het} }

func (a *Atom) Tag() string {
	if a.Het {
		return "HETATM"
	}
	return "ATOM"
}

func (a *Atom) Chain() string { return a.ChainID }

func (*Atom) coord() {}

func (a *Atom) Parse(line string) error {
	c := cmmn.NewCols(a.Tag(), line)
	a.Serial = c.Int(7, 11)
	a.Name = c.Str(13, 16)
	a.AltLoc = c.Str(17, 17)
	a.ResName = c.Str(18, 20)
	a.ChainID = c.Str(22, 22)
	a.ResSeq = c.Int(23, 26)
	a.ICode = c.Str(27, 27)
	a.X = c.Float(31, 38)
	a.Y = c.Float(39, 46)
	a.Z = c.Float(47, 54)
	a.Occupancy = c.Float(55, 60)
	a.TempFactor = c.Float(61, 66)
	a.SegID = c.Str(73, 76)
	a.Element = c.Str(77, 78)
	a.Charge = c.Str(79, 80)
	a.keep(line)
	return c.Err()
}

func (a *Atom) Format() ([]string, error) {
	return one(trimmed("%-6s%5d %4s%1s%3s %1s%4d%1s   %8.3f%8.3f%8.3f%6.2f%6.2f      %-4s%2s%2s",
		a.Tag(), a.Serial, cmmn.FormatAtomName(a.Name, a.Element), a.AltLoc,
		a.ResName, a.ChainID, a.ResSeq, a.ICode, a.X, a.Y, a.Z,
		a.Occupancy, a.TempFactor, a.SegID, a.Element, a.Charge))
}

// Xyz gives the coordinates as the single precision triplet used
// with transform matrices.
func (a *Atom) Xyz() cmmn.Xyz {
	return cmmn.Xyz{X: float32(a.X), Y: float32(a.Y), Z: float32(a.Z)}
}

// IsHydrogen looks at the element, or at the name if there is no
// element column.
func (a *Atom) IsHydrogen() bool {
	if a.Element != "" {
		return a.Element == "H" || a.Element == "D"
	}
	n := strings.TrimLeft(a.Name, "0123456789")
	return strings.HasPrefix(n, "H") || strings.HasPrefix(n, "D")
}

// AnisoU has the anisotropic temperature factors of an atom, scaled
// by 10**4.
type AnisoU struct {
	raw
	Serial  int
	Name    string
	AltLoc  string
	ResName string
	ChainID string
	ResSeq  int
	ICode   string
	U       [6]int // U(1,1) U(2,2) U(3,3) U(1,2) U(1,3) U(2,3)
	SegID   string
	Element string
	Charge  string
}

func (*AnisoU) Tag() string { return "ANISOU" }

func (u *AnisoU) Chain() string { return u.ChainID }

func (*AnisoU) coord() {}

func (u *AnisoU) Parse(line string) error {
	c := cmmn.NewCols("ANISOU", line)
	u.Serial = c.Int(7, 11)
	u.Name = c.Str(13, 16)
	u.AltLoc = c.Str(17, 17)
	u.ResName = c.Str(18, 20)
	u.ChainID = c.Str(22, 22)
	u.ResSeq = c.Int(23, 26)
	u.ICode = c.Str(27, 27)
	for i := range u.U {
		u.U[i] = c.Int(29+7*i, 35+7*i)
	}
	u.SegID = c.Str(73, 76)
	u.Element = c.Str(77, 78)
	u.Charge = c.Str(79, 80)
	u.keep(line)
	return c.Err()
}

func (u *AnisoU) Format() ([]string, error) {
	return one(trimmed("ANISOU%5d %4s%1s%3s %1s%4d%1s %7d%7d%7d%7d%7d%7d  %-4s%2s%2s",
		u.Serial, cmmn.FormatAtomName(u.Name, u.Element), u.AltLoc, u.ResName,
		u.ChainID, u.ResSeq, u.ICode,
		u.U[0], u.U[1], u.U[2], u.U[3], u.U[4], u.U[5],
		u.SegID, u.Element, u.Charge))
}

// Ter ends a chain. Old files often have nothing after the record
// name, so every field may be blank.
type Ter struct {
	raw
	Serial  cmmn.NullInt
	ResName string
	ChainID string
	ResSeq  cmmn.NullInt
	ICode   string
}

func (*Ter) Tag() string { return "TER" }

func (t *Ter) Chain() string { return t.ChainID }

func (*Ter) coord() {}

func (t *Ter) Parse(line string) error {
	c := cmmn.NewCols("TER", line)
	t.Serial = c.NullInt(7, 11)
	t.ResName = c.Str(18, 20)
	t.ChainID = c.Str(22, 22)
	t.ResSeq = c.NullInt(23, 26)
	t.ICode = c.Str(27, 27)
	t.keep(line)
	return c.Err()
}

func (t *Ter) Format() ([]string, error) {
	return one(trimmed("TER   %5s      %3s %1s%4s%1s",
		t.Serial.Fmt(5), t.ResName, t.ChainID, t.ResSeq.Fmt(4), t.ICode))
}

// Model is one set of coordinates. Records are kept in file order.
type Model struct {
	raw
	Serial   int
	Explicit bool // there was a MODEL line
	Records  []CoordRecord
}

func (*Model) Tag() string { return "MODEL" }

// Parse reads the MODEL line itself.
func (m *Model) Parse(line string) error {
	c := cmmn.NewCols("MODEL", line)
	m.Serial = c.Int(11, 14)
	m.Explicit = true
	m.keep(line)
	return c.Err()
}

// Format writes the MODEL line, if there was one, and all the
// coordinate records. ENDMDL is left to the caller, since it depends on
// how many models there are.
func (m *Model) Format() ([]string, error) {
	var out []string
	if m.Explicit {
		out = append(out, trimmed("MODEL     %4d", m.Serial))
	}
	for _, r := range m.Records {
		lines, err := r.Format()
		if err != nil {
			return out, err
		}
		out = append(out, lines...)
	}
	return out, nil
}

// Add appends a coordinate record.
func (m *Model) Add(r CoordRecord) { m.Records = append(m.Records, r) }

// Atoms returns the ATOM and HETATM records in order.
func (m *Model) Atoms() []*Atom {
	var ret []*Atom
	for _, r := range m.Records {
		if a, ok := r.(*Atom); ok {
			ret = append(ret, a)
		}
	}
	return ret
}

// NumAtoms counts ATOM and HETATM records, leaving out hydrogens if
// heavyOnly is set.
func (m *Model) NumAtoms(heavyOnly bool) int {
	n := 0
	for _, a := range m.Atoms() {
		if heavyOnly && a.IsHydrogen() {
			continue
		}
		n++
	}
	return n
}

// NumTer counts TER records.
func (m *Model) NumTer() int {
	n := 0
	for _, r := range m.Records {
		if _, ok := r.(*Ter); ok {
			n++
		}
	}
	return n
}

// FindAtom looks up an atom by chain, residue number and name. It
// returns nil if there is no such atom.
func (m *Model) FindAtom(chainID string, resSeq int, name string) *Atom {
	for _, r := range m.Records {
		if a, ok := r.(*Atom); ok && a.ChainID == chainID && a.ResSeq == resSeq && a.Name == name {
			return a
		}
	}
	return nil
}

// FindResidue returns the atoms of one residue.
func (m *Model) FindResidue(chainID string, resSeq int, iCode string) []*Atom {
	var ret []*Atom
	for _, r := range m.Records {
		if a, ok := r.(*Atom); ok && a.ChainID == chainID && a.ResSeq == resSeq && a.ICode == iCode {
			ret = append(ret, a)
		}
	}
	return ret
}

// Chain is a view of the records of a model with one chain ID.
type Chain struct {
	ID      string
	Records []CoordRecord
}

// Atoms returns the ATOM and HETATM records of a chain.
func (c *Chain) Atoms() []*Atom {
	var ret []*Atom
	for _, r := range c.Records {
		if a, ok := r.(*Atom); ok {
			ret = append(ret, a)
		}
	}
	return ret
}

// NumResidues counts residues by changes in residue number and
// insertion code. HETATM residues are only counted if countHet is set.
func (c *Chain) NumResidues(countHet bool) int {
	n := 0
	var last *Atom
	for _, a := range c.Atoms() {
		if a.Het && !countHet {
			continue
		}
		if last == nil || a.ResSeq != last.ResSeq || a.ICode != last.ICode {
			n++
		}
		last = a
	}
	return n
}

// Chains groups the records of a model by chain, in order of first
// appearance. The records are shared with the model, not copied.
func (m *Model) Chains() []*Chain {
	var ret []*Chain
	byID := make(map[string]*Chain)
	for _, r := range m.Records {
		id := r.Chain()
		c, ok := byID[id]
		if !ok {
			c = &Chain{ID: id}
			byID[id] = c
			ret = append(ret, c)
		}
		c.Records = append(c.Records, r)
	}
	return ret
}
