package pdb

import (
	"fmt"
	"math"

	"github.com/andrew-torda/pdbcodec/pdb/geom"
	"github.com/andrew-torda/pdbcodec/pdb/record"
)

// GeomMismatch is a number given in a LINK, SSBOND or CISPEP which
// does not match the coordinates.
type GeomMismatch struct {
	Record   string
	What     string // the atoms or residues concerned
	Declared float64
	Found    float64
}

func (g GeomMismatch) String() string {
	return fmt.Sprintf("%s %s: file says %.2f, coordinates give %.2f", g.Record, g.What, g.Declared, g.Found)
}

// sameCell is true if both ends of a bond use the same symmetry
// operator, so the distance can be taken without applying it.
func sameCell(sym1, sym2 string) bool {
	return sym1 == sym2 || (sym1 == "" && sym2 == "1555") || (sym1 == "1555" && sym2 == "")
}

// CheckBondLengths compares the lengths in LINK and SSBOND records with
// the distance between the atoms in the first model. Bonds with no
// length, bonds across symmetry operators and bonds whose atoms are
// missing are not checked. Differences bigger than tol Angstrom are
// logged and returned.
func (e *Entry) CheckBondLengths(outlog Logger, tol float64) []GeomMismatch {
	if outlog == nil {
		outlog = (*Options)(nil).logger()
	}
	var bad []GeomMismatch
	check := func(rec string, a1, a2 *record.Atom, declared float64) {
		if a1 == nil || a2 == nil {
			return
		}
		d := float64(geom.Dist(a1.Xyz(), a2.Xyz()))
		if math.Abs(d-declared) > tol {
			g := GeomMismatch{rec, fmt.Sprintf("%s %s%d - %s %s%d", a1.Name, a1.ChainID, a1.ResSeq,
				a2.Name, a2.ChainID, a2.ResSeq), declared, d}
			outlog.Printf("%s", g)
			bad = append(bad, g)
		}
	}
	for _, l := range e.Links {
		if !l.Length.Valid || !sameCell(l.Sym1, l.Sym2) {
			continue
		}
		check("LINK", e.FindAtom(l.Atom1.ChainID, l.Atom1.SeqNum, l.Atom1.Name),
			e.FindAtom(l.Atom2.ChainID, l.Atom2.SeqNum, l.Atom2.Name), l.Length.Float)
	}
	for _, s := range e.SSBonds {
		if !s.Length.Valid || !sameCell(s.Sym1, s.Sym2) {
			continue
		}
		check("SSBOND", e.FindAtom(s.Res1.ChainID, s.Res1.SeqNum, "SG"),
			e.FindAtom(s.Res2.ChainID, s.Res2.SeqNum, "SG"), s.Length.Float)
	}
	return bad
}

// modelBySerial finds a model by serial number. Zero means the first.
func (e *Entry) modelBySerial(serial int) *record.Model {
	if serial == 0 {
		return e.FirstModel()
	}
	for _, m := range e.Models {
		if m.Serial == serial {
			return m
		}
	}
	if serial == 1 && len(e.Models) == 1 && !e.Models[0].Explicit {
		return e.Models[0]
	}
	return nil
}

// CheckCisPeps computes the omega angle of each CISPEP from the CA and
// C of the first residue and the N and CA of the second, in the model
// the record names. Angles differing by more than tol degrees are
// logged and returned. Peptides with missing atoms are skipped.
func (e *Entry) CheckCisPeps(outlog Logger, tol float64) []GeomMismatch {
	if outlog == nil {
		outlog = (*Options)(nil).logger()
	}
	var bad []GeomMismatch
	for _, cp := range e.CisPeps {
		m := e.modelBySerial(cp.ModNum)
		if m == nil {
			continue
		}
		ca1 := m.FindAtom(cp.Pep1.ChainID, cp.Pep1.SeqNum, "CA")
		c1 := m.FindAtom(cp.Pep1.ChainID, cp.Pep1.SeqNum, "C")
		n2 := m.FindAtom(cp.Pep2.ChainID, cp.Pep2.SeqNum, "N")
		ca2 := m.FindAtom(cp.Pep2.ChainID, cp.Pep2.SeqNum, "CA")
		if ca1 == nil || c1 == nil || n2 == nil || ca2 == nil {
			continue
		}
		omega := geom.Deg(geom.Dihedral(ca1.Xyz(), c1.Xyz(), n2.Xyz(), ca2.Xyz()))
		if geom.AngleDiff(omega, cp.Measure) > tol {
			g := GeomMismatch{"CISPEP", cp.Pep1.String() + " " + cp.Pep2.String(), cp.Measure, omega}
			outlog.Printf("%s", g)
			bad = append(bad, g)
		}
	}
	return bad
}
