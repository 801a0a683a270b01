package pdb

import (
	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
	"github.com/andrew-torda/pdbcodec/pdb/record"
)

// Logger is where warnings go. A *log.Logger will do.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Entry is one structure, held section by section. A nil pointer means
// the record was not there. Slices keep file order. Records which are
// keyed (REVDAT by modification number, SEQRES by chain, HETNAM,
// HETSYN and FORMUL by heterogen, SITE by site name) have one element
// per key, in order of first appearance.
type Entry struct {
	// Title section
	Header     *record.Header
	Obsolete   *record.Replace
	Title      *record.Text
	Split      *record.Split
	Caveat     *record.Caveat
	Compound   *record.Text
	Source     *record.Text
	Keywords   *record.Text
	ExpData    *record.Text
	NumModels  *record.NumModels
	ModelType  *record.Text
	Author     *record.Text
	Revisions  []*record.RevData
	Supersedes *record.Replace
	Journal    []*record.Journal
	Remarks    []*record.Remark

	// Primary structure
	DBRefs  []record.Record // DBREF, DBREF1 and DBREF2 as they came
	SeqAdvs []*record.SeqAdv
	SeqRes  []*record.SeqRes
	ModRes  []*record.ModRes

	// Heterogen
	Hets     []*record.Het
	HetNames []*record.HetName
	HetSyns  []*record.HetName
	Formulas []*record.Formula

	// Secondary structure
	Helices []*record.Helix
	Sheets  []*record.Sheet

	// Connectivity annotation
	SSBonds []*record.SSBond
	Links   []*record.Link
	CisPeps []*record.CisPep

	// Miscellaneous
	Sites []*record.Site

	// Crystallographic and coordinate transformation
	UnitCell *record.UnitCell
	OrigX    []*record.Transform
	Scale    []*record.Transform
	MTrix    []*record.Transform

	// Coordinates
	Models []*record.Model

	// Connectivity and bookkeeping
	Conects []*record.Conect
	Master  *record.Master
}

// NewEntry returns an empty entry.
func NewEntry() *Entry { return new(Entry) }

// FirstModel returns the first model, or nil if there are no
// coordinates.
func (e *Entry) FirstModel() *record.Model {
	if len(e.Models) == 0 {
		return nil
	}
	return e.Models[0]
}

// currentModel is where coordinate records go. The first one is made
// when it is needed.
func (e *Entry) currentModel() *record.Model {
	if len(e.Models) == 0 {
		e.Models = append(e.Models, new(record.Model))
	}
	return e.Models[len(e.Models)-1]
}

// transforms returns the list for one kind of transform.
func (e *Entry) transforms(kind string) *[]*record.Transform {
	switch kind {
	case record.OrigX:
		return &e.OrigX
	case record.Scale:
		return &e.Scale
	case record.MTrix:
		return &e.MTrix
	}
	panic("programming bug, transform kind " + kind)
}

// NumTransforms counts ORIGX, SCALE and MTRIX lines.
func (e *Entry) NumTransforms() int {
	return len(e.OrigX) + len(e.Scale) + len(e.MTrix)
}

// NumAtoms counts ATOM and HETATM records in the first model.
func (e *Entry) NumAtoms(heavyOnly bool) int {
	if m := e.FirstModel(); m != nil {
		return m.NumAtoms(heavyOnly)
	}
	return 0
}

// NumTer counts TER records in all models.
func (e *Entry) NumTer() int {
	n := 0
	for _, m := range e.Models {
		n += m.NumTer()
	}
	return n
}

// NumChains counts chains in the first model.
func (e *Entry) NumChains() int {
	if m := e.FirstModel(); m != nil {
		return len(m.Chains())
	}
	return 0
}

// NumResidues counts residues over the chains of the first model.
func (e *Entry) NumResidues(countHet bool) int {
	n := 0
	if m := e.FirstModel(); m != nil {
		for _, c := range m.Chains() {
			n += c.NumResidues(countHet)
		}
	}
	return n
}

// FindAtom looks for an atom in the first model.
func (e *Entry) FindAtom(chainID string, resSeq int, name string) *record.Atom {
	if m := e.FirstModel(); m != nil {
		return m.FindAtom(chainID, resSeq, name)
	}
	return nil
}

// FindResidue returns the atoms of a residue in the first model.
func (e *Entry) FindResidue(chainID string, resSeq int, iCode string) []*record.Atom {
	if m := e.FirstModel(); m != nil {
		return m.FindResidue(chainID, resSeq, iCode)
	}
	return nil
}

// SeqResFor returns the SEQRES of one chain, or nil.
func (e *Entry) SeqResFor(chainID string) *record.SeqRes {
	for _, s := range e.SeqRes {
		if s.ChainID == chainID {
			return s
		}
	}
	return nil
}

// Fractional uses the SCALE records to give fractional coordinates of
// an atom. If there are no SCALE records, ok is false.
func (e *Entry) Fractional(a *record.Atom) (xyz cmmn.Xyz, ok bool) {
	if len(e.Scale) == 0 {
		return cmmn.BrokenXyz, false
	}
	return record.Apply(record.TransformMatrix(e.Scale), a.Xyz()), true
}
