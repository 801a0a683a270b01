package pdb

import (
	"github.com/andrew-torda/pdbcodec/pdb/cmmn"
	"github.com/andrew-torda/pdbcodec/pdb/record"
)

// AnnotateLinks finds the two atoms of every LINK in the first model
// and records whether each name starts with its element symbol. This
// decides how the names are aligned when the LINK is written.
// It is the only thing that changes an entry after it has been read.
func (e *Entry) AnnotateLinks() error {
	if len(e.Links) == 0 {
		return nil
	}
	isElement := func(la record.LinkAtom) (bool, error) {
		a := e.FindAtom(la.ChainID, la.SeqNum, la.Name)
		if a == nil {
			return false, &UnresolvedLinkError{Atom: la}
		}
		return cmmn.IsElementName(a.Name, a.Element), nil
	}
	for _, l := range e.Links {
		is1, err := isElement(l.Atom1)
		if err != nil {
			return err
		}
		is2, err := isElement(l.Atom2)
		if err != nil {
			return err
		}
		l.Annotate(is1, is2)
	}
	return nil
}
